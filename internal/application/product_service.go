package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/domain/repository"
	"github.com/devfood/foodcourt/pkg/helpers"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidPrice     = errors.New("price must be a positive number")
)

// ProductService owns the catalog store. Prices arrive as strings and
// must parse as positive decimals before anything is persisted.
type ProductService struct {
	Repo      repository.ProductRepository
	Logger    *logrus.Logger
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
}

func NewProductService(repo repository.ProductRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string) *ProductService {
	return &ProductService{Repo: repo, Logger: logger, ES: es, ESIndex: esIndex, GCS: gcs, GCSBucket: gcsBucket}
}

type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       string
	Ingredients []string
	Available   bool
}

// ParsePrice validates a price string as a positive decimal and returns
// its float value for storage.
func ParsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if !d.IsPositive() {
		return 0, ErrInvalidPrice
	}
	return d.InexactFloat64(), nil
}

// Create validates the price and persists a new product. Nothing is
// written when the price does not parse.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       price,
		Ingredients: in.Ingredients,
		Available:   true,
	}
	if _, err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		// Malformed id and absent record collapse to the same outcome
		// for reads, matching the lookup endpoints' contract.
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.ListAvailable(ctx)
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return s.Repo.ListByCategory(ctx, category)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.Categories(ctx)
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) error {
	price, err := ParsePrice(in.Price)
	if err != nil {
		return err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       price,
		Ingredients: in.Ingredients,
		Available:   in.Available,
	}
	if err := s.Repo.Update(ctx, id, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return ErrInvalidProductID
		case errors.Is(err, repository.ErrNotFound):
			return ErrProductNotFound
		}
		return err
	}
	if updated, gerr := s.Repo.GetByID(ctx, id); gerr == nil {
		s.indexProduct(ctx, updated)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return ErrInvalidProductID
		case errors.Is(err, repository.ErrNotFound):
			return ErrProductNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

// UploadImage stores a product image in GCS and records its public URL
// on the product document.
func (s *ProductService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Repo.SetImageURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// EnsureSeeded populates an empty catalog with the starter menu. Gated on
// a count check only; a partially deleted catalog is not re-seeded.
func (s *ProductService) EnsureSeeded(ctx context.Context) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if err := s.Repo.InsertMany(ctx, StarterCatalog()); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("products", len(StarterCatalog())).Info("catalog seeded")
	}
	return nil
}

func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESIndex == "" || p.ID.IsZero() {
		return
	}
	doc := map[string]any{
		"id":          p.ID.Hex(),
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price":       p.Price,
		"available":   p.Available,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID.Hex()).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID.Hex()).Warn("es index response error")
	}
}

func (s *ProductService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query on name, description, and category.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
