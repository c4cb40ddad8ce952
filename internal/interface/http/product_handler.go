package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/pkg/response"
	"github.com/devfood/foodcourt/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
}

// Create POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidPrice) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create product", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "product created", nil)
}

// List GET /api/products lists available products, optionally filtered by
// category; ?all=true returns the full catalog for the admin view.
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if all, _ := strconv.ParseBool(c.Query("all")); all {
		products, err := h.Svc.List(ctx)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
			return
		}
		response.Success(c, http.StatusOK, products, "products", nil)
		return
	}

	if category := c.Query("category"); category != "" {
		products, err := h.Svc.ListByCategory(ctx, category)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
			return
		}
		response.Success(c, http.StatusOK, products, "products", nil)
		return
	}

	products, err := h.Svc.ListAvailable(ctx)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	response.Success(c, http.StatusOK, products, "products", nil)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch product", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		Available:   req.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidPrice), errors.Is(err, application.ErrInvalidProductID):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrProductNotFound):
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update product", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "product updated", nil)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidProductID):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrProductNotFound):
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to delete product", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "product deleted", nil)
}

// Categories GET /api/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.Svc.Categories(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list categories", nil)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories", nil)
}

// Search GET /api/products/search?q=
func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// UploadImage POST /api/products/:id/image (multipart field "image")
func (h *ProductHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to upload image", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"image_url": url}, "image uploaded", nil)
}
