package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/gateway"
)

func newOrderRouter(t *testing.T, catalog *gateway.CatalogGateway, identity *gateway.IdentityGateway) *gin.Engine {
	t.Helper()
	orders := newMemOrderRepo()
	users := newMemUserRepo()
	err := users.Create(context.Background(), &entity.User{
		Email: "diner@example.com",
		Name:  "Diner",
		Role:  entity.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := application.NewOrderService(orders, users, nil, nil)
	h := NewOrderHandler(svc, catalog, identity, nil)

	r := gin.New()
	r.POST("/api/orders", h.Create)
	r.GET("/api/orders", h.List)
	r.GET("/api/orders/options", h.Options)
	r.GET("/api/orders/user/:email", h.ListByUser)
	r.GET("/api/orders/:id", h.GetByID)
	r.PATCH("/api/orders/:id/status", h.UpdateStatus)
	r.DELETE("/api/orders/:id", h.Delete)
	return r
}

func TestCreateOrderEndpoint(t *testing.T) {
	r := newOrderRouter(t, nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"user_email":"diner@example.com","items":[{"name":"Classic Burger","quantity":2,"unit_price":8.5}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Total  float64 `json:"total"`
			Status string  `json:"status"`
		} `json:"data"`
		Meta struct {
			OrderID string `json:"order_id"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Total != 17.00 {
		t.Errorf("total = %v, want 17.00 (server derived, not caller supplied)", env.Data.Total)
	}
	if env.Data.Status != "pending" {
		t.Errorf("status = %q, want pending", env.Data.Status)
	}
	if env.Meta.OrderID == "" {
		t.Error("meta.order_id missing")
	}

	// Created order must be retrievable.
	got := doJSON(t, r, http.MethodGet, "/api/orders/"+env.Meta.OrderID, "")
	if got.Code != http.StatusOK {
		t.Errorf("get created order status = %d", got.Code)
	}
}

func TestCreateOrderUnknownUserReturns404(t *testing.T) {
	r := newOrderRouter(t, nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"user_email":"stranger@example.com","items":[{"name":"Fries","quantity":1,"unit_price":3.5}]}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	r := newOrderRouter(t, nil, nil)

	cases := []struct {
		name string
		body string
	}{
		{"no items", `{"user_email":"diner@example.com","items":[]}`},
		{"zero quantity", `{"user_email":"diner@example.com","items":[{"name":"Fries","quantity":0,"unit_price":3.5}]}`},
		{"negative price", `{"user_email":"diner@example.com","items":[{"name":"Fries","quantity":1,"unit_price":-1}]}`},
		{"missing email", `{"items":[{"name":"Fries","quantity":1,"unit_price":3.5}]}`},
	}
	for _, c := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/orders", c.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", c.name, w.Code)
		}
	}
}

func TestUpdateOrderStatusSplitsBadIDAndMissing(t *testing.T) {
	r := newOrderRouter(t, nil, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/orders/not-a-hex/status", `{"status":"completed"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/orders/"+primitive.NewObjectID().Hex()+"/status", `{"status":"completed"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", w.Code)
	}
}

func TestDeleteOrderSplitsBadIDAndMissing(t *testing.T) {
	r := newOrderRouter(t, nil, nil)

	if w := doJSON(t, r, http.MethodDelete, "/api/orders/not-a-hex", ""); w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/orders/"+primitive.NewObjectID().Hex(), ""); w.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", w.Code)
	}
}

func envelopeJSON(data any) []byte {
	b, _ := json.Marshal(map[string]any{"success": true, "message": "ok", "data": data})
	return b
}

func TestOrderOptionsAggregatesSiblingServices(t *testing.T) {
	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch req.URL.Path {
		case "/api/products":
			_, _ = w.Write(envelopeJSON([]map[string]any{{"name": "Classic Burger", "price": 8.5}}))
		case "/api/categories":
			_, _ = w.Write(envelopeJSON([]string{"Burgers", "Drinks"}))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer catalogSrv.Close()

	identitySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelopeJSON([]map[string]any{{"email": "diner@example.com", "name": "Diner"}}))
	}))
	defer identitySrv.Close()

	catalog := gateway.NewCatalogGateway(catalogSrv.URL, time.Second)
	identity := gateway.NewIdentityGateway(identitySrv.URL, time.Second)
	r := newOrderRouter(t, catalog, identity)

	w := doJSON(t, r, http.MethodGet, "/api/orders/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var env struct {
		Data struct {
			Products   []map[string]any `json:"products"`
			Categories []string         `json:"categories"`
			Users      []map[string]any `json:"users"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Products) != 1 || len(env.Data.Categories) != 2 || len(env.Data.Users) != 1 {
		t.Errorf("data = %+v", env.Data)
	}
}

func TestOrderOptionsDegradesOnSiblingFailure(t *testing.T) {
	// Both siblings down: the endpoint still answers 200 with empty lists.
	catalog := gateway.NewCatalogGateway("http://127.0.0.1:1", 200*time.Millisecond)
	identity := gateway.NewIdentityGateway("http://127.0.0.1:1", 200*time.Millisecond)
	r := newOrderRouter(t, catalog, identity)

	w := doJSON(t, r, http.MethodGet, "/api/orders/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env struct {
		Data struct {
			Products   []map[string]any `json:"products"`
			Categories []string         `json:"categories"`
			Users      []map[string]any `json:"users"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Products) != 0 || len(env.Data.Categories) != 0 || len(env.Data.Users) != 0 {
		t.Errorf("expected empty lists, got %+v", env.Data)
	}
}
