package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/internal/gateway"
	"github.com/devfood/foodcourt/pkg/response"
	"github.com/devfood/foodcourt/pkg/validation"
)

type OrderHandler struct {
	Svc      *application.OrderService
	Catalog  *gateway.CatalogGateway
	Identity *gateway.IdentityGateway
	Logger   *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, catalog *gateway.CatalogGateway, identity *gateway.IdentityGateway, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Catalog: catalog, Identity: identity, Logger: logger}
}

type orderItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

type createOrderRequest struct {
	UserEmail string             `json:"user_email" binding:"required,email"`
	Items     []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	items := make([]application.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, application.OrderItemInput{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	o, err := h.Svc.Create(c.Request.Context(), req.UserEmail, items)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrNoItems), errors.Is(err, application.ErrInvalidItem):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to create order", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, o, "order created", map[string]any{"order_id": o.ID.Hex()})
}

// List GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	o, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch order", nil)
		return
	}
	response.Success(c, http.StatusOK, o, "order", nil)
}

// ListByUser GET /api/orders/user/:email
func (h *OrderHandler) ListByUser(c *gin.Context) {
	orders, err := h.Svc.ListByUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

// UpdateStatus PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidOrderID):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrOrderNotFound):
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update order status", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status}, "status updated", nil)
}

// Delete DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidOrderID):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrOrderNotFound):
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to delete order", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": c.Param("id")}, "order deleted", nil)
}

// Options GET /api/orders/options aggregates available products,
// categories, and registered users from the sibling services so a client
// can populate the order form. Partial failures degrade to empty lists.
func (h *OrderHandler) Options(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.Catalog.Products(ctx)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("product service unavailable")
		}
		products = nil
	}
	categories, err := h.Catalog.Categories(ctx)
	if err != nil {
		categories = nil
	}
	users, err := h.Identity.Users(ctx)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("user service unavailable")
		}
		users = nil
	}

	response.Success(c, http.StatusOK, gin.H{
		"products":   products,
		"categories": categories,
		"users":      users,
	}, "order options", nil)
}
