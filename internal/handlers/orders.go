package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/models"
)

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
}

type OrdersHandler struct {
	orders OrderService
}

func NewOrdersHandler(orders OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// CreateOrder godoc
// @Summary     Create a custom order
// @Description Places a fulfillment order. Reference images are Base64 data URIs; the main one is required.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateOrderRequest true "Order details"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid order data.", err))
		return
	}

	order, err := h.orders.Create(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, models.OrderResponse{
		Success: true,
		Message: "Order created successfully!",
		Order:   order,
	})
}

// ListOrders godoc
// @Summary     List my orders
// @Description Returns the authenticated user's orders, newest first.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.Order
// @Failure     401 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	orders, err := h.orders.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListAllOrders godoc
// @Summary     List all orders
// @Description Administrator view of every order, newest first, with the owner's profile.
// @Tags        manages
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.Order
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /orders/manages [get]
func (h *OrdersHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary     Update order status
// @Description Moves an order to any of Pending, Processing, Shipped, Completed or Cancelled.
// @Tags        manages
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                     true "Order ID (UUID)"
// @Param       request body models.UpdateStatusRequest true "New status"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse "Unknown or malformed order id"
// @Router      /orders/manages/{id} [put]
func (h *OrdersHandler) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid status.", err))
		return
	}
	if _, err := models.ParseStatus(req.Status); err != nil {
		_ = c.Error(apperrors.Validation("Invalid status.", err))
		return
	}

	// An id that cannot name a stored order is an unknown order.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.NotFound("Order not found."))
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Order status updated successfully.",
		Order:   order,
	})
}
