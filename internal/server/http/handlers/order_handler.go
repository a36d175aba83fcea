package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/mapper"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.Order
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "malformed order: "+err.Error())
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), mapper.FromOrderDTO(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToOrderDTO(*order))
}

// List handles GET /order?page=&size=.
func (h *OrderHandler) List(c *gin.Context) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.facade.Orders(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToOrderPage(*page))
}

// Get handles GET /order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToOrderDTO(*order))
}

// ByUser handles GET /order/user/:userId.
func (h *OrderHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orders, err := h.facade.OrdersByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToOrderDTOs(orders))
}

// UpdateStatus handles PUT /order/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "malformed status update: "+err.Error())
		return
	}
	if strings.TrimSpace(req.OrderStatus) == "" {
		validationError(c, "orderStatus is required")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.ParseOrderStatus(req.OrderStatus))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToOrderDTO(*order))
}

// Delete handles DELETE /order/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Total handles GET /order/totalorders.
func (h *OrderHandler) Total(c *gin.Context) {
	total, err := h.facade.TotalOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// Revenue handles GET /order/totalrevenue. The amount is exact.
func (h *OrderHandler) Revenue(c *gin.Context) {
	revenue, err := h.facade.TotalRevenue(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMoney(revenue))
}
