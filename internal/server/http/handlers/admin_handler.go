package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

const maxPayloadBytes = 1 << 20

// AdminHandler serves the admin surface. It holds no data and relays every
// call to the owning service.
type AdminHandler struct {
	facade AdminFacade
}

func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Products handles GET /admin/product?page=&size=.
func (h *AdminHandler) Products(c *gin.Context) {
	q, ok := pageQuery(c)
	if !ok {
		return
	}
	page, err := h.facade.Products(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminHandler) Product(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	product, err := h.facade.CreateProduct(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces the product and answers with its stored form.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body, ok := rawBody(c)
	if !ok {
		return
	}
	product, err := h.facade.UpdateProduct(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateProductStock handles PATCH /admin/product/:id/stock?quantity=.
func (h *AdminHandler) UpdateProductStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	quantity, err := strconv.ParseInt(c.Query("quantity"), 10, 64)
	if err != nil {
		validationError(c, "quantity must be an integer")
		return
	}
	product, err := h.facade.UpdateProductStock(c.Request.Context(), id, quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) TotalProducts(c *gin.Context) {
	total, err := h.facade.TotalProducts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// Orders handles GET /admin/order?page=&size=. totalElements is the order
// service's own count.
func (h *AdminHandler) Orders(c *gin.Context) {
	q, ok := pageQuery(c)
	if !ok {
		return
	}
	page, err := h.facade.Orders(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminHandler) Order(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) OrdersByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orders, err := h.facade.OrdersByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "malformed status update: "+err.Error())
		return
	}
	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, req.OrderStatus)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) TotalOrders(c *gin.Context) {
	total, err := h.facade.TotalOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

func (h *AdminHandler) TotalRevenue(c *gin.Context) {
	revenue, err := h.facade.TotalRevenue(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMoney(revenue))
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) User(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) TotalUsers(c *gin.Context) {
	total, err := h.facade.TotalUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// Dashboard handles GET /admin/dashboard. Any failing summary fails the response.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// rawBody reads a JSON payload that is relayed without interpretation.
func rawBody(c *gin.Context) (json.RawMessage, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes))
	if err != nil {
		validationError(c, "failed to read request body")
		return nil, false
	}
	if len(body) == 0 || !json.Valid(body) {
		validationError(c, "request body must be a JSON document")
		return nil, false
	}
	return json.RawMessage(body), true
}
