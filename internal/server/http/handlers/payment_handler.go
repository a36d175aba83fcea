package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/mapper"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// PaymentHandler records payments against orders.
type PaymentHandler struct {
	facade PaymentFacade
}

func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Record handles POST /payment.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "malformed payment: "+err.Error())
		return
	}

	payment, err := h.facade.RecordPayment(c.Request.Context(), mapper.FromPaymentDTO(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToPaymentDTO(*payment))
}

// ByOrder handles GET /payment/order/:orderId.
func (h *PaymentHandler) ByOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	payments, err := h.facade.Payments(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToPaymentDTOs(payments))
}
