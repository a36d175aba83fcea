package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
)

// ValidateOrder checks a new order before its totals are computed.
// An empty status is accepted and later defaults to NEW.
func ValidateOrder(order *model.Order, policy *model.TransitionPolicy) error {
	if order == nil {
		return fmt.Errorf("%w: order is required", domainErrors.ErrValidation)
	}
	if order.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", domainErrors.ErrValidation)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}
	if order.Status != "" && !policy.Known(model.ParseOrderStatus(string(order.Status))) {
		return fmt.Errorf("%w: unknown order status %q", domainErrors.ErrValidation, order.Status)
	}

	for i, item := range order.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: item %d: product id must be positive", domainErrors.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", domainErrors.ErrValidation, i)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d: unit price must not be negative", domainErrors.ErrValidation, i)
		}
		if !item.UnitPrice.Equal(item.UnitPrice.Round(model.CurrencyScale)) {
			return fmt.Errorf("%w: item %d: unit price has more than %d fractional digits", domainErrors.ErrValidation, i, model.CurrencyScale)
		}
		if item.Size < 0 {
			return fmt.Errorf("%w: item %d: size must not be negative", domainErrors.ErrValidation, i)
		}
	}
	return nil
}

// ValidatePayment checks a payment record before it is appended.
func ValidatePayment(payment *model.PaymentRecord) error {
	if payment == nil {
		return fmt.Errorf("%w: payment is required", domainErrors.ErrValidation)
	}
	if payment.OrderID <= 0 {
		return fmt.Errorf("%w: order id must be positive", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(payment.PaymentMethod) == "" {
		return fmt.Errorf("%w: payment method is required", domainErrors.ErrValidation)
	}
	return nil
}
