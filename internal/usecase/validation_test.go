package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
)

func TestValidateOrder(t *testing.T) {
	policy := model.DefaultTransitionPolicy()

	valid := sampleOrder()
	if err := ValidateOrder(&valid, policy); err != nil {
		t.Fatalf("expected valid order, got %v", err)
	}

	free := sampleOrder()
	free.Items[0].UnitPrice = price("0")
	if err := ValidateOrder(&free, policy); err != nil {
		t.Fatalf("expected free item to be valid, got %v", err)
	}

	if err := ValidateOrder(nil, policy); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for nil order, got %v", err)
	}
}

func TestValidatePayment(t *testing.T) {
	cases := []struct {
		name    string
		payment *model.PaymentRecord
		valid   bool
	}{
		{"valid", &model.PaymentRecord{OrderID: 1, PaymentMethod: "CARD"}, true},
		{"nil", nil, false},
		{"blank method", &model.PaymentRecord{OrderID: 1, PaymentMethod: " "}, false},
		{"missing order", &model.PaymentRecord{PaymentMethod: "CARD"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayment(tc.payment)
			if tc.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.valid && !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
