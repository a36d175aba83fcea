package mapper

import (
	"time"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

func ToPaymentDTO(p model.PaymentRecord) dto.Payment {
	out := dto.Payment{
		PaymentID:     p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		PaymentMethod: p.PaymentMethod,
	}
	if !p.PaymentDate.IsZero() {
		date := p.PaymentDate
		out.PaymentDate = &date
	}
	return out
}

func FromPaymentDTO(d dto.Payment) model.PaymentRecord {
	var date time.Time
	if d.PaymentDate != nil {
		date = *d.PaymentDate
	}
	return model.PaymentRecord{
		ID:            d.PaymentID,
		OrderID:       d.OrderID,
		TransactionID: d.TransactionID,
		PaymentMethod: d.PaymentMethod,
		PaymentDate:   date,
	}
}

func ToPaymentDTOs(payments []model.PaymentRecord) []dto.Payment {
	out := make([]dto.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentDTO(p))
	}
	return out
}
