// Package mapper converts between the order aggregate and its wire schema.
package mapper

import (
	"time"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// ToOrderDTO maps an aggregate with its loaded items.
func ToOrderDTO(o model.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ToOrderItemDTO(item))
	}
	out := dto.Order{
		OrderID:         o.ID,
		UserID:          o.UserID,
		ShippingAddress: o.ShippingAddress,
		OrderStatus:     string(o.Status),
		TotalPrice:      dto.NewMoney(o.TotalPrice),
		OrderItems:      items,
	}
	if !o.OrderDate.IsZero() {
		date := o.OrderDate
		out.OrderDate = &date
	}
	return out
}

// FromOrderDTO maps a wire order back to the aggregate.
func FromOrderDTO(d dto.Order) model.Order {
	items := make([]model.OrderItem, 0, len(d.OrderItems))
	for _, item := range d.OrderItems {
		items = append(items, FromOrderItemDTO(item))
	}
	var date time.Time
	if d.OrderDate != nil {
		date = *d.OrderDate
	}
	return model.Order{
		ID:              d.OrderID,
		UserID:          d.UserID,
		ShippingAddress: d.ShippingAddress,
		Status:          model.ParseOrderStatus(d.OrderStatus),
		TotalPrice:      d.TotalPrice.Decimal,
		OrderDate:       date,
		Items:           items,
	}
}

func ToOrderItemDTO(i model.OrderItem) dto.OrderItem {
	return dto.OrderItem{
		OrderItemID: i.ID,
		OrderID:     i.OrderID,
		ProductID:   i.ProductID,
		Quantity:    i.Quantity,
		UnitPrice:   dto.NewMoney(i.UnitPrice),
		TotalPrice:  dto.NewMoney(i.TotalPrice),
		Size:        i.Size,
	}
}

func FromOrderItemDTO(d dto.OrderItem) model.OrderItem {
	return model.OrderItem{
		ID:         d.OrderItemID,
		OrderID:    d.OrderID,
		ProductID:  d.ProductID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice.Decimal,
		TotalPrice: d.TotalPrice.Decimal,
		Size:       d.Size,
	}
}

// ToOrderDTOs maps a list preserving its order.
func ToOrderDTOs(orders []model.Order) []dto.Order {
	out := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderDTO(o))
	}
	return out
}

// ToOrderPage builds the page envelope for a page of orders.
func ToOrderPage(p model.Page[model.Order]) dto.Page[dto.Order] {
	content := ToOrderDTOs(p.Content)
	totalPages := p.TotalPages()
	return dto.Page[dto.Order]{
		Content:          content,
		TotalElements:    p.TotalElements,
		TotalPages:       totalPages,
		Number:           p.Page,
		Size:             p.Size,
		NumberOfElements: len(content),
		First:            p.Page == 0,
		Last:             p.Page >= totalPages-1,
		Empty:            len(content) == 0,
	}
}
