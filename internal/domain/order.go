package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Order is written once when placed and never updated afterwards.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user"`
	ProductID       uuid.UUID       `json:"product"`
	Configuration   Configuration   `json:"configuration"`
	TotalPrice      int64           `json:"totalPrice"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderPlaced is the event relayed to the message broker for every stored order.
type OrderPlaced struct {
	OrderID       uuid.UUID     `json:"orderId"`
	UserID        uuid.UUID     `json:"userId"`
	ProductID     uuid.UUID     `json:"productId"`
	Configuration Configuration `json:"configuration"`
	TotalPrice    int64         `json:"totalPrice"`
	PlacedAt      time.Time     `json:"placedAt"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

func NewOrderPlaced(o *Order) OrderPlaced {
	return OrderPlaced{
		OrderID:       o.ID,
		UserID:        o.UserID,
		ProductID:     o.ProductID,
		Configuration: o.Configuration,
		TotalPrice:    o.TotalPrice,
		PlacedAt:      o.CreatedAt,
	}
}
