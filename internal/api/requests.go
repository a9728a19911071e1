package api

import (
	"github.com/google/uuid"

	"ev-storefront/internal/domain"
)

// SelectionPayload carries one option name per group; a nil field means the
// caller left the group unselected.
type SelectionPayload struct {
	Variant  *string `json:"variant"`
	Color    *string `json:"color"`
	Wheels   *string `json:"wheels"`
	Interior *string `json:"interior"`
}

func (p SelectionPayload) Selection() domain.Selection {
	sel := make(domain.Selection, len(domain.OptionGroups))
	set := func(group domain.OptionGroup, v *string) {
		if v != nil {
			sel[group] = *v
		}
	}
	set(domain.GroupVariant, p.Variant)
	set(domain.GroupColor, p.Color)
	set(domain.GroupWheels, p.Wheels)
	set(domain.GroupInterior, p.Interior)
	return sel
}

type PlaceOrderRequest struct {
	ProductID     string           `json:"productId" binding:"required"`
	Configuration SelectionPayload `json:"configuration"`
	// TotalPrice is accepted for compatibility and never trusted.
	TotalPrice      *int64                 `json:"totalPrice"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

type QuoteResponse struct {
	ProductID     uuid.UUID            `json:"productId"`
	Configuration domain.Configuration `json:"configuration"`
	TotalPrice    int64                `json:"totalPrice"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Group  string `json:"group,omitempty"`
	Option string `json:"option,omitempty"`
}

func NewSelectionPayload(sel domain.Selection) SelectionPayload {
	get := func(group domain.OptionGroup) *string {
		if v, ok := sel[group]; ok {
			return &v
		}
		return nil
	}
	return SelectionPayload{
		Variant:  get(domain.GroupVariant),
		Color:    get(domain.GroupColor),
		Wheels:   get(domain.GroupWheels),
		Interior: get(domain.GroupInterior),
	}
}
