package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type OptionGroup string

const (
	GroupVariant  OptionGroup = "variant"
	GroupColor    OptionGroup = "color"
	GroupWheels   OptionGroup = "wheels"
	GroupInterior OptionGroup = "interior"
)

// OptionGroups lists every group in pricing order.
var OptionGroups = []OptionGroup{GroupVariant, GroupColor, GroupWheels, GroupInterior}

type Option struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Hex   string `json:"hex,omitempty"`
}

type Specifications struct {
	Range        string `json:"range"`
	TopSpeed     string `json:"topSpeed"`
	Acceleration string `json:"acceleration"`
	Power        string `json:"power"`
}

type Configurations struct {
	Variants  []Option `json:"variants"`
	Colors    []Option `json:"colors"`
	Wheels    []Option `json:"wheels"`
	Interiors []Option `json:"interiors"`
}

// Options returns the option list backing the given group, or nil for an unknown group.
func (c Configurations) Options(group OptionGroup) []Option {
	switch group {
	case GroupVariant:
		return c.Variants
	case GroupColor:
		return c.Colors
	case GroupWheels:
		return c.Wheels
	case GroupInterior:
		return c.Interiors
	}
	return nil
}

type Product struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Images         []string       `json:"images"`
	BasePrice      int64          `json:"basePrice"`
	Specifications Specifications `json:"specifications"`
	Configurations Configurations `json:"configurations"`
}

// Validate checks the catalog invariants: non-negative prices, at least one
// option per group and unique option names within a group.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("%w: base price %d is negative", ErrInvalidProduct, p.BasePrice)
	}
	for _, group := range OptionGroups {
		options := p.Configurations.Options(group)
		if len(options) == 0 {
			return fmt.Errorf("%w: group %s has no options", ErrInvalidProduct, group)
		}
		seen := make(map[string]struct{}, len(options))
		for _, opt := range options {
			if opt.Name == "" {
				return fmt.Errorf("%w: group %s has an unnamed option", ErrInvalidProduct, group)
			}
			if opt.Price < 0 {
				return fmt.Errorf("%w: option %q in group %s has a negative price", ErrInvalidProduct, opt.Name, group)
			}
			if _, dup := seen[opt.Name]; dup {
				return fmt.Errorf("%w: option %q repeated in group %s", ErrInvalidProduct, opt.Name, group)
			}
			seen[opt.Name] = struct{}{}
		}
	}
	return nil
}

// DefaultSelection picks the first option of every group.
func (p *Product) DefaultSelection() Selection {
	sel := make(Selection, len(OptionGroups))
	for _, group := range OptionGroups {
		if options := p.Configurations.Options(group); len(options) > 0 {
			sel[group] = options[0].Name
		}
	}
	return sel
}
