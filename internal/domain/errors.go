package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSelection  = errors.New("missing selection")
	ErrUnknownOption     = errors.New("unknown option")
	ErrUnauthenticated   = errors.New("no token, authorization denied")
	ErrInvalidCredential = errors.New("token is not valid")
	ErrProductNotFound   = errors.New("product not found")
	ErrPersistence       = errors.New("order could not be persisted")

	ErrInvalidProduct      = errors.New("invalid product")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidLogin        = errors.New("invalid credentials")
)

type MissingSelectionError struct {
	Group OptionGroup
}

func (e *MissingSelectionError) Error() string {
	return fmt.Sprintf("missing selection for %s", e.Group)
}

func (e *MissingSelectionError) Unwrap() error { return ErrMissingSelection }

type UnknownOptionError struct {
	Group OptionGroup
	Name  string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown %s option %q", e.Group, e.Name)
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }
