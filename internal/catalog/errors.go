package catalog

import "errors"

var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrVariantOutOfRange = errors.New("variant index out of range")
	ErrOutOfStock        = errors.New("selected variant is out of stock")
	ErrUnexpectedPayload = errors.New("unexpected review payload")
)
