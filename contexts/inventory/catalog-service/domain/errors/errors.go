package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrForbidden        = errors.New("forbidden")
	ErrSectionNotFound  = errors.New("section not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
)
