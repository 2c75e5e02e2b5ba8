package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrForbidden        = errors.New("forbidden")
	ErrSectionNotFound  = errors.New("section not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionClosed    = errors.New("session already closed")
	ErrItemNotInSection = errors.New("item not in session section")
)
