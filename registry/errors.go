package registry

import "errors"

var (
	// ErrDuplicateHandler is returned when a handler name is registered twice.
	ErrDuplicateHandler = errors.New("handler already registered")

	// ErrEmptyHandlerName is returned when a handler is registered without a name.
	ErrEmptyHandlerName = errors.New("handler name is empty")

	// ErrStatusOutOfRange is returned when a documented response carries a
	// status code outside 100-599.
	ErrStatusOutOfRange = errors.New("response status code out of range")
)
