package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("catalog.service: service not found")
	ErrInternal        = errors.New("catalog.service: internal error")
)
