package service

import (
	"errors"

	"github.com/BloggingApp/post-catalog/internal/model"
)

var (
	ErrInternal = errors.New("internal server error")
)

// isDomainError reports whether err is meant for the caller as is.
func isDomainError(err error) bool {
	return errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, model.ErrAlreadyExists) ||
		errors.Is(err, model.ErrInvalidDomainData)
}
