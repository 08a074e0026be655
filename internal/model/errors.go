package model

import (
	"errors"
	"fmt"
)

const PostLayer = "post@post"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrInvalidDomainData = errors.New("invalid domain data")
)

// NotFoundError identifies the missing resource by layer, field and lookup value,
// e.g. post@post::tags-><id>.
type NotFoundError struct {
	Layer string
	Field string
	Value string
}

func NewNotFoundError(layer, field, value string) *NotFoundError {
	return &NotFoundError{Layer: layer, Field: field, Value: value}
}

func (e *NotFoundError) Path() string {
	return resourcePath(e.Layer, e.Field, e.Value)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound.Error(), e.Path())
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type AlreadyExistsError struct {
	Layer string
	Field string
	Value string
}

func NewAlreadyExistsError(layer, field, value string) *AlreadyExistsError {
	return &AlreadyExistsError{Layer: layer, Field: field, Value: value}
}

func (e *AlreadyExistsError) Path() string {
	return resourcePath(e.Layer, e.Field, e.Value)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyExists.Error(), e.Path())
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// InvalidPropertyError is returned when a single property violates its invariant.
type InvalidPropertyError struct {
	Property string
	Layer    string
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid property %q in %s", e.Property, e.Layer)
}

func (e *InvalidPropertyError) Is(target error) bool {
	return target == ErrInvalidDomainData
}

// InvalidDomainDataError is returned when the data as a whole cannot build an entity.
type InvalidDomainDataError struct {
	Layer string
	Err   error
}

func (e *InvalidDomainDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s in %s: %s", ErrInvalidDomainData.Error(), e.Layer, e.Err.Error())
	}
	return fmt.Sprintf("%s in %s", ErrInvalidDomainData.Error(), e.Layer)
}

func (e *InvalidDomainDataError) Unwrap() error {
	return e.Err
}

func (e *InvalidDomainDataError) Is(target error) bool {
	return target == ErrInvalidDomainData
}

func resourcePath(layer, field, value string) string {
	path := layer
	if field != "" {
		path += "::" + field
	}
	if value != "" {
		path += "->" + value
	}
	return path
}
