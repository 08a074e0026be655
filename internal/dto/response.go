package dto

import (
	"errors"
	"time"

	"github.com/BloggingApp/post-catalog/internal/model"
)

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Resource  string    `json:"resource,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse reports err, naming the missing or conflicting resource
// when err carries one.
func NewErrorResponse(err error) BasicResponse {
	resp := NewBasicResponse(false, err.Error())

	var notFound *model.NotFoundError
	var exists *model.AlreadyExistsError
	switch {
	case errors.As(err, &notFound):
		resp.Resource = notFound.Path()
	case errors.As(err, &exists):
		resp.Resource = exists.Path()
	}

	return resp
}
