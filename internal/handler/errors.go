package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/post-catalog/internal/dto"
	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPage   = errors.New("page must be a positive integer")
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidDomainData):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errorStatus(err), dto.NewErrorResponse(err))
}
