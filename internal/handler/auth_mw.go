package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/post-catalog/internal/dto"
	"github.com/BloggingApp/post-catalog/pkg/utils"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(h.cfg.AccessSecret))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	c.Set(claimsKey, claims)

	c.Next()
}
