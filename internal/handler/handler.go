package handler

import (
	"net/http"

	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/BloggingApp/post-catalog/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	totalCountHeader = "X-Total-Count"
	totalPagesHeader = "X-Total-Pages"
)

type Handler struct {
	services *service.Service
	cfg      config.AppConfig
}

func New(services *service.Service, cfg config.AppConfig) *Handler {
	return &Handler{
		services: services,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.cfg.ClientOrigin},
		AllowMethods:     []string{http.MethodPost, http.MethodGet, http.MethodHead, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{totalCountHeader, totalPagesHeader},
		AllowCredentials: true,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsGetMany)
			posts.HEAD("", h.postsMetadata)
			posts.GET("/length", h.postsLength)
			posts.GET("/number-of-pages", h.postsNumberOfPages)
			posts.GET("/by-slug/:slug", h.postsGetBySlug)
			posts.POST("", h.authMiddleware, h.postsCreate)

			post := posts.Group("/:id")
			{
				post.GET("", h.postsGet)
				post.PATCH("", h.authMiddleware, h.postsUpdate)
				post.DELETE("", h.authMiddleware, h.postsDelete)
			}
		}
	}

	return r
}
