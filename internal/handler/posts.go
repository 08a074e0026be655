package handler

import (
	"net/http"
	"strconv"

	"github.com/BloggingApp/post-catalog/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdPost)
}

func (h *Handler) postsGet(c *gin.Context) {
	post, err := h.services.Post.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsGetBySlug(c *gin.Context) {
	post, err := h.services.Post.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsGetMany(c *gin.Context) {
	input, ok := bindListQuery(c)
	if !ok {
		return
	}

	if !h.setMetadataHeaders(c, input.Type) {
		return
	}

	posts, err := h.services.Post.FindMany(c.Request.Context(), input.Page, input.Type)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsMetadata(c *gin.Context) {
	input, ok := bindListQuery(c)
	if !ok {
		return
	}

	if !h.setMetadataHeaders(c, input.Type) {
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) postsLength(c *gin.Context) {
	count, err := h.services.Post.Count(c.Request.Context(), c.Query("type"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LengthResponse{Count: count})
}

func (h *Handler) postsNumberOfPages(c *gin.Context) {
	pages, err := h.services.Post.NumberOfPages(c.Request.Context(), c.Query("type"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NumberOfPagesResponse{Pages: pages})
}

func (h *Handler) postsUpdate(c *gin.Context) {
	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Post.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsDelete(c *gin.Context) {
	if err := h.services.Post.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bindListQuery(c *gin.Context) (dto.GetPostsRequest, bool) {
	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil || input.Page < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPage.Error()))
		return input, false
	}
	if input.Page == 0 {
		input.Page = 1
	}
	return input, true
}

func (h *Handler) setMetadataHeaders(c *gin.Context, postType string) bool {
	count, err := h.services.Post.Count(c.Request.Context(), postType)
	if err != nil {
		abortWithError(c, err)
		return false
	}

	pages, err := h.services.Post.NumberOfPages(c.Request.Context(), postType)
	if err != nil {
		abortWithError(c, err)
		return false
	}

	c.Header(totalCountHeader, strconv.FormatInt(count, 10))
	c.Header(totalPagesHeader, strconv.FormatInt(pages, 10))
	return true
}
