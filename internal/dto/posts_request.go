package dto

type CreatePostRequest struct {
	PostTypeID  string   `json:"postTypeId" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,min=1"`
	Slug        string   `json:"slug"`
	Description string   `json:"description" binding:"required"`
	Cover       string   `json:"cover" binding:"required,url"`
	Tags        []string `json:"tags" binding:"dive,uuid"`
}

// UpdatePostRequest carries a partial update; nil fields are left untouched.
// An absent tags field keeps the tags, an empty array clears them.
type UpdatePostRequest struct {
	PostTypeID  *string  `json:"postTypeId" binding:"omitempty,uuid"`
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Cover       *string  `json:"cover" binding:"omitempty,url"`
	Tags        []string `json:"tags" binding:"omitempty,dive,uuid"`
}

type GetPostsRequest struct {
	Page int    `form:"page"`
	Type string `form:"type"`
}
