package model

import (
	"time"

	"github.com/google/uuid"
)

// CompletePost is a Post with its post type and tags resolved. It is built per
// request and never stored.
type CompletePost struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	PostType    PostType   `json:"postType"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Cover       string     `json:"cover"`
	Tags        []PostTag  `json:"tags"`
}

func NewCompletePost(post *Post, postType PostType, tags []PostTag) *CompletePost {
	if tags == nil {
		tags = []PostTag{}
	}

	return &CompletePost{
		ID:          post.ID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
		PostType:    postType,
		Name:        post.Name,
		Slug:        post.Slug,
		Description: post.Description,
		Cover:       post.Cover,
		Tags:        tags,
	}
}

// Raw projects the hydrated post back to its foreign-key form.
func (p *CompletePost) Raw() *Post {
	tags := make([]uuid.UUID, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, tag.ID)
	}

	return &Post{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		PostTypeID:  p.PostType.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Cover:       p.Cover,
		Tags:        tags,
	}
}
