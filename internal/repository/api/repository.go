package api

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/BloggingApp/post-catalog/internal/model"
)

// Lookups return (nil, nil) when the collaborator does not know the resource.
type PostType interface {
	FindByID(ctx context.Context, id string) (*model.PostType, error)
	FindBySlug(ctx context.Context, slug string) (*model.PostType, error)
}

type PostTag interface {
	FindByID(ctx context.Context, id string) (*model.PostTag, error)
}

type APIRepository struct {
	PostType
	PostTag
}

func New(cfg config.CollaboratorsConfig) *APIRepository {
	c := newClient(cfg)
	return &APIRepository{
		PostType: newPostTypeRepo(c),
		PostTag:  newPostTagRepo(c),
	}
}
