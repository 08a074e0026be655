package api

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/model"
)

const postTypeResource = "post-type"

type postTypeRepo struct {
	client *client
}

func newPostTypeRepo(c *client) PostType {
	return &postTypeRepo{client: c}
}

func (r *postTypeRepo) FindByID(ctx context.Context, id string) (*model.PostType, error) {
	return r.find(ctx, id)
}

// FindBySlug uses the same endpoint; the collaborator accepts an id or a slug.
func (r *postTypeRepo) FindBySlug(ctx context.Context, slug string) (*model.PostType, error) {
	return r.find(ctx, slug)
}

func (r *postTypeRepo) find(ctx context.Context, idOrSlug string) (*model.PostType, error) {
	var postType model.PostType
	found, err := r.client.getJSON(ctx, postTypeResource, idOrSlug, &postType)
	if err != nil || !found {
		return nil, err
	}
	return &postType, nil
}
