package api

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/model"
)

const postTagResource = "post-tag"

type postTagRepo struct {
	client *client
}

func newPostTagRepo(c *client) PostTag {
	return &postTagRepo{client: c}
}

func (r *postTagRepo) FindByID(ctx context.Context, id string) (*model.PostTag, error) {
	var tag model.PostTag
	found, err := r.client.getJSON(ctx, postTagResource, id, &tag)
	if err != nil || !found {
		return nil, err
	}
	return &tag, nil
}
