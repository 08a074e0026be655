package service

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/repository/postgres"
)

// UniquenessChecker answers slug-collision questions against the cached read side.
// It does not lock; a concurrent writer can still take the slug after the check.
type UniquenessChecker struct {
	posts postgres.Post
}

func NewUniquenessChecker(posts postgres.Post) *UniquenessChecker {
	return &UniquenessChecker{posts: posts}
}

func (c *UniquenessChecker) IsUnique(ctx context.Context, slug string) (bool, error) {
	post, err := c.posts.FindBySlug(ctx, slug)
	if err != nil {
		return false, err
	}
	return post == nil, nil
}
