package service

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/model"
	"golang.org/x/sync/errgroup"
)

// FindFunc looks up one foreign entity; (nil, nil) means it does not exist.
type FindFunc[T any] func(ctx context.Context, id string) (*T, error)

// Resolver turns foreign ids into entities owned by a collaborator service.
type Resolver[T any] struct {
	field string
	find  FindFunc[T]
}

// NewResolver builds a resolver; field names the post property the ids come from
// and ends up in the path of NotFound errors.
func NewResolver[T any](field string, find FindFunc[T]) *Resolver[T] {
	return &Resolver[T]{
		field: field,
		find:  find,
	}
}

func (r *Resolver[T]) ResolveOne(ctx context.Context, id string) (*T, error) {
	entity, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, model.NewNotFoundError(model.PostLayer, r.field, id)
	}
	return entity, nil
}

// ResolveMany resolves every id concurrently. The result has the order and
// multiplicity of ids. The first failure cancels the context handed to the
// lookups still in flight and is the error returned for the whole batch.
func (r *Resolver[T]) ResolveMany(ctx context.Context, ids []string) ([]*T, error) {
	result := make([]*T, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			entity, err := r.ResolveOne(gctx, id)
			if err != nil {
				return err
			}
			result[i] = entity
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
