package service

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Populator struct {
	postTypes *Resolver[model.PostType]
	postTags  *Resolver[model.PostTag]
}

func NewPopulator(postTypes *Resolver[model.PostType], postTags *Resolver[model.PostTag]) *Populator {
	return &Populator{
		postTypes: postTypes,
		postTags:  postTags,
	}
}

func (p *Populator) PopulatePost(ctx context.Context, post *model.Post) (*model.CompletePost, error) {
	var (
		postType *model.PostType
		tags     []*model.PostTag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		postType, err = p.postTypes.ResolveOne(gctx, post.PostTypeID.String())
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = p.postTags.ResolveMany(gctx, post.TagStrings())
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.NewCompletePost(post, *postType, derefAll(tags)), nil
}

// PopulateManyPosts resolves every distinct post type and tag of the batch once.
func (p *Populator) PopulateManyPosts(ctx context.Context, posts []*model.Post) ([]*model.CompletePost, error) {
	if len(posts) == 0 {
		return []*model.CompletePost{}, nil
	}

	typeIDs := distinct(posts, func(post *model.Post) []uuid.UUID { return []uuid.UUID{post.PostTypeID} })
	tagIDs := distinct(posts, func(post *model.Post) []uuid.UUID { return post.Tags })

	var (
		postTypes []*model.PostType
		tags      []*model.PostTag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		postTypes, err = p.postTypes.ResolveMany(gctx, typeIDs)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = p.postTags.ResolveMany(gctx, tagIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	postTypesMap := make(map[uuid.UUID]model.PostType, len(postTypes))
	for i, postType := range postTypes {
		postTypesMap[uuid.MustParse(typeIDs[i])] = *postType
	}
	tagsMap := make(map[uuid.UUID]model.PostTag, len(tags))
	for i, tag := range tags {
		tagsMap[uuid.MustParse(tagIDs[i])] = *tag
	}

	result := make([]*model.CompletePost, len(posts))
	for i, post := range posts {
		postTags := make([]model.PostTag, 0, len(post.Tags))
		for _, tagID := range post.Tags {
			postTags = append(postTags, tagsMap[tagID])
		}
		result[i] = model.NewCompletePost(post, postTypesMap[post.PostTypeID], postTags)
	}

	return result, nil
}

func distinct(posts []*model.Post, ids func(post *model.Post) []uuid.UUID) []string {
	seen := make(map[uuid.UUID]struct{})
	result := []string{}
	for _, post := range posts {
		for _, id := range ids(post) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id.String())
		}
	}
	return result
}

func derefAll[T any](items []*T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		result = append(result, *item)
	}
	return result
}
