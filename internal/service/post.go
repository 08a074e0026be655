package service

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/dto"
	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/BloggingApp/post-catalog/internal/repository/api"
	"github.com/BloggingApp/post-catalog/internal/repository/postgres"
	"github.com/BloggingApp/post-catalog/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger     *zap.Logger
	posts      postgres.Post
	postTypes  api.PostType
	populator  *Populator
	uniqueness *UniquenessChecker
	pageSize   int
}

func newPostService(logger *zap.Logger, posts postgres.Post, postTypes api.PostType, populator *Populator, uniqueness *UniquenessChecker, pageSize int) Post {
	if pageSize <= 0 {
		pageSize = utils.MAX_ITEMS_PER_QUERY
	}

	return &postService{
		logger:     logger,
		posts:      posts,
		postTypes:  postTypes,
		populator:  populator,
		uniqueness: uniqueness,
		pageSize:   pageSize,
	}
}

func (s *postService) Create(ctx context.Context, input dto.CreatePostRequest) (*model.CompletePost, error) {
	post, err := model.NewPost(model.BuildPost{
		PostTypeID:  input.PostTypeID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Cover:       input.Cover,
		Tags:        input.Tags,
	}, nil)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, post.Slug); err != nil {
		return nil, err
	}

	completePost, err := s.populator.PopulatePost(ctx, post)
	if err != nil {
		return nil, s.internal(err, "failed to populate post(%s)", post.Slug)
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, s.internal(err, "failed to create post(%s)", post.Slug)
	}

	return completePost, nil
}

func (s *postService) Find(ctx context.Context, idOrSlug string) (*model.CompletePost, error) {
	post, err := s.findRaw(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	return s.populate(ctx, post)
}

func (s *postService) FindByID(ctx context.Context, id string) (*model.CompletePost, error) {
	if !utils.IsStrictIdentifier(id) {
		return nil, &model.InvalidPropertyError{Property: "id", Layer: model.PostLayer}
	}

	return s.Find(ctx, id)
}

func (s *postService) FindBySlug(ctx context.Context, slug string) (*model.CompletePost, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.internal(err, "failed to find post by slug(%s)", slug)
	}
	if post == nil {
		return nil, model.NewNotFoundError(model.PostLayer, "slug", slug)
	}

	return s.populate(ctx, post)
}

func (s *postService) FindMany(ctx context.Context, page int, postType string) ([]*model.CompletePost, error) {
	if postType != "" {
		return s.FindManyByPostType(ctx, postType, page)
	}

	posts, err := s.posts.FindMany(ctx, normalizePage(page))
	if err != nil {
		return nil, s.internal(err, "failed to find posts page(%d)", page)
	}

	return s.populateMany(ctx, posts)
}

func (s *postService) FindManyByPostType(ctx context.Context, postType string, page int) ([]*model.CompletePost, error) {
	postTypeID, err := s.resolvePostType(ctx, postType)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.FindManyByPostType(ctx, postTypeID, normalizePage(page))
	if err != nil {
		return nil, s.internal(err, "failed to find posts of type(%s) page(%d)", postType, page)
	}

	return s.populateMany(ctx, posts)
}

func (s *postService) Update(ctx context.Context, idOrSlug string, input dto.UpdatePostRequest) (*model.CompletePost, error) {
	post, err := s.findRaw(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != post.Name {
		if newSlug := utils.Slugify(*input.Name); newSlug != post.Slug {
			if err := s.ensureUnique(ctx, newSlug); err != nil {
				return nil, err
			}
		}
		if err := post.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.PostTypeID != nil {
		if err := post.ChangePostType(*input.PostTypeID); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := post.UpdateDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Cover != nil {
		if err := post.UpdateCover(*input.Cover); err != nil {
			return nil, err
		}
	}
	if input.Tags != nil {
		if err := post.UpdateTags(input.Tags); err != nil {
			return nil, err
		}
	}

	// references are checked before anything is written
	completePost, err := s.populator.PopulatePost(ctx, post)
	if err != nil {
		return nil, s.internal(err, "failed to populate post(%s)", post.ID.String())
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, s.internal(err, "failed to update post(%s)", post.ID.String())
	}

	return completePost, nil
}

func (s *postService) Delete(ctx context.Context, idOrSlug string) error {
	post, err := s.findRaw(ctx, idOrSlug)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return s.internal(err, "failed to delete post(%s)", post.ID.String())
	}

	return nil
}

func (s *postService) Count(ctx context.Context, postType string) (int64, error) {
	if postType == "" {
		count, err := s.posts.Count(ctx)
		if err != nil {
			return 0, s.internal(err, "failed to count posts")
		}
		return count, nil
	}

	postTypeID, err := s.resolvePostType(ctx, postType)
	if err != nil {
		return 0, err
	}

	count, err := s.posts.CountByPostType(ctx, postTypeID)
	if err != nil {
		return 0, s.internal(err, "failed to count posts of type(%s)", postType)
	}
	return count, nil
}

func (s *postService) NumberOfPages(ctx context.Context, postType string) (int64, error) {
	count, err := s.Count(ctx, postType)
	if err != nil {
		return 0, err
	}

	return utils.NumberOfPages(count, s.pageSize), nil
}

func (s *postService) findRaw(ctx context.Context, idOrSlug string) (*model.Post, error) {
	var (
		post  *model.Post
		err   error
		field = "slug"
	)

	if utils.IsStrictIdentifier(idOrSlug) {
		field = "id"
		post, err = s.posts.FindByID(ctx, uuid.MustParse(idOrSlug))
	} else {
		post, err = s.posts.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, s.internal(err, "failed to find post(%s)", idOrSlug)
	}
	if post == nil {
		return nil, model.NewNotFoundError(model.PostLayer, field, idOrSlug)
	}

	return post, nil
}

func (s *postService) resolvePostType(ctx context.Context, idOrSlug string) (uuid.UUID, error) {
	var (
		postType *model.PostType
		err      error
	)

	if utils.IsStrictIdentifier(idOrSlug) {
		postType, err = s.postTypes.FindByID(ctx, idOrSlug)
	} else {
		postType, err = s.postTypes.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return uuid.Nil, s.internal(err, "failed to find post type(%s)", idOrSlug)
	}
	if postType == nil {
		return uuid.Nil, model.NewNotFoundError(model.PostLayer, "postType", idOrSlug)
	}

	return postType.ID, nil
}

func (s *postService) ensureUnique(ctx context.Context, slug string) error {
	unique, err := s.uniqueness.IsUnique(ctx, slug)
	if err != nil {
		return s.internal(err, "failed to check slug(%s) uniqueness", slug)
	}
	if !unique {
		return model.NewAlreadyExistsError(model.PostLayer, "slug", slug)
	}
	return nil
}

func (s *postService) populate(ctx context.Context, post *model.Post) (*model.CompletePost, error) {
	completePost, err := s.populator.PopulatePost(ctx, post)
	if err != nil {
		return nil, s.internal(err, "failed to populate post(%s)", post.ID.String())
	}
	return completePost, nil
}

func (s *postService) populateMany(ctx context.Context, posts []*model.Post) ([]*model.CompletePost, error) {
	completePosts, err := s.populator.PopulateManyPosts(ctx, posts)
	if err != nil {
		return nil, s.internal(err, "failed to populate %d posts", len(posts))
	}
	return completePosts, nil
}

// internal passes domain errors through and hides everything else behind ErrInternal.
func (s *postService) internal(err error, format string, args ...any) error {
	if isDomainError(err) {
		return err
	}

	s.logger.Sugar().Errorf(format+": %s", append(args, err.Error())...)
	return ErrInternal
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
