package service

import (
	"context"

	"github.com/BloggingApp/post-catalog/internal/dto"
	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/BloggingApp/post-catalog/internal/repository"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, input dto.CreatePostRequest) (*model.CompletePost, error)
	// Find accepts either an id or a slug.
	Find(ctx context.Context, idOrSlug string) (*model.CompletePost, error)
	FindByID(ctx context.Context, id string) (*model.CompletePost, error)
	FindBySlug(ctx context.Context, slug string) (*model.CompletePost, error)
	// FindMany lists a page of posts, filtered by post type (id or slug) when postType is set.
	FindMany(ctx context.Context, page int, postType string) ([]*model.CompletePost, error)
	FindManyByPostType(ctx context.Context, postType string, page int) ([]*model.CompletePost, error)
	Update(ctx context.Context, idOrSlug string, input dto.UpdatePostRequest) (*model.CompletePost, error)
	Delete(ctx context.Context, idOrSlug string) error
	Count(ctx context.Context, postType string) (int64, error)
	NumberOfPages(ctx context.Context, postType string) (int64, error)
}

type Service struct {
	Post
}

func New(logger *zap.Logger, repo *repository.Repository, pageSize int) *Service {
	populator := NewPopulator(
		NewResolver[model.PostType]("postType", repo.API.PostType.FindByID),
		NewResolver[model.PostTag]("tags", repo.API.PostTag.FindByID),
	)

	return &Service{
		Post: newPostService(logger, repo.Post, repo.API.PostType, populator, NewUniquenessChecker(repo.Post), pageSize),
	}
}
