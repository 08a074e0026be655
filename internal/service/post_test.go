package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BloggingApp/post-catalog/internal/dto"
	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type postFixture struct {
	*populateFixture
	posts   *postsStub
	service Post
}

func newPostFixture(posts ...*model.Post) *postFixture {
	f := &postFixture{populateFixture: newPopulateFixture(), posts: newPostsStub(posts...)}
	f.service = newPostService(
		zap.NewNop(),
		f.posts,
		postTypesStub{f.types},
		f.populator,
		NewUniquenessChecker(f.posts),
		2,
	)
	return f
}

func strPtr(s string) *string { return &s }

func TestUniquenessChecker(t *testing.T) {
	f := newPopulateFixture()
	post := rawPost(f.addType(newPostType("Article", "article")), "Taken")
	checker := NewUniquenessChecker(newPostsStub(post))

	unique, err := checker.IsUnique(context.Background(), "taken")
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = checker.IsUnique(context.Background(), "free")
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestPostService_Create(t *testing.T) {
	f := newPostFixture()
	postType := f.addType(newPostType("Article", "article"))
	tag := f.addTag(newPostTag("go"))

	completePost, err := f.service.Create(context.Background(), dto.CreatePostRequest{
		PostTypeID:  postType.ID.String(),
		Name:        "Hello World",
		Description: "first post",
		Cover:       "https://cdn.example.com/cover.png",
		Tags:        []string{tag.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", completePost.Slug)
	assert.Equal(t, *postType, completePost.PostType)
	assert.Equal(t, []model.PostTag{*tag}, completePost.Tags)
	require.Len(t, f.posts.created, 1)
	assert.Equal(t, completePost.ID, f.posts.created[0].ID)
}

func TestPostService_Create_Errors(t *testing.T) {
	valid := func(f *postFixture) dto.CreatePostRequest {
		postType := f.addType(newPostType("Article", "article"))
		return dto.CreatePostRequest{
			PostTypeID:  postType.ID.String(),
			Name:        "Hello World",
			Description: "first post",
			Cover:       "https://cdn.example.com/cover.png",
		}
	}

	tests := []struct {
		name     string
		prepare  func(f *postFixture) dto.CreatePostRequest
		expected error
	}{
		{
			name: "slug taken",
			prepare: func(f *postFixture) dto.CreatePostRequest {
				input := valid(f)
				existing := rawPost(f.addType(newPostType("Other", "other")), "Hello World")
				f.posts.posts[existing.ID] = existing
				return input
			},
			expected: model.ErrAlreadyExists,
		},
		{
			name: "unknown tag",
			prepare: func(f *postFixture) dto.CreatePostRequest {
				input := valid(f)
				input.Tags = []string{uuid.NewString()}
				return input
			},
			expected: model.ErrNotFound,
		},
		{
			name: "invalid cover",
			prepare: func(f *postFixture) dto.CreatePostRequest {
				input := valid(f)
				input.Cover = "not a url"
				return input
			},
			expected: model.ErrInvalidDomainData,
		},
		{
			name: "store failure",
			prepare: func(f *postFixture) dto.CreatePostRequest {
				f.posts.createErr = errors.New("connection reset")
				return valid(f)
			},
			expected: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostFixture()
			_, err := f.service.Create(context.Background(), tt.prepare(f))
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestPostService_Find(t *testing.T) {
	f := newPostFixture()
	postType := f.addType(newPostType("Article", "article"))
	post := rawPost(postType, "Hello World")
	f.posts.posts[post.ID] = post
	ctx := context.Background()

	byID, err := f.service.Find(ctx, post.ID.String())
	require.NoError(t, err)
	bySlug, err := f.service.Find(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, byID, bySlug)

	_, err = f.service.Find(ctx, "missing")
	var notFound *model.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "post@post::slug->missing", notFound.Path())

	_, err = f.service.FindByID(ctx, "hello-world")
	assert.True(t, errors.Is(err, model.ErrInvalidDomainData))

	_, err = f.service.FindBySlug(ctx, "nope")
	assert.True(t, errors.Is(err, model.ErrNotFound))

	f.posts.findErr = errors.New("timeout")
	_, err = f.service.Find(ctx, post.ID.String())
	assert.Equal(t, ErrInternal, err)
}

func TestPostService_FindMany(t *testing.T) {
	f := newPostFixture()
	article := f.addType(newPostType("Article", "article"))
	news := f.addType(newPostType("News", "news"))
	one, two := rawPost(article, "One"), rawPost(news, "Two")
	f.posts.posts[one.ID] = one
	f.posts.posts[two.ID] = two
	ctx := context.Background()

	all, err := f.service.FindMany(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bySlug, err := f.service.FindMany(ctx, 1, "news")
	require.NoError(t, err)
	require.Len(t, bySlug, 1)
	assert.Equal(t, two.ID, bySlug[0].ID)

	byID, err := f.service.FindManyByPostType(ctx, article.ID.String(), 1)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, one.ID, byID[0].ID)

	_, err = f.service.FindMany(ctx, 1, "unknown")
	var notFound *model.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "post@post::postType->unknown", notFound.Path())
}

func TestPostService_Update_Rename(t *testing.T) {
	f := newPostFixture()
	postType := f.addType(newPostType("Article", "article"))
	tag := f.addTag(newPostTag("go"))
	post := rawPost(postType, "Old Name")
	f.posts.posts[post.ID] = post

	completePost, err := f.service.Update(context.Background(), "old-name", dto.UpdatePostRequest{
		Name:        strPtr("New Name"),
		Description: strPtr("changed"),
		Tags:        []string{tag.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-name", completePost.Slug)
	assert.Equal(t, "changed", completePost.Description)
	assert.NotNil(t, completePost.UpdatedAt)
	assert.Equal(t, []model.PostTag{*tag}, completePost.Tags)
	require.Len(t, f.posts.updated, 1)
	assert.Equal(t, "new-name", f.posts.updated[0].Slug)
}

func TestPostService_Update_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    func(f *postFixture) dto.UpdatePostRequest
		expected error
	}{
		{
			name: "slug collision",
			input: func(f *postFixture) dto.UpdatePostRequest {
				taken := rawPost(newPostType("Other", "other"), "Taken")
				f.posts.posts[taken.ID] = taken
				return dto.UpdatePostRequest{Name: strPtr("Taken")}
			},
			expected: model.ErrAlreadyExists,
		},
		{
			name: "unknown post type",
			input: func(*postFixture) dto.UpdatePostRequest {
				return dto.UpdatePostRequest{PostTypeID: strPtr(uuid.NewString())}
			},
			expected: model.ErrNotFound,
		},
		{
			name: "invalid tags",
			input: func(*postFixture) dto.UpdatePostRequest {
				return dto.UpdatePostRequest{Tags: []string{"nope"}}
			},
			expected: model.ErrInvalidDomainData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostFixture()
			post := rawPost(f.addType(newPostType("Article", "article")), "Original")
			f.posts.posts[post.ID] = post

			_, err := f.service.Update(context.Background(), post.ID.String(), tt.input(f))
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			assert.Empty(t, f.posts.updated)
		})
	}
}

func TestPostService_Update_SameNameSkipsUniqueness(t *testing.T) {
	f := newPostFixture()
	post := rawPost(f.addType(newPostType("Article", "article")), "Same")
	f.posts.posts[post.ID] = post

	_, err := f.service.Update(context.Background(), post.ID.String(), dto.UpdatePostRequest{Name: strPtr("Same")})
	require.NoError(t, err)
	assert.Len(t, f.posts.updated, 1)
}

func TestPostService_Delete(t *testing.T) {
	f := newPostFixture()
	post := rawPost(f.addType(newPostType("Article", "article")), "Doomed")
	f.posts.posts[post.ID] = post
	ctx := context.Background()

	require.NoError(t, f.service.Delete(ctx, "doomed"))
	require.Len(t, f.posts.deleted, 1)
	assert.Equal(t, post.ID, f.posts.deleted[0].ID)

	err := f.service.Delete(ctx, post.ID.String())
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestPostService_CountAndPages(t *testing.T) {
	f := newPostFixture()
	article := f.addType(newPostType("Article", "article"))
	news := f.addType(newPostType("News", "news"))
	for _, name := range []string{"A", "B", "C"} {
		post := rawPost(article, name)
		f.posts.posts[post.ID] = post
	}
	extra := rawPost(news, "D")
	f.posts.posts[extra.ID] = extra
	ctx := context.Background()

	count, err := f.service.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	count, err = f.service.Count(ctx, "article")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	pages, err := f.service.NumberOfPages(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), pages)

	pages, err = f.service.NumberOfPages(ctx, news.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), pages)

	_, err = f.service.NumberOfPages(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
