package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/google/uuid"
)

// lookupStub backs a FindFunc with a fixed set of entities and records every call.
type lookupStub[T any] struct {
	mu       sync.Mutex
	entities map[string]*T
	errs     map[string]error
	calls    []string
}

func newLookupStub[T any]() *lookupStub[T] {
	return &lookupStub[T]{entities: map[string]*T{}, errs: map[string]error{}}
}

func (s *lookupStub[T]) find(_ context.Context, id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, id)
	if err, ok := s.errs[id]; ok {
		return nil, err
	}
	return s.entities[id], nil
}

func (s *lookupStub[T]) sortedCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := append([]string(nil), s.calls...)
	sort.Strings(calls)
	return calls
}

func newPostType(name, slug string) *model.PostType {
	return &model.PostType{ID: uuid.New(), Name: name, Slug: slug, CreatedAt: time.Now().UTC()}
}

func newPostTag(name string) *model.PostTag {
	return &model.PostTag{ID: uuid.New(), Name: name, Slug: name, CreatedAt: time.Now().UTC()}
}

// postsStub is a postgres.Post with overridable behaviour and a tiny in-memory table.
type postsStub struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*model.Post

	createErr error
	updateErr error
	findErr   error

	created []*model.Post
	updated []*model.Post
	deleted []*model.Post
}

func newPostsStub(posts ...*model.Post) *postsStub {
	s := &postsStub{posts: map[uuid.UUID]*model.Post{}}
	for _, post := range posts {
		s.posts[post.ID] = post
	}
	return s
}

func (s *postsStub) Create(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, post)
	s.posts[post.ID] = post
	return nil
}

func (s *postsStub) FindByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	if post, ok := s.posts[id]; ok {
		copied := *post
		return &copied, nil
	}
	return nil, nil
}

func (s *postsStub) FindBySlug(_ context.Context, slug string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, post := range s.posts {
		if post.Slug == slug {
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *postsStub) all(match func(*model.Post) bool) []*model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []*model.Post{}
	for _, post := range s.posts {
		if match(post) {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (s *postsStub) FindMany(context.Context, int) ([]*model.Post, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.all(func(*model.Post) bool { return true }), nil
}

func (s *postsStub) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Post, error) {
	result := make([]*model.Post, len(ids))
	for i, id := range ids {
		result[i], _ = s.FindByID(ctx, id)
	}
	return result, nil
}

func (s *postsStub) FindManyByPostType(_ context.Context, postTypeID uuid.UUID, _ int) ([]*model.Post, error) {
	return s.all(func(post *model.Post) bool { return post.PostTypeID == postTypeID }), nil
}

func (s *postsStub) Update(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, post)
	s.posts[post.ID] = post
	return nil
}

func (s *postsStub) Delete(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, post)
	delete(s.posts, post.ID)
	return nil
}

func (s *postsStub) Count(context.Context) (int64, error) {
	return int64(len(s.all(func(*model.Post) bool { return true }))), nil
}

func (s *postsStub) CountByPostType(_ context.Context, postTypeID uuid.UUID) (int64, error) {
	return int64(len(s.all(func(post *model.Post) bool { return post.PostTypeID == postTypeID }))), nil
}

// postTypesStub adapts a lookupStub to api.PostType, matching slugs as well as ids.
type postTypesStub struct {
	*lookupStub[model.PostType]
}

func (s postTypesStub) FindByID(ctx context.Context, id string) (*model.PostType, error) {
	return s.find(ctx, id)
}

func (s postTypesStub) FindBySlug(ctx context.Context, slug string) (*model.PostType, error) {
	s.mu.Lock()
	var match *model.PostType
	for _, postType := range s.entities {
		if postType.Slug == slug {
			match = postType
		}
	}
	s.mu.Unlock()
	if match == nil {
		return nil, nil
	}
	return s.find(ctx, match.ID.String())
}
