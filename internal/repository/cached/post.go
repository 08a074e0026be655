package cached

import (
	"context"
	"errors"
	"fmt"

	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/BloggingApp/post-catalog/internal/repository/postgres"
	"github.com/BloggingApp/post-catalog/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	kindPost = "post"
	kindSlug = "slug"
	kindList = "list"

	defaultScanCount = 100
)

type postRepo struct {
	store  postgres.Post
	cache  redisrepo.Default
	logger *zap.Logger
	cfg    config.CacheConfig
}

// New wraps store with a read-through cache. The returned value satisfies the same
// contract as store, so callers cannot tell the two apart.
func New(store postgres.Post, cache redisrepo.Default, logger *zap.Logger, cfg config.CacheConfig) postgres.Post {
	if cfg.ScanCount <= 0 {
		cfg.ScanCount = defaultScanCount
	}

	return &postRepo{
		store:  store,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	if err := r.store.Create(ctx, post); err != nil {
		return err
	}

	if err := r.invalidateLists(ctx); err != nil {
		return err
	}

	if r.cfg.WarmOnCreate {
		return r.cachePost(ctx, post)
	}

	return nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := r.cachedPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post != nil {
		return post, nil
	}

	post, err = r.store.FindByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	if err := r.cachePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (r *postRepo) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	key := redisrepo.PostSlugKey(slug)

	raw, err := r.cache.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		redisrepo.ObserveMiss(kindSlug)
	case redisrepo.IsWrongType(err):
		r.absorb(kindSlug, key, err)
	case err != nil:
		return nil, err
	default:
		id, err := decodePointer(raw)
		if err != nil {
			r.absorb(kindSlug, key, err)
			break
		}

		post, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if post != nil && post.Slug == slug {
			redisrepo.ObserveHit(kindSlug)
			return post, nil
		}

		// the pointer outlived a rename or a delete
		if err := r.cache.Del(ctx, key).Err(); err != nil {
			return nil, err
		}
		redisrepo.ObserveMiss(kindSlug)
	}

	post, err := r.store.FindBySlug(ctx, slug)
	if err != nil || post == nil {
		return nil, err
	}

	if err := r.cachePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (r *postRepo) FindMany(ctx context.Context, page int) ([]*model.Post, error) {
	return r.findList(ctx, redisrepo.PostsPageKey(page), func(ctx context.Context) ([]*model.Post, error) {
		return r.store.FindMany(ctx, page)
	})
}

func (r *postRepo) FindManyByPostType(ctx context.Context, postTypeID uuid.UUID, page int) ([]*model.Post, error) {
	return r.findList(ctx, redisrepo.PostsByTypeKey(postTypeID, page), func(ctx context.Context) ([]*model.Post, error) {
		return r.store.FindManyByPostType(ctx, postTypeID, page)
	})
}

func (r *postRepo) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Post, error) {
	result := make([]*model.Post, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisrepo.PostKey(id)
	}

	values, err := r.cache.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	var missed []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for i, value := range values {
		if raw, ok := value.(string); ok {
			post, err := decodePost(raw)
			if err == nil {
				redisrepo.ObserveHit(kindPost)
				result[i] = post
				continue
			}
			r.absorb(kindPost, keys[i], err)
		} else {
			redisrepo.ObserveMiss(kindPost)
		}

		if _, ok := seen[ids[i]]; !ok {
			seen[ids[i]] = struct{}{}
			missed = append(missed, ids[i])
		}
	}

	if len(missed) == 0 {
		return result, nil
	}

	fetched, err := r.store.FindManyByIDs(ctx, missed)
	if err != nil {
		return nil, err
	}

	fetchedMap := make(map[uuid.UUID]*model.Post, len(fetched))
	for _, post := range fetched {
		if post == nil {
			continue
		}
		if err := r.cachePost(ctx, post); err != nil {
			return nil, err
		}
		fetchedMap[post.ID] = post
	}

	for i, id := range ids {
		if result[i] == nil {
			result[i] = fetchedMap[id]
		}
	}

	return result, nil
}

func (r *postRepo) Update(ctx context.Context, post *model.Post) error {
	if err := r.evict(ctx, post); err != nil {
		return err
	}

	if err := r.store.Update(ctx, post); err != nil {
		return err
	}

	if err := r.cachePost(ctx, post); err != nil {
		return err
	}

	return r.invalidateLists(ctx)
}

func (r *postRepo) Delete(ctx context.Context, post *model.Post) error {
	if err := r.evict(ctx, post); err != nil {
		return err
	}

	if err := r.store.Delete(ctx, post); err != nil {
		return err
	}

	return r.invalidateLists(ctx)
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

func (r *postRepo) CountByPostType(ctx context.Context, postTypeID uuid.UUID) (int64, error) {
	return r.store.CountByPostType(ctx, postTypeID)
}

// cachedPost returns (nil, nil) on a miss or on a corrupt entry.
func (r *postRepo) cachedPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	key := redisrepo.PostKey(id)

	post, err := redisrepo.Get[model.Post](r.cache, ctx, key)
	switch {
	case errors.Is(err, redis.Nil):
		redisrepo.ObserveMiss(kindPost)
		return nil, nil
	case errors.Is(err, redisrepo.ErrMalformedValue):
		r.absorb(kindPost, key, fmt.Errorf("%w: %s", errCorruptCacheValue, err.Error()))
		return nil, nil
	case err != nil:
		return nil, err
	}

	if err := post.Validate(); err != nil {
		r.absorb(kindPost, key, fmt.Errorf("%w: %s", errCorruptCacheValue, err.Error()))
		return nil, nil
	}

	redisrepo.ObserveHit(kindPost)
	return post, nil
}

func (r *postRepo) cachePost(ctx context.Context, post *model.Post) error {
	if err := r.cache.SetJSON(ctx, redisrepo.PostKey(post.ID), post, r.cfg.TTL); err != nil {
		return err
	}
	return r.cache.Set(ctx, redisrepo.PostSlugKey(post.Slug), post.ID.String(), r.cfg.TTL)
}

// evict drops the id entry and every slug pointer the post may be reachable by:
// the one of its cached (previous) state and the one of its new state.
func (r *postRepo) evict(ctx context.Context, post *model.Post) error {
	previous, err := r.cachedPost(ctx, post.ID)
	if err != nil {
		return err
	}

	keys := []string{redisrepo.PostKey(post.ID), redisrepo.PostSlugKey(post.Slug)}
	if previous != nil && previous.Slug != post.Slug {
		keys = append(keys, redisrepo.PostSlugKey(previous.Slug))
	}

	return r.cache.Del(ctx, keys...).Err()
}

func (r *postRepo) findList(ctx context.Context, key string, load func(ctx context.Context) ([]*model.Post, error)) ([]*model.Post, error) {
	ids, err := redisrepo.GetMany[uuid.UUID](r.cache, ctx, key)
	switch {
	case err == nil:
		redisrepo.ObserveHit(kindList)
		posts, err := r.FindManyByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return compact(posts), nil
	case errors.Is(err, redis.Nil):
		redisrepo.ObserveMiss(kindList)
	case errors.Is(err, redisrepo.ErrMalformedValue):
		r.absorb(kindList, key, err)
	default:
		return nil, err
	}

	posts, err := load(ctx)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if err := r.cachePost(ctx, post); err != nil {
			return nil, err
		}
	}

	if err := r.cache.SetJSON(ctx, key, postIDs(posts), r.cfg.TTL); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) invalidateLists(ctx context.Context) error {
	if _, err := r.cache.DelByPatterns(ctx, r.cfg.ScanCount, redisrepo.PostListPatterns()...); err != nil {
		r.logger.Sugar().Errorf("failed to invalidate post lists: %s", err.Error())
		return err
	}
	return nil
}

func (r *postRepo) absorb(kind, key string, err error) {
	redisrepo.ObserveCorrupt(kind)
	r.logger.Warn("discarding corrupt cache value", zap.String("key", key), zap.Error(err))
}
