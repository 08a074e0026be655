package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/BloggingApp/post-catalog/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	postColumns     = "p.id, p.created_at, p.updated_at, p.post_type_id, p.name, p.slug, p.description, p.cover, p.tags"
	uniqueViolation = "23505"
)

type postRepo struct {
	db       DB
	pageSize int
}

func newPostRepo(db DB, pageSize int) Post {
	if pageSize <= 0 {
		pageSize = utils.MAX_ITEMS_PER_QUERY
	}

	return &postRepo{
		db:       db,
		pageSize: pageSize,
	}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO posts(id, created_at, updated_at, post_type_id, name, slug, description, cover, tags)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		post.ID,
		post.CreatedAt,
		post.UpdatedAt,
		post.PostTypeID,
		post.Name,
		post.Slug,
		post.Description,
		post.Cover,
		tagsOrEmpty(post.Tags),
	)
	return mapWriteError(err, post)
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return r.findOne(ctx, "SELECT "+postColumns+" FROM posts p WHERE p.id = $1", id)
}

func (r *postRepo) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return r.findOne(ctx, "SELECT "+postColumns+" FROM posts p WHERE p.slug = $1", slug)
}

func (r *postRepo) FindMany(ctx context.Context, page int) ([]*model.Post, error) {
	return r.findMany(
		ctx,
		"SELECT "+postColumns+" FROM posts p ORDER BY p.created_at DESC, p.id LIMIT $1 OFFSET $2",
		r.pageSize,
		utils.Offset(page, r.pageSize),
	)
}

func (r *postRepo) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Post, error) {
	result := make([]*model.Post, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	posts, err := r.findMany(ctx, "SELECT "+postColumns+" FROM posts p WHERE p.id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}

	postsMap := make(map[uuid.UUID]*model.Post, len(posts))
	for _, post := range posts {
		postsMap[post.ID] = post
	}

	for i, id := range ids {
		result[i] = postsMap[id]
	}

	return result, nil
}

func (r *postRepo) FindManyByPostType(ctx context.Context, postTypeID uuid.UUID, page int) ([]*model.Post, error) {
	return r.findMany(
		ctx,
		"SELECT "+postColumns+" FROM posts p WHERE p.post_type_id = $1 ORDER BY p.created_at DESC, p.id LIMIT $2 OFFSET $3",
		postTypeID,
		r.pageSize,
		utils.Offset(page, r.pageSize),
	)
}

func (r *postRepo) Update(ctx context.Context, post *model.Post) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE posts SET updated_at = $2, post_type_id = $3, name = $4, slug = $5, description = $6, cover = $7, tags = $8
		WHERE id = $1`,
		post.ID,
		post.UpdatedAt,
		post.PostTypeID,
		post.Name,
		post.Slug,
		post.Description,
		post.Cover,
		tagsOrEmpty(post.Tags),
	)
	if err != nil {
		return mapWriteError(err, post)
	}

	if tag.RowsAffected() == 0 {
		return model.NewNotFoundError(model.PostLayer, "id", post.ID.String())
	}

	return nil
}

func (r *postRepo) Delete(ctx context.Context, post *model.Post) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", post.ID)
	return err
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepo) CountByPostType(ctx context.Context, postTypeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts WHERE post_type_id = $1", postTypeID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepo) findOne(ctx context.Context, query string, args ...any) (*model.Post, error) {
	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return post, nil
}

func (r *postRepo) findMany(ctx context.Context, query string, args ...any) ([]*model.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	if err := row.Scan(
		&post.ID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.PostTypeID,
		&post.Name,
		&post.Slug,
		&post.Description,
		&post.Cover,
		&post.Tags,
	); err != nil {
		return nil, err
	}

	if post.Tags == nil {
		post.Tags = []uuid.UUID{}
	}

	return &post, nil
}

func mapWriteError(err error, post *model.Post) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.NewAlreadyExistsError(model.PostLayer, "slug", post.Slug)
	}

	return err
}

func tagsOrEmpty(tags []uuid.UUID) []uuid.UUID {
	if tags == nil {
		return []uuid.UUID{}
	}
	return tags
}
