package postgres

import (
	"context"
	"fmt"

	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/BloggingApp/post-catalog/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Post is the canonical post store. Lookups return (nil, nil) when nothing matches;
// FindManyByIDs keeps the order of ids and yields nil for unknown ids.
type Post interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	FindMany(ctx context.Context, page int) ([]*model.Post, error)
	FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Post, error)
	FindManyByPostType(ctx context.Context, postTypeID uuid.UUID, page int) ([]*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, post *model.Post) error
	Count(ctx context.Context) (int64, error)
	CountByPostType(ctx context.Context, postTypeID uuid.UUID) (int64, error)
}

type PostgresRepository struct {
	Post
}

func New(db DB, pageSize int) *PostgresRepository {
	return &PostgresRepository{
		Post: newPostRepo(db, pageSize),
	}
}

func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, nil
}
