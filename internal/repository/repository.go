package repository

import (
	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/BloggingApp/post-catalog/internal/repository/api"
	"github.com/BloggingApp/post-catalog/internal/repository/cached"
	"github.com/BloggingApp/post-catalog/internal/repository/postgres"
	"github.com/BloggingApp/post-catalog/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Options struct {
	PageSize      int
	Cache         config.CacheConfig
	Collaborators config.CollaboratorsConfig
}

type Repository struct {
	Postgres *postgres.PostgresRepository
	Redis    *redisrepo.RedisRepository
	API      *api.APIRepository
	// Post is the cached view over Postgres.Post; use-cases read and write through it.
	Post postgres.Post
}

func New(db postgres.DB, rdb *redis.Client, logger *zap.Logger, opts Options) *Repository {
	pg := postgres.New(db, opts.PageSize)
	rd := redisrepo.New(rdb)

	return &Repository{
		Postgres: pg,
		Redis:    rd,
		API:      api.New(opts.Collaborators),
		Post:     cached.New(pg.Post, rd.Default, logger, opts.Cache),
	}
}
