package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/BloggingApp/post-catalog/internal/handler"
	"github.com/BloggingApp/post-catalog/internal/repository"
	"github.com/BloggingApp/post-catalog/internal/repository/postgres"
	"github.com/BloggingApp/post-catalog/internal/repository/redisrepo"
	"github.com/BloggingApp/post-catalog/internal/server"
	"github.com/BloggingApp/post-catalog/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	config.SetDefaults()
	if err := initConfig(); err != nil {
		panic("failed to initialize yaml config: " + err.Error())
	}

	appConfig := config.AppConfigFromViper()

	logger := newLogger(appConfig.Env)
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("failed to load .env file: %s", err.Error())
	}
	appConfig.AccessSecret = os.Getenv("ACCESS_SECRET")

	db, err := postgres.NewPool(ctx, config.DBConfigFromEnv())
	if err != nil {
		logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	redisConfig := config.RedisConfigFromEnv()
	rdb := redisrepo.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	defer rdb.Close()
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	repos := repository.New(db, rdb, logger, repository.Options{
		PageSize:      appConfig.PageSize,
		Cache:         config.CacheConfigFromViper(),
		Collaborators: config.CollaboratorsConfigFromViper(),
	})
	services := service.New(logger, repos, appConfig.PageSize)
	handlers := handler.New(services, appConfig)

	if appConfig.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(config.ServerConfig{
		Port:           appConfig.Port,
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	})
	go func() {
		if err := srv.Run(); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Sugar().Infof("Server started on port %s", appConfig.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func newLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	return logger
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
