package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mdd-app/mdd-go/config"
	"github.com/mdd-app/mdd-go/internal/api"
	"github.com/mdd-app/mdd-go/internal/articlecache"
	"github.com/mdd-app/mdd-go/internal/session"
)

// App is the assembled client stack handed to the CLI.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Session  *session.Store
	API      *api.Client
	Articles *articlecache.Cache

	redisClient *redis.Client
}

// NewApp builds the storage backend, hydrates the session once, and wires
// the API client and article cache on top of it.
func NewApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	storage, err := app.initStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.Session = session.NewStore(storage, logger)
	app.Session.Hydrate(ctx)

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.HTTPTimeout,
		Session: app.Session,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	app.API = client
	app.Articles = articlecache.New(client, cfg.Cache.ArticleTTL)

	return app, nil
}

// Close releases infrastructure owned by the app.
func (a *App) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}

func (a *App) initStorage(ctx context.Context, cfg config.AppConfig) (session.Storage, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect session redis: %w", err)
		}
		a.redisClient = client
		return session.NewRedisStorage(client), nil
	case config.SessionBackendFile:
		fallthrough
	default:
		storage, err := session.NewFileStorage(cfg.Session.StateDir)
		if err != nil {
			return nil, fmt.Errorf("open session state dir: %w", err)
		}
		return storage, nil
	}
}
