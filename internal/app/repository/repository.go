package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/redis"
	"halocat-queries/internal/app/writer"
)

// ListCache хранит уже сериализованные списки запросов
type ListCache interface {
	GetList(ctx context.Context, key string) (string, error)
	SetList(ctx context.Context, key, body string, ttl time.Duration) error
}

// TokenBlacklist хранит отозванные токены
type TokenBlacklist interface {
	AddToBlacklist(ctx context.Context, token string, expiresIn time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// ObjectStore принимает готовые списки для публикации
type ObjectStore interface {
	Bucket() string
	PutList(ctx context.Context, name string, body []byte) error
}

type Repository struct {
	redisClient *redis.Client
	blacklist   TokenBlacklist
	store       ObjectStore
	Queries     *QueryRepository
}

// Options позволяет собрать репозиторий без внешних сервисов
type Options struct {
	Cache     ListCache
	Blacklist TokenBlacklist
	Store     ObjectStore
	CacheTTL  time.Duration
	Writer    *writer.FileWriter
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	opts := Options{CacheTTL: cfg.RedisCacheTTL}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		client, err := redis.NewClient(cfg)
		if err != nil {
			logrus.Warnf("Failed to initialize Redis client: %v", err)
			// Продолжаем без Redis, но логируем предупреждение
		} else {
			redisClient = client
			opts.Cache = client
			opts.Blacklist = client
		}
	}

	if cfg.MinIOEnabled() {
		store, err := InitMinIOStore(cfg)
		if err != nil {
			if redisClient != nil {
				_ = redisClient.Close()
			}
			return nil, err
		}
		opts.Store = store
	}

	repo := NewRepositoryWith(opts)
	repo.redisClient = redisClient
	return repo, nil
}

// NewRepositoryWith собирает репозиторий из готовых зависимостей; nil означает, что сервис отключен
func NewRepositoryWith(opts Options) *Repository {
	if opts.Writer == nil {
		opts.Writer = writer.NewFileWriter(nil)
	}
	repo := &Repository{
		blacklist: opts.Blacklist,
		store:     opts.Store,
	}
	repo.Queries = NewQueryRepository(opts.Cache, opts.Store, opts.Writer, opts.CacheTTL)
	return repo
}

// GetBlacklist возвращает черный список токенов или nil без Redis
func (r *Repository) GetBlacklist() TokenBlacklist {
	return r.blacklist
}

// HasStore сообщает, настроено ли объектное хранилище
func (r *Repository) HasStore() bool {
	return r.store != nil
}

// Close закрывает все соединения
func (r *Repository) Close() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			logrus.Errorf("Error closing Redis client: %v", err)
		}
	}
}
