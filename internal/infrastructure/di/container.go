package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/cache"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/metrics"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/config"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/jwt"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient    *database.PostgresClient
	RedisClient *cache.RedisClient
	TxManager   *database.TxManager

	// Services
	JWTService  *jwt.JWTService
	RateLimiter *cache.RateLimiter
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry

	// Repositories
	Repos *Repositories

	// Domain Services
	Hierarchy service.EntryHierarchyService
	Engine    service.AccessEngine
	Gate      service.LinkGate

	// UseCases
	Entry   *EntryUseCases
	Authz   *AuthzUseCases
	Sharing *SharingUseCases

	// config
	config *config.Config

	ownsRedis bool
}

// Options はContainer作成時のオプションを定義します
type Options struct {
	// PostgresPool は接続済みのプールを使う場合に指定します
	PostgresPool *pgxpool.Pool
	// RedisClient は接続済みのクライアントを使う場合に指定します
	RedisClient *redis.Client
	// Registry はメトリクスの登録先です（nil の場合は新規作成）
	Registry *prometheus.Registry
	// Now は現在時刻の取得元です（テスト用）
	Now func() time.Time
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// Metrics
	c.Registry = opts.Registry
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if cfg.Metrics.Enabled {
		c.Metrics = metrics.New(c.Registry)
	}

	// Storage backend
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		c.Repos = NewMemoryRepositories()
		logger.Info(ctx, "using in-memory registries")
	case config.StorageBackendPostgres:
		if err := c.connectPostgres(ctx, opts); err != nil {
			return nil, err
		}
		if err := c.connectRedis(ctx, opts); err != nil {
			c.Close()
			return nil, err
		}
		c.Repos = NewPostgresRepositories(c.TxManager, c.RedisClient.Client())
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", cfg.Storage.Backend)
	}

	// JWT Service
	c.JWTService = jwt.NewJWTService(jwt.Config{
		SecretKey:         cfg.JWT.SecretKey,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
	})

	// Domain Services
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	c.Hierarchy = service.NewEntryHierarchyService(c.Repos.EntryRepo)
	engineOpts := []service.AccessEngineOption{service.WithClock(now)}
	if c.Metrics != nil {
		engineOpts = append(engineOpts, service.WithResolutionRecorder(c.Metrics))
	}
	c.Engine = service.NewAccessEngine(
		c.Hierarchy,
		service.NewShareGrantResolver(c.Repos.GrantRepo, c.Repos.MembershipRepo),
		c.Repos.LinkRepo,
		c.Repos.MembershipRepo,
		c.Repos.SessionRepo,
		engineOpts...,
	)
	c.Gate = service.NewLinkGate(
		c.Repos.LinkRepo,
		c.Repos.SessionRepo,
		service.WithSessionTTL(cfg.Sharing.AnonymousSessionTTL),
		service.WithGateClock(now),
	)

	// UseCases
	c.Entry = NewEntryUseCases(c.Repos, c.Hierarchy, c.Engine)
	c.Authz = NewAuthzUseCases(c.Repos, c.Engine)
	c.Sharing = NewSharingUseCases(c.Repos, c.Engine, c.Gate)

	return c, nil
}

// connectPostgres はPostgreSQLへ接続し、必要であればマイグレーションを適用します
func (c *Container) connectPostgres(ctx context.Context, opts Options) error {
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
		return nil
	}

	if c.config.Database.AutoMigrate {
		if err := database.RunMigrations(ctx, c.config.Database.URL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	logger.Info(ctx, "connecting to PostgreSQL...")
	pgClient, err := database.NewPostgresClient(ctx, c.config.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	c.PgClient = pgClient
	c.TxManager = database.NewTxManager(pgClient.Pool())
	logger.Info(ctx, "connected to PostgreSQL")
	return nil
}

// connectRedis はRedisへ接続します
func (c *Container) connectRedis(ctx context.Context, opts Options) error {
	if opts.RedisClient != nil {
		c.RedisClient = cache.WrapRedisClient(opts.RedisClient)
	} else {
		logger.Info(ctx, "connecting to Redis...")
		redisClient, err := cache.NewRedisClient(ctx, cache.DefaultConfig(c.config.Redis.URL))
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = redisClient
		c.ownsRedis = true
		logger.Info(ctx, "connected to Redis")
	}
	c.RateLimiter = cache.NewRateLimiter(c.RedisClient.Client())
	return nil
}

// Config は設定を返します
func (c *Container) Config() *config.Config {
	return c.config
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil && c.ownsRedis {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	return errors.Join(errs...)
}
