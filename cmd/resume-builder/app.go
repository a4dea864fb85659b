package main

import (
	"context"
	"fmt"
	"log/slog"

	"resume-builder/internal/adapter/cache"
	"resume-builder/internal/adapter/queue"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/streadway/amqp"
)

// app holds the services and the connections behind them.
type app struct {
	cfg *config.Config
	log *slog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	conn  *amqp.Connection

	sessions *usecase.SessionService
	exports  *usecase.ExportService

	// exactly one of these is set
	amqpQueue *queue.AMQPQueue
	local     *usecase.InProcessQueue
}

// buildApp connects whatever backends cfg names. Postgres and RabbitMQ are
// required once configured; Redis is optional and only logged when down.
func buildApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	var (
		sessionStore usecase.SessionStore = repository.NewMemorySessionStore()
		exportStore  usecase.ExportStore  = repository.NewMemoryExportStore()
	)
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		if cfg.RunMigrations {
			if err := migration.RunMigrations(ctx, pool); err != nil {
				a.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		sessionStore = repository.NewSessionRepo(pool)
		exportStore = repository.NewExportRepo(pool)
	} else {
		log.Warn("DATABASE_URL not set, sessions are kept in memory")
	}

	var pdfCache usecase.PDFCache
	if cfg.RedisAddr != "" {
		client, err := infra.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Warn("redis not available, pdf cache disabled", "error", err)
		} else {
			a.redis = client
			pdfCache = cache.NewRedisPDFCache(client, cfg.PDFCacheTTL)
		}
	}

	var storage usecase.Storage
	if cfg.S3Bucket != "" {
		client, err := infra.NewS3Client(ctx, infra.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		storage = infra.NewS3Storage(client, cfg.S3Bucket)
	} else {
		storage = infra.NewLocalStorage(cfg.StorageDir)
	}

	var q usecase.Queue
	if cfg.AMQPURL != "" {
		conn, err := infra.NewAMQPConnection(cfg.AMQPURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.conn = conn
		a.amqpQueue = queue.NewAMQPQueue(conn, cfg.ExportQueue, log)
		q = a.amqpQueue
	} else {
		a.local = usecase.NewInProcessQueue(log)
		q = a.local
	}

	exporter := usecase.NewExporter(infra.NewChromedpRenderer(cfg.ChromePath), pdfCache, cfg.RenderAttempts, log)
	a.sessions = usecase.NewSessionService(sessionStore, log)
	a.exports = usecase.NewExportService(sessionStore, exportStore, exporter, storage, q, log)
	if a.local != nil {
		a.local.Attach(a.exports.Run)
	}
	return a, nil
}

func (a *app) Close() {
	if a.local != nil {
		a.local.Wait()
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.log.Warn("closing amqp connection", "error", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("closing redis client", "error", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
