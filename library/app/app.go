package app

import (
	"context"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-membership/library/config"
	"github.com/Astemirdum/library-membership/library/internal/events"
	"github.com/Astemirdum/library-membership/library/internal/handler"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
	"github.com/Astemirdum/library-membership/library/internal/server"
	"github.com/Astemirdum/library-membership/library/internal/service"
	"github.com/Astemirdum/library-membership/library/migrations"
	"github.com/Astemirdum/library-membership/pkg/auth"
	"github.com/Astemirdum/library-membership/pkg/kafka"
	"github.com/Astemirdum/library-membership/pkg/logger"
	"github.com/Astemirdum/library-membership/pkg/postgres"
)

const shutdownTimeout = 5 * time.Second

type publisher interface {
	service.Publisher
	Close() error
}

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	pub, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return errors.Wrap(err, "kafka producer")
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error("close publisher", zap.Error(err))
		}
	}()

	issuer := auth.NewIssuer(cfg.Auth)
	svc, err := newService(db, pub, issuer, log)
	if err != nil {
		return err
	}

	var opts []handler.Option
	if cfg.Auth.Enabled {
		opts = append(opts, handler.WithAuth(issuer))
	}
	h := handler.New(handler.NewServices(svc), log, opts...)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "server")
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate runs a goose command against the embedded migrations.
func Migrate(ctx context.Context, cfg *config.Config, command string, args ...string) error {
	pool, err := postgres.NewPool(ctx, &cfg.Database)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer pool.Close()

	return postgres.Migrate(pool, migrations.MigrationFiles, command, args...)
}

func AddUser(ctx context.Context, cfg *config.Config, username, password string) (*model.User, error) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, errors.Wrap(err, "db init")
	}
	defer db.Close()

	svc, err := newService(db, events.NewNopPublisher(log), auth.NewIssuer(cfg.Auth), log)
	if err != nil {
		return nil, err
	}
	return svc.Users.Register(ctx, model.UserCreateRequest{Username: username, Password: password})
}

// Audit logs every lifecycle event published on the events topic until ctx is cancelled.
func Audit(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library-audit")
	defer log.Sync() //nolint:errcheck

	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is not set")
	}
	group, err := kafka.NewConsumerGroup(cfg.Kafka, kafka.LibraryAuditGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumerGroup")
	}
	defer func() {
		if err := group.Close(); err != nil {
			log.Error("close consumer group", zap.Error(err))
		}
	}()

	consumer := events.NewConsumer(func(_ context.Context, e model.Event) error {
		log.Info("event",
			zap.String("id", e.ID.String()),
			zap.String("entity", e.Entity),
			zap.Int64("entityId", e.EntityID),
			zap.String("action", string(e.Action)),
			zap.String("actor", e.Actor),
			zap.Time("at", e.Timestamp))
		return nil
	}, log)
	return kafka.Consume(ctx, group, consumer, kafka.LibraryEventsTopic)
}

func newService(db *pgxpool.Pool, pub service.Publisher, issuer *auth.Issuer, log *zap.Logger) (*service.Service, error) {
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return nil, errors.Wrap(err, "repo")
	}
	return service.NewService(repo, postgres.NewTransactor(db), pub, issuer, log), nil
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (publisher, error) {
	if !cfg.Enabled() {
		log.Info("kafka is not configured, lifecycle events are only logged")
		return events.NewNopPublisher(log), nil
	}
	producer, err := kafka.NewSyncProducer(cfg)
	if err != nil {
		return nil, err
	}
	return events.NewKafkaPublisher(producer, kafka.LibraryEventsTopic, log), nil
}
