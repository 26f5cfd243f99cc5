package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.com/emarket/devoluciones/internal/clients"
	"gitlab.com/emarket/devoluciones/internal/config"
	"gitlab.com/emarket/devoluciones/internal/db"
	"gitlab.com/emarket/devoluciones/internal/events"
	"gitlab.com/emarket/devoluciones/internal/kafka"
	"gitlab.com/emarket/devoluciones/internal/logger"
	"gitlab.com/emarket/devoluciones/internal/orchestrator"
	"gitlab.com/emarket/devoluciones/internal/repository/postgresql"
	"gitlab.com/emarket/devoluciones/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	database, err := db.NewDb(ctx, cfg)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() { _ = rdb.Close() }()

	devolucionRepo := postgresql.NewDevolucionRepo(database)
	reembolsoRepo := postgresql.NewReembolsoRepo(database)
	reemplazoRepo := postgresql.NewReemplazoRepo(database)
	historialRepo := postgresql.NewHistorialRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(cfg.OutboxMaxAttempts)
	userRepo := postgresql.NewUserRepo(database)

	ensureAdmin(ctx, userRepo, log)

	orderClient := clients.NewOrderClient(cfg.OrderServiceURL, cfg.ClientTimeout, rdb, log)
	paymentsClient := clients.NewPaymentsClient(cfg.PaymentsServiceURL, cfg.ClientTimeout, log)
	replacementClient := clients.NewReplacementClient(cfg.OrderServiceURL, cfg.ClientTimeout, log)
	notificationClient := clients.NewNotificationClient(cfg.NotificationServiceURL, cfg.ClientTimeout, log)

	publisher := events.NewOutboxPublisher(outboxRepo)

	orch := orchestrator.New(
		database,
		devolucionRepo,
		reembolsoRepo,
		reemplazoRepo,
		historialRepo,
		publisher,
		orderClient,
		paymentsClient,
		replacementClient,
		notificationClient,
		log,
	)

	producer := kafka.NewKafkaProducer(cfg.KafkaBrokers, log)
	relay := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, log)

	srv := server.New(orch, userRepo, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPAddr)
	})
	g.Go(func() error {
		relay.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		relay.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Service exited with error", zap.Error(err))
	}
	log.Info("Service gracefully stopped")
}

// ensureAdmin seeds the admin account used by the basic-auth middleware.
func ensureAdmin(ctx context.Context, userRepo interface {
	CreateUser(ctx context.Context, username, password string) error
}, log *zap.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}
	if err := userRepo.CreateUser(ctx, username, password); err != nil {
		log.Error("Failed to bootstrap admin user", zap.Error(err))
		return
	}
	log.Info("Admin user ensured", zap.String("username", username))
}
