// Package payment wires the payment service: orders consumer, payments
// store with outbox, and the read API.
package payment

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	httpapp "github.com/orderpipe/commerce_events/internal/app/http"
	"github.com/orderpipe/commerce_events/internal/cache"
	"github.com/orderpipe/commerce_events/internal/config"
	httpDelivery "github.com/orderpipe/commerce_events/internal/delivery/http/payment"
	kafkaDelivery "github.com/orderpipe/commerce_events/internal/delivery/kafka/payment"
	"github.com/orderpipe/commerce_events/internal/domain/models"
	paymentRepository "github.com/orderpipe/commerce_events/internal/repository/payment"
	paymentRetrievalService "github.com/orderpipe/commerce_events/internal/services/payment/get"
	paymentProcessingService "github.com/orderpipe/commerce_events/internal/services/payment/process"
	"github.com/orderpipe/commerce_events/pkg/brokers/kafka/consumergroup"
	"github.com/orderpipe/commerce_events/pkg/brokers/kafka/producer"
	"github.com/orderpipe/commerce_events/pkg/databases/postgres"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type App struct {
	log logger.Logger

	db          *postgres.PgDB
	dlqProducer sarama.SyncProducer
	runner      *consumergroup.Runner
	httpServer  *httpapp.App
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config, dsn string) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	repo := paymentRepository.New(log, db.GetDB())

	processingSvc := paymentProcessingService.New(log, repo, cfg.Defaults.PaymentMethod)

	lru := expirable.NewLRU[string, *models.Payment](cfg.Cache.PaymentSize, nil, cfg.Cache.PaymentTTL)
	retrievalSvc := paymentRetrievalService.New(log, cache.New[string, *models.Payment](lru, log), repo)

	dlqProducer, err := producer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		return nil, fmt.Errorf("create dead-letter producer: %w", err)
	}

	orderHandler := kafkaDelivery.NewOrderHandler(log, processingSvc)

	runner, err := consumergroup.NewRunner(
		log,
		cfg.Kafka.BrokerList,
		cfg.Kafka.PaymentGroup,
		cfg.Kafka.OrderEventTopic,
		orderHandler.Handle,
		consumergroup.RetryPolicy{
			MaxAttempts: cfg.Kafka.MaxAttempts,
			Backoff:     cfg.Kafka.RetryBackoff,
		},
		&consumergroup.DeadLetter{
			Producer: dlqProducer,
			Topic:    cfg.Kafka.DeadLetterTopic,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create orders consumer: %w", err)
	}

	handler := httpDelivery.NewHandler(log, retrievalSvc)
	httpServer := httpapp.NewApp(log, handler.InitRoutes(), cfg.HTTP.Port)

	return &App{
		log:         log,
		db:          db,
		dlqProducer: dlqProducer,
		runner:      runner,
		httpServer:  httpServer,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.runner.Run(ctx)
	})

	group.Go(func() error {
		a.httpServer.RunWithPanic()
		return nil
	})

	return group.Wait()
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.httpServer.Stop(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := a.runner.Close(); err != nil {
		return fmt.Errorf("close consumer group: %w", err)
	}

	if err := a.dlqProducer.Close(); err != nil {
		return fmt.Errorf("close dead-letter producer: %w", err)
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}

	a.log.Info("payment service stopped")

	return nil
}
