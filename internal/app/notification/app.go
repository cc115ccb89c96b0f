// Package notification wires the notification service: independent orders
// and payments consumers in the same group, the notifications store, and the
// read API.
package notification

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"golang.org/x/sync/errgroup"

	httpapp "github.com/orderpipe/commerce_events/internal/app/http"
	"github.com/orderpipe/commerce_events/internal/config"
	httpDelivery "github.com/orderpipe/commerce_events/internal/delivery/http/notification"
	kafkaDelivery "github.com/orderpipe/commerce_events/internal/delivery/kafka/notification"
	notificationRepository "github.com/orderpipe/commerce_events/internal/repository/notification"
	notificationRetrievalService "github.com/orderpipe/commerce_events/internal/services/notification/get"
	notificationProcessingService "github.com/orderpipe/commerce_events/internal/services/notification/process"
	"github.com/orderpipe/commerce_events/internal/services/notification/send"
	"github.com/orderpipe/commerce_events/pkg/brokers/kafka/consumergroup"
	"github.com/orderpipe/commerce_events/pkg/brokers/kafka/producer"
	"github.com/orderpipe/commerce_events/pkg/databases/postgres"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type App struct {
	log logger.Logger

	db            *postgres.PgDB
	dlqProducer   sarama.SyncProducer
	orderRunner   *consumergroup.Runner
	paymentRunner *consumergroup.Runner
	httpServer    *httpapp.App
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config, dsn string) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	repo := notificationRepository.New(log, db.GetDB())

	sender := send.NewLogSender(log)
	processingSvc := notificationProcessingService.New(log, repo, sender, cfg.Defaults.FallbackEmail)
	retrievalSvc := notificationRetrievalService.New(log, repo)

	dlqProducer, err := producer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		return nil, fmt.Errorf("create dead-letter producer: %w", err)
	}

	retry := consumergroup.RetryPolicy{
		MaxAttempts: cfg.Kafka.MaxAttempts,
		Backoff:     cfg.Kafka.RetryBackoff,
	}
	deadLetter := &consumergroup.DeadLetter{
		Producer: dlqProducer,
		Topic:    cfg.Kafka.DeadLetterTopic,
	}

	orderHandler := kafkaDelivery.NewOrderHandler(log, processingSvc)
	orderRunner, err := consumergroup.NewRunner(
		log,
		cfg.Kafka.BrokerList,
		cfg.Kafka.NotificationGroup,
		cfg.Kafka.OrderEventTopic,
		orderHandler.Handle,
		retry,
		deadLetter,
	)
	if err != nil {
		return nil, fmt.Errorf("create orders consumer: %w", err)
	}

	paymentHandler := kafkaDelivery.NewPaymentHandler(log, processingSvc)
	paymentRunner, err := consumergroup.NewRunner(
		log,
		cfg.Kafka.BrokerList,
		cfg.Kafka.NotificationGroup,
		cfg.Kafka.PaymentEventTopic,
		paymentHandler.Handle,
		retry,
		deadLetter,
	)
	if err != nil {
		return nil, fmt.Errorf("create payments consumer: %w", err)
	}

	handler := httpDelivery.NewHandler(log, retrievalSvc)
	httpServer := httpapp.NewApp(log, handler.InitRoutes(), cfg.HTTP.Port)

	return &App{
		log:           log,
		db:            db,
		dlqProducer:   dlqProducer,
		orderRunner:   orderRunner,
		paymentRunner: paymentRunner,
		httpServer:    httpServer,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.orderRunner.Run(ctx)
	})

	group.Go(func() error {
		return a.paymentRunner.Run(ctx)
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

	if err := a.orderRunner.Close(); err != nil {
		return fmt.Errorf("close orders consumer: %w", err)
	}

	if err := a.paymentRunner.Close(); err != nil {
		return fmt.Errorf("close payments consumer: %w", err)
	}

	if err := a.dlqProducer.Close(); err != nil {
		return fmt.Errorf("close dead-letter producer: %w", err)
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}

	a.log.Info("notification service stopped")

	return nil
}
