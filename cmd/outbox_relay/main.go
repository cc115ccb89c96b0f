package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orderpipe/commerce_events/internal/config"
	outboxSendService "github.com/orderpipe/commerce_events/internal/services/outbox/send"
	"github.com/orderpipe/commerce_events/pkg/brokers/kafka/producer"
	"github.com/orderpipe/commerce_events/pkg/databases/postgres"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.SetupLogger(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
	if err != nil {
		panic(fmt.Sprintf("failed to connect to db: %v", err))
	}

	syncProducer, err := producer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		panic(fmt.Sprintf("failed to create producer: %v", err))
	}

	relay := outboxSendService.New(log, db.GetDB(), syncProducer, cfg.Kafka.PaymentEventTopic)

	go func() {
		ticker := time.NewTicker(cfg.Kafka.OutboxInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if sendErr := relay.Send(ctx); sendErr != nil {
					log.Error("outbox relay", logger.String("error", sendErr.Error()))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("outbox relay started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	cancel()

	if err = syncProducer.Close(); err != nil {
		log.Error("close producer", logger.String("error", err.Error()))
	}

	if err = db.Close(); err != nil {
		log.Error("close postgres", logger.String("error", err.Error()))
	}

	log.Info("outbox relay stopped")
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
