// Package consumergroup runs a message handler inside a sarama consumer
// group with a bounded retry policy and a dead-letter sink.
package consumergroup

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"

	internal_errors "github.com/orderpipe/commerce_events/internal/lib/errors"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

// Handler processes one delivered message. A nil return marks the offset.
// An error wrapping errors.ErrPermanentFailure skips retries and goes
// straight to the dead letter; any other error is retried per the policy.
type Handler func(ctx context.Context, msg *sarama.ConsumerMessage) error

type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DeadLetter is where a message lands after its retry budget is spent.
type DeadLetter struct {
	Producer sarama.SyncProducer
	Topic    string
}

type Runner struct {
	log logger.Logger

	group   sarama.ConsumerGroup
	groupID string
	topic   string
	handler Handler

	retry      RetryPolicy
	deadLetter *DeadLetter
}

func NewRunner(
	log logger.Logger,
	brokerList []string,
	groupID string,
	topic string,
	handler Handler,
	retry RetryPolicy,
	deadLetter *DeadLetter,
) (*Runner, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokerList, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Runner{
		log:        log,
		group:      group,
		groupID:    groupID,
		topic:      topic,
		handler:    handler,
		retry:      retry,
		deadLetter: deadLetter,
	}, nil
}

// Run joins the group and consumes until the context is canceled. Consume
// returns on every rebalance, so it is called in a loop.
func (r *Runner) Run(ctx context.Context) error {
	const op = "brokers.kafka.consumergroup.Run"

	go func() {
		for consumeErr := range r.group.Errors() {
			r.log.Warn(op, logger.String("group", r.groupID), logger.String("error", consumeErr.Error()))
		}
	}()

	r.log.Info(op, logger.String("group", r.groupID), logger.String("topic", r.topic))

	for {
		if err := r.group.Consume(ctx, []string{r.topic}, r); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			r.log.Error(op, logger.String("group", r.groupID), logger.String("error", err.Error()))
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (r *Runner) Close() error {
	return r.group.Close()
}

func (r *Runner) Setup(sarama.ConsumerGroupSession) error { return nil }

func (r *Runner) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes one partition's messages in arrival order. The
// offset is marked only after the message is handled or dead-lettered; a
// failed dead-letter publish ends the session unmarked so the broker
// redelivers.
func (r *Runner) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := r.process(session.Context(), msg); err != nil {
			return err
		}

		session.MarkMessage(msg, "")
	}

	return nil
}

func (r *Runner) process(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "brokers.kafka.consumergroup.process"

	maxAttempts := r.retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = r.handler(ctx, msg)
		if err == nil {
			return nil
		}

		if errors.Is(err, internal_errors.ErrPermanentFailure) {
			break
		}

		r.log.Warn(op,
			logger.String("topic", msg.Topic),
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)

		if attempt == maxAttempts {
			break
		}

		select {
		case <-time.After(r.retry.Backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return r.sendToDeadLetter(msg, err)
}

func (r *Runner) sendToDeadLetter(msg *sarama.ConsumerMessage, handleErr error) error {
	const op = "brokers.kafka.consumergroup.sendToDeadLetter"

	if r.deadLetter == nil {
		return handleErr
	}

	deadMsg := &sarama.ProducerMessage{
		Topic: r.deadLetter.Topic,
		Key:   sarama.ByteEncoder(msg.Key),
		Value: sarama.ByteEncoder(msg.Value),
	}

	if _, _, err := r.deadLetter.Producer.SendMessage(deadMsg); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return errors.Join(handleErr, err)
	}

	r.log.Error(op,
		logger.String("topic", msg.Topic),
		logger.String("dead_letter_topic", r.deadLetter.Topic),
		logger.String("error", handleErr.Error()),
	)

	return nil
}
