package producer

import (
	"github.com/IBM/sarama"
)

// NewSyncProducer builds the producer used by the outbox relay and the
// dead-letter sink. SendMessages blocks until the broker acks the batch.
func NewSyncProducer(brokerList []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(brokerList, cfg)
}
