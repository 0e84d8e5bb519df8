package services

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionPublisher publishes committed balance changes to Kafka.
type TransactionPublisher struct {
	kafkaWriter KafkaWriter
}

// NewTransactionPublisher creates a new TransactionPublisher. A nil writer disables publishing.
func NewTransactionPublisher(kafkaWriter KafkaWriter) *TransactionPublisher {
	return &TransactionPublisher{kafkaWriter: kafkaWriter}
}

// Publish writes txn to Kafka keyed by user id, so one user's events stay ordered.
// Failures are logged and swallowed: the balance change is already committed.
func (p *TransactionPublisher) Publish(ctx context.Context, txn models.Transaction) {
	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.UserID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "operation", Value: []byte(txn.Operation)},
		},
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
