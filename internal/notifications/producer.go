package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookly/internal/shared/config"

	"github.com/IBM/sarama"
)

// StreamProducer interface defines the contract for the durable booking
// event stream
type StreamProducer interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

// KafkaStreamProducer publishes booking events to Kafka
type KafkaStreamProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaStreamProducer creates a new Kafka stream producer
func NewKafkaStreamProducer(cfg *config.KafkaConfig) (StreamProducer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	if cfg.ProducerAcks == "all" {
		saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	} else {
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	}

	// Hash partitioner keyed by event ID keeps per-event ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka booking event producer created successfully")
	return &KafkaStreamProducer{
		producer: producer,
		topic:    cfg.BookingTopic,
	}, nil
}

// Publish sends one booking event to the stream
func (p *KafkaStreamProducer) Publish(ctx context.Context, event BookingEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.EventID),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(event.Type)},
			{Key: []byte("booking_id"), Value: []byte(event.BookingID)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	log.Printf("📤 Booking event published - Topic: %s, Partition: %d, Offset: %d, Type: %s, Seat: %s",
		p.topic, partition, offset, event.Type, event.SeatNumber)
	return nil
}

// Close closes the Kafka producer
func (p *KafkaStreamProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		log.Printf("📤 Kafka booking event producer closed")
	}
	return nil
}
