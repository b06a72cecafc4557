package storage

import (
	"context"
	"encoding/json"

	"tdr-menu-api/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishReload(ctx context.Context, event domain.ReloadEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Path),
		Value: payload,
	})
}
