package report

import (
	"context"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka/producer"
)

type EventPublisher interface {
	PublishReportExportRequested(ctx context.Context, event events.ReportExportRequestedEvent) error
}

type kafkaEventPublisher struct {
	writer producer.Writer
}

func NewKafkaEventPublisher(writer producer.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishReportExportRequested(
	ctx context.Context,
	event events.ReportExportRequestedEvent,
) error {
	return producer.Publish(ctx, p.writer, producer.Message{
		Topic:     events.ReportExportRequestedTopic,
		Key:       event.RequestID,
		EventType: event.EventType,
		Payload:   event,
	})
}
