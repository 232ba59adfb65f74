package producer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is one event ready to be written to a topic.
type Message struct {
	Topic     string
	Key       string
	EventType string
	Payload   any
}

// Writer is the subset of *kafkago.Writer used to publish.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func Publish(ctx context.Context, writer Writer, event Message) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.Key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}

// NewWriter builds a writer that picks the topic from each message.
func NewWriter(broker string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
}
