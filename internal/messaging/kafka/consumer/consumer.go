package consumer

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrPoisonMessage marks a message that can never be handled. It is
// committed and skipped instead of being retried.
var ErrPoisonMessage = errors.New("poison message")

// Reader is the subset of *kafkago.Reader a consumer loop needs.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HandlerFunc processes one message.
type HandlerFunc func(ctx context.Context, msg kafkago.Message) error

// Run fetches messages until ctx is cancelled. A message is committed after
// handle succeeds or returns ErrPoisonMessage; other failures stay
// uncommitted so the group re-delivers them after a rebalance.
func Run(ctx context.Context, reader Reader, handle HandlerFunc, log *zap.Logger) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil {
			if !errors.Is(err, ErrPoisonMessage) {
				log.Error("handle message failed",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			log.Warn("skipping undecodable message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}
