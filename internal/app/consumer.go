package app

import (
	"context"
	"fmt"

	"go-ems/internal/attendance"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka/consumer"
	"go-ems/internal/report"
	"go-ems/internal/salary"
	"go-ems/internal/shared/connection"
	"go-ems/internal/store"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const reportExportGroupID = "go-ems-report-export"

// RunConsumer renders queued salary report exports until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries, logger); err != nil {
		return err
	}

	backend, _, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	st := store.New(backend, logger)
	calculator := salary.NewCalculator(attendance.NewAggregator(st, cfg.MissingDayPolicy, logger), logger)
	reportService := report.NewService(st, calculator, nil, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.ReportExportRequestedTopic,
		GroupID:        reportExportGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	log.Info("report export consumer running",
		zap.String("broker", cfg.KafkaBroker),
		zap.String("export_dir", cfg.ReportExportDir),
	)
	consumer.ConsumeReportExportRequested(ctx, reader, reportService, cfg.ReportExportDir, logger)
	return nil
}
