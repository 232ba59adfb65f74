package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go-ems/internal/events"
	"go-ems/internal/report"
	"go-ems/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ReportExporter renders a salary report to PDF.
type ReportExporter interface {
	ExportPDF(ctx context.Context, req report.GenerateRequest) (string, []byte, error)
}

func ConsumeReportExportRequested(
	ctx context.Context,
	reader Reader,
	exporter ReportExporter,
	dir string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.report_export")
	Run(ctx, reader, HandleReportExport(exporter, dir, log), log)
}

// HandleReportExport writes the requested report into dir, prefixed with the
// request id so repeated deliveries overwrite the same file.
func HandleReportExport(exporter ReportExporter, dir string, log *zap.Logger) HandlerFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.ReportExportRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: %v", ErrPoisonMessage, err)
		}

		name, pdf, err := exporter.ExportPDF(ctx, report.GenerateRequest{
			From:   event.From,
			To:     event.To,
			Search: event.Search,
		})
		if err != nil {
			// Client-side failures such as an empty period never succeed on retry.
			if apperror.ToHTTP(err).Status < http.StatusInternalServerError {
				return fmt.Errorf("%w: %v", ErrPoisonMessage, err)
			}
			return err
		}

		if event.RequestID != "" {
			name = filepath.Base(event.RequestID) + "_" + name
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			return err
		}

		log.Info("salary report exported",
			zap.String("request_id", event.RequestID),
			zap.String("requested_by", event.RequestedBy),
			zap.String("path", path),
			zap.Int("bytes", len(pdf)),
		)
		return nil
	}
}
