package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-ems/internal/events"
	"go-ems/internal/report"
	reporterrors "go-ems/internal/report/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.messages) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

type fakeExporter struct {
	exportFn func(ctx context.Context, req report.GenerateRequest) (string, []byte, error)
}

func (f *fakeExporter) ExportPDF(ctx context.Context, req report.GenerateRequest) (string, []byte, error) {
	return f.exportFn(ctx, req)
}

func eventMessage(t *testing.T, offset int64, event events.ReportExportRequestedEvent) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Topic: events.ReportExportRequestedTopic, Offset: offset, Value: b}
}

func TestRun_CommitPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &fakeReader{
		cancel: cancel,
		messages: []kafkago.Message{
			{Offset: 1},
			{Offset: 2},
			{Offset: 3},
		},
	}

	handle := func(ctx context.Context, msg kafkago.Message) error {
		switch msg.Offset {
		case 2:
			return errors.New("temporary")
		case 3:
			return ErrPoisonMessage
		}
		return nil
	}

	Run(ctx, reader, handle, zap.NewNop())
	assert.Equal(t, []int64{1, 3}, reader.committed)
}

func TestHandleReportExport_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exporter := &fakeExporter{
		exportFn: func(ctx context.Context, req report.GenerateRequest) (string, []byte, error) {
			assert.Equal(t, "2024-03-01", req.From)
			assert.Equal(t, "2024-03-31", req.To)
			assert.Equal(t, "meera", req.Search)
			return "Salary_Report.pdf", []byte("%PDF-1.3"), nil
		},
	}

	handle := HandleReportExport(exporter, dir, zap.NewNop())
	err := handle(context.Background(), eventMessage(t, 7, events.ReportExportRequestedEvent{
		EventType:  events.ReportExportRequestedType,
		RequestID:  "req-1",
		From:       "2024-03-01",
		To:         "2024-03-31",
		Search:     "meera",
		OccurredAt: time.Now(),
	}))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "req-1_Salary_Report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(b))
}

func TestHandleReportExport_Errors(t *testing.T) {
	dir := t.TempDir()

	handle := HandleReportExport(&fakeExporter{}, dir, zap.NewNop())
	err := handle(context.Background(), kafkago.Message{Value: []byte("{not json")})
	assert.ErrorIs(t, err, ErrPoisonMessage)

	empty := &fakeExporter{exportFn: func(ctx context.Context, req report.GenerateRequest) (string, []byte, error) {
		return "", nil, reporterrors.ErrNothingToExport
	}}
	err = HandleReportExport(empty, dir, zap.NewNop())(context.Background(),
		eventMessage(t, 1, events.ReportExportRequestedEvent{RequestID: "r", From: "2024-03-01", To: "2024-03-31"}))
	assert.ErrorIs(t, err, ErrPoisonMessage)

	storeDown := errors.New("backend down")
	failing := &fakeExporter{exportFn: func(ctx context.Context, req report.GenerateRequest) (string, []byte, error) {
		return "", nil, storeDown
	}}
	err = HandleReportExport(failing, dir, zap.NewNop())(context.Background(),
		eventMessage(t, 2, events.ReportExportRequestedEvent{RequestID: "r", From: "2024-03-01", To: "2024-03-31"}))
	assert.ErrorIs(t, err, storeDown)
	assert.NotErrorIs(t, err, ErrPoisonMessage)
}
