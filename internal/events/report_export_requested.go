package events

import "time"

const (
	ReportExportRequestedTopic = "ems.report.export.requested.v1"
	ReportExportRequestedType  = "report.export.requested"
)

type ReportExportRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Search      string    `json:"search,omitempty"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
