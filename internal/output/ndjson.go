package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/vburojevic/reqtriage/internal/domain"
)

// NDJSONWriter writes report objects as NDJSON
type NDJSONWriter struct {
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // paths and messages stay readable
	return &NDJSONWriter{encoder: enc}
}

// StatusOutput is one status distribution bucket
type StatusOutput struct {
	Code    string `json:"code"`
	Numeric bool   `json:"numeric"`
	Count   int    `json:"count"`
}

// IssueOutput is one ranked issue group with its leading samples
type IssueOutput struct {
	Key     string   `json:"key"`
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}

// ReportOutput is the machine-readable form of the triage report
type ReportOutput struct {
	Type          string         `json:"type"` // Always "report"
	SchemaVersion int            `json:"schemaVersion"`
	Timestamp     string         `json:"timestamp"`
	Source        string         `json:"source,omitempty"`
	Total         int            `json:"total"`
	Statuses      []StatusOutput `json:"status_distribution"`
	Errors        int            `json:"errors"`
	Warnings      int            `json:"warnings"`
	Issues        []IssueOutput  `json:"issues"`
}

// ErrorOutput represents a structured error
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Source        string `json:"source,omitempty"`
}

// NewReportOutput builds the report object. Statuses and issues use the same
// ordering and sample limit as the text report.
func NewReportOutput(s *domain.Summary, source string, now time.Time) *ReportOutput {
	out := &ReportOutput{
		Type:          "report",
		SchemaVersion: SchemaVersion,
		Timestamp:     now.UTC().Format(time.RFC3339Nano),
		Source:        source,
		Total:         s.Total,
		Statuses:      []StatusOutput{},
		Errors:        s.ErrorCount(),
		Warnings:      s.WarningCount(),
		Issues:        []IssueOutput{},
	}
	for _, sc := range s.StatusDistribution() {
		out.Statuses = append(out.Statuses, StatusOutput{
			Code:    sc.Code.String(),
			Numeric: sc.Code.IsNumeric(),
			Count:   sc.Count,
		})
	}
	for _, g := range s.RankedIssues() {
		out.Issues = append(out.Issues, IssueOutput{
			Key:     g.Key,
			Count:   g.Count(),
			Samples: Samples(g),
		})
	}
	return out
}

// WriteReport writes a report object
func (w *NDJSONWriter) WriteReport(r *ReportOutput) error {
	return w.encoder.Encode(r)
}

// WriteError writes an error object. source names the input it concerns
// and may be empty.
func (w *NDJSONWriter) WriteError(code, message, source string) error {
	return w.encoder.Encode(&ErrorOutput{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
		Source:        source,
	})
}
