package output

import (
	"github.com/vburojevic/reqtriage/internal/domain"
	"go.uber.org/zap"
)

// Status thresholds for numeric classification
const (
	errorStatusMin   = 500
	warningStatusMin = 400
)

// Analyzer aggregates request log records into a Summary
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates a new analyzer. A nil logger disables diagnostics.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Classify buckets a record. Rules are checked in order and the first match
// wins; non-numeric statuses never satisfy a threshold.
func Classify(r domain.LogRecord) domain.Classification {
	if r.Level == "error" || r.Status.AtLeast(errorStatusMin) {
		return domain.ClassError
	}
	if r.Level == "warning" || r.Status.AtLeast(warningStatusMin) {
		return domain.ClassWarning
	}
	return domain.ClassNormal
}

// Aggregate makes a single forward pass over records
func (a *Analyzer) Aggregate(records []domain.LogRecord) *domain.Summary {
	summary := domain.NewSummary()
	statusIdx := make(map[string]int)
	issueIdx := make(map[string]int)

	for _, rec := range records {
		summary.Total++

		key := rec.Status.Key()
		if i, ok := statusIdx[key]; ok {
			summary.Statuses[i].Count++
		} else {
			statusIdx[key] = len(summary.Statuses)
			summary.Statuses = append(summary.Statuses, domain.StatusCount{Code: rec.Status, Count: 1})
		}

		class := Classify(rec)
		switch class {
		case domain.ClassError:
			summary.Errors = append(summary.Errors, rec)
		case domain.ClassWarning:
			summary.Warnings = append(summary.Warnings, rec)
		default:
			continue
		}

		group := rec.GroupKey()
		if i, ok := issueIdx[group]; ok {
			summary.Issues[i].Occurrences = append(summary.Issues[i].Occurrences, rec.Occurrence())
		} else {
			issueIdx[group] = len(summary.Issues)
			summary.Issues = append(summary.Issues, domain.IssueGroup{
				Key:         group,
				Occurrences: []string{rec.Occurrence()},
			})
		}
	}

	a.logger.Debug("aggregated records",
		zap.Int("total", summary.Total),
		zap.Int("errors", summary.ErrorCount()),
		zap.Int("warnings", summary.WarningCount()),
		zap.Int("statuses", len(summary.Statuses)),
		zap.Int("groups", len(summary.Issues)),
	)

	return summary
}
