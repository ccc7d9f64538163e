package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/vburojevic/reqtriage/internal/domain"
)

// TableReporter renders a Summary as bordered tables
type TableReporter struct {
	w io.Writer
}

// NewTableReporter creates a table reporter
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

// Render writes the status and issue tables
func (r *TableReporter) Render(s *domain.Summary) error {
	if _, err := fmt.Fprintf(r.w, "Total Logs: %d\n", s.Total); err != nil {
		return err
	}

	statuses := tablewriter.NewWriter(r.w)
	statuses.Header("Status", "Count")
	for _, sc := range s.StatusDistribution() {
		if err := statuses.Append([]string{sc.Code.String(), strconv.Itoa(sc.Count)}); err != nil {
			return err
		}
	}
	if err := statuses.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.w, "Total Errors (5xx or level='error'): %d\nTotal Warnings (4xx or level='warning'): %d\n",
		s.ErrorCount(), s.WarningCount()); err != nil {
		return err
	}

	issues := tablewriter.NewWriter(r.w)
	issues.Header("Issue", "Occurrences", "Samples")
	for _, g := range s.RankedIssues() {
		samples := Samples(g)
		lines := make([]string, 0, len(samples))
		for _, occ := range samples {
			lines = append(lines, strings.TrimPrefix(OccurrenceLine(occ), "  "))
		}
		if err := issues.Append([]string{g.Key, strconv.Itoa(g.Count()), strings.Join(lines, "\n")}); err != nil {
			return err
		}
	}
	return issues.Render()
}
