package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vburojevic/reqtriage/internal/domain"
)

// MaxSamples is how many occurrences are printed per issue group
const MaxSamples = 3

// NoMessageMarker flags occurrences whose message part is empty
const NoMessageMarker = "[No explicit message]"

var separator = strings.Repeat("-", 20)

// TextReporter renders a Summary as the plain text triage report
type TextReporter struct {
	w      io.Writer
	styled bool
}

// NewTextReporter creates a text reporter. When styled is false the output
// carries no escape sequences.
func NewTextReporter(w io.Writer, styled bool) *TextReporter {
	return &TextReporter{w: w, styled: styled}
}

func (r *TextReporter) paint(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Render writes the full report
func (r *TextReporter) Render(s *domain.Summary) error {
	bw := bufio.NewWriter(r.w)

	fmt.Fprintf(bw, "%s %d\n", r.paint(Styles.Label, "Total Logs:"), s.Total)
	fmt.Fprintln(bw, r.paint(Styles.Muted, separator))

	fmt.Fprintln(bw, r.paint(Styles.Header, "Status Code Distribution:"))
	for _, sc := range s.StatusDistribution() {
		fmt.Fprintf(bw, "  %s: %d\n", sc.Code, sc.Count)
	}
	fmt.Fprintln(bw, r.paint(Styles.Muted, separator))

	fmt.Fprintln(bw, r.paint(ClassStyle(true), fmt.Sprintf("Total Errors (5xx or level='error'): %d", s.ErrorCount())))
	fmt.Fprintln(bw, r.paint(ClassStyle(false), fmt.Sprintf("Total Warnings (4xx or level='warning'): %d", s.WarningCount())))
	fmt.Fprintln(bw, r.paint(Styles.Muted, separator))

	fmt.Fprintln(bw, r.paint(Styles.Header, "Issues by Path:"))
	for _, group := range s.RankedIssues() {
		fmt.Fprintf(bw, "\n%s - %d occurrences\n", r.paint(Styles.Key, group.Key), group.Count())
		for _, occ := range Samples(group) {
			fmt.Fprintln(bw, OccurrenceLine(occ))
		}
	}

	return bw.Flush()
}

// Samples returns at most MaxSamples occurrences of a group, in input order
func Samples(group domain.IssueGroup) []string {
	if len(group.Occurrences) > MaxSamples {
		return group.Occurrences[:MaxSamples]
	}
	return group.Occurrences
}

// HasEmptyMessage reports whether the occurrence has nothing after its
// "time:" prefix. A message that itself ends in ':' also matches.
func HasEmptyMessage(occ string) bool {
	return strings.HasSuffix(strings.TrimSpace(occ), ":")
}

// OccurrenceLine formats one indented occurrence line
func OccurrenceLine(occ string) string {
	if HasEmptyMessage(occ) {
		return "  " + occ + " " + NoMessageMarker
	}
	return "  " + occ
}

// RenderLoadError writes the single line printed when the input cannot be loaded
func RenderLoadError(w io.Writer, cause error) error {
	_, err := fmt.Fprintf(w, "Error reading file: %v\n", cause)
	return err
}
