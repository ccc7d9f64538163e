package domain

import "sort"

// StatusCount is one status histogram bucket
type StatusCount struct {
	Code  StatusCode
	Count int
}

// IssueGroup collects the occurrences of error/warning records sharing a
// method, path and status
type IssueGroup struct {
	Key         string
	Occurrences []string
}

// Count returns the number of occurrences in the group
func (g IssueGroup) Count() int { return len(g.Occurrences) }

// Summary is the result of one aggregation run
type Summary struct {
	Total int

	// Statuses and Issues are kept in first-seen order
	Statuses []StatusCount
	Errors   []LogRecord
	Warnings []LogRecord
	Issues   []IssueGroup
}

// NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{}
}

// ErrorCount returns the number of records classified as errors
func (s *Summary) ErrorCount() int { return len(s.Errors) }

// WarningCount returns the number of records classified as warnings
func (s *Summary) WarningCount() int { return len(s.Warnings) }

// StatusDistribution returns the histogram ordered by descending count.
// Equal counts keep first-seen order.
func (s *Summary) StatusDistribution() []StatusCount {
	out := make([]StatusCount, len(s.Statuses))
	copy(out, s.Statuses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// RankedIssues returns the issue groups ordered by descending occurrence
// count. Equal counts keep first-inserted order.
func (s *Summary) RankedIssues() []IssueGroup {
	out := make([]IssueGroup, len(s.Issues))
	copy(out, s.Issues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count() > out[j].Count()
	})
	return out
}
