package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/reqtriage/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func record(method, path string, status int64, ts, msg string) domain.LogRecord {
	r := domain.NewLogRecord()
	r.Method = method
	r.Path = path
	r.Status = domain.NumericStatus(status)
	r.Time = ts
	r.Message = msg
	return r
}

func withLevel(r domain.LogRecord, level string) domain.LogRecord {
	r.Level = level
	return r
}

func TestClassify(t *testing.T) {
	other := domain.NewLogRecord()
	other.Status = domain.OtherStatus("503")
	null := domain.NewLogRecord()
	null.Status = domain.NullStatus()
	huge := domain.NewLogRecord()
	huge.Status = domain.NumericStatusText(1<<63-1, "99999999999999999999")

	tests := []struct {
		name     string
		rec      domain.LogRecord
		expected domain.Classification
	}{
		{name: "5xx status is an error", rec: record("GET", "/", 500, "t", ""), expected: domain.ClassError},
		{name: "599 is an error", rec: record("GET", "/", 599, "t", ""), expected: domain.ClassError},
		{name: "level error with 200", rec: withLevel(record("GET", "/", 200, "t", ""), "error"), expected: domain.ClassError},
		{name: "4xx status is a warning", rec: record("GET", "/", 404, "t", ""), expected: domain.ClassWarning},
		{name: "499 is a warning", rec: record("GET", "/", 499, "t", ""), expected: domain.ClassWarning},
		{name: "level warning with 200", rec: withLevel(record("GET", "/", 200, "t", ""), "warning"), expected: domain.ClassWarning},
		{name: "error rule wins over warning level", rec: withLevel(record("GET", "/", 502, "t", ""), "warning"), expected: domain.ClassError},
		{name: "error level wins over 4xx", rec: withLevel(record("GET", "/", 404, "t", ""), "error"), expected: domain.ClassError},
		{name: "2xx info is normal", rec: record("GET", "/", 200, "t", ""), expected: domain.ClassNormal},
		{name: "399 is normal", rec: record("GET", "/", 399, "t", ""), expected: domain.ClassNormal},
		{name: "default status is normal", rec: domain.NewLogRecord(), expected: domain.ClassNormal},
		{name: "non-numeric status skips thresholds", rec: other, expected: domain.ClassNormal},
		{name: "non-numeric status with error level", rec: withLevel(other, "error"), expected: domain.ClassError},
		{name: "null status skips thresholds", rec: null, expected: domain.ClassNormal},
		{name: "status beyond int64 is an error", rec: huge, expected: domain.ClassError},
		{name: "level match is case sensitive", rec: withLevel(record("GET", "/", 200, "t", ""), "ERROR"), expected: domain.ClassNormal},
		{name: "other levels are normal", rec: withLevel(record("GET", "/", 200, "t", ""), "fatal"), expected: domain.ClassNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.rec))
		})
	}
}

func TestAnalyzer_Aggregate(t *testing.T) {
	a := NewAnalyzer(nil)

	t.Run("returns empty summary for no records", func(t *testing.T) {
		s := a.Aggregate(nil)
		assert.Equal(t, 0, s.Total)
		assert.Empty(t, s.Statuses)
		assert.Empty(t, s.Errors)
		assert.Empty(t, s.Warnings)
		assert.Empty(t, s.Issues)
	})

	t.Run("single 503 record", func(t *testing.T) {
		s := a.Aggregate([]domain.LogRecord{record("GET", "/x", 503, "t1", "timeout")})

		assert.Equal(t, 1, s.Total)
		assert.Equal(t, []domain.StatusCount{{Code: domain.NumericStatus(503), Count: 1}}, s.Statuses)
		assert.Equal(t, 1, s.ErrorCount())
		assert.Equal(t, 0, s.WarningCount())
		require.Len(t, s.Issues, 1)
		assert.Equal(t, "GET /x (503)", s.Issues[0].Key)
		assert.Equal(t, []string{"t1: timeout"}, s.Issues[0].Occurrences)
	})

	t.Run("warning record with defaults", func(t *testing.T) {
		rec := domain.NewLogRecord()
		rec.Level = "warning"
		rec.Method = "POST"
		rec.Path = "/y"

		s := a.Aggregate([]domain.LogRecord{rec})

		assert.Equal(t, []domain.StatusCount{{Code: domain.NumericStatus(0), Count: 1}}, s.Statuses)
		assert.Equal(t, 1, s.WarningCount())
		require.Len(t, s.Issues, 1)
		assert.Equal(t, "POST /y (0)", s.Issues[0].Key)
		assert.Equal(t, []string{"unknown: "}, s.Issues[0].Occurrences)
	})

	t.Run("normal records only touch the histogram", func(t *testing.T) {
		s := a.Aggregate([]domain.LogRecord{
			record("GET", "/", 200, "t1", "ok"),
			record("GET", "/", 200, "t2", "ok"),
			record("GET", "/", 301, "t3", "moved"),
		})

		assert.Equal(t, 3, s.Total)
		assert.Empty(t, s.Errors)
		assert.Empty(t, s.Warnings)
		assert.Empty(t, s.Issues)
		assert.Equal(t, []domain.StatusCount{
			{Code: domain.NumericStatus(200), Count: 2},
			{Code: domain.NumericStatus(301), Count: 1},
		}, s.Statuses)
	})

	t.Run("groups by method path and status in input order", func(t *testing.T) {
		s := a.Aggregate([]domain.LogRecord{
			record("GET", "/a", 500, "t1", "boom"),
			record("GET", "/a", 404, "t2", "missing"),
			record("GET", "/a", 500, "t3", "boom again"),
			record("POST", "/a", 500, "t4", "post boom"),
		})

		require.Len(t, s.Issues, 3)
		assert.Equal(t, "GET /a (500)", s.Issues[0].Key)
		assert.Equal(t, []string{"t1: boom", "t3: boom again"}, s.Issues[0].Occurrences)
		assert.Equal(t, "GET /a (404)", s.Issues[1].Key)
		assert.Equal(t, "POST /a (500)", s.Issues[2].Key)
		assert.Equal(t, 3, s.ErrorCount())
		assert.Equal(t, 1, s.WarningCount())
	})

	t.Run("null status is apart from zero and the string None", func(t *testing.T) {
		null := record("GET", "/n", 0, "t", "m")
		null.Status = domain.NullStatus()
		str := record("GET", "/n", 0, "t", "m")
		str.Status = domain.OtherStatus("None")

		s := a.Aggregate([]domain.LogRecord{null, record("GET", "/n", 0, "t", "m"), str, null})

		require.Len(t, s.Statuses, 3)
		assert.True(t, s.Statuses[0].Code.IsNull())
		assert.Equal(t, "None", s.Statuses[0].Code.String())
		assert.Equal(t, 2, s.Statuses[0].Count)
		assert.Equal(t, "0", s.Statuses[1].Code.String())
		assert.False(t, s.Statuses[2].Code.IsNull())
		assert.Empty(t, s.Issues)
	})

	t.Run("string status is its own histogram bucket", func(t *testing.T) {
		str := record("GET", "/s", 0, "t", "m")
		str.Status = domain.OtherStatus("503")

		s := a.Aggregate([]domain.LogRecord{record("GET", "/s", 503, "t", "m"), str})

		require.Len(t, s.Statuses, 2)
		assert.True(t, s.Statuses[0].Code.IsNumeric())
		assert.False(t, s.Statuses[1].Code.IsNumeric())
		assert.Equal(t, 1, s.ErrorCount())
		assert.Empty(t, s.Warnings)
	})
}

func TestAnalyzer_AggregateInvariants(t *testing.T) {
	a := NewAnalyzer(nil)
	records := []domain.LogRecord{
		record("GET", "/a", 200, "t1", "ok"),
		record("GET", "/a", 500, "t2", "boom"),
		withLevel(record("GET", "/b", 200, "t3", "slow"), "warning"),
		withLevel(record("GET", "/b", 200, "t4", "slow"), "warning"),
		record("PUT", "/c", 404, "t5", ""),
		withLevel(record("PUT", "/c", 201, "t6", "explicit"), "error"),
		record("GET", "/a", 200, "t7", "ok"),
	}

	s := a.Aggregate(records)

	histTotal := 0
	for _, sc := range s.Statuses {
		histTotal += sc.Count
	}
	assert.Equal(t, s.Total, histTotal)

	normal := 0
	for _, r := range records {
		if Classify(r) == domain.ClassNormal {
			normal++
		}
	}
	assert.Equal(t, s.Total, s.ErrorCount()+s.WarningCount()+normal)

	grouped := 0
	for _, g := range s.Issues {
		expected := 0
		for _, r := range records {
			if Classify(r) != domain.ClassNormal && r.GroupKey() == g.Key {
				expected++
			}
		}
		assert.Equal(t, expected, g.Count(), g.Key)
		grouped += g.Count()
	}
	assert.Equal(t, s.ErrorCount()+s.WarningCount(), grouped)
}

func TestAnalyzer_LogsDebugCounters(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a := NewAnalyzer(zap.New(core))

	a.Aggregate([]domain.LogRecord{record("GET", "/x", 503, "t1", "timeout")})

	entries := logs.FilterMessage("aggregated records").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 1, fields["total"])
	assert.EqualValues(t, 1, fields["errors"])
	assert.EqualValues(t, 1, fields["groups"])
}
