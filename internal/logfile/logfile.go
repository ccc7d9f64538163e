// Package logfile reads request log exports: a single JSON array of
// log record objects.
package logfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/vburojevic/reqtriage/internal/domain"
)

// DefaultPath is the export file read when no path is given
const DefaultPath = "logs_result.json"

// Record field names
const (
	FieldStatus  = "responseStatusCode"
	FieldLevel   = "level"
	FieldPath    = "requestPath"
	FieldMethod  = "requestMethod"
	FieldTime    = "TimeUTC"
	FieldMessage = "message"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotArray    = errors.New("expected a JSON array of log records")
)

// LoadError is returned when the source cannot be read or does not hold a
// JSON array of objects. No records are returned alongside it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "load logs: " + e.Err.Error()
	}
	return fmt.Sprintf("load logs from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile reads and parses the file at path
func LoadFile(path string) ([]domain.LogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	records, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return records, nil
}

// Load reads every byte from r and parses it
func Load(r io.Reader) ([]domain.LogRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	records, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return records, nil
}

// Parse decodes a JSON array of log records, in source order
func Parse(data []byte) ([]domain.LogRecord, error) {
	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errNotArray
	}

	records := []domain.LogRecord{}
	var elemErr error
	root.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			elemErr = fmt.Errorf("record %d is not a JSON object", len(records))
			return false
		}
		records = append(records, Extract(v))
		return true
	})
	if elemErr != nil {
		return nil, elemErr
	}
	return records, nil
}

// Extract maps one JSON object to a LogRecord. Absent fields take their
// defaults, null fields read as None, other fields are ignored. A repeated
// key resolves to its last occurrence.
func Extract(obj gjson.Result) domain.LogRecord {
	rec := domain.NewLogRecord()
	obj.ForEach(func(key, v gjson.Result) bool {
		switch key.Str {
		case FieldStatus:
			rec.Status = statusValue(v)
		case FieldLevel:
			rec.Level = textValue(v)
		case FieldPath:
			rec.Path = textValue(v)
		case FieldMethod:
			rec.Method = textValue(v)
		case FieldTime:
			rec.Time = textValue(v)
		case FieldMessage:
			rec.Message = textValue(v)
		}
		return true
	})
	return rec
}

func statusValue(v gjson.Result) domain.StatusCode {
	switch {
	case v.Type == gjson.Null:
		return domain.NullStatus()
	case v.Type == gjson.String:
		return domain.OtherStatus(v.Str)
	case v.Type == gjson.Number && !strings.ContainsAny(v.Raw, ".eE"):
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		switch {
		case err == nil:
			return domain.NumericStatus(n)
		case errors.Is(err, strconv.ErrRange):
			// n is saturated; the literal stays the display text
			return domain.NumericStatusText(n, v.Raw)
		default:
			return domain.OtherStatus(v.Raw)
		}
	default:
		return domain.OtherStatus(v.Raw)
	}
}

func textValue(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return domain.NullText
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}
