package domain

import "strconv"

// Defaults applied when a record field is absent
const (
	DefaultLevel   = "info"
	DefaultUnknown = "unknown"
)

// NullText is how a field that is present but null is displayed
const NullText = "None"

// Classification is the severity bucket a record falls into
type Classification int

const (
	ClassNormal Classification = iota
	ClassWarning
	ClassError
)

func (c Classification) String() string {
	switch c {
	case ClassWarning:
		return "warning"
	case ClassError:
		return "error"
	default:
		return "normal"
	}
}

// StatusCode is either a numeric HTTP status or whatever other value the
// record carried. Only numeric codes take part in threshold checks.
type StatusCode struct {
	numeric bool
	null    bool
	value   int64
	text    string
}

// NumericStatus returns an integer status code
func NumericStatus(v int64) StatusCode {
	return StatusCode{numeric: true, value: v, text: strconv.FormatInt(v, 10)}
}

// NumericStatusText returns an integer status code displayed as text. It is
// used for literals outside the int64 range, where v is saturated.
func NumericStatusText(v int64, text string) StatusCode {
	return StatusCode{numeric: true, value: v, text: text}
}

// OtherStatus returns a non-integer status value with its display text
func OtherStatus(text string) StatusCode {
	return StatusCode{text: text}
}

// NullStatus returns the status of a record whose status field is null
func NullStatus() StatusCode {
	return StatusCode{null: true, text: NullText}
}

// IsNumeric reports whether the status is an integer
func (s StatusCode) IsNumeric() bool { return s.numeric }

// IsNull reports whether the status field was present but null
func (s StatusCode) IsNull() bool { return s.null }

func (s StatusCode) String() string { return s.text }

// Key identifies the status in a histogram. Numeric 503, the string "503"
// and null are all different codes.
func (s StatusCode) Key() string {
	switch {
	case s.numeric:
		return "n:" + s.text
	case s.null:
		return "z:" + s.text
	default:
		return "o:" + s.text
	}
}

// AtLeast reports whether the status is numeric and >= threshold
func (s StatusCode) AtLeast(threshold int64) bool {
	return s.numeric && s.value >= threshold
}

// LogRecord is one request/response log entry with defaults already applied
type LogRecord struct {
	Status  StatusCode
	Level   string
	Method  string
	Path    string
	Time    string
	Message string
}

// NewLogRecord returns a record with every field at its default
func NewLogRecord() LogRecord {
	return LogRecord{
		Status: NumericStatus(0),
		Level:  DefaultLevel,
		Method: DefaultUnknown,
		Path:   DefaultUnknown,
		Time:   DefaultUnknown,
	}
}

// GroupKey returns "{method} {path} ({status})"
func (r LogRecord) GroupKey() string {
	return r.Method + " " + r.Path + " (" + r.Status.String() + ")"
}

// Occurrence returns "{time}: {message}"
func (r LogRecord) Occurrence() string {
	return r.Time + ": " + r.Message
}
