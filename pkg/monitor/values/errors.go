package values

import "fmt"

// MalformedDurationError reports a token that does not match the duration
// grammar.
type MalformedDurationError struct {
	Value string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("malformed duration %q: expected ISO8601 (PT5M) or shorthand (5m, 1d12h)", e.Value)
}

// UnknownTimezoneError reports a timezone name absent from the table.
type UnknownTimezoneError struct {
	Value string
}

func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q: run 'vigil autoscale profile list-timezones' for values", e.Value)
}

// OffsetRangeError reports a UTC offset hour outside the accepted range.
type OffsetRangeError struct {
	Hour int
}

func (e *OffsetRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range: -12 to +14", e.Hour)
}
