package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReportNotFound = errors.New("ingest report not found")
	ErrRunNotFound    = errors.New("ingest run not found")
)

// MalformedRowError marks a row that violates the table structure:
// wrong column count, or a missing required identifier. It is
// recoverable at the row level; the run continues past it.
type MalformedRowError struct {
	Line   int
	Field  string
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d (%s): %s", e.Line, e.Field, e.Reason)
}

// AsMalformedRow unwraps err as a *MalformedRowError if it is one.
func AsMalformedRow(err error) (*MalformedRowError, bool) {
	var mre *MalformedRowError
	if errors.As(err, &mre) {
		return mre, true
	}
	return nil, false
}
