package checklist

import (
	"errors"
	"fmt"
)

// ErrEmptyPeriod signals that the filtered ticket set is empty. It is a
// defined empty-result state, not a failure: callers skip report generation.
var ErrEmptyPeriod = errors.New("no tickets in the selected period")

// DataError reports a malformed monetary field on a ticket. The whole run
// aborts; there is no partial report.
type DataError struct {
	Ticket string
	Field  string
	Value  string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("ticket %s: field %q: invalid monetary value %q", e.Ticket, e.Field, e.Value)
}
