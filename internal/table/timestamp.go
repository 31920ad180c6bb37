package table

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// timestampFormat is the human-readable rendering of epoch fields.
const timestampFormat = "2006-01-02 15:04:05"

// MissingColumnError reports a timestamp conversion requested on a
// column the message table does not have. Non-fatal: callers report it
// and move on.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table: column %q not in message table", e.Column)
}

// epochColumn selects the epoch-seconds column of a row by name.
func epochColumn(row MessageRow, column string) (string, bool) {
	switch column {
	case "msg_sent_time":
		return row.MsgSentTime, true
	case "time_thread_start":
		return row.TimeThreadStart, true
	case "tm_thread_end":
		return row.TmThreadEnd, true
	}
	return "", false
}

// ConvertTimestamps renders the named epoch-seconds column of a message
// table as human-readable timestamps in the given location, one value
// per row in row order. Absent-value placeholders pass through
// unchanged. Values that fail to parse as epoch seconds also pass
// through verbatim rather than aborting a presentation pass.
func ConvertTimestamps(rows []MessageRow, column string, loc *time.Location) ([]string, error) {
	if _, ok := epochColumn(MessageRow{}, column); !ok {
		return nil, &MissingColumnError{Column: column}
	}
	if loc == nil {
		loc = time.Local
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		v, _ := epochColumn(row, column)
		if v == AbsentTS || v == "" {
			out[i] = v
			continue
		}
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			out[i] = v
			continue
		}
		whole, frac := math.Modf(secs)
		t := time.Unix(int64(whole), int64(frac*float64(time.Second))).In(loc)
		out[i] = t.Format(timestampFormat)
	}
	return out, nil
}
