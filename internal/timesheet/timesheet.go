package timesheet

import (
	"fmt"
	"strings"
	"time"
)

// Timesheet mirrors the remote record shape. The remote API owns these; the
// client only keeps transient copies for rendering and edit pre-fill.
type Timesheet struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employeeId"`
	Date        Date    `json:"date"`
	HoursWorked float64 `json:"hoursWorked"`
	TaskDetails string  `json:"taskDetails"`
}

// Project returns the record's best-effort project label: the first
// whitespace-separated token of the task details. It is a display label, not
// a foreign key; the remote API supplies nothing better.
func (t Timesheet) Project() string {
	return ProjectLabel(t.TaskDetails)
}

func ProjectLabel(taskDetails string) string {
	fields := strings.Fields(taskDetails)
	if len(fields) == 0 {
		return "General"
	}
	return fields[0]
}

const dateLayout = "2006-01-02"

// Date tolerates the timestamp formats the remote API emits and always
// serializes back as a plain calendar date, which is what the API accepts
// on writes.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateLayout,
}

func (d *Date) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// Display is the human-facing form used in tables and chart labels.
func (d Date) Display() string {
	return d.Format(dateLayout)
}
