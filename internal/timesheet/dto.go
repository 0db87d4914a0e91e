package timesheet

import "time"

// EntryDTO is the form shape for creating or editing one timesheet. A
// nonzero ID selects update; zero selects create.
type EntryDTO struct {
	ID          int64
	Date        string
	HoursWorked float64
	TaskDetails string
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks the form locally before any network call.
func (d EntryDTO) Validate() error {
	if d.Date == "" {
		return ValidationError{Msg: "date is required"}
	}
	if _, err := time.Parse(dateLayout, d.Date); err != nil {
		return ValidationError{Msg: "date must be YYYY-MM-DD"}
	}
	if d.HoursWorked <= 0 {
		return ValidationError{Msg: "hours worked must be greater than zero"}
	}
	if d.HoursWorked > 24 {
		return ValidationError{Msg: "hours worked cannot exceed 24"}
	}
	if d.TaskDetails == "" {
		return ValidationError{Msg: "task details are required"}
	}
	return nil
}
