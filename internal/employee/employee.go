package employee

// Employee mirrors the remote record shape. The remote API owns these; the
// client holds transient copies for rendering only.
type Employee struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TeamData is what the presenter receives for the team view.
type TeamData struct {
	Employees []Employee
}
