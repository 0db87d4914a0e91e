package session

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// Credential is the persisted identity. The four fields live and die
// together: a partial credential is not a supported state and every consumer
// must treat it as logged out.
type Credential struct {
	Token       string
	Role        Role
	UserID      int64
	DisplayName string
}

// Present reports whether the credential is complete. Anything less is the
// canonical logged-out signal.
func (c Credential) Present() bool {
	return c.Token != "" && c.Role != "" && c.UserID != 0 && c.DisplayName != ""
}
