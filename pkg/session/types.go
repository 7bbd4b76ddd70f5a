package session

// Role is the organization-level role carried by a session
type Role string

const (
	RoleAdmin   Role = "admin"   // full access, including deletes
	RoleManager Role = "manager" // can create and update records
	RoleUser    Role = "user"    // read-only access
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Caller is the authenticated actor issuing a request. It is rebuilt from the
// session store on every request and never cached, so permission changes take
// effect on the next request.
type Caller struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
