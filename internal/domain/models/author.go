package models

// Role is the authority level of a forum user.
// Precedence for moderation purposes: RoleAdmin > RoleModerator > RoleBasic.
type Role string

const (
	RoleBasic     Role = "BASIC"
	RoleModerator Role = "MOD"
	RoleAdmin     Role = "ADM"
)

// IsModerator reports whether the role may edit or delete resources owned
// by other users.
func (r Role) IsModerator() bool {
	return r == RoleModerator || r == RoleAdmin
}

// Valid reports whether the role is one of the known authority levels.
func (r Role) Valid() bool {
	switch r {
	case RoleBasic, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Author is an immutable snapshot of a user fetched from the remote user
// directory. It is resolved fresh for every workflow call and never persisted
// or cached locally, so role and identity changes propagate immediately.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
