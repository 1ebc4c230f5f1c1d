package models

// Principal is the authenticated identity attached to one request by the
// auth middleware. It is never persisted.
type Principal struct {
	ID   uint
	Role string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
