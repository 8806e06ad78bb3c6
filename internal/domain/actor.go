package domain

// Role of the caller as asserted by the upstream gateway
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the identity a request is made on behalf of
type Actor struct {
	UserID int64
	Name   *string
	Role   Role
}

// IsAdmin reports whether the actor may manage slots and approve bookings
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage reports whether the actor may remove b: its owner or any administrator
func (a Actor) CanManage(b *Booking) bool {
	return a.IsAdmin() || b.IsOwnedBy(a.UserID)
}
