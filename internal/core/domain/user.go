package domain

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User is a stored credential record. PasswordHash is a salted bcrypt digest and
// never leaves the process in serialized form.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// IsAdmin reports whether the user may mutate inventory data.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCashier
}
