package domain

import "time"

// Session is the ephemeral server-side identity issued after a successful login.
// Its fields are populated exclusively from a verified credential record, never
// from client input.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Remember  bool      `json:"remember"`
	CreatedAt time.Time `json:"created_at"`
}

// GuardDecision is the tagged outcome of an authorization check. The composing
// HTTP layer decides how each decision is rendered; the check itself never
// writes a response.
type GuardDecision int

const (
	// Proceed allows the wrapped operation to run.
	Proceed GuardDecision = iota
	// RedirectLogin means no authenticated session is present.
	RedirectLogin
	// RedirectDashboard means the session is authenticated but lacks the
	// required role.
	RedirectDashboard
)

// Authorize evaluates a session against the access requirement. A nil session is
// unauthenticated. adminOnly additionally requires the admin role; the two
// failure modes are distinct so callers can redirect differently.
func Authorize(s *Session, adminOnly bool) GuardDecision {
	if s == nil {
		return RedirectLogin
	}
	if adminOnly && s.Role != RoleAdmin {
		return RedirectDashboard
	}
	return Proceed
}
