package models

// AuthState is the session cache: exactly one of anonymous (User nil,
// IsAuthenticated false) or authenticated.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// Anonymous returns the signed-out state.
func Anonymous() AuthState {
	return AuthState{}
}

// Authenticated returns a signed-in state holding a private copy of u.
func Authenticated(u User) AuthState {
	c := u.Clone()
	return AuthState{User: &c, IsAuthenticated: true}
}

// Normalize enforces IsAuthenticated == (User != nil). A cached state that
// claims authentication without a user, or carries a user while signed
// out, collapses to anonymous.
func (s AuthState) Normalize() AuthState {
	if s.User == nil || !s.IsAuthenticated {
		return Anonymous()
	}
	return Authenticated(*s.User)
}

// UserID returns the signed-in user's id, or "" when anonymous.
func (s AuthState) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// IsAdmin reports whether the signed-in user carries the admin flag.
func (s AuthState) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin
}
