// Package models defines the records eventhub persists: users, events and
// the cached session state. Field names and JSON tags match the stored
// layout, so existing data round-trips unchanged.
package models

import (
	"strings"
)

// User is an identity record.
//
// IsActive is a pointer because the flag is absent from the stored record
// until an admin toggles it for the first time; Active reports the
// effective value.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	IsActive  *bool  `json:"isActive,omitempty"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin"`
}

// Active reports whether the user is active. A user that was never toggled
// is active.
func (u User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// Matches reports whether term occurs in the user's name or email,
// ignoring case. An empty term matches every user.
func (u User) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(strings.ToLower(u.Email), term)
}

// Clone returns a deep copy so callers never share the IsActive pointer
// with a store's internal record.
func (u User) Clone() User {
	if u.IsActive != nil {
		v := *u.IsActive
		u.IsActive = &v
	}
	return u
}

// UserPatch is a shallow merge applied by UserService.Update. Nil fields
// are left untouched.
type UserPatch struct {
	Name      *string
	IsAdmin   *bool
	IsActive  *bool
	LastLogin *string
}

// Apply merges p into u and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	if p.IsActive != nil {
		v := *p.IsActive
		u.IsActive = &v
	}
	if p.LastLogin != nil {
		u.LastLogin = *p.LastLogin
	}
	return u
}

// NameFromEmail returns the local part of an email address (everything
// before the first "@"), or the whole string when there is no "@".
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// IsAdminEmail is the capability rule used when a user is created: any
// address containing "admin" gets the admin flag.
func IsAdminEmail(email string) bool {
	return strings.Contains(email, "admin")
}
