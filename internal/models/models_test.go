package models

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestUser_Active_DefaultsToTrue(t *testing.T) {
	assert.True(t, User{}.Active())
	assert.True(t, User{IsActive: boolPtr(true)}.Active())
	assert.False(t, User{IsActive: boolPtr(false)}.Active())
}

func TestUser_IsActiveAbsentFromJSONUntilSet(t *testing.T) {
	b, err := json.Marshal(User{ID: "u1", Name: "n", Email: "e"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "isActive")

	b, err = json.Marshal(User{ID: "u1", IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"isActive":false`)
}

func TestUser_Matches(t *testing.T) {
	u := User{Name: "Alice Smith", Email: "alice@Example.com"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"alice", true},
		{"SMITH", true},
		{"example.COM", true},
		{"bob", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, u.Matches(tt.term), tt.term)
	}
}

func TestUser_CloneDoesNotShareIsActive(t *testing.T) {
	u := User{IsActive: boolPtr(true)}
	c := u.Clone()
	*c.IsActive = false
	assert.True(t, *u.IsActive)
}

func TestUserPatch_Apply(t *testing.T) {
	u := User{ID: "u1", Name: "old", Email: "e@x", LastLogin: "t0"}
	name, last := "new", "t1"

	got := UserPatch{Name: &name, IsAdmin: boolPtr(true), IsActive: boolPtr(false), LastLogin: &last}.Apply(u)

	assert.Equal(t, User{ID: "u1", Name: "new", Email: "e@x", IsAdmin: true, IsActive: boolPtr(false), LastLogin: "t1"}, got)
	assert.Equal(t, u, UserPatch{}.Apply(u), "empty patch must not change anything")
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "alice", NameFromEmail("alice@x.com"))
	assert.Equal(t, "a.b", NameFromEmail("a.b@c@d"))
	assert.Equal(t, "nobody", NameFromEmail("nobody"))
	assert.Equal(t, "", NameFromEmail("@x.com"))
}

func TestIsAdminEmail(t *testing.T) {
	assert.True(t, IsAdminEmail("admin@x.com"))
	assert.True(t, IsAdminEmail("sysadmin@corp.io"))
	assert.True(t, IsAdminEmail("bob@admin.org"))
	assert.False(t, IsAdminEmail("Admin@x.com"), "matching is case-sensitive")
	assert.False(t, IsAdminEmail("alice@x.com"))
}

func TestEvent_CloneAndAttendance(t *testing.T) {
	e := Event{ID: "e1", Attendees: []string{"u1"}}
	c := e.Clone()
	c.Attendees[0] = "u2"

	assert.True(t, e.IsAttending("u1"))
	assert.False(t, e.IsAttending("u2"))
	assert.Equal(t, []string{}, Event{}.Clone().Attendees)
}

func TestEventFormData_ApplyKeepsIdentity(t *testing.T) {
	e := Event{ID: "e1", Title: "old", Attendees: []string{"u1"}}
	f := EventFormData{Title: "T", Description: "D", Date: "2024-06-15", Location: "L", ImageURL: "http://img"}

	got := f.Apply(e)

	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, []string{"u1"}, got.Attendees)
	assert.Equal(t, f, FormFromEvent(got))
}

func TestEventFormData_Validate(t *testing.T) {
	valid := EventFormData{Title: "T", Description: "D", Date: "2024-06-15", Location: "L", ImageURL: "http://img"}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Location = "  "
	require.ErrorIs(t, missing.Validate(), common.ErrorValidation)

	badDate := valid
	badDate.Date = "15/06/2024"
	require.ErrorIs(t, badDate.Validate(), common.ErrorValidation)
}

func TestAuthState_Normalize(t *testing.T) {
	u := User{ID: "u1", IsAdmin: true}

	assert.Equal(t, Anonymous(), AuthState{IsAuthenticated: true}.Normalize())
	assert.Equal(t, Anonymous(), AuthState{User: &u}.Normalize())

	s := AuthState{User: &u, IsAuthenticated: true}.Normalize()
	require.True(t, s.IsAuthenticated)
	assert.Equal(t, "u1", s.UserID())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "", Anonymous().UserID())
	assert.False(t, Anonymous().IsAdmin())
}

func TestAuthState_JSONShape(t *testing.T) {
	b, err := json.Marshal(Anonymous())
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":null,"isAuthenticated":false}`, string(b))
}
