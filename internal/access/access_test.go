package access

import (
	"testing"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	member := models.Authenticated(models.User{ID: "u1", Email: "u1@x.com"})
	admin := models.Authenticated(models.User{ID: "a1", Email: "admin@x.com", IsAdmin: true})
	broken := models.AuthState{IsAuthenticated: true}

	tests := []struct {
		name    string
		state   models.AuthState
		action  Action
		wantErr error
	}{
		{"anonymous rsvp", models.Anonymous(), ActionRSVP, common.ErrorUnauthorized},
		{"anonymous manage events", models.Anonymous(), ActionManageEvents, common.ErrorUnauthorized},
		{"authenticated without user", broken, ActionRSVP, common.ErrorUnauthorized},
		{"member rsvp", member, ActionRSVP, nil},
		{"member manage events", member, ActionManageEvents, common.ErrorForbidden},
		{"member manage users", member, ActionManageUsers, common.ErrorForbidden},
		{"admin rsvp", admin, ActionRSVP, nil},
		{"admin manage events", admin, ActionManageEvents, nil},
		{"admin manage users", admin, ActionManageUsers, nil},
		{"admin unknown action", admin, Action(42), common.ErrorForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.state, tt.action)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "rsvp", ActionRSVP.String())
	assert.Equal(t, "manage users", ActionManageUsers.String())
	assert.Equal(t, "action(7)", Action(7).String())
}
