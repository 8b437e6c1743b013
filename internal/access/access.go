// Package access is the single authorization gate. Domain services do not
// check permissions; every caller that exposes a mutating operation asks
// Check first.
package access

import (
	"fmt"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// Action is something a session may try to do.
type Action int

const (
	// ActionRSVP toggles the caller's own attendance.
	ActionRSVP Action = iota + 1
	// ActionManageEvents covers event create, update and delete.
	ActionManageEvents
	// ActionManageUsers covers user search, flag toggles and deletion.
	ActionManageUsers
)

func (a Action) String() string {
	switch a {
	case ActionRSVP:
		return "rsvp"
	case ActionManageEvents:
		return "manage events"
	case ActionManageUsers:
		return "manage users"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Check returns nil when state may perform action, common.ErrorUnauthorized
// for an anonymous session and common.ErrorForbidden when an admin is
// required. Unknown actions are forbidden.
func Check(state models.AuthState, action Action) error {
	state = state.Normalize()
	if !state.IsAuthenticated {
		return fmt.Errorf("%s: %w", action, common.ErrorUnauthorized)
	}

	switch action {
	case ActionRSVP:
		return nil
	case ActionManageEvents, ActionManageUsers:
		if state.IsAdmin() {
			return nil
		}
	}
	return fmt.Errorf("%s: %w", action, common.ErrorForbidden)
}
