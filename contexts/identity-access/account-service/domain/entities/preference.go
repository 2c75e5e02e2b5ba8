package entities

import (
	"encoding/json"
	"time"
)

// Preference is the one-per-user record of the last active organization,
// section and UI view state.
type Preference struct {
	UserID               string
	Language             string
	ActiveOrganizationID *string
	ActiveSectionID      *string
	LastViewState        json.RawMessage
	UpdatedAt            time.Time
}

// DefaultPreference is returned, not persisted, until the user first writes.
func DefaultPreference() Preference {
	return Preference{
		Language:      "ja",
		LastViewState: json.RawMessage(`{"view":"dashboard"}`),
	}
}
