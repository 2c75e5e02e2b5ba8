package postgresadapter

import (
	"encoding/json"
	"time"

	"tanavent/contexts/identity-access/account-service/domain/entities"
)

type userModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Email       string    `gorm:"column:email"`
	DisplayName string    `gorm:"column:display_name"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "app_user" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:      m.ID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type preferenceModel struct {
	UserID               string    `gorm:"column:user_id;primaryKey"`
	Language             string    `gorm:"column:language"`
	ActiveOrganizationID *string   `gorm:"column:active_organization_id"`
	ActiveSectionID      *string   `gorm:"column:active_section_id"`
	LastViewState        []byte    `gorm:"column:last_view_state;type:jsonb"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (preferenceModel) TableName() string { return "user_preference" }

func (m preferenceModel) toEntity() entities.Preference {
	state := entities.DefaultPreference().LastViewState
	if len(m.LastViewState) > 0 {
		state = json.RawMessage(m.LastViewState)
	}
	return entities.Preference{
		UserID:               m.UserID,
		Language:             m.Language,
		ActiveOrganizationID: m.ActiveOrganizationID,
		ActiveSectionID:      m.ActiveSectionID,
		LastViewState:        state,
		UpdatedAt:            m.UpdatedAt,
	}
}
