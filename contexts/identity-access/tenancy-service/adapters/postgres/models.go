package postgresadapter

import (
	"encoding/json"
	"time"

	"tanavent/contexts/identity-access/tenancy-service/domain/entities"
)

type organizationModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Plan      string    `gorm:"column:plan"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (organizationModel) TableName() string { return "organization" }

func (m organizationModel) toEntity() entities.Organization {
	return entities.Organization{
		OrganizationID: m.ID,
		Name:           m.Name,
		Plan:           m.Plan,
		CreatedAt:      m.CreatedAt,
	}
}

type sectionModel struct {
	ID             string `gorm:"column:id;primaryKey"`
	OrganizationID string `gorm:"column:organization_id"`
	Name           string `gorm:"column:name"`
	Settings       []byte `gorm:"column:settings;type:jsonb"`
}

func (sectionModel) TableName() string { return "section" }

func (m sectionModel) toEntity() entities.Section {
	settings := json.RawMessage(`{}`)
	if len(m.Settings) > 0 {
		settings = json.RawMessage(m.Settings)
	}
	return entities.Section{
		SectionID:      m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Settings:       settings,
	}
}

type memberModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	OrganizationID string    `gorm:"column:organization_id"`
	UserID         string    `gorm:"column:user_id"`
	Role           string    `gorm:"column:role"`
	JoinedAt       time.Time `gorm:"column:joined_at"`
}

func (memberModel) TableName() string { return "member" }
