package postgresadapter

import (
	"time"

	"tanavent/contexts/inventory/stocktake-service/domain/entities"
)

type sessionModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	OrganizationID string     `gorm:"column:organization_id"`
	SectionID      string     `gorm:"column:section_id"`
	Name           string     `gorm:"column:name"`
	Status         string     `gorm:"column:status"`
	StartedAt      time.Time  `gorm:"column:started_at"`
	ClosedAt       *time.Time `gorm:"column:closed_at"`
}

func (sessionModel) TableName() string { return "stocktake_session" }

func (m sessionModel) toEntity() entities.Session {
	return entities.Session{
		SessionID:      m.ID,
		OrganizationID: m.OrganizationID,
		SectionID:      m.SectionID,
		Name:           m.Name,
		Status:         m.Status,
		StartedAt:      m.StartedAt,
		ClosedAt:       m.ClosedAt,
	}
}

type recordModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	SessionID        string    `gorm:"column:session_id"`
	ItemID           string    `gorm:"column:item_id"`
	ExpectedQuantity float64   `gorm:"column:expected_quantity"`
	ActualQuantity   float64   `gorm:"column:actual_quantity"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (recordModel) TableName() string { return "stocktake_record" }

func (m recordModel) toEntity() entities.Record {
	return entities.Record{
		RecordID:         m.ID,
		SessionID:        m.SessionID,
		ItemID:           m.ItemID,
		ExpectedQuantity: m.ExpectedQuantity,
		ActualQuantity:   m.ActualQuantity,
		UpdatedAt:        m.UpdatedAt,
	}
}

// Read-only projections of the shared tenancy and stock tables. The item
// projection is also written during close reconciliation.

type sectionRow struct {
	ID             string `gorm:"column:id;primaryKey"`
	OrganizationID string `gorm:"column:organization_id"`
}

func (sectionRow) TableName() string { return "section" }

type memberRow struct {
	ID             string `gorm:"column:id;primaryKey"`
	OrganizationID string `gorm:"column:organization_id"`
	UserID         string `gorm:"column:user_id"`
}

func (memberRow) TableName() string { return "member" }

type itemRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	SectionID string    `gorm:"column:section_id"`
	Quantity  float64   `gorm:"column:quantity"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (itemRow) TableName() string { return "item" }
