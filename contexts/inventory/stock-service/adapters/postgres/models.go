package postgresadapter

import (
	"time"

	"tanavent/contexts/inventory/stock-service/domain/entities"
)

type itemModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	OrganizationID string    `gorm:"column:organization_id"`
	SectionID      string    `gorm:"column:section_id"`
	Name           string    `gorm:"column:name"`
	Vintage        *int      `gorm:"column:vintage"`
	Quantity       float64   `gorm:"column:quantity"`
	Unit           string    `gorm:"column:unit"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string { return "item" }

func (m itemModel) toEntity() entities.Item {
	return entities.Item{
		ItemID:         m.ID,
		OrganizationID: m.OrganizationID,
		SectionID:      m.SectionID,
		Name:           m.Name,
		Vintage:        m.Vintage,
		Quantity:       m.Quantity,
		Unit:           m.Unit,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromEntity(item entities.Item) itemModel {
	return itemModel{
		ID:             item.ItemID,
		OrganizationID: item.OrganizationID,
		SectionID:      item.SectionID,
		Name:           item.Name,
		Vintage:        item.Vintage,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

// Read-only projections of the shared tenancy tables.

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
