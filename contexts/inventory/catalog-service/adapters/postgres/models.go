package postgresadapter

import "tanavent/contexts/inventory/catalog-service/domain/entities"

type categoryModel struct {
	ID             string `gorm:"column:id;primaryKey"`
	OrganizationID string `gorm:"column:organization_id"`
	SectionID      string `gorm:"column:section_id"`
	Name           string `gorm:"column:name"`
	DisplayOrder   int    `gorm:"column:display_order"`
}

func (categoryModel) TableName() string { return "category" }

func (m categoryModel) toEntity() entities.Category {
	return entities.Category{
		CategoryID:     m.ID,
		OrganizationID: m.OrganizationID,
		SectionID:      m.SectionID,
		Name:           m.Name,
		DisplayOrder:   m.DisplayOrder,
	}
}

type supplierModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	OrganizationID string  `gorm:"column:organization_id"`
	SectionID      string  `gorm:"column:section_id"`
	Name           string  `gorm:"column:name"`
	ContactInfo    *string `gorm:"column:contact_info"`
}

func (supplierModel) TableName() string { return "supplier" }

func (m supplierModel) toEntity() entities.Supplier {
	return entities.Supplier{
		SupplierID:     m.ID,
		OrganizationID: m.OrganizationID,
		SectionID:      m.SectionID,
		Name:           m.Name,
		ContactInfo:    m.ContactInfo,
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
