package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tanavent/contexts/inventory/stocktake-service/domain/entities"
	"tanavent/contexts/inventory/stocktake-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository implements the stocktake store plus the section, membership and
// item readers over the shared tables.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateSession(ctx context.Context, session entities.Session) error {
	row := sessionModel{
		ID:             session.SessionID,
		OrganizationID: session.OrganizationID,
		SectionID:      session.SectionID,
		Name:           session.Name,
		Status:         session.Status,
		StartedAt:      session.StartedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListSessionsBySection(ctx context.Context, sectionID string) ([]entities.Session, error) {
	var rows []sessionModel
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("started_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	sessions := make([]entities.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, row.toEntity())
	}
	return sessions, nil
}

func (r *Repository) GetSession(ctx context.Context, sessionID string) (entities.Session, bool, error) {
	var row sessionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", sessionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, false, nil
		}
		return entities.Session{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListRecords(ctx context.Context, sessionID string) ([]entities.Record, error) {
	var rows []recordModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("updated_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	records := make([]entities.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records, nil
}

func (r *Repository) GetRecordForItem(ctx context.Context, sessionID string, itemID string) (entities.Record, bool, error) {
	var row recordModel
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND item_id = ?", sessionID, itemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Record{}, false, nil
		}
		return entities.Record{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) UpsertRecord(ctx context.Context, record entities.Record) error {
	row := recordModel{
		ID:               record.RecordID,
		SessionID:        record.SessionID,
		ItemID:           record.ItemID,
		ExpectedQuantity: record.ExpectedQuantity,
		ActualQuantity:   record.ActualQuantity,
		UpdatedAt:        record.UpdatedAt.UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"actual_quantity", "updated_at"}),
		}).
		Create(&row).
		Error
}

// CloseSession flips the session to closed and applies every counted actual
// to its item row inside one transaction.
func (r *Repository) CloseSession(ctx context.Context, session entities.Session, records []entities.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var closedAt *time.Time
		if session.ClosedAt != nil {
			t := session.ClosedAt.UTC()
			closedAt = &t
		}
		err := tx.Model(&sessionModel{}).
			Where("id = ?", session.SessionID).
			Updates(map[string]any{
				"status":    session.Status,
				"closed_at": closedAt,
			}).
			Error
		if err != nil {
			return err
		}

		for _, record := range records {
			err := tx.Model(&itemRow{}).
				Where("id = ?", record.ItemID).
				Updates(map[string]any{
					"quantity":   record.ActualQuantity,
					"updated_at": record.UpdatedAt.UTC(),
				}).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetSection(ctx context.Context, sectionID string) (ports.SectionRef, bool, error) {
	var row sectionRow
	err := r.db.WithContext(ctx).
		Where("id = ?", sectionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SectionRef{}, false, nil
		}
		return ports.SectionRef{}, false, err
	}
	return ports.SectionRef{SectionID: row.ID, OrganizationID: row.OrganizationID}, true, nil
}

func (r *Repository) SectionBelongsTo(ctx context.Context, sectionID string, organizationID string) (bool, error) {
	var row sectionRow
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", sectionID, organizationID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) HasMembership(ctx context.Context, organizationID string, userID string) (bool, error) {
	var row memberRow
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) GetItem(ctx context.Context, itemID string) (ports.ItemRef, bool, error) {
	var row itemRow
	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ItemRef{}, false, nil
		}
		return ports.ItemRef{}, false, err
	}
	return ports.ItemRef{ItemID: row.ID, SectionID: row.SectionID, Quantity: row.Quantity}, true, nil
}
