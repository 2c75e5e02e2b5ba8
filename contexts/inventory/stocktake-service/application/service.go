package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tanavent/contexts/inventory/stocktake-service/domain/entities"
	domainerrors "tanavent/contexts/inventory/stocktake-service/domain/errors"
	"tanavent/contexts/inventory/stocktake-service/ports"
)

// Service runs stocktaking: open a session for a section, record counts per
// item, close the session to overwrite theoretical stock with the counted
// reality. Guard chains match the item operations.
type Service struct {
	Repo        ports.Repository
	Sections    ports.SectionReader
	Memberships ports.MembershipReader
	Items       ports.ItemReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) OpenSession(ctx context.Context, callerID string, input ports.OpenSessionInput) (entities.Session, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.OrganizationID == "" || input.SectionID == "" {
		return entities.Session{}, domainerrors.ErrInvalidRequest
	}

	paired, err := s.Sections.SectionBelongsTo(ctx, input.SectionID, input.OrganizationID)
	if err != nil {
		return entities.Session{}, err
	}
	if !paired {
		return entities.Session{}, domainerrors.ErrInvalidRequest
	}

	if err := s.authorize(ctx, callerID, input.OrganizationID); err != nil {
		return entities.Session{}, err
	}

	session := entities.Session{
		SessionID:      s.IDGenerator.NewID(),
		OrganizationID: input.OrganizationID,
		SectionID:      input.SectionID,
		Name:           name,
		Status:         entities.SessionOpen,
		StartedAt:      s.now(),
	}
	if err := s.Repo.CreateSession(ctx, session); err != nil {
		return entities.Session{}, err
	}

	s.logger().InfoContext(ctx, "stocktake_session_opened",
		slog.String("module", "stocktake"),
		slog.String("session_id", session.SessionID),
		slog.String("section_id", session.SectionID),
	)
	return session, nil
}

func (s Service) ListSessions(ctx context.Context, callerID string, sectionID string) ([]entities.Session, error) {
	if sectionID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	section, found, err := s.Sections.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrSectionNotFound
	}

	if err := s.authorize(ctx, callerID, section.OrganizationID); err != nil {
		return nil, err
	}

	return s.Repo.ListSessionsBySection(ctx, sectionID)
}

func (s Service) GetSession(ctx context.Context, callerID string, sessionID string) (entities.Session, []entities.Record, error) {
	session, err := s.resolveSession(ctx, callerID, sessionID)
	if err != nil {
		return entities.Session{}, nil, err
	}

	records, err := s.Repo.ListRecords(ctx, sessionID)
	if err != nil {
		return entities.Session{}, nil, err
	}
	return session, records, nil
}

// RecordCount upserts the count for one item. The expected quantity is
// snapshotted from the item's current stock on the first record for that
// item and kept on every overwrite after it.
func (s Service) RecordCount(ctx context.Context, callerID string, sessionID string, itemID string, actualQuantity float64) (entities.Record, error) {
	session, err := s.resolveSession(ctx, callerID, sessionID)
	if err != nil {
		return entities.Record{}, err
	}
	if session.Status == entities.SessionClosed {
		return entities.Record{}, domainerrors.ErrSessionClosed
	}
	if itemID == "" || actualQuantity < 0 {
		return entities.Record{}, domainerrors.ErrInvalidRequest
	}

	item, found, err := s.Items.GetItem(ctx, itemID)
	if err != nil {
		return entities.Record{}, err
	}
	if !found || item.SectionID != session.SectionID {
		return entities.Record{}, domainerrors.ErrItemNotInSection
	}

	record, exists, err := s.Repo.GetRecordForItem(ctx, sessionID, itemID)
	if err != nil {
		return entities.Record{}, err
	}
	if !exists {
		record = entities.Record{
			RecordID:         s.IDGenerator.NewID(),
			SessionID:        sessionID,
			ItemID:           itemID,
			ExpectedQuantity: item.Quantity,
		}
	}
	record.ActualQuantity = actualQuantity
	record.UpdatedAt = s.now()

	if err := s.Repo.UpsertRecord(ctx, record); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

// CloseSession finishes the count. Marking the session closed and applying
// every actual count to its item happen in one transaction, so the stock is
// either fully reconciled or untouched.
func (s Service) CloseSession(ctx context.Context, callerID string, sessionID string) (entities.Session, error) {
	session, err := s.resolveSession(ctx, callerID, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if session.Status == entities.SessionClosed {
		return entities.Session{}, domainerrors.ErrSessionClosed
	}

	records, err := s.Repo.ListRecords(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}

	now := s.now()
	session.Status = entities.SessionClosed
	session.ClosedAt = &now
	if err := s.Repo.CloseSession(ctx, session, records); err != nil {
		return entities.Session{}, err
	}

	s.logger().InfoContext(ctx, "stocktake_session_closed",
		slog.String("module", "stocktake"),
		slog.String("session_id", session.SessionID),
		slog.Int("record_count", len(records)),
	)
	return session, nil
}

func (s Service) resolveSession(ctx context.Context, callerID string, sessionID string) (entities.Session, error) {
	session, found, err := s.Repo.GetSession(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, domainerrors.ErrSessionNotFound
	}
	if err := s.authorize(ctx, callerID, session.OrganizationID); err != nil {
		return entities.Session{}, err
	}
	return session, nil
}

func (s Service) authorize(ctx context.Context, callerID string, organizationID string) error {
	ok, err := s.Memberships.HasMembership(ctx, organizationID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrForbidden
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
