package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tanavent/contexts/inventory/stock-service/domain/entities"
	domainerrors "tanavent/contexts/inventory/stock-service/domain/errors"
	"tanavent/contexts/inventory/stock-service/ports"
)

// Service implements inventory item operations. Ownership is always derived
// from stored rows: listing resolves the section first, item mutations
// resolve the item first, and the membership check runs against the
// organization found on that row, never against anything the caller sent.
type Service struct {
	Repo        ports.Repository
	Sections    ports.SectionReader
	Memberships ports.MembershipReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) ListItems(ctx context.Context, callerID string, sectionID string) ([]entities.Item, error) {
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

	return s.Repo.ListItemsBySection(ctx, sectionID)
}

func (s Service) GetItem(ctx context.Context, callerID string, itemID string) (entities.Item, error) {
	item, err := s.resolveItem(ctx, callerID, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	return item, nil
}

// CreateItem validates the client-supplied (organization, section) pairing
// before the membership check, so a bad pairing reads as 400 rather than
// leaking whether the caller belongs to the organization.
func (s Service) CreateItem(ctx context.Context, callerID string, input ports.CreateItemInput) (entities.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.OrganizationID == "" || input.SectionID == "" {
		return entities.Item{}, domainerrors.ErrInvalidRequest
	}
	if input.Quantity < 0 {
		return entities.Item{}, domainerrors.ErrInvalidRequest
	}

	paired, err := s.Sections.SectionBelongsTo(ctx, input.SectionID, input.OrganizationID)
	if err != nil {
		return entities.Item{}, err
	}
	if !paired {
		return entities.Item{}, domainerrors.ErrInvalidRequest
	}

	if err := s.authorize(ctx, callerID, input.OrganizationID); err != nil {
		return entities.Item{}, err
	}

	unit := input.Unit
	if unit == "" {
		unit = "pc"
	}
	item := entities.Item{
		ItemID:         s.IDGenerator.NewID(),
		OrganizationID: input.OrganizationID,
		SectionID:      input.SectionID,
		Name:           name,
		Vintage:        input.Vintage,
		Quantity:       input.Quantity,
		Unit:           unit,
		UpdatedAt:      s.now(),
	}
	if err := s.Repo.CreateItem(ctx, item); err != nil {
		return entities.Item{}, err
	}

	s.logger().InfoContext(ctx, "stock_item_created",
		slog.String("module", "stock"),
		slog.String("item_id", item.ItemID),
		slog.String("organization_id", item.OrganizationID),
	)
	return item, nil
}

// UpdateItem applies only the supplied fields and refreshes the timestamp.
func (s Service) UpdateItem(ctx context.Context, callerID string, itemID string, patch ports.ItemPatch) error {
	item, err := s.resolveItem(ctx, callerID, itemID)
	if err != nil {
		return err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domainerrors.ErrInvalidRequest
		}
		item.Name = name
	}
	if patch.Vintage != nil {
		item.Vintage = patch.Vintage
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return domainerrors.ErrInvalidRequest
		}
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	item.UpdatedAt = s.now()

	return s.Repo.UpdateItem(ctx, item)
}

func (s Service) DeleteItem(ctx context.Context, callerID string, itemID string) error {
	if _, err := s.resolveItem(ctx, callerID, itemID); err != nil {
		return err
	}
	return s.Repo.DeleteItem(ctx, itemID)
}

// resolveItem loads the stored row first so an unknown id reads as not-found
// before any ownership signal, then authorizes against the row's organization.
func (s Service) resolveItem(ctx context.Context, callerID string, itemID string) (entities.Item, error) {
	item, found, err := s.Repo.GetItem(ctx, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	if !found {
		return entities.Item{}, domainerrors.ErrItemNotFound
	}
	if err := s.authorize(ctx, callerID, item.OrganizationID); err != nil {
		return entities.Item{}, err
	}
	return item, nil
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
