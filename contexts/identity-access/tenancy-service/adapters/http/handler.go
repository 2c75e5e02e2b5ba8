package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tanavent/contexts/identity-access/tenancy-service/application"
	httptransport "tanavent/contexts/identity-access/tenancy-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListOrganizationsHandler(ctx context.Context, callerID string) ([]httptransport.OrganizationResponse, error) {
	items, err := h.Service.ListOrganizations(ctx, callerID)
	if err != nil {
		return nil, err
	}

	resp := make([]httptransport.OrganizationResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, httptransport.OrganizationResponse{
			ID:        item.OrganizationID,
			Name:      item.Name,
			Plan:      item.Plan,
			CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) CreateOrganizationHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreateOrganizationRequest,
) (httptransport.CreateOrganizationResponse, error) {
	item, err := h.Service.CreateOrganization(ctx, callerID, strings.TrimSpace(req.Name))
	if err != nil {
		return httptransport.CreateOrganizationResponse{}, err
	}
	return httptransport.CreateOrganizationResponse{
		ID:   item.OrganizationID,
		Name: item.Name,
	}, nil
}

func (h Handler) ListSectionsHandler(ctx context.Context, callerID string, organizationID string) ([]httptransport.SectionResponse, error) {
	items, err := h.Service.ListSections(ctx, callerID, organizationID)
	if err != nil {
		return nil, err
	}

	resp := make([]httptransport.SectionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, httptransport.SectionResponse{
			ID:             item.SectionID,
			OrganizationID: item.OrganizationID,
			Name:           item.Name,
			Settings:       item.Settings,
		})
	}
	return resp, nil
}

func (h Handler) CreateSectionHandler(
	ctx context.Context,
	callerID string,
	organizationID string,
	req httptransport.CreateSectionRequest,
) (httptransport.SectionNameResponse, error) {
	item, err := h.Service.CreateSection(ctx, callerID, organizationID, strings.TrimSpace(req.Name))
	if err != nil {
		return httptransport.SectionNameResponse{}, err
	}
	return httptransport.SectionNameResponse{
		ID:   item.SectionID,
		Name: item.Name,
	}, nil
}

func (h Handler) UpdateSectionHandler(
	ctx context.Context,
	callerID string,
	organizationID string,
	sectionID string,
	req httptransport.UpdateSectionRequest,
) (httptransport.SectionNameResponse, error) {
	name := strings.TrimSpace(req.Name)
	if err := h.Service.UpdateSection(ctx, callerID, organizationID, sectionID, name); err != nil {
		return httptransport.SectionNameResponse{}, err
	}
	return httptransport.SectionNameResponse{
		ID:   sectionID,
		Name: name,
	}, nil
}

func (h Handler) DeleteSectionHandler(
	ctx context.Context,
	callerID string,
	organizationID string,
	sectionID string,
) (httptransport.DeleteSectionResponse, error) {
	if err := h.Service.DeleteSection(ctx, callerID, organizationID, sectionID); err != nil {
		return httptransport.DeleteSectionResponse{}, err
	}
	return httptransport.DeleteSectionResponse{Success: true}, nil
}
