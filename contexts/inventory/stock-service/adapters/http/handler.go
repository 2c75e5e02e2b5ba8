package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"tanavent/contexts/inventory/stock-service/application"
	"tanavent/contexts/inventory/stock-service/domain/entities"
	"tanavent/contexts/inventory/stock-service/ports"
	httptransport "tanavent/contexts/inventory/stock-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListItemsHandler(ctx context.Context, callerID string, sectionID string) (httptransport.ListItemsResponse, error) {
	items, err := h.Service.ListItems(ctx, callerID, sectionID)
	if err != nil {
		return httptransport.ListItemsResponse{}, err
	}

	resp := httptransport.ListItemsResponse{Items: make([]httptransport.ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp, nil
}

func (h Handler) GetItemHandler(ctx context.Context, callerID string, itemID string) (httptransport.ItemResponse, error) {
	item, err := h.Service.GetItem(ctx, callerID, itemID)
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (h Handler) CreateItemHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreateItemRequest,
) (httptransport.ItemResponse, error) {
	item, err := h.Service.CreateItem(ctx, callerID, ports.CreateItemInput{
		OrganizationID: req.OrganizationID,
		SectionID:      req.SectionID,
		Name:           req.Name,
		Vintage:        req.Vintage,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
	})
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (h Handler) UpdateItemHandler(
	ctx context.Context,
	callerID string,
	itemID string,
	req httptransport.UpdateItemRequest,
) (httptransport.MutationResponse, error) {
	patch := ports.ItemPatch{
		Name:     req.Name,
		Vintage:  req.Vintage,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
	if err := h.Service.UpdateItem(ctx, callerID, itemID, patch); err != nil {
		return httptransport.MutationResponse{}, err
	}
	return httptransport.MutationResponse{Success: true, ID: itemID}, nil
}

func (h Handler) DeleteItemHandler(ctx context.Context, callerID string, itemID string) (httptransport.MutationResponse, error) {
	if err := h.Service.DeleteItem(ctx, callerID, itemID); err != nil {
		return httptransport.MutationResponse{}, err
	}
	return httptransport.MutationResponse{Success: true, ID: itemID}, nil
}

func toItemResponse(item entities.Item) httptransport.ItemResponse {
	return httptransport.ItemResponse{
		ID:             item.ItemID,
		OrganizationID: item.OrganizationID,
		SectionID:      item.SectionID,
		Name:           item.Name,
		Vintage:        item.Vintage,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		UpdatedAt:      item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
