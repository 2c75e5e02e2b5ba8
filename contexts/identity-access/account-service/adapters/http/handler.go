package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"tanavent/contexts/identity-access/account-service/application"
	"tanavent/contexts/identity-access/account-service/ports"
	httptransport "tanavent/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterUserHandler(ctx context.Context, callerID string, email string) (httptransport.RegisterUserResponse, bool, error) {
	created, err := h.Service.EnsureUser(ctx, callerID, email)
	if err != nil {
		return httptransport.RegisterUserResponse{}, false, err
	}
	message := "User already exists"
	if created {
		message = "User created"
	}
	return httptransport.RegisterUserResponse{Message: message}, created, nil
}

func (h Handler) UpdateProfileHandler(
	ctx context.Context,
	callerID string,
	req httptransport.UpdateProfileRequest,
) (httptransport.SuccessResponse, error) {
	if err := h.Service.UpdateProfile(ctx, callerID, req.DisplayName); err != nil {
		return httptransport.SuccessResponse{}, err
	}
	return httptransport.SuccessResponse{Success: true}, nil
}

func (h Handler) GetStateHandler(ctx context.Context, callerID string) (httptransport.StateResponse, error) {
	preference, err := h.Service.GetState(ctx, callerID)
	if err != nil {
		return httptransport.StateResponse{}, err
	}
	resp := httptransport.StateResponse{
		ActiveOrganizationID: preference.ActiveOrganizationID,
		ActiveSectionID:      preference.ActiveSectionID,
		Language:             preference.Language,
		LastViewState:        preference.LastViewState,
	}
	// A zero timestamp means the default fallback; only a stored row carries
	// the row identity fields.
	if !preference.UpdatedAt.IsZero() {
		resp.UserID = preference.UserID
		resp.UpdatedAt = preference.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}

func (h Handler) SaveStateHandler(
	ctx context.Context,
	callerID string,
	email string,
	req httptransport.SaveStateRequest,
) (httptransport.SuccessResponse, error) {
	input := ports.SaveStateInput{
		Language:             req.Language,
		ActiveOrganizationID: req.ActiveOrganizationID,
		ActiveSectionID:      req.ActiveSectionID,
		LastViewState:        req.LastViewState,
	}
	if err := h.Service.SaveState(ctx, callerID, email, input); err != nil {
		return httptransport.SuccessResponse{}, err
	}
	return httptransport.SuccessResponse{Success: true}, nil
}
