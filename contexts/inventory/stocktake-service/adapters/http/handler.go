package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"tanavent/contexts/inventory/stocktake-service/application"
	"tanavent/contexts/inventory/stocktake-service/domain/entities"
	"tanavent/contexts/inventory/stocktake-service/ports"
	httptransport "tanavent/contexts/inventory/stocktake-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) OpenSessionHandler(
	ctx context.Context,
	callerID string,
	req httptransport.OpenSessionRequest,
) (httptransport.SessionResponse, error) {
	session, err := h.Service.OpenSession(ctx, callerID, ports.OpenSessionInput{
		OrganizationID: req.OrganizationID,
		SectionID:      req.SectionID,
		Name:           req.Name,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (h Handler) ListSessionsHandler(ctx context.Context, callerID string, sectionID string) (httptransport.ListSessionsResponse, error) {
	sessions, err := h.Service.ListSessions(ctx, callerID, sectionID)
	if err != nil {
		return httptransport.ListSessionsResponse{}, err
	}

	resp := httptransport.ListSessionsResponse{Sessions: make([]httptransport.SessionResponse, 0, len(sessions))}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(session))
	}
	return resp, nil
}

func (h Handler) GetSessionHandler(ctx context.Context, callerID string, sessionID string) (httptransport.SessionDetailResponse, error) {
	session, records, err := h.Service.GetSession(ctx, callerID, sessionID)
	if err != nil {
		return httptransport.SessionDetailResponse{}, err
	}

	resp := httptransport.SessionDetailResponse{
		Session: toSessionResponse(session),
		Records: make([]httptransport.RecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, toRecordResponse(record))
	}
	return resp, nil
}

func (h Handler) RecordCountHandler(
	ctx context.Context,
	callerID string,
	sessionID string,
	req httptransport.RecordCountRequest,
) (httptransport.RecordResponse, error) {
	record, err := h.Service.RecordCount(ctx, callerID, sessionID, req.ItemID, req.ActualQuantity)
	if err != nil {
		return httptransport.RecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

func (h Handler) CloseSessionHandler(ctx context.Context, callerID string, sessionID string) (httptransport.SessionResponse, error) {
	session, err := h.Service.CloseSession(ctx, callerID, sessionID)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func toSessionResponse(session entities.Session) httptransport.SessionResponse {
	var closedAt *string
	if session.ClosedAt != nil {
		formatted := session.ClosedAt.UTC().Format(time.RFC3339)
		closedAt = &formatted
	}
	return httptransport.SessionResponse{
		ID:             session.SessionID,
		OrganizationID: session.OrganizationID,
		SectionID:      session.SectionID,
		Name:           session.Name,
		Status:         session.Status,
		StartedAt:      session.StartedAt.UTC().Format(time.RFC3339),
		ClosedAt:       closedAt,
	}
}

func toRecordResponse(record entities.Record) httptransport.RecordResponse {
	return httptransport.RecordResponse{
		ID:               record.RecordID,
		SessionID:        record.SessionID,
		ItemID:           record.ItemID,
		ExpectedQuantity: record.ExpectedQuantity,
		ActualQuantity:   record.ActualQuantity,
		DiffQuantity:     record.Diff(),
		UpdatedAt:        record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
