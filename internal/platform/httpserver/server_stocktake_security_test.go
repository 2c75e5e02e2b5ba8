package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	stocktakeports "tanavent/contexts/inventory/stocktake-service/ports"
	stocktakehttp "tanavent/contexts/inventory/stocktake-service/transport/http"
)

func TestStocktakeRequiresBearerToken(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/stocktake/sessions", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStocktakeSessionLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()
	store := server.stocktake.Store
	store.SeedSection(stocktakeports.SectionRef{SectionID: "section-1", OrganizationID: "org-1"})
	store.SeedMembership("org-1", "alice")
	store.SeedItem(stocktakeports.ItemRef{ItemID: "item-1", SectionID: "section-1", Quantity: 12})

	body := []byte(`{"organizationId":"org-1","sectionId":"section-1","name":"October count"}`)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/stocktake/sessions", "alice", body))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 opening session, got %d body=%s", rr.Code, rr.Body.String())
	}
	var session stocktakehttp.SessionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.Status != "open" {
		t.Fatalf("expected open session, got %+v", session)
	}

	recordBody := []byte(`{"itemId":"item-1","actualQuantity":10}`)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/stocktake/sessions/"+session.ID+"/records", "alice", recordBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 recording count, got %d body=%s", rr.Code, rr.Body.String())
	}
	var record stocktakehttp.RecordResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.ExpectedQuantity != 12 || record.DiffQuantity != -2 {
		t.Fatalf("unexpected record: %+v", record)
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/stocktake/sessions/"+session.ID+"/close", "alice", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 closing session, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := store.ItemQuantity("item-1"); got != 10 {
		t.Fatalf("expected reconciled stock 10, got %v", got)
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/stocktake/sessions/"+session.ID+"/close", "alice", nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double close, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/stocktake/sessions/"+session.ID+"/records", "alice", recordBody))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 recording into closed session, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStocktakeSessionAccessScoped(t *testing.T) {
	server := newTestServer()
	store := server.stocktake.Store
	store.SeedSection(stocktakeports.SectionRef{SectionID: "section-1", OrganizationID: "org-1"})
	store.SeedMembership("org-1", "alice")

	body := []byte(`{"organizationId":"org-1","sectionId":"section-1","name":"October count"}`)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/stocktake/sessions", "alice", body))
	var session stocktakehttp.SessionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/stocktake/sessions/"+session.ID, "mallory", nil))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-member, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/stocktake/sessions/no-such-session", "alice", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d body=%s", rr.Code, rr.Body.String())
	}
}
