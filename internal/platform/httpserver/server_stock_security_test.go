package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	stockports "tanavent/contexts/inventory/stock-service/ports"
	stockhttp "tanavent/contexts/inventory/stock-service/transport/http"
)

func TestInventoryRequiresBearerToken(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/inventory?sectionId=section-1", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryListGuardChain(t *testing.T) {
	server := newTestServer()
	server.stock.Store.SeedSection(stockports.SectionRef{SectionID: "section-1", OrganizationID: "org-1"})
	server.stock.Store.SeedMembership("org-1", "alice")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/inventory", "alice", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without sectionId, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/inventory?sectionId=no-such-section", "alice", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown section, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/inventory?sectionId=section-1", "mallory", nil))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-member, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/inventory?sectionId=section-1", "alice", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for member, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryCreateReturnsCreatedItem(t *testing.T) {
	server := newTestServer()
	server.stock.Store.SeedSection(stockports.SectionRef{SectionID: "section-1", OrganizationID: "org-1"})
	server.stock.Store.SeedMembership("org-1", "alice")

	body := []byte(`{"organizationId":"org-1","sectionId":"section-1","name":"Ch. Margaux"}`)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/inventory", "alice", body))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var item stockhttp.ItemResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.ID == "" || item.Unit != "pc" || item.Quantity != 0 || item.Vintage != nil {
		t.Fatalf("unexpected created item: %+v", item)
	}
}

func TestInventoryCreateBadPairingBeatsMembership(t *testing.T) {
	server := newTestServer()
	server.stock.Store.SeedSection(stockports.SectionRef{SectionID: "section-1", OrganizationID: "org-1"})
	server.stock.Store.SeedSection(stockports.SectionRef{SectionID: "section-2", OrganizationID: "org-2"})

	body := []byte(`{"organizationId":"org-1","sectionId":"section-2","name":"Misfiled"}`)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/inventory", "mallory", body))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad pairing, got %d body=%s", rr.Code, rr.Body.String())
	}

	body = []byte(`{"organizationId":"org-1","sectionId":"section-1","name":"Misfiled"}`)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/inventory", "mallory", body))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for valid pairing without membership, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInventoryItemByIDStatusCodes(t *testing.T) {
	server := newTestServer()
	server.stock.Store.SeedSection(stockports.SectionRef{SectionID: "section-1", OrganizationID: "org-1"})
	server.stock.Store.SeedMembership("org-1", "alice")

	body := []byte(`{"organizationId":"org-1","sectionId":"section-1","name":"Barolo"}`)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/inventory", "alice", body))
	var item stockhttp.ItemResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/inventory/no-such-item", "alice", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/inventory/"+item.ID, "mallory", nil))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-member, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authedRequest(http.MethodDelete, "/api/inventory/"+item.ID, "alice", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting own item, got %d body=%s", rr.Code, rr.Body.String())
	}
}
