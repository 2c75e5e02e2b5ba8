package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	accountservice "tanavent/contexts/identity-access/account-service"
	tenancyservice "tanavent/contexts/identity-access/tenancy-service"
	catalogservice "tanavent/contexts/inventory/catalog-service"
	stockservice "tanavent/contexts/inventory/stock-service"
	stocktakeservice "tanavent/contexts/inventory/stocktake-service"
	"tanavent/internal/platform/identity"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "tanavent/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	verifier  identity.TokenVerifier
	tenancy   tenancyservice.Module
	account   accountservice.Module
	stock     stockservice.Module
	catalog   catalogservice.Module
	stocktake stocktakeservice.Module
}

func New(
	tenancy tenancyservice.Module,
	account accountservice.Module,
	stock stockservice.Module,
	catalog catalogservice.Module,
	stocktake stocktakeservice.Module,
	verifier identity.TokenVerifier,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		verifier:  verifier,
		tenancy:   tenancy,
		account:   account,
		stock:     stock,
		catalog:   catalog,
		stocktake: stocktake,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /{$}", s.handleLiveness)

	s.mux.HandleFunc("GET /api/organizations", s.handleListOrganizations)
	s.mux.HandleFunc("POST /api/organizations", s.handleCreateOrganization)
	s.mux.HandleFunc("GET /api/organizations/{org_id}/sections", s.handleListSections)
	s.mux.HandleFunc("POST /api/organizations/{org_id}/sections", s.handleCreateSection)
	s.mux.HandleFunc("PUT /api/organizations/{org_id}/sections/{section_id}", s.handleUpdateSection)
	s.mux.HandleFunc("DELETE /api/organizations/{org_id}/sections/{section_id}", s.handleDeleteSection)

	s.mux.HandleFunc("POST /api/users", s.handleRegisterUser)
	s.mux.HandleFunc("PUT /api/users/me", s.handleUpdateProfile)
	s.mux.HandleFunc("GET /api/me/state", s.handleGetState)
	s.mux.HandleFunc("POST /api/me/state", s.handleSaveState)

	s.mux.HandleFunc("GET /api/inventory", s.handleListItems)
	s.mux.HandleFunc("POST /api/inventory", s.handleCreateItem)
	s.mux.HandleFunc("GET /api/inventory/{item_id}", s.handleGetItem)
	s.mux.HandleFunc("PUT /api/inventory/{item_id}", s.handleUpdateItem)
	s.mux.HandleFunc("DELETE /api/inventory/{item_id}", s.handleDeleteItem)

	s.mux.HandleFunc("GET /api/categories", s.handleListCategories)
	s.mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	s.mux.HandleFunc("PUT /api/categories/{category_id}", s.handleUpdateCategory)
	s.mux.HandleFunc("DELETE /api/categories/{category_id}", s.handleDeleteCategory)

	s.mux.HandleFunc("GET /api/suppliers", s.handleListSuppliers)
	s.mux.HandleFunc("POST /api/suppliers", s.handleCreateSupplier)
	s.mux.HandleFunc("PUT /api/suppliers/{supplier_id}", s.handleUpdateSupplier)
	s.mux.HandleFunc("DELETE /api/suppliers/{supplier_id}", s.handleDeleteSupplier)

	s.mux.HandleFunc("GET /api/stocktake/sessions", s.handleListStocktakeSessions)
	s.mux.HandleFunc("POST /api/stocktake/sessions", s.handleOpenStocktakeSession)
	s.mux.HandleFunc("GET /api/stocktake/sessions/{session_id}", s.handleGetStocktakeSession)
	s.mux.HandleFunc("PUT /api/stocktake/sessions/{session_id}/records", s.handleRecordStocktakeCount)
	s.mux.HandleFunc("POST /api/stocktake/sessions/{session_id}/close", s.handleCloseStocktakeSession)
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Tanavent API"))
}

type errorWriter func(w http.ResponseWriter, status int, code string, message string)

// authenticate resolves the caller from the bearer token. Any verification
// failure reads as 401; a missing issuer configuration is a deployment fault
// and reads as 500.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request, writeError errorWriter) (identity.Identity, bool) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return identity.Identity{}, false
	}

	caller, err := s.verifier.Verify(r.Context(), strings.TrimSpace(parts[1]))
	if err != nil {
		if errors.Is(err, identity.ErrNotConfigured) {
			s.logger.Error("identity verifier unavailable",
				"event", "identity_not_configured",
				"module", "internal/platform/httpserver",
				"layer", "platform",
			)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
			return identity.Identity{}, false
		}
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
		return identity.Identity{}, false
	}
	return caller, true
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, target any, writeError errorWriter) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
