package stockservice

import (
	"log/slog"

	httpadapter "tanavent/contexts/inventory/stock-service/adapters/http"
	"tanavent/contexts/inventory/stock-service/adapters/memory"
	"tanavent/contexts/inventory/stock-service/application"
	"tanavent/contexts/inventory/stock-service/ports"
)

// Module is the stock-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Sections    ports.SectionReader
	Memberships ports.MembershipReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repository,
		Sections:    deps.Sections,
		Memberships: deps.Memberships,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Sections:    store,
		Memberships: store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
