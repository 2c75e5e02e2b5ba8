package tenancyservice

import (
	"log/slog"

	httpadapter "tanavent/contexts/identity-access/tenancy-service/adapters/http"
	"tanavent/contexts/identity-access/tenancy-service/adapters/memory"
	"tanavent/contexts/identity-access/tenancy-service/application"
	"tanavent/contexts/identity-access/tenancy-service/ports"
)

// Module is the tenancy-service composition root exposed to runtime wiring.
// Service is exported so sibling services can reuse the Authorize guard.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repository,
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
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
