package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/renoh/cafe-web/config"
	"github.com/renoh/cafe-web/internal/cafeapi"
	"github.com/renoh/cafe-web/internal/ports"
	"github.com/renoh/cafe-web/internal/service"
)

// ServiceContainer holds all initialized application services.
type ServiceContainer struct {
	API  *cafeapi.Client
	Auth *service.AuthService
}

// ServiceDeps contains dependencies for building the service container.
type ServiceDeps struct {
	Config   *config.AppConfig
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// NewServices wires the upstream API client and the auth service.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	api, err := cafeapi.NewClient(cafeapi.Config{
		BaseURL: deps.Config.API.BaseURL,
		Timeout: deps.Config.API.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build api client: %w", err)
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		API:      api,
		Sessions: deps.Sessions,
		TTL:      deps.Config.Session.TTL,
	})

	return ServiceContainer{API: api, Auth: auth}, nil
}
