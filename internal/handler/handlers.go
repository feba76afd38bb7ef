// Package handler is the HTTP layer: it binds and validates requests,
// calls the services and writes responses.
package handler

import (
	"github.com/deppfellow/boardhub/internal/server"
	"github.com/deppfellow/boardhub/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Member  *MemberHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Member:  NewMemberHandler(s, services.Member),
	}
}
