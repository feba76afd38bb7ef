package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/boardhub/internal/server"
)

// AuthService configures the Clerk SDK used by the auth middleware.
type AuthService struct {
	Enabled bool
}

// NewAuthService sets the Clerk secret key when auth is enabled.
func NewAuthService(s *server.Server) *AuthService {
	if s.Config.Auth.Enabled {
		clerk.SetKey(s.Config.Auth.SecretKey)
	}
	return &AuthService{Enabled: s.Config.Auth.Enabled}
}
