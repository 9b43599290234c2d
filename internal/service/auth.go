package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/devprojects/internal/config"
)

// AuthService configures the Clerk SDK used by the auth middleware.
type AuthService struct {
	enabled bool
}

// NewAuthService sets the Clerk secret key when one is configured.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	if cfg.Enabled() {
		clerk.SetKey(cfg.SecretKey)
	}
	return &AuthService{enabled: cfg.Enabled()}
}

// Enabled reports whether mutating routes require a Clerk session.
func (s *AuthService) Enabled() bool {
	return s.enabled
}
