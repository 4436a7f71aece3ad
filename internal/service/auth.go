package service

import (
	"crypto/subtle"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

// SessionRegistry issues and validates opaque session tokens.
type SessionRegistry interface {
	Issue() string
	IsValid(token string) bool
	Revoke(token string)
}

// Auth exchanges admin credentials for session tokens. The admin population
// is a single shared account, so there is no user association on the token.
type Auth struct {
	registry  SessionRegistry
	adminUser string
	adminPass string
	logger    *logger.Logger
}

func NewAuth(registry SessionRegistry, adminUser, adminPass string, logger *logger.Logger) *Auth {
	return &Auth{
		registry:  registry,
		adminUser: adminUser,
		adminPass: adminPass,
		logger:    logger,
	}
}

// Login verifies credentials and issues a fresh token. Every successful call
// issues a new token; there is no dedup or per-user tracking.
func (s *Auth) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	if !userOK || !passOK {
		s.logger.Warn("Auth service: rejected login attempt", "username", username)
		return "", model.ErrUnauthorized
	}

	token := s.registry.Issue()
	s.logger.Info("Auth service: admin login successful")
	return token, nil
}

// Logout revokes the presented token. A leaked token stops working
// immediately instead of surviving until the next process restart.
func (s *Auth) Logout(token string) {
	s.registry.Revoke(token)
}

// IsValid reports whether token is currently valid.
func (s *Auth) IsValid(token string) bool {
	return s.registry.IsValid(token)
}
