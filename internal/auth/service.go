// Package auth implements admin authentication for the dashboard. There is a
// single admin credential, configured at startup; a successful login issues a
// short-lived JWT that the admin routes require.
package auth

import (
	"context"
	"strings"
	"time"

	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/config"
	"kynetic_backend/platform/logger"

	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "invalid email or password"

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	Email       string
}

// Service validates admin credentials and issues access tokens.
type Service struct {
	cfg config.AuthConfig
	log *logger.Logger
	now func() time.Time
}

// NewService creates a new auth service.
func NewService(cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log, now: time.Now}
}

// Login checks the credentials against the configured admin account.
// Email comparison is case-insensitive; the password is checked against the
// stored bcrypt hash. Both failure modes return the same error so callers
// cannot distinguish a wrong email from a wrong password.
func (s *Service) Login(_ context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !strings.EqualFold(email, s.cfg.GetAdminEmail()) {
		// Burn a bcrypt comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAdminPasswordHash()), []byte(password))
		s.log.AuthEvent("login", email, false, "unknown email")
		return Session{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAdminPasswordHash()), []byte(password)); err != nil {
		s.log.AuthEvent("login", email, false, "wrong password")
		return Session{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, expiresAt, err := issueAccessToken(s.cfg, email, s.now())
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindInternal, "failed to issue token", err)
	}

	s.log.AuthEvent("login", email, true, "")
	return Session{AccessToken: token, ExpiresAt: expiresAt, Email: email}, nil
}
