package auth

import (
	"fmt"
	"time"

	"kynetic_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
)

// issueAccessToken creates a signed HS256 access token for the admin user.
// The subject claim carries the admin email, which AuthRequired middleware
// extracts on protected routes.
func issueAccessToken(cfg config.AuthConfig, email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(cfg.GetAccessTokenTTL())

	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.GetJWTAccessSecret()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}

	return signed, expiresAt, nil
}
