package auth

import (
	"context"
	"testing"
	"time"

	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-access-secret"
	testEmail    = "admin@kynetic.no"
	testPassword = "correct-horse-battery"
)

type testAuthConfig struct {
	passwordHash string
}

func (c testAuthConfig) GetJWTAccessSecret() string       { return testSecret }
func (c testAuthConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (c testAuthConfig) GetAdminEmail() string            { return testEmail }
func (c testAuthConfig) GetAdminPasswordHash() string     { return c.passwordHash }

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewService(testAuthConfig{passwordHash: string(hash)}, logger.New("development"))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Login(context.Background(), testEmail, testPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Email != testEmail {
		t.Fatalf("session email = %q", session.Email)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Fatalf("token already expired: %v", session.ExpiresAt)
	}

	parsed, err := jwt.Parse(session.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not validate: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != testEmail {
		t.Fatalf("sub claim = %v, want admin email", claims["sub"])
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Login(context.Background(), "Admin@Kynetic.NO", testPassword); err != nil {
		t.Fatalf("Login with cased email: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), testEmail, "wrong")
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("error = %v, want unauthorized", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "someone@else.no", testPassword)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("error = %v, want unauthorized", err)
	}

	// Same message for unknown email and wrong password.
	_, errPwd := svc.Login(context.Background(), testEmail, "wrong")
	if err.Error() != errPwd.Error() {
		t.Fatalf("distinguishable failures: %q vs %q", err.Error(), errPwd.Error())
	}
}
