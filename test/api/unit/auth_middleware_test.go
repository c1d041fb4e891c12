package unit

import (
	"context"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/adapters/middleware"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
	"github.com/talentbridge/hr-suite/visitor-management-service/test/mocks"
)

func signTestToken(t *testing.T, key *rsa.PrivateKey, userID, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(expiresIn).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	key := generateTestKey(t)
	otherKey := generateTestKey(t)
	sessions := mocks.NewMockRedisClient()
	authMiddleware := middleware.NewAuthMiddleware(&key.PublicKey, sessions)

	const userID = "65f0a1b2c3d4e5f6a7b8c9d0"

	protected := authMiddleware.RequireRole([]string{domain.RoleHR}, func(w http.ResponseWriter, r *http.Request) {
		if got, _ := r.Context().Value(middleware.UserIDKey).(string); got != userID {
			t.Errorf("expected user id %s in context, got %q", userID, got)
		}
		w.WriteHeader(http.StatusOK)
	})

	validToken := signTestToken(t, key, userID, domain.RoleHR, time.Hour)

	installSession := func() {
		sessions.Set(context.Background(), ports.SessionKey(userID), validToken, time.Hour)
	}

	tests := []struct {
		name         string
		header       string
		setup        func()
		expectedCode int
	}{
		{
			name:         "missing_header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed_header",
			header:       "Token abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "token_signed_with_wrong_key",
			header:       "Bearer " + signTestToken(t, otherKey, userID, domain.RoleHR, time.Hour),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "expired_token",
			header:       "Bearer " + signTestToken(t, key, userID, domain.RoleHR, -time.Hour),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "valid_token_without_session",
			header:       "Bearer " + validToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong_role",
			header:       "Bearer " + signTestToken(t, key, userID, "employee", time.Hour),
			setup:        func() { sessions.Set(context.Background(), ports.SessionKey(userID), "", time.Hour) },
			expectedCode: http.StatusUnauthorized, // session holds a different token
		},
		{
			name:         "valid_token_with_session",
			header:       "Bearer " + validToken,
			setup:        installSession,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions.Del(context.Background(), ports.SessionKey(userID))
			if tt.setup != nil {
				tt.setup()
			}

			req := httptest.NewRequest(http.MethodGet, "/getAllVisitor", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d (%s)", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RoleMismatchIsForbidden(t *testing.T) {
	key := generateTestKey(t)
	sessions := mocks.NewMockRedisClient()
	authMiddleware := middleware.NewAuthMiddleware(&key.PublicKey, sessions)

	const userID = "65f0a1b2c3d4e5f6a7b8c9d1"
	token := signTestToken(t, key, userID, "employee", time.Hour)
	sessions.Set(context.Background(), ports.SessionKey(userID), token, time.Hour)

	protected := authMiddleware.RequireRole([]string{domain.RoleHR}, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a disallowed role")
	})

	req := httptest.NewRequest(http.MethodGet, "/getAllVisitor", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	protected(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
