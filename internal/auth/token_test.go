package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const testSecret = "test-secret-at-least-32-chars-long-for-hostel"

func TestTokenManager_IssueAndValidate(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret, "hostel-test", 15*time.Minute)
	userID := uuid.New()

	for _, role := range []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleKitchen, domain.UserRoleWarden} {
		token, err := m.Issue(userID, role)
		if err != nil {
			t.Fatalf("Issue(%s): %v", role, err)
		}

		gotID, gotRole, err := m.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken(%s): %v", role, err)
		}
		if gotID != userID {
			t.Errorf("user id: got %s, want %s", gotID, userID)
		}
		if gotRole != string(role) {
			t.Errorf("role: got %q, want %q", gotRole, role)
		}
	}
}

func TestTokenManager_Issue_UnknownRole(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret, "hostel-test", time.Minute)
	if _, err := m.Issue(uuid.New(), domain.UserRole("chef")); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestTokenManager_ValidateToken_Rejects(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret, "hostel-test", 15*time.Minute)
	valid, err := m.Issue(uuid.New(), domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	expired := NewTokenManager(testSecret, "hostel-test", -time.Hour)
	expiredToken, err := expired.Issue(uuid.New(), domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("Issue expired: %v", err)
	}

	otherIssuer, err := NewTokenManager(testSecret, "someone-else", time.Minute).Issue(uuid.New(), domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("Issue other issuer: %v", err)
	}

	otherSecret, err := NewTokenManager("another-secret-that-is-long-enough-too", "hostel-test", time.Minute).
		Issue(uuid.New(), domain.UserRoleAdmin)
	if err != nil {
		t.Fatalf("Issue other secret: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"expired", expiredToken},
		{"wrong issuer", otherIssuer},
		{"wrong secret", otherSecret},
		{"tampered", valid[:len(valid)-2] + "xx"},
		{"bad subject", signRaw(t, staffClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "not-a-uuid",
				Issuer:    "hostel-test",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			Role: "admin",
		})},
		{"unknown role", signRaw(t, staffClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				Issuer:    "hostel-test",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			Role: "chef",
		})},
		{"no expiry", signRaw(t, staffClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: uuid.NewString(),
				Issuer:  "hostel-test",
			},
			Role: "admin",
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := m.ValidateToken(context.Background(), tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokenManager_ValidateToken_RejectsNoneAlg(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret, "hostel-test", time.Minute)
	claims := staffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "hostel-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		Role: "admin",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, _, err := m.ValidateToken(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func signRaw(t *testing.T, claims staffClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}
