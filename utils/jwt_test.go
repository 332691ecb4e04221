package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/models"

	"github.com/golang-jwt/jwt/v5"
)

func testUser() models.User {
	return models.User{
		ID:     7,
		Email:  "jane@example.com",
		RoleID: 2,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, issued, err := GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if issued.ExpiresAt == nil || !issued.ExpiresAt.After(time.Now()) {
		t.Fatal("issued claims should expire in the future")
	}

	claims, err := VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", claims.Email)
	}
	if claims.RoleID != 2 {
		t.Errorf("RoleID = %d, want 2", claims.RoleID)
	}
}

func TestVerifyAccessTokenEmpty(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := VerifyAccessToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := VerifyAccessToken("   "); err == nil {
		t.Fatal("expected error for blank token")
	}
}

func TestVerifyAccessTokenTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := VerifyAccessToken(tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.LoadJWTConfig()
	now := time.Now()
	claims := &JWTClaims{
		UserID:    7,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   strconv.Itoa(7),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyAccessToken(signed); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.LoadJWTConfig()
	now := time.Now()
	claims := &JWTClaims{
		UserID:    7,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   strconv.Itoa(7),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.SecretKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyAccessToken(signed); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyAccessTokenWrongType(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.LoadJWTConfig()
	now := time.Now()
	claims := &JWTClaims{
		UserID:    7,
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   strconv.Itoa(7),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.SecretKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyAccessToken(signed); err == nil {
		t.Fatal("expected error for non-access token type")
	}
}
