package services

import (
	"strings"
	"testing"
	"time"
)

func testTokens() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "portfolio-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	tokens := testTokens()
	hash, err := tokens.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash has unexpected format: %q", hash)
	}
	if !tokens.VerifyPassword("correct horse battery staple", hash) {
		t.Error("correct password rejected")
	}
	if tokens.VerifyPassword("wrong password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	tokens := testTokens()
	a, err := tokens.HashPassword("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tokens.HashPassword("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tokens := testTokens()
	signed, exp, err := tokens.CreateAccessToken("user-1", "owner@example.com")
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}
	if exp <= time.Now().Unix() {
		t.Errorf("token already expired: exp = %d", exp)
	}

	token, claims, err := tokens.ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if !token.Valid {
		t.Fatal("parsed token is not valid")
	}
	if claims["sub"] != "user-1" {
		t.Errorf("sub = %v, want user-1", claims["sub"])
	}
	if claims["typ"] != "access" {
		t.Errorf("typ = %v, want access", claims["typ"])
	}
	if claims["email"] != "owner@example.com" {
		t.Errorf("email = %v, want owner@example.com", claims["email"])
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	tokens := testTokens()
	signed, err := tokens.CreateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("CreateRefreshToken() error = %v", err)
	}
	_, claims, err := tokens.ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims["typ"] != "refresh" {
		t.Errorf("typ = %v, want refresh", claims["typ"])
	}
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	tokens := testTokens()
	other := tokens
	other.Issuer = "someone-else"
	signed, _, err := other.CreateAccessToken("user-1", "owner@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tokens.ParseToken(signed); err == nil {
		t.Error("token from a different issuer was accepted")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tokens := testTokens()
	other := tokens
	other.Secret = []byte("another-secret")
	signed, _, err := other.CreateAccessToken("user-1", "owner@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tokens.ParseToken(signed); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}
