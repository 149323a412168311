package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plain text")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("not-a-hash", "s3cret") {
		t.Fatal("garbage hash accepted")
	}
}

func TestHashPasswordCostFallback(t *testing.T) {
	// Out-of-range costs degrade to the bcrypt default instead of failing.
	for _, cost := range []int{0, -1, 99} {
		hash, err := HashPassword("s3cret", cost)
		if err != nil {
			t.Fatalf("cost %d: %v", cost, err)
		}
		if !VerifyPassword(hash, "s3cret") {
			t.Fatalf("cost %d: hash does not verify", cost)
		}
	}
}

func TestNewAccessToken(t *testing.T) {
	access, err := NewAccessToken("secret", 42, "ana", 8)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	tok, err := jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["username"] != "ana" {
		t.Fatalf("unexpected username claim: %v", claims["username"])
	}
	if sub, ok := claims["sub"].(float64); !ok || sub != 42 {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}

	ttl := time.Until(access.Exp)
	if ttl < 7*time.Hour+59*time.Minute || ttl > 8*time.Hour {
		t.Fatalf("unexpected lifetime: %v", ttl)
	}

	// A different secret must fail verification.
	tok, err = jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	if err == nil && tok.Valid {
		t.Fatal("token verified with wrong secret")
	}
}
