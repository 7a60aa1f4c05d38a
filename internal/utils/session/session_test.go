package session

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	var userID int64 = 42

	tok, err := Generate(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := Parse(tok, secret)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %d want %d", claims.UserID, userID)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := Generate(1, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err = Parse(tok, secret); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Generate(2, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err = Parse(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := Parse("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestGenerate_TTLEncoded(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	cases := []struct {
		name string
		ttl  time.Duration
	}{
		{"default", DefaultTTL},
		{"extended", ExtendedTTL},
		{"google", GoogleTTL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := Generate(7, secret, tc.ttl)
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}

			claims, err := Parse(tok, secret)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}

			got := time.Until(claims.ExpiresAt.Time)
			if got > tc.ttl || got < tc.ttl-time.Minute {
				t.Fatalf("expiry out of range: got %v want ~%v", got, tc.ttl)
			}
		})
	}
}
