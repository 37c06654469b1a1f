package sessionsvc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.StandardClaims{}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = expiresAt.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")
	store := NewFileStore(path)

	if _, ok := store.Token(); ok {
		t.Error("Token() ok = true on a fresh store")
	}

	tok := signedToken(t, time.Now().Add(time.Hour))
	if err := store.SetToken(tok); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	got, ok := store.Token()
	if !ok || got != tok {
		t.Errorf("Token() = %q, %v; want stored token", got, ok)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("Token() ok = true after Clear()")
	}
	// clearing an already empty store is not an error
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() error = %v on empty store", err)
	}
}

func TestFileStoreExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	store := NewFileStore(path)

	if err := store.SetToken(signedToken(t, time.Now().Add(-time.Hour))); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Token(); ok {
		t.Error("Token() ok = true for an expired token")
	}
	// the stale file is dropped so the next read does not re-parse it
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expired session file still present: %v", err)
	}
}

func TestFileStoreOpaqueToken(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{name: "not a jwt", tok: "opaque-session-token"},
		{name: "jwt without exp", tok: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tt.tok
			if tok == "" {
				tok = signedToken(t, time.Time{})
			}
			store := NewFileStore(filepath.Join(t.TempDir(), "session"))
			if err := store.SetToken(tok); err != nil {
				t.Fatal(err)
			}
			if got, ok := store.Token(); !ok || got != tok {
				t.Errorf("Token() = %q, %v; opaque tokens never expire locally", got, ok)
			}
		})
	}
}
