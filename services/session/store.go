package sessionsvc

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/meucampus/planner/core"
)

// FileStore persists the session token in a local file, playing the role
// browser storage plays for the web client.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ core.Session = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(raw))
	if tok == "" {
		return "", false
	}
	if expired(tok) {
		_ = os.Remove(s.path)
		return "", false
	}
	return tok, true
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// expired reports whether tok is a JWT whose exp claim has passed.
// The signature is not verified (that is the server's job); opaque
// tokens are never considered expired locally.
func expired(tok string) bool {
	var claims jwt.StandardClaims
	if _, _, err := new(jwt.Parser).ParseUnverified(tok, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() >= claims.ExpiresAt
}

// MemStore is an in-memory Session for tests and throwaway runs.
type MemStore struct {
	mu  sync.Mutex
	tok string
}

var _ core.Session = (*MemStore)(nil)

func NewMemStore(token ...string) *MemStore {
	s := new(MemStore)
	if len(token) > 0 {
		s.tok = token[0]
	}
	return s
}

func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok, s.tok != ""
}

func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = token
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	return nil
}
