package core

// Session is the persisted auth state shared by the whole app.
// It is read by the HTTP client on every request and written by
// login, logout and 401 handling; last writer wins.
type Session interface {
	// Token returns the persisted token, if any. Implementations may
	// report an expired token as absent.
	Token() (string, bool)
	SetToken(token string) error
	Clear() error
}
