package core

// Notifier surfaces toast-style notifications to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
