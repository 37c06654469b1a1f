package account

import "bytes"

// Profile is the authenticated user as returned by /user/me.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"` // URL
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NewAccount contains information needed to register a new account.
type NewAccount struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordReset completes a recovery flow started by RecoveryLink.
type PasswordReset struct {
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
}

// UpdateProfile edits the authenticated user; Avatar, when set, is uploaded
// as the multipart "image" part.
type UpdateProfile struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`

	Avatar         *bytes.Buffer `json:"-"`
	AvatarFilename string        `json:"-"`
}

// authToken is the /user/login response data.
type authToken struct {
	Token string `json:"token"`
}
