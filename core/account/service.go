package account

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/pkg/errors"

	"github.com/meucampus/planner/core"
)

const (
	loginErrMsg    = "Ocorreu um erro ao fazer login!"
	registerErrMsg = "Ocorreu um erro ao criar a conta."
	recoveryErrMsg = "Ocorreu um erro ao enviar o link de recuperação."
	resetErrMsg    = "Ocorreu um erro ao redefinir a senha."
	updateErrMsg   = "Ocorreu um erro ao atualizar o perfil."

	loginMsg    = "Login feito com sucesso!"
	registerMsg = "Conta criada com sucesso!"
	recoveryMsg = "Link de recuperação enviado!"
	resetMsg    = "Senha redefinida com sucesso!"
	updateMsg   = "Perfil atualizado com sucesso!"
)

type Service struct {
	api     core.Requester
	session core.Session
	notify  core.Notifier
}

func NewService(api core.Requester, session core.Session, notify core.Notifier) *Service {
	return &Service{api: api, session: session, notify: notify}
}

// Login authenticates and persists the returned token in the session.
func (s *Service) Login(ctx context.Context, creds Credentials) error {
	if err := core.CheckStruct(creds); err != nil {
		return err
	}
	var tok authToken
	if err := s.api.Post(ctx, "/user/login", creds, &tok); err != nil {
		s.notify.Error(core.UserMessage(err, loginErrMsg))
		return err
	}
	if err := s.session.SetToken(tok.Token); err != nil {
		return errors.Wrap(err, "persisting session token")
	}
	s.notify.Success(loginMsg)
	return nil
}

// Logout drops the persisted session.
func (s *Service) Logout() error {
	return s.session.Clear()
}

func (s *Service) Register(ctx context.Context, na NewAccount) error {
	if err := core.CheckStruct(na); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/user", na, nil); err != nil {
		s.notify.Error(core.UserMessage(err, registerErrMsg))
		return err
	}
	s.notify.Success(registerMsg)
	return nil
}

// RecoveryLink asks the server to email a password recovery link.
func (s *Service) RecoveryLink(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: normalizeEmail(email)}
	if err := core.CheckStruct(body); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/user/recovery-link", body, nil); err != nil {
		s.notify.Error(core.UserMessage(err, recoveryErrMsg))
		return err
	}
	s.notify.Success(recoveryMsg)
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, pr PasswordReset) error {
	if err := core.CheckStruct(pr); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/user/reset-password", pr, nil); err != nil {
		s.notify.Error(core.UserMessage(err, resetErrMsg))
		return err
	}
	s.notify.Success(resetMsg)
	return nil
}

func (s *Service) Me(ctx context.Context) (Profile, error) {
	var prof Profile
	if err := s.api.Get(ctx, "/user/me", nil, &prof); err != nil {
		return Profile{}, err
	}
	return prof, nil
}

// UpdateMe edits the profile via multipart form-data, with an optional
// avatar image part.
func (s *Service) UpdateMe(ctx context.Context, up UpdateProfile) (Profile, error) {
	if err := core.CheckStruct(up); err != nil {
		return Profile{}, err
	}
	body, err := multipartBody(up)
	if err != nil {
		return Profile{}, err
	}
	var prof Profile
	if err := s.api.Put(ctx, "/user/me", nil, body, &prof); err != nil {
		s.notify.Error(core.UserMessage(err, updateErrMsg))
		return Profile{}, err
	}
	s.notify.Success(updateMsg)
	return prof, nil
}

// normalizeEmail trims and lowers an email before it goes on the wire.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func multipartBody(up UpdateProfile) (core.RawBody, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	if err := w.WriteField("name", up.Name); err != nil {
		return core.RawBody{}, errors.Wrap(err, "writing name part")
	}
	if err := w.WriteField("email", up.Email); err != nil {
		return core.RawBody{}, errors.Wrap(err, "writing email part")
	}
	if up.Avatar != nil {
		part, err := w.CreateFormFile("image", up.AvatarFilename)
		if err != nil {
			return core.RawBody{}, errors.Wrap(err, "creating image part")
		}
		if _, err := io.Copy(part, up.Avatar); err != nil {
			return core.RawBody{}, errors.Wrap(err, "writing image part")
		}
	}
	if err := w.Close(); err != nil {
		return core.RawBody{}, errors.Wrap(err, "closing multipart body")
	}
	return core.RawBody{ContentType: w.FormDataContentType(), Content: buf}, nil
}
