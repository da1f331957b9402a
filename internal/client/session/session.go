// Package session tracks whether the CLI user is signed in. The session
// token is persisted in the local metadata store and trusted on presence
// alone; the server rejects it if it is no longer valid.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/plantpal/internal/client/api"
	"github.com/dmitrijs2005/plantpal/internal/client/repositories/metadata"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Metadata keys.
const (
	KeyToken = "session_token"
	KeyEmail = "session_email"
)

// FailedMessage is shown when the server gives no better reason.
const FailedMessage = "Failed to authenticate. Please try again."

var (
	ErrMissingFields = errors.New("please fill in all required fields")
	ErrBusy          = errors.New("already signed in or signing in")
)

// Authenticator is the part of the API client the session needs.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, fullName, email, password string) (string, error)
	SetToken(token string)
}

type Session struct {
	mu    sync.Mutex
	state State
	email string
	err   error

	auth  Authenticator
	store metadata.Repository
}

func New(auth Authenticator, store metadata.Repository) *Session {
	return &Session{auth: auth, store: store}
}

// Restore resumes a persisted session. Any non-empty stored token counts as
// signed in.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		return false, err
	}
	if !ok || token == "" {
		s.state = Anonymous
		return false, nil
	}

	email, _, err := s.store.Get(ctx, KeyEmail)
	if err != nil {
		return false, err
	}

	s.auth.SetToken(token)
	s.email = email
	s.state = Authenticated
	return true, nil
}

func (s *Session) SignIn(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return s.fail(ErrMissingFields)
	}
	return s.authenticate(ctx, email, func() (string, error) {
		return s.auth.SignIn(ctx, email, password)
	})
}

func (s *Session) SignUp(ctx context.Context, fullName, email, password string) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return s.fail(ErrMissingFields)
	}
	return s.authenticate(ctx, email, func() (string, error) {
		return s.auth.SignUp(ctx, fullName, email, password)
	})
}

func (s *Session) authenticate(ctx context.Context, email string, call func() (string, error)) error {
	s.mu.Lock()
	if s.state != Anonymous {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = Authenticating
	s.err = nil
	s.mu.Unlock()

	token, err := call()
	if err == nil && token == "" {
		err = errors.New(FailedMessage)
	}
	if err == nil {
		err = s.persist(ctx, token, email)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = Anonymous
		s.err = userMessage(err)
		return s.err
	}

	s.auth.SetToken(token)
	s.email = strings.ToLower(strings.TrimSpace(email))
	s.state = Authenticated
	return nil
}

func (s *Session) persist(ctx context.Context, token, email string) error {
	return s.store.SetMany(ctx, map[string]string{
		KeyToken: token,
		KeyEmail: strings.ToLower(strings.TrimSpace(email)),
	})
}

// SignOut forgets the token locally. The server keeps no session state.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.auth.SetToken("")
	s.email = ""
	s.err = nil
	s.state = Anonymous
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Err is the message of the last failed sign-in or sign-up.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return err
}

func userMessage(err error) error {
	var ae *api.APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return errors.New(ae.Message)
	}
	return errors.New(FailedMessage)
}
