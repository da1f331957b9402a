// Package services contains server-side business logic. UserService handles
// sign-up and sign-in and issues session tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/cryptox"
	"github.com/dmitrijs2005/plantpal/internal/logging"
	"github.com/dmitrijs2005/plantpal/internal/server/auth"
	"github.com/dmitrijs2005/plantpal/internal/server/config"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/repomanager"
)

// ErrMissingFields is returned when a required auth field is empty.
var ErrMissingFields = fmt.Errorf("%w: missing required fields", common.ErrorValidation)

// SignupObserver is notified when an account is created.
type SignupObserver interface {
	ObserveSignup()
}

// UserService provides authentication-related operations.
type UserService struct {
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	seeder        *Seeder
	log           logging.Logger
	observer      SignupObserver
}

// NewUserService constructs a UserService. A non-nil seeder gives every new
// account the demo collection.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, seeder *Seeder, log logging.Logger, observer SignupObserver) *UserService {
	return &UserService{
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		seeder:        seeder,
		log:           log.With("module", "users"),
		observer:      observer,
	}
}

// SignUp registers a new account and returns a session token. A taken email
// yields common.ErrorAlreadyExists and no token.
func (s *UserService) SignUp(ctx context.Context, fullName, email, password string) (string, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}

	salt, verifier := cryptox.HashPassword([]byte(password))
	user := &models.User{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Salt:      salt,
		Verifier:  verifier,
		CreatedAt: time.Now().UTC(),
	}

	err := s.repomanager.InTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if _, err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		if s.seeder != nil {
			return s.seeder.Seed(ctx, r, user.ID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		s.log.Error(ctx, "sign-up failed", "error", err)
		s.discardUser(ctx, email)
		return "", common.ErrorInternal
	}

	if s.observer != nil {
		s.observer.ObserveSignup()
	}
	s.log.Info(ctx, "user registered", "user_id", user.ID)

	return s.issueToken(user.ID)
}

// SignIn checks the credentials and returns a session token. Unknown email
// and wrong password both yield common.ErrorUnauthorized.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Spend the same work as a real check so timing does not reveal
			// which emails exist.
			cryptox.VerifyPassword([]byte(password), s.getRandomSalt(), nil)
			return "", common.ErrorUnauthorized
		}
		s.log.Error(ctx, "sign-in lookup failed", "error", err)
		return "", common.ErrorInternal
	}

	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.Verifier) {
		return "", common.ErrorUnauthorized
	}

	return s.issueToken(user.ID)
}

// Authenticate validates a session token and returns its user ID.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// discardUser removes an account left behind by a failed sign-up on
// backends whose InTx is not atomic, so the email can be registered again.
func (s *UserService) discardUser(ctx context.Context, email string) {
	err := s.repomanager.Users().DeleteByEmail(ctx, email)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.log.Error(ctx, "cannot discard failed sign-up", "error", err)
	}
}

func (s *UserService) getRandomSalt() []byte { return common.GenerateRandByteArray(cryptox.SaltSize) }

func (s *UserService) issueToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
