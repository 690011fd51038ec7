package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/clock"
	"github.com/snakesocial/snakesocial-go/internal/dependencies/random"
	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or revoked session")
)

// Session pairs a token with the user it authenticates
type Session struct {
	Token string
	User  model.User
}

// Service handles accounts, credentials and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// mu serializes the uniqueness checks against the subsequent writes so
	// two concurrent signups cannot both claim the same email or username
	mu sync.Mutex
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Signup creates a new account and an initial session. Email and username
// uniqueness are checked here; violations surface as model.ErrEmailTaken and
// model.ErrUsernameTaken.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
		return nil, model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        model.UserID(s.random.ID("u_")),
		Username:  username,
		Email:     email,
		CreatedAt: s.clock.Now(),
	}

	cred := &model.Credential{
		UserID:       user.ID,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.storage.SaveCredential(ctx, cred); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		slog.String("user_id", string(user.ID)),
		slog.String("username", user.Username),
	)

	return s.createSession(ctx, user)
}

// Login authenticates by email and password and creates a session.
// An unknown email and a password mismatch are indistinguishable to callers.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	cred, err := s.storage.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrCredentialNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUser(ctx, cred.UserID)
	if err != nil {
		return nil, err
	}

	return s.createSession(ctx, user)
}

// VerifyPassword reports whether the password matches the stored credential
// for email. It mutates nothing and is safe to call repeatedly.
func (s *Service) VerifyPassword(ctx context.Context, email, password string) bool {
	cred, err := s.storage.GetCredentialByEmail(ctx, email)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) == nil
}

// GetUser returns the user with the given id
func (s *Service) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// GetUserByEmail returns the user registered under email (case-sensitive match)
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.storage.GetUserByEmail(ctx, email)
}

// GetUserByUsername returns the user with the given username (case-sensitive match)
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.storage.GetUserByUsername(ctx, username)
}

// CreateSession issues a fresh token for an existing user
func (s *Service) CreateSession(ctx context.Context, userID model.UserID) (*Session, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, user)
}

// GetUserFromToken resolves a session token to its user.
// Returns ErrInvalidSession for tokens that were never issued or were revoked.
func (s *Service) GetUserFromToken(ctx context.Context, token string) (*model.User, error) {
	session, err := s.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return s.storage.GetUser(ctx, session.UserID)
}

// Logout revokes a session. Revoking an unknown token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.storage.DeleteSession(ctx, token)
}

// createSession stores a new session for a user
func (s *Service) createSession(ctx context.Context, user *model.User) (*Session, error) {
	session := &model.Session{
		Token:     s.random.ID("sess_"),
		UserID:    user.ID,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return &Session{
		Token: session.Token,
		User:  *user,
	}, nil
}
