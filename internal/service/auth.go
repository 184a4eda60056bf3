package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_auth_service.go -package=mocks -mock_names=AuthService=MockAuthService devdiary/internal/service AuthService

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"devdiary/internal/auth"
	"devdiary/internal/contextutil"
	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

// DemoUserEmail is the account seeded into an empty store.
const DemoUserEmail = "dev@example.com"

// SessionStore persists the current user of a local session.
type SessionStore interface {
	SetCurrent(ctx context.Context, userID int64) error
	ClearCurrent(ctx context.Context) error
	Current(ctx context.Context) (userID int64, ok bool, err error)
}

// TokenIssuer issues and verifies session tokens.
type TokenIssuer interface {
	IssuePair(userID int64) (auth.TokenPair, error)
	Parse(token string, want auth.TokenType) (int64, error)
}

// Credentials is an email and password pair.
type Credentials struct {
	Email    string
	Password string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	auth.TokenPair
	User UserView `json:"user"`
}

// AuthService manages accounts and sessions.
type AuthService interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, creds Credentials) (UserView, error)
	// Login starts a session for the account with the given email.
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	// Me returns the session's user.
	Me(ctx context.Context, s journal.Session) (UserView, error)
	// Logout ends the local session. It always succeeds unless storage fails.
	Logout(ctx context.Context) error
	// Authenticate resolves an access token to a session.
	Authenticate(ctx context.Context, accessToken string) (journal.Session, error)
	// CurrentSession returns the persisted local session, which may be anonymous.
	CurrentSession(ctx context.Context) (journal.Session, error)
	// SeedDemoUser creates the demo account unless it already exists.
	SeedDemoUser(ctx context.Context) error
}

// authService implements AuthService.
type authService struct {
	store          storage.RecordStore
	sessions       SessionStore
	tokens         TokenIssuer
	verifyPassword bool
	now            func() time.Time
}

// NewAuthService creates a new AuthService. When verifyPassword is false any
// password is accepted at login, matching the single-user local mode.
func NewAuthService(store storage.RecordStore, sessions SessionStore, tokens TokenIssuer, verifyPassword bool) AuthService {
	return &authService{
		store:          store,
		sessions:       sessions,
		tokens:         tokens,
		verifyPassword: verifyPassword,
		now:            time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(creds Credentials) error {
	if creds.Email == "" {
		return &ValidationError{Field: "email", Message: "cannot be empty"}
	}
	if _, err := mail.ParseAddress(creds.Email); err != nil {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if creds.Password == "" {
		return &ValidationError{Field: "password", Message: "cannot be empty"}
	}
	// bcrypt only reads the first 72 bytes.
	if len(creds.Password) > 72 {
		return &ValidationError{Field: "password", Message: "must be at most 72 bytes"}
	}
	return nil
}

// Register creates a new account.
func (s *authService) Register(ctx context.Context, creds Credentials) (UserView, error) {
	logger := contextutil.LoggerFromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := validateCredentials(creds); err != nil {
		logger.WarnContext(ctx, "invalid registration", "error", err)
		return UserView{}, err
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return UserView{}, WrapError(err, "failed to hash password")
	}

	user, err := s.store.CreateUser(ctx, storage.User{
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		logger.InfoContext(ctx, "registration for existing email", "email", creds.Email)
		return UserView{}, WrapError(ErrConflict, "email already registered")
	}
	if err != nil {
		return UserView{}, storeError(err, "users")
	}

	logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return newUserView(user), nil
}

// Login verifies the account and starts a session.
func (s *authService) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	user, err := s.store.UserByEmail(ctx, normalizeEmail(creds.Email))
	if errors.Is(err, storage.ErrNotFound) {
		logger.InfoContext(ctx, "login for unknown email")
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, storeError(err, "users")
	}

	if s.verifyPassword {
		if user.PasswordHash == "" || auth.CheckPassword(user.PasswordHash, creds.Password) != nil {
			logger.InfoContext(ctx, "login with wrong password", "user_id", user.ID)
			return LoginResult{}, ErrInvalidCredentials
		}
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return LoginResult{}, WrapError(err, "failed to issue tokens")
	}
	if err := s.sessions.SetCurrent(ctx, user.ID); err != nil {
		return LoginResult{}, WrapError(err, "failed to store session")
	}

	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return LoginResult{TokenPair: pair, User: newUserView(user)}, nil
}

// Refresh issues a new token pair from a valid refresh token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	userID, err := s.tokens.Parse(refreshToken, auth.RefreshToken)
	if err != nil {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "rejected refresh token", "error", err)
		return auth.TokenPair{}, ErrUnauthenticated
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return auth.TokenPair{}, ErrUnauthenticated
		}
		return auth.TokenPair{}, storeError(err, "users")
	}

	pair, err := s.tokens.IssuePair(userID)
	if err != nil {
		return auth.TokenPair{}, WrapError(err, "failed to issue tokens")
	}
	return pair, nil
}

// Me returns the user behind the session.
func (s *authService) Me(ctx context.Context, sess journal.Session) (UserView, error) {
	if err := requireSession(sess); err != nil {
		return UserView{}, err
	}
	user, err := s.store.UserByID(ctx, sess.UserID)
	if err != nil {
		return UserView{}, storeError(err, "user")
	}
	return newUserView(user), nil
}

// Logout clears the local session.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.ClearCurrent(ctx); err != nil {
		return WrapError(err, "failed to clear session")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "user logged out")
	return nil
}

// Authenticate resolves an access token. Tokens of deleted users are rejected.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (journal.Session, error) {
	userID, err := s.tokens.Parse(accessToken, auth.AccessToken)
	if err != nil {
		return journal.Session{}, ErrUnauthenticated
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return journal.Session{}, ErrUnauthenticated
		}
		return journal.Session{}, storeError(err, "users")
	}
	return journal.Session{UserID: userID}, nil
}

// CurrentSession returns the persisted local session. A stored id whose
// user no longer exists yields an anonymous session.
func (s *authService) CurrentSession(ctx context.Context) (journal.Session, error) {
	userID, ok, err := s.sessions.Current(ctx)
	if err != nil {
		return journal.Session{}, WrapError(err, "failed to read session")
	}
	if !ok {
		return journal.Session{}, nil
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return journal.Session{}, nil
		}
		return journal.Session{}, storeError(err, "users")
	}
	return journal.Session{UserID: userID}, nil
}

// SeedDemoUser creates the passwordless demo account.
func (s *authService) SeedDemoUser(ctx context.Context) error {
	_, err := s.store.CreateUser(ctx, storage.User{
		Email:     DemoUserEmail,
		CreatedAt: s.now().UTC(),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil
	}
	if err != nil {
		return storeError(err, "users")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "seeded demo user", "email", DemoUserEmail)
	return nil
}
