// Package service implements registration, login and session handling.
package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwttoken "ecrc42/internal/jwt_token"
	"ecrc42/internal/user/metrics"
	"ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

// maxCodeAttempts bounds retries when a generated code collides.
const maxCodeAttempts = 5

// adminNamespace derives a stable admin user id from the configured email.
var adminNamespace = uuid.MustParse("8f5b2a8e-4a53-4d0c-9a8e-3c6a3b1f2d41")

type UserStore interface {
	ReserveCode(ctx context.Context, code *models.AccessCode) error
	ReleaseCode(ctx context.Context, code string) error
	FindCode(ctx context.Context, code string) (*models.AccessCode, error)
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	EnsureProfile(ctx context.Context, u *models.User) (*models.User, error)
}

type TokenIssuer interface {
	Issue(userID id.UserID, role, email string) (jwttoken.Token, error)
}

type TokenRevoker interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Session is returned by every successful login.
type Session struct {
	Token      string
	ExpiresAt  time.Time
	User       *models.User
	AccessCode string
}

// AdminCredentials are read from configuration. An empty hash disables admin login.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

type Service struct {
	users   UserStore
	tokens  TokenIssuer
	revoker TokenRevoker
	admin   AdminCredentials
	logger  *slog.Logger
	metrics *metrics.Metrics
	newCode func() (string, error)
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAdmin(creds AdminCredentials) Option {
	return func(s *Service) {
		creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
		s.admin = creds
	}
}

// WithCodeGenerator replaces the access code source, for tests.
func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *Service) { s.newCode = gen }
}

func New(users UserStore, tokens TokenIssuer, revoker TokenRevoker, opts ...Option) *Service {
	s := &Service{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		logger:  slog.Default(),
		newCode: models.GenerateAccessCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a student profile behind a fresh access code.
func (s *Service) Register(ctx context.Context, lernname string) (*Session, error) {
	now := requestcontext.Now(ctx)
	userID := id.NewUserID()

	user, err := models.NewStudent(userID, lernname, "", now)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}

	code, err := s.reserveCode(ctx, user)
	if err != nil {
		return nil, err
	}
	user.Code = code

	if err := s.users.Create(ctx, user); err != nil {
		if relErr := s.users.ReleaseCode(ctx, code); relErr != nil {
			s.logger.ErrorContext(ctx, "failed to release access code", "error", relErr)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	session.AccessCode = code
	s.metrics.IncrementRegistrations()
	s.logger.InfoContext(ctx, "student registered", "user_id", user.ID)
	return session, nil
}

func (s *Service) reserveCode(ctx context.Context, user *models.User) (string, error) {
	for range maxCodeAttempts {
		code, err := s.newCode()
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate access code")
		}
		err = s.users.ReserveCode(ctx, &models.AccessCode{
			Code:      code,
			UserID:    user.ID,
			Lernname:  user.Lernname,
			CreatedAt: user.CreatedAt,
		})
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, sentinel.ErrConflict) {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store access code")
		}
		s.logger.WarnContext(ctx, "access code collision, retrying")
	}
	return "", dErrors.New(dErrors.CodeInternal, "could not allocate a unique access code")
}

// LoginWithCode resolves the profile behind an access code. The profile and
// its counters are kept as stored.
func (s *Service) LoginWithCode(ctx context.Context, rawCode string) (*Session, error) {
	code, ok := models.NormalizeAccessCode(rawCode)
	if !ok {
		s.metrics.IncrementLogin("code", false)
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid access code")
	}

	ac, err := s.users.FindCode(ctx, code)
	if err != nil {
		s.metrics.IncrementLogin("code", false)
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid access code")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up access code")
	}

	user, err := s.users.FindByID(ctx, ac.UserID)
	if errors.Is(err, sentinel.ErrNotFound) {
		// Code without profile: recreate it from the code document.
		user, err = s.users.EnsureProfile(ctx, &models.User{
			ID:        ac.UserID,
			Lernname:  ac.Lernname,
			Code:      ac.Code,
			Role:      models.RoleStudent,
			CreatedAt: ac.CreatedAt,
		})
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementLogin("code", true)
	s.logger.InfoContext(ctx, "student logged in", "user_id", user.ID)
	return session, nil
}

// AdminLogin checks the configured admin credentials.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.admin.PasswordHash == "" || s.admin.Email == "" {
		s.metrics.IncrementLogin("admin", false)
		return nil, dErrors.New(dErrors.CodeUnauthorized, "admin login is not configured")
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1
	pwErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
	if !emailOK || pwErr != nil {
		s.metrics.IncrementLogin("admin", false)
		s.logger.WarnContext(ctx, "admin login failed")
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
	}

	adminID := id.UserID(uuid.NewSHA1(adminNamespace, []byte(email)))
	user, err := s.users.EnsureProfile(ctx, models.NewAdmin(adminID, email, requestcontext.Now(ctx)))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin profile")
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementLogin("admin", true)
	s.logger.InfoContext(ctx, "admin logged in", "user_id", user.ID)
	return session, nil
}

// Logout revokes the caller's token until it expires.
func (s *Service) Logout(ctx context.Context) error {
	jti := requestcontext.TokenID(ctx)
	if jti == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}
	ttl := time.Until(requestcontext.TokenExpiry(ctx))
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.RevokeToken(ctx, jti, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}
	s.metrics.IncrementLogouts()
	s.logger.InfoContext(ctx, "session revoked", "user_id", requestcontext.UserID(ctx))
	return nil
}

// Profile returns the caller's profile with activity counters.
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return user, nil
}

func (s *Service) issue(user *models.User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID, string(user.Role), user.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	return &Session{Token: token.Value, ExpiresAt: token.ExpiresAt, User: user}, nil
}
