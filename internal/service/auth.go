package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/moviethruster/thruster-server/internal/auth"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/id"
	"github.com/moviethruster/thruster-server/internal/store"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// AuthService handles registration, login, and token verification.
type AuthService struct {
	store        *sqlite.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store *sqlite.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        store,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterRequest contains new account data.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanumunicode"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the successful outcome of a login or registration.
type LoginResult struct {
	User        *domain.User
	AccessToken string
	ExpiresIn   time.Duration
}

// Register creates a new account and logs it in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "hash password")
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate user id")
	}

	user := &domain.User{
		ID:           userID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		var storeErr *store.Error
		if errors.As(err, &storeErr) && storeErr.HTTPCode() == 409 {
			return nil, errors.AlreadyExists("username or email already in use")
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "create user")
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return s.issueToken(user)
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// Same response for unknown user and bad password.
		return nil, errors.InvalidCredentials("invalid username or password")
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "verify password")
	}
	if !ok {
		return nil, errors.InvalidCredentials("invalid username or password")
	}

	if err := s.store.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return s.issueToken(user)
}

// VerifyAccessToken validates a token and loads its user.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*domain.User, *auth.AccessClaims, error) {
	claims, err := s.tokenService.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, nil, errors.Unauthorized("invalid or expired token")
	}

	user, err := s.store.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, nil, errors.Unauthorized("user no longer exists")
	}

	return user, claims, nil
}

// Me returns the account for an authenticated user id.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("user not found")
	}
	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (*LoginResult, error) {
	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate access token")
	}

	return &LoginResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   s.tokenService.AccessTokenDuration(),
	}, nil
}

// validationError converts validator output into a domain validation error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fe.Field()+": failed "+fe.Tag())
		}
		return errors.ValidationWithDetails("invalid request", details)
	}
	return errors.Validation(err.Error())
}
