package service

import (
	"context"
	"errors"
	"time"

	"smart-sales-api/internal/model"
	"smart-sales-api/internal/repository"
	"smart-sales-api/pkg/jwt"
	"smart-sales-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string                `json:"message"`
	User    model.ProfileResponse `json:"user"`
	Tokens  *jwt.Pair             `json:"tokens"`
}

type AuthService interface {
	Register(ctx context.Context, in *RegisterInput) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginInput) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokens    *jwt.Manager
	now       func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, in *RegisterInput) (*AuthResponse, error) {
	// 1. Required fields, reported one at a time in field order
	if messages := validator.Messages(in); len(messages) > 0 {
		return nil, ValidationError(messages[0], messages...)
	}

	// 2. Uniqueness
	exists, err := s.userRepo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, InternalError("Registration failed", err)
	}
	if exists {
		return nil, ValidationError("Username already exists")
	}
	exists, err = s.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, InternalError("Registration failed", err)
	}
	if exists {
		return nil, ValidationError("Email already exists")
	}

	// 3. Password policy
	if messages := validator.ValidatePassword(in.Password, in.Username, in.Email, in.FirstName, in.LastName); len(messages) > 0 {
		return nil, ValidationError("Password does not meet requirements", messages...)
	}

	// 4. Create the identity
	user := &model.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, InternalError("Registration failed", err)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ValidationError("Username already exists")
		}
		return nil, InternalError("Registration failed", err)
	}

	// 5. Issue credentials
	pair, err := s.tokens.IssuePair(subjectOf(user))
	if err != nil {
		return nil, InternalError("Registration failed", err)
	}

	return &AuthResponse{
		Message: "User registered successfully",
		User:    user.ToProfile(),
		Tokens:  pair,
	}, nil
}

func (s *authService) Login(ctx context.Context, in *LoginInput) (*AuthResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, ValidationError("Username and password are required")
	}

	// 1. Find user and verify password
	user, err := s.userRepo.FindByUsername(ctx, in.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UnauthorizedError("Invalid credentials")
	}
	if err != nil {
		return nil, InternalError("Login failed", err)
	}
	if !user.CheckPassword(in.Password) {
		return nil, UnauthorizedError("Invalid credentials")
	}

	// 2. Check if user is active
	if !user.IsActive {
		return nil, UnauthorizedError("Account is disabled")
	}

	// 3. Record the login
	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, InternalError("Login failed", err)
	}
	user.LastLogin = &now

	// 4. Fresh pair on every login
	pair, err := s.tokens.IssuePair(subjectOf(user))
	if err != nil {
		return nil, InternalError("Login failed", err)
	}

	return &AuthResponse{
		Message: "Login successful",
		User:    user.ToProfile(),
		Tokens:  pair,
	}, nil
}

// Logout blacklists the refresh token so it can no longer be exchanged.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if refreshToken == "" {
		return ValidationError("Refresh token is required")
	}

	claims, err := s.tokens.Parse(refreshToken, jwt.RefreshToken)
	if err != nil {
		return ValidationError("Logout failed", "Token is invalid or expired")
	}
	if claims.UserID != userID {
		return ValidationError("Logout failed", "Token does not belong to the current user")
	}

	blacklisted, err := s.tokenRepo.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return InternalError("Logout failed", err)
	}
	if blacklisted {
		return ValidationError("Logout failed", "Token is blacklisted")
	}

	err = s.tokenRepo.Blacklist(ctx, &model.BlacklistedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return ValidationError("Logout failed", "Token is blacklisted")
	}
	if err != nil {
		return InternalError("Logout failed", err)
	}
	return nil
}

// Refresh exchanges a valid, non-revoked refresh token for a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ValidationError("refresh is required")
	}

	claims, err := s.tokens.Parse(refreshToken, jwt.RefreshToken)
	if err != nil {
		return "", UnauthorizedError("Token is invalid or expired")
	}

	blacklisted, err := s.tokenRepo.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return "", InternalError("Token refresh failed", err)
	}
	if blacklisted {
		return "", UnauthorizedError("Token is blacklisted")
	}

	access, err := s.tokens.IssueAccess(claims)
	if err != nil {
		return "", InternalError("Token refresh failed", err)
	}
	return access, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("User not found")
	}
	if err != nil {
		return nil, InternalError("Failed to get user profile", err)
	}
	profile := user.ToProfile()
	return &profile, nil
}

func subjectOf(user *model.User) jwt.Subject {
	return jwt.Subject{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}
}
