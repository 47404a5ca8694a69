package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pratik-hilale/hive/internal/domain"
	"github.com/pratik-hilale/hive/internal/repository"
)

// DefaultTeamID is assigned to accounts created through registration
const DefaultTeamID = 1

// Claims represents JWT claims for session and dev tokens
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// UserService owns authentication and account business logic: password
// verification, token issuance and the profile/preferences passthroughs
// the HTTP layer delegates to.
type UserService struct {
	users     repository.UserRepository
	devTokens repository.DevTokenRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, devTokens repository.DevTokenRepository, jwtSecret string, jwtExpiry time.Duration) *UserService {
	return &UserService{
		users:     users,
		devTokens: devTokens,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Login verifies the password for an email and issues a session token.
// Failures are reported as *domain.AuthError with one of the business kinds.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NewAuthError(domain.ErrUserNotFound, "No account found for this email")
		}
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, domain.NewAuthError(domain.ErrOAuthRequired,
			"This account uses OAuth sign-in. Please log in with your provider.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewAuthError(domain.ErrInvalidCredentials, "Password does not match")
	}

	if !user.IsActive {
		return nil, domain.NewAuthError(domain.ErrAccountDisabled, "This account has been disabled")
	}

	token, err := s.issueToken(user, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return sessionFor(user, token), nil
}

// Register creates an account with a hashed password and issues a session
// token. A taken email is reported as an EMAIL_EXISTS auth error.
func (s *UserService) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := reg.Name
	if name == "" {
		name = strings.TrimSpace(reg.Firstname + " " + reg.Lastname)
	}

	hashStr := string(hash)
	user := &domain.User{
		Email:         reg.Email,
		PasswordHash:  &hashStr,
		Firstname:     reg.Firstname,
		Lastname:      reg.Lastname,
		Name:          name,
		CurrentTeamID: DefaultTeamID,
		IsActive:      true,
		Preferences:   map[string]any{},
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.NewAuthError(domain.ErrEmailExists, "An account with this email already exists")
		}
		return nil, err
	}

	token, err := s.issueToken(user, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return sessionFor(user, token), nil
}

// FindByToken resolves a bearer token to its user. An invalid or expired
// token, or a token for a user that no longer exists, yields (nil, nil).
func (s *UserService) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile updates the name fields of a user
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, firstname, lastname string) error {
	return s.users.UpdateProfile(ctx, userID, firstname, lastname)
}

// UpdatePreferences replaces the stored preferences of a user
func (s *UserService) UpdatePreferences(ctx context.Context, userID int64, prefs map[string]any) error {
	return s.users.UpdatePreferences(ctx, userID, prefs)
}

// GetDevTokens lists the dev tokens issued to a user
func (s *UserService) GetDevTokens(ctx context.Context, user *domain.User) ([]domain.DevToken, error) {
	return s.devTokens.ListByUser(ctx, user.ID)
}

// GenerateDevToken issues and stores a dev token for a user. ttlDays of
// zero or less produces a non-expiring token.
func (s *UserService) GenerateDevToken(ctx context.Context, user *domain.User, label string, ttlDays int) (*domain.DevToken, error) {
	var expiresAt *time.Time
	var expiry time.Duration
	if ttlDays > 0 {
		expiry = time.Duration(ttlDays) * 24 * time.Hour
		at := time.Now().Add(expiry)
		expiresAt = &at
	}

	token, err := s.issueToken(user, expiry)
	if err != nil {
		return nil, err
	}

	devToken := &domain.DevToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Label:     label,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if err := s.devTokens.Create(ctx, devToken); err != nil {
		return nil, err
	}

	return devToken, nil
}

// issueToken signs an HS256 token for the user. A zero expiry means the
// token never expires.
func (s *UserService) issueToken(user *domain.User, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// parseToken validates a token string and returns its claims
func (s *UserService) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

func sessionFor(user *domain.User, token string) *domain.AuthSession {
	return &domain.AuthSession{
		Token:         token,
		Email:         user.Email,
		Name:          user.Name,
		Firstname:     user.Firstname,
		Lastname:      user.Lastname,
		CurrentTeamID: user.CurrentTeamID,
		CreatedAt:     user.CreatedAt,
	}
}
