package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/domain/repository"
	"github.com/devfood/foodcourt/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and verifies session tokens against the identity
// store. A nonexistent user and a wrong password produce the same error
// so callers cannot tell which part failed.
type AuthService struct {
	Users  repository.UserRepository
	Tokens *helpers.TokenManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens *helpers.TokenManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Redis: rdb, Logger: logger}
}

// LoginResult is the user payload returned on a successful login.
type LoginResult struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func sessionKey(email string) string {
	return "user:session:" + email
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Generate(u.Email, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("generate token failed")
		}
		return nil, err
	}

	// Session snapshot for the auth middleware; best effort.
	if s.Redis != nil {
		key := sessionKey(u.Email)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"email":      u.Email,
			"name":       u.Name,
			"role":       string(u.Role),
			"logged_in":  true,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, time.Until(exp))
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return &LoginResult{
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Token:     token,
		ExpiresAt: exp,
	}, nil
}

// Logout drops the session snapshot for the email, if any.
func (s *AuthService) Logout(ctx context.Context, email string) {
	if s.Redis == nil || email == "" {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(email)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("session delete failed")
	}
}

// Verify parses the token and validates signature and expiry.
func (s *AuthService) Verify(tokenStr string) (*helpers.Claims, error) {
	claims, err := s.Tokens.Parse(tokenStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
