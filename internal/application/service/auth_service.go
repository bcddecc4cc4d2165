package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
	"github.com/dillkhus/cafe-pos/pkg/utils"
)

// AuthService authenticates the single configured staff account and
// issues JWT access tokens for the protected endpoints.
type AuthService struct {
	staff      config.StaffConfig
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(staff config.StaffConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		staff:      staff,
		jwtManager: jwtManager,
	}
}

// LoginResult carries the issued token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login verifies the staff credentials against the configured bcrypt
// hash. An unset hash disables staff login entirely.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if s.staff.PasswordHash == "" {
		return nil, apperror.NewAppError(503, "Staff login is not configured")
	}
	if username != s.staff.Username {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.staff.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(username, "staff")
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, TokenType: "Bearer"}, nil
}
