package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
	"github.com/dillkhus/cafe-pos/pkg/utils"
)

func newAuthFixture(t *testing.T, password string) (*AuthService, *utils.JWTManager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() error = %v", err)
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	staff := config.StaffConfig{Username: "staff", PasswordHash: string(hash)}
	return NewAuthService(staff, jwtManager), jwtManager
}

func TestLogin(t *testing.T) {
	auth, jwtManager := newAuthFixture(t, "opensesame")

	result, err := auth.Login("staff", "opensesame")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.TokenType != "Bearer" {
		t.Errorf("TokenType = %q, want Bearer", result.TokenType)
	}

	claims, err := jwtManager.ValidateAccessToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.Username != "staff" {
		t.Errorf("Username = %q, want staff", claims.Username)
	}
	if claims.Role != "staff" {
		t.Errorf("Role = %q, want staff", claims.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _ := newAuthFixture(t, "opensesame")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "staff", "wrong"},
		{"wrong username", "admin", "opensesame"},
		{"both wrong", "admin", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(tt.username, tt.password)
			if !errors.Is(err, apperror.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginUnconfigured(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	auth := NewAuthService(config.StaffConfig{Username: "staff"}, jwtManager)

	_, err := auth.Login("staff", "anything")
	if err == nil {
		t.Fatal("Login() error = nil, want error")
	}
	if apperror.GetAppError(err).Code != 503 {
		t.Errorf("error code = %d, want 503", apperror.GetAppError(err).Code)
	}
}

func TestValidateAccessTokenRejectsTampering(t *testing.T) {
	_, issuer := newAuthFixture(t, "opensesame")
	other := utils.NewJWTManager("different-secret", time.Hour)

	token, err := issuer.GenerateAccessToken("staff", "staff")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("ValidateAccessToken() accepted a token signed with another secret")
	}
}
