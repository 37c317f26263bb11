package services

import (
	"context"
	"time"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/paseto"
	"qr-attendance/pkg/password"
	"qr-attendance/repository"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInactive           = "Invalid credentials or account inactive"
)

type AuthService struct {
	staff  repository.StaffRepository
	tokens *paseto.Maker
}

// NewAuthService builds the gate. tokens may be nil, in which case only Basic credentials work.
func NewAuthService(staff repository.StaffRepository, tokens *paseto.Maker) *AuthService {
	return &AuthService{staff: staff, tokens: tokens}
}

// Authenticate checks a username/password pair against the staff collection.
// Unknown or inactive accounts yield NotFound, a wrong password Unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, username, plain string) (models.Principal, error) {
	if username == "" || plain == "" {
		return models.Principal{}, apperror.Unauthorized(msgInvalidCredentials)
	}

	staff, err := s.staff.FindByUsername(ctx, username)
	if err != nil {
		return models.Principal{}, wrap("load staff", err)
	}
	if staff == nil || !staff.IsActive {
		return models.Principal{}, apperror.NotFound(msgInactive)
	}
	if !password.CheckPasswordHash(plain, staff.Password) {
		return models.Principal{}, apperror.Unauthorized(msgInvalidCredentials)
	}
	return staff.Principal(), nil
}

// Authorize fails with Forbidden unless the principal's role is in allowed.
func Authorize(p models.Principal, allowed models.RoleSet) error {
	if !allowed.Contains(p.Role) {
		return apperror.Forbidden("Access denied - insufficient permissions")
	}
	return nil
}

// Login authenticates and, when a token maker is configured, issues a session token.
func (s *AuthService) Login(ctx context.Context, username, plain string) (models.Principal, string, time.Time, error) {
	p, err := s.Authenticate(ctx, username, plain)
	if err != nil {
		return models.Principal{}, "", time.Time{}, err
	}
	if s.tokens == nil {
		return p, "", time.Time{}, nil
	}
	token, exp, err := s.tokens.GenerateToken(p)
	if err != nil {
		return models.Principal{}, "", time.Time{}, apperror.Internal("issue token", err)
	}
	return p, token, exp, nil
}

// VerifyToken resolves the principal carried by a session token. The account must still
// exist and be active, so deactivation takes effect before the token expires.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (models.Principal, error) {
	if s.tokens == nil {
		return models.Principal{}, apperror.Unauthorized("Token authentication is disabled")
	}
	p, err := s.tokens.ValidateToken(token)
	if err != nil {
		return models.Principal{}, apperror.Unauthorized("Invalid or expired token")
	}

	staff, err := s.staff.FindByStaffID(ctx, p.StaffID)
	if err != nil {
		return models.Principal{}, wrap("load staff", err)
	}
	if staff == nil || !staff.IsActive {
		return models.Principal{}, apperror.NotFound(msgInactive)
	}
	return staff.Principal(), nil
}
