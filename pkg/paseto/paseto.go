package paseto

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/o1egl/paseto"

	"qr-attendance/models"
)

// Maker issues and verifies PASETO v2 local tokens carrying a staff principal.
type Maker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewPasetoMaker(symmetricKey []byte, ttl time.Duration) (*Maker, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("PASETO v2 local requires a 32-byte key, got %d bytes", len(symmetricKey))
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Maker{
		paseto:       paseto.NewV2(),
		symmetricKey: symmetricKey,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

func (m *Maker) GenerateToken(p models.Principal) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)

	token := paseto.JSONToken{
		Subject:    p.Username,
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	// Custom claims are stored as strings.
	token.Set("staff_id", strconv.FormatInt(p.StaffID, 10))
	token.Set("role", string(p.Role))
	token.Set("first_name", p.FirstName)
	token.Set("last_name", p.LastName)
	token.Set("department", p.Department)

	signed, err := m.paseto.Encrypt(m.symmetricKey, token, "")
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encrypt paseto token: %w", err)
	}
	return signed, exp, nil
}

func (m *Maker) ValidateToken(tokenString string) (models.Principal, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return models.Principal{}, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(paseto.ValidAt(m.now())); err != nil {
		return models.Principal{}, fmt.Errorf("token validation failed: %w", err)
	}

	staffID, err := strconv.ParseInt(token.Get("staff_id"), 10, 64)
	if err != nil {
		return models.Principal{}, fmt.Errorf("invalid staff_id claim: %w", err)
	}
	role := models.Role(token.Get("role"))
	if !role.Valid() {
		return models.Principal{}, fmt.Errorf("invalid role claim %q", role)
	}

	return models.Principal{
		StaffID:    staffID,
		Username:   token.Subject,
		Role:       role,
		FirstName:  token.Get("first_name"),
		LastName:   token.Get("last_name"),
		Department: token.Get("department"),
	}, nil
}
