package services

import (
	"context"
	"strings"
	"time"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/password"
	"qr-attendance/repository"
)

const msgStaffMissing = "Staff not found"

type StaffService struct {
	staff      repository.StaffRepository
	counters   repository.CounterRepository
	idBase     int64
	bcryptCost int
	now        func() time.Time
}

func NewStaffService(staff repository.StaffRepository, counters repository.CounterRepository, idBase int64, bcryptCost int) *StaffService {
	return &StaffService{staff: staff, counters: counters, idBase: idBase, bcryptCost: bcryptCost, now: time.Now}
}

// RegisterStaff creates an active staff account with a bcrypt-hashed password.
// A taken username fails with InvalidState before an ID is consumed.
func (s *StaffService) RegisterStaff(ctx context.Context, payload models.StaffRegisterPayload, profilePic string) (*models.Staff, error) {
	role := models.Role(strings.ToLower(strings.TrimSpace(payload.Role)))
	if !role.Valid() {
		return nil, apperror.Validation("Role must be one of: admin, hr, operator")
	}
	username := strings.TrimSpace(payload.Username)

	existing, err := s.staff.FindByUsername(ctx, username)
	if err != nil {
		return nil, wrap("check username", err)
	}
	if existing != nil {
		return nil, apperror.InvalidState("Username already exists")
	}

	hashed, err := password.HashPassword(payload.Password, s.bcryptCost)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}

	seq, err := s.counters.Next(ctx, repository.StaffSequence)
	if err != nil {
		return nil, wrap("issue staff id", err)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	staff := &models.Staff{
		StaffID:    s.idBase + seq,
		Username:   username,
		FirstName:  strings.TrimSpace(payload.FirstName),
		LastName:   strings.TrimSpace(payload.LastName),
		Department: strings.TrimSpace(payload.Department),
		Role:       role,
		Password:   hashed,
		ProfilePic: profilePic,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, wrap("create staff", err)
	}
	return staff, nil
}

func (s *StaffService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	staff, err := s.staff.FindAll(ctx)
	if err != nil {
		return nil, wrap("list staff", err)
	}
	return staff, nil
}

func (s *StaffService) FindByUsername(ctx context.Context, username string) (*models.Staff, error) {
	staff, err := s.staff.FindByUsername(ctx, username)
	if err != nil {
		return nil, wrap("load staff", err)
	}
	return staff, nil
}

// SetActive enables or disables login for a staff account.
func (s *StaffService) SetActive(ctx context.Context, staffID int64, active bool) (*models.Staff, error) {
	staff, err := s.staff.SetActive(ctx, staffID, active)
	if err != nil {
		return nil, wrap("update staff status", err)
	}
	if staff == nil {
		return nil, apperror.NotFound(msgStaffMissing)
	}
	return staff, nil
}
