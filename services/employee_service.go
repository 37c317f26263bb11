package services

import (
	"context"
	"strings"
	"time"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/repository"
)

type EmployeeService struct {
	employees repository.EmployeeRepository
	counters  repository.CounterRepository
	idBase    int64
	now       func() time.Time
}

func NewEmployeeService(employees repository.EmployeeRepository, counters repository.CounterRepository, idBase int64) *EmployeeService {
	return &EmployeeService{employees: employees, counters: counters, idBase: idBase, now: time.Now}
}

// RegisterEmployee issues the next employee ID and stores the employee checked OUT with an empty log.
func (s *EmployeeService) RegisterEmployee(ctx context.Context, payload models.EmployeeRegisterPayload, profilePic string) (*models.Employee, error) {
	seq, err := s.counters.Next(ctx, repository.EmployeeSequence)
	if err != nil {
		return nil, wrap("issue employee id", err)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	employee := &models.Employee{
		UserID:        s.idBase + seq,
		FirstName:     strings.TrimSpace(payload.FirstName),
		LastName:      strings.TrimSpace(payload.LastName),
		Department:    strings.TrimSpace(payload.Department),
		ProfilePic:    profilePic,
		CurrentStatus: models.StatusOut,
		Attendance:    []models.LogEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, wrap("create employee", err)
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, wrap("list employees", err)
	}
	return employees, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, userID int64) (*models.Employee, error) {
	employee, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		return nil, wrap("load employee", err)
	}
	if employee == nil {
		return nil, apperror.NotFound(msgUserMissing)
	}
	return employee, nil
}

// SetSuspended suspends or reinstates an employee. Suspended employees cannot be marked.
func (s *EmployeeService) SetSuspended(ctx context.Context, userID int64, suspended bool) (*models.Employee, error) {
	employee, err := s.employees.SetSuspended(ctx, userID, suspended)
	if err != nil {
		return nil, wrap("update suspension", err)
	}
	if employee == nil {
		return nil, apperror.NotFound(msgUserMissing)
	}
	return employee, nil
}

// DeleteEmployee removes the employee and their log. The ID is never issued again.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, userID int64) error {
	deleted, err := s.employees.Delete(ctx, userID)
	if err != nil {
		return wrap("delete employee", err)
	}
	if !deleted {
		return apperror.NotFound(msgUserMissing)
	}
	return nil
}
