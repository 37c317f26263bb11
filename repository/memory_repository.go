package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
)

// The in-memory backends serve STORE_BACKEND=memory (local runs, demos) and the HTTP tests.
// They honour the same contracts as the MongoDB repositories.

type memoryCounterRepository struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func NewMemoryCounterRepository() CounterRepository {
	return &memoryCounterRepository{seqs: make(map[string]int64)}
}

func (r *memoryCounterRepository) Next(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs[name]++
	return r.seqs[name], nil
}

// employeeRecord serializes writers per employee so toggles on different
// employees never wait on each other.
type employeeRecord struct {
	mu       sync.Mutex
	employee models.Employee
}

type memoryEmployeeRepository struct {
	mu      sync.RWMutex
	records map[int64]*employeeRecord
}

func NewMemoryEmployeeRepository() EmployeeRepository {
	return &memoryEmployeeRepository{records: make(map[int64]*employeeRecord)}
}

func cloneEmployee(e models.Employee) models.Employee {
	out := e
	out.Attendance = append([]models.LogEntry{}, e.Attendance...)
	return out
}

func (r *memoryEmployeeRepository) record(userID int64) *employeeRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[userID]
}

// snapshot copies every employee without holding the map lock while reading records.
func (r *memoryEmployeeRepository) snapshot() []models.Employee {
	r.mu.RLock()
	recs := make([]*employeeRecord, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	out := make([]models.Employee, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		out = append(out, cloneEmployee(rec.employee))
		rec.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

func (r *memoryEmployeeRepository) Create(_ context.Context, employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[employee.UserID]; exists {
		return apperror.InvalidState(fmt.Sprintf("User %d already exists", employee.UserID))
	}
	if employee.Attendance == nil {
		employee.Attendance = []models.LogEntry{}
	}
	r.records[employee.UserID] = &employeeRecord{employee: cloneEmployee(*employee)}
	return nil
}

func (r *memoryEmployeeRepository) FindByUserID(_ context.Context, userID int64) (*models.Employee, error) {
	rec := r.record(userID)
	if rec == nil {
		return nil, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	e := cloneEmployee(rec.employee)
	return &e, nil
}

func (r *memoryEmployeeRepository) FindAll(_ context.Context) ([]models.Employee, error) {
	return r.snapshot(), nil
}

func (r *memoryEmployeeRepository) SetSuspended(_ context.Context, userID int64, suspended bool) (*models.Employee, error) {
	rec := r.record(userID)
	if rec == nil {
		return nil, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.employee.IsSuspended = suspended
	rec.employee.UpdatedAt = time.Now().UTC()
	e := cloneEmployee(rec.employee)
	return &e, nil
}

func (r *memoryEmployeeRepository) Delete(_ context.Context, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[userID]; !ok {
		return false, nil
	}
	delete(r.records, userID)
	return true, nil
}

func (r *memoryEmployeeRepository) AppendIfStatus(_ context.Context, userID int64, expected models.Status, entry models.LogEntry) (*models.Employee, error) {
	rec := r.record(userID)
	if rec == nil {
		return nil, nil
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	current := rec.employee.CurrentStatus
	if current == "" {
		current = models.StatusOut
	}
	if rec.employee.IsSuspended || current != expected {
		return nil, nil
	}

	rec.employee.Attendance = append(rec.employee.Attendance, entry)
	rec.employee.CurrentStatus = entry.Status
	rec.employee.UpdatedAt = entry.Timestamp
	e := cloneEmployee(rec.employee)
	return &e, nil
}

func (r *memoryEmployeeRepository) QueryLogs(_ context.Context, f models.LogFilter) ([]models.LogRow, int64, error) {
	rows := []models.LogRow{}
	for _, e := range r.snapshot() {
		if !f.MatchesEmployee(&e) {
			continue
		}
		for _, entry := range e.Attendance {
			if !f.MatchesEntry(entry) {
				continue
			}
			rows = append(rows, models.LogRow{
				UserID:     e.UserID,
				Name:       e.FirstName + " " + e.LastName,
				Department: e.Department,
				Timestamp:  entry.Timestamp,
				Status:     entry.Status,
				MarkedBy:   entry.MarkedBy,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Timestamp.Equal(rows[j].Timestamp) {
			return rows[i].Timestamp.After(rows[j].Timestamp)
		}
		return rows[i].UserID < rows[j].UserID
	})

	total := int64(len(rows))
	skip, limit := f.Paginate()
	if limit > 0 {
		if skip < 0 || skip >= total {
			return []models.LogRow{}, total, nil
		}
		end := skip + limit
		if end > total {
			end = total
		}
		rows = rows[skip:end]
	}
	return rows, total, nil
}

func (r *memoryEmployeeRepository) EntriesBetween(_ context.Context, since, until time.Time) ([]models.TodayRow, error) {
	window := models.LogFilter{Since: since, Until: until}
	out := []models.TodayRow{}
	for _, e := range r.snapshot() {
		var events []models.LogEntry
		for _, entry := range e.Attendance {
			if window.MatchesEntry(entry) {
				events = append(events, entry)
			}
		}
		if len(events) == 0 {
			continue
		}
		status := e.CurrentStatus
		if status == "" {
			status = models.StatusOut
		}
		out = append(out, models.TodayRow{
			UserID:        e.UserID,
			Name:          e.FirstName + " " + e.LastName,
			Department:    e.Department,
			CurrentStatus: status,
			Events:        events,
		})
	}
	return out, nil
}

type memoryStaffRepository struct {
	mu    sync.RWMutex
	staff map[int64]models.Staff
}

func NewMemoryStaffRepository() StaffRepository {
	return &memoryStaffRepository{staff: make(map[int64]models.Staff)}
}

func (r *memoryStaffRepository) Create(_ context.Context, staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.staff {
		if s.Username == staff.Username {
			return apperror.InvalidState("Username already exists")
		}
	}
	if _, exists := r.staff[staff.StaffID]; exists {
		return apperror.InvalidState(fmt.Sprintf("Staff %d already exists", staff.StaffID))
	}
	r.staff[staff.StaffID] = *staff
	return nil
}

func (r *memoryStaffRepository) FindByUsername(_ context.Context, username string) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.staff {
		if s.Username == username {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryStaffRepository) FindByStaffID(_ context.Context, staffID int64) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.staff[staffID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memoryStaffRepository) FindAll(_ context.Context) ([]models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Staff, 0, len(r.staff))
	for _, s := range r.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })
	return out, nil
}

func (r *memoryStaffRepository) SetActive(_ context.Context, staffID int64, active bool) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[staffID]
	if !ok {
		return nil, nil
	}
	s.IsActive = active
	s.UpdatedAt = time.Now().UTC()
	r.staff[staffID] = s
	return &s, nil
}
