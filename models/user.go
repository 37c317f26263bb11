package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a tracked person whose presence is toggled by QR scans.
// CurrentStatus always equals the status of the last Attendance entry, or OUT when empty.
type Employee struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID        int64              `json:"userId" bson:"userId"`
	FirstName     string             `json:"firstName" bson:"firstName"`
	LastName      string             `json:"lastName" bson:"lastName"`
	Department    string             `json:"department" bson:"department"`
	ProfilePic    string             `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	IsSuspended   bool               `json:"isSuspended" bson:"isSuspended"`
	CurrentStatus Status             `json:"currentStatus" bson:"currentStatus"`
	Attendance    []LogEntry         `json:"attendance" bson:"attendance"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// LastEntry returns the most recent log entry, or nil for an empty log.
func (e *Employee) LastEntry() *LogEntry {
	if len(e.Attendance) == 0 {
		return nil
	}
	return &e.Attendance[len(e.Attendance)-1]
}

// Summary is the employee view returned by scan and mark endpoints.
func (e *Employee) Summary() EmployeeSummary {
	s := EmployeeSummary{
		UserID:        e.UserID,
		Name:          e.FullName(),
		Department:    e.Department,
		ProfilePic:    e.ProfilePic,
		IsSuspended:   e.IsSuspended,
		CurrentStatus: e.CurrentStatus,
	}
	if last := e.LastEntry(); last != nil {
		entry := *last
		s.LastAttendance = &entry
	}
	return s
}

type EmployeeSummary struct {
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	Department     string    `json:"department"`
	ProfilePic     string    `json:"profilePic,omitempty"`
	IsSuspended    bool      `json:"isSuspended"`
	CurrentStatus  Status    `json:"currentStatus"`
	LastAttendance *LogEntry `json:"lastAttendance,omitempty"`
}

type EmployeeRegisterPayload struct {
	FirstName  string `json:"firstName" form:"firstName" validate:"required,min=1,max=100"`
	LastName   string `json:"lastName" form:"lastName" validate:"required,min=1,max=100"`
	Department string `json:"department" form:"department" validate:"required,min=1,max=100"`
}

// Staff is an operator, HR or admin account. Password holds the bcrypt hash and is never serialized.
type Staff struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	StaffID    int64              `json:"staffId" bson:"staffId"`
	Username   string             `json:"username" bson:"username"`
	FirstName  string             `json:"firstName" bson:"firstName"`
	LastName   string             `json:"lastName" bson:"lastName"`
	Department string             `json:"department" bson:"department"`
	Role       Role               `json:"role" bson:"role"`
	Password   string             `json:"-" bson:"password"`
	ProfilePic string             `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (s *Staff) Principal() Principal {
	return Principal{
		StaffID:    s.StaffID,
		Username:   s.Username,
		Role:       s.Role,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		Department: s.Department,
	}
}

type StaffRegisterPayload struct {
	FirstName  string `json:"firstName" form:"firstName" validate:"required,min=1,max=100"`
	LastName   string `json:"lastName" form:"lastName" validate:"required,min=1,max=100"`
	Department string `json:"department" form:"department" validate:"required,min=1,max=100"`
	Role       string `json:"role" form:"role" validate:"required,role"`
	Username   string `json:"username" form:"username" validate:"required,min=3,max=50,alphanumunicode"`
	Password   string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Principal is the authenticated staff identity used for authorization decisions.
type Principal struct {
	StaffID    int64  `json:"staffId"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
}

// MarkedBy is the identity recorded on log entries written by this principal.
func (p Principal) MarkedBy() string {
	return p.Username
}
