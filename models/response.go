package models

import "time"

// Response shapes referenced by the swagger annotations on handlers.

type ErrorResponse struct {
	Msg     string `json:"msg" example:"Invalid credentials"`
	Success bool   `json:"success" example:"false"`
}

type ForbiddenResponse struct {
	Msg           string   `json:"msg" example:"Access denied - insufficient permissions"`
	Success       bool     `json:"success" example:"false"`
	RequiredRoles []string `json:"requiredRoles" example:"hr,admin"`
	UserRole      string   `json:"userRole" example:"operator"`
}

type ValidationErrorResponse struct {
	Msg     string       `json:"msg" example:"Validation failed"`
	Success bool         `json:"success" example:"false"`
	Errors  []FieldError `json:"errors"`
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

type LoginResponse struct {
	Success    bool       `json:"success" example:"true"`
	StaffID    int64      `json:"staffId" example:"10001"`
	Username   string     `json:"username" example:"admin1"`
	Role       Role       `json:"role" example:"admin"`
	FirstName  string     `json:"firstName" example:"System"`
	LastName   string     `json:"lastName" example:"Administrator"`
	Department string     `json:"department" example:"Administration"`
	Token      string     `json:"token,omitempty" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

type MarkedUser struct {
	UserID        int64     `json:"userId" example:"20001"`
	Name          string    `json:"name" example:"Jane Doe"`
	Department    string    `json:"department" example:"Engineering"`
	CurrentStatus Status    `json:"currentStatus" example:"IN"`
	Timestamp     time.Time `json:"timestamp"`
}

type MarkAttendanceResponse struct {
	Success bool       `json:"success" example:"true"`
	Msg     string     `json:"msg" example:"Checked IN"`
	User    MarkedUser `json:"user"`
}

type LogsResponse struct {
	Success bool     `json:"success" example:"true"`
	Logs    []LogRow `json:"logs"`
	Total   int64    `json:"total" example:"42"`
	Page    int64    `json:"page,omitempty" example:"1"`
	Limit   int64    `json:"limit,omitempty" example:"50"`
}

type TodayResponse struct {
	Success    bool       `json:"success" example:"true"`
	Stats      TodayStats `json:"stats"`
	Attendance []TodayRow `json:"attendance"`
}

type ReportResponse struct {
	Success     bool        `json:"success" example:"true"`
	From        string      `json:"from" example:"2024-05-01"`
	To          string      `json:"to" example:"2024-05-31"`
	WorkingDays int         `json:"workingDays" example:"23"`
	Report      []ReportRow `json:"report"`
}

type EmployeeResponse struct {
	Success bool     `json:"success" example:"true"`
	Msg     string   `json:"msg,omitempty" example:"User suspended"`
	User    Employee `json:"user"`
}

type EmployeeListResponse struct {
	Success bool       `json:"success" example:"true"`
	Users   []Employee `json:"users"`
	Total   int        `json:"total" example:"10"`
}

type ScanPreviewResponse struct {
	Success bool            `json:"success" example:"true"`
	User    EmployeeSummary `json:"user"`
}

type StaffResponse struct {
	Success bool   `json:"success" example:"true"`
	Msg     string `json:"msg,omitempty" example:"Staff deactivated"`
	Staff   Staff  `json:"staff"`
}

type StaffListResponse struct {
	Success bool    `json:"success" example:"true"`
	Staff   []Staff `json:"staff"`
	Total   int     `json:"total" example:"3"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Msg     string `json:"msg" example:"User removed"`
}

type QRCodeResponse struct {
	Success bool   `json:"success" example:"true"`
	UserID  int64  `json:"userId" example:"20001"`
	QRCode  string `json:"qrCode" example:"data:image/png;base64,iVBORw0KGgo..."`
}

type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}
