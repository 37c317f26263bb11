package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleOperator Role = "operator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleOperator:
		return true
	}
	return false
}

// RoleSet is the set of roles an endpoint admits.
type RoleSet []Role

func (s RoleSet) Contains(r Role) bool {
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}

func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

var (
	MarkAttendanceRoles = RoleSet{RoleOperator, RoleAdmin}
	ReadLogsRoles       = RoleSet{RoleHR, RoleAdmin}
	TodayRoles          = RoleSet{RoleHR, RoleAdmin, RoleOperator}
	RegisterUserRoles   = RoleSet{RoleOperator, RoleHR, RoleAdmin}
	ManageUserRoles     = RoleSet{RoleHR, RoleAdmin}
	ViewUserRoles       = RoleSet{RoleHR, RoleAdmin, RoleOperator}
	AdminOnly           = RoleSet{RoleAdmin}
)
