package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of principal roles.
type Role string

const (
	RolePolice     Role = "POLICE"
	RoleSHO        Role = "SHO"
	RoleCourtClerk Role = "COURT_CLERK"
	RoleJudge      Role = "JUDGE"
)

// OrganizationType distinguishes the two organization kinds a principal can
// belong to.
type OrganizationType string

const (
	OrgPoliceStation OrganizationType = "POLICE_STATION"
	OrgCourt         OrganizationType = "COURT"
)

// PoliceRole reports whether r is a police-side role.
func (r Role) PoliceRole() bool { return r == RolePolice || r == RoleSHO }

// CourtRole reports whether r is a court-side role.
func (r Role) CourtRole() bool { return r == RoleCourtClerk || r == RoleJudge }

// User is a system principal. OrganizationID points at a police station or a
// court depending on OrganizationType.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Phone            string
	PasswordHash     string
	Role             Role
	OrganizationType OrganizationType
	OrganizationID   uuid.UUID
	IsActive         bool
	CreatedAt        time.Time
}

// Principal is the authenticated identity every operation receives. It is a
// projection of User produced by the auth layer.
type Principal struct {
	UserID           uuid.UUID
	Role             Role
	OrganizationType OrganizationType
	OrganizationID   uuid.UUID
}

// PrincipalOf derives the request principal from a stored user.
func PrincipalOf(u *User) Principal {
	return Principal{
		UserID:           u.ID,
		Role:             u.Role,
		OrganizationType: u.OrganizationType,
		OrganizationID:   u.OrganizationID,
	}
}
