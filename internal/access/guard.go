// Package access is the single capability-evaluation point for the case
// system. Every orchestrator consumes the same Decision rather than branching
// on roles inline, so scope rules cannot drift between operations.
package access

import (
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

// Decision is an explicit allow/deny with the reason a denial would surface.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Err converts a denial into the Forbidden domain error; allowed decisions
// yield nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, d.Reason)
}

// CanAccessCase evaluates whether the principal's organization scope covers
// the case. The same rule gates reads and writes:
//
//   - SHO: any case owned by their station.
//   - POLICE: cases of their station that are unassigned or assigned to them.
//   - COURT_CLERK / JUDGE: cases assigned to their court; pre-submission
//     cases are invisible to court principals.
//
// Cross-station and cross-court access always fails regardless of seniority.
func CanAccessCase(p models.Principal, c *models.Case) Decision {
	switch {
	case p.Role.PoliceRole():
		if p.OrganizationType != models.OrgPoliceStation {
			return deny("police principal is not associated with a police station")
		}
		if c.PoliceStationID != p.OrganizationID {
			return deny("case belongs to another police station")
		}
		if p.Role == models.RolePolice &&
			c.AssignedOfficerID != nil && *c.AssignedOfficerID != p.UserID {
			return deny("case is assigned to another officer")
		}
		return allow()

	case p.Role.CourtRole():
		if p.OrganizationType != models.OrgCourt {
			return deny("court principal is not associated with a court")
		}
		if c.CourtID == nil {
			return deny("case has not been submitted to a court")
		}
		if *c.CourtID != p.OrganizationID {
			return deny("case is assigned to another court")
		}
		return allow()
	}
	return deny("unknown role")
}

// RequireRole gates an operation to the listed roles with a Forbidden denial.
func RequireRole(p models.Principal, roles ...models.Role) Decision {
	for _, r := range roles {
		if p.Role == r {
			return allow()
		}
	}
	return deny("operation not permitted for role " + string(p.Role))
}

// ValidateAssignment checks an SHO's officer assignment target. Each clause
// fails with a distinct, named error so callers can display the exact reason;
// these are validation failures, not scope denials.
func ValidateAssignment(assigner models.Principal, officer *models.User) error {
	if officer == nil {
		return dErrors.New(dErrors.CodeNotFound, "officer not found")
	}
	if officer.Role != models.RolePolice {
		return dErrors.New(dErrors.CodeBadRequest, "can only assign users with the POLICE role")
	}
	if !officer.IsActive {
		return dErrors.New(dErrors.CodeBadRequest, "officer is inactive")
	}
	if officer.OrganizationType != models.OrgPoliceStation ||
		officer.OrganizationID != assigner.OrganizationID {
		return dErrors.New(dErrors.CodeBadRequest, "officer must belong to same police station")
	}
	return nil
}
