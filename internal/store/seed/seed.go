// Package seed loads a small fixed dataset for development mode: two police
// stations, two courts and one user per role. Seeding is idempotent; the
// reference upserts overwrite the same IDs on every start.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/auth"
	"github.com/daxp472/CMS/internal/models"
)

// Store is the slice of the store the seeder writes to.
type Store interface {
	PutPoliceStation(ctx context.Context, st *models.PoliceStation) error
	PutCourt(ctx context.Context, c *models.Court) error
	PutUser(ctx context.Context, u *models.User) error
}

// DevPassword is the password of every seeded account.
const DevPassword = "password123"

// Fixed IDs keep seeded data stable across restarts.
var (
	StationCentralID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	StationNorthID   = uuid.MustParse("11111111-1111-1111-1111-111111111112")
	CourtDistrictID  = uuid.MustParse("22222222-2222-2222-2222-222222222221")
	CourtSessionsID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	UserSHOID     = uuid.MustParse("33333333-3333-3333-3333-333333333331")
	UserOfficerID = uuid.MustParse("33333333-3333-3333-3333-333333333332")
	UserClerkID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	UserJudgeID   = uuid.MustParse("33333333-3333-3333-3333-333333333334")
)

// Apply writes the development dataset.
func Apply(ctx context.Context, store Store) error {
	stations := []models.PoliceStation{
		{ID: StationCentralID, Name: "Central Police Station", Code: "PS-CENTRAL", District: "Central", State: "Maharashtra"},
		{ID: StationNorthID, Name: "North Police Station", Code: "PS-NORTH", District: "North", State: "Maharashtra"},
	}
	for i := range stations {
		if err := store.PutPoliceStation(ctx, &stations[i]); err != nil {
			return fmt.Errorf("seed station %s: %w", stations[i].Code, err)
		}
	}

	courts := []models.Court{
		{ID: CourtDistrictID, Name: "District Court", Code: "DC-01", CourtType: models.CourtMagistrate, District: "Central", State: "Maharashtra"},
		{ID: CourtSessionsID, Name: "Sessions Court", Code: "SC-01", CourtType: models.CourtSessions, District: "Central", State: "Maharashtra"},
	}
	for i := range courts {
		if err := store.PutCourt(ctx, &courts[i]); err != nil {
			return fmt.Errorf("seed court %s: %w", courts[i].Code, err)
		}
	}

	hash, err := auth.HashPassword(DevPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()
	users := []models.User{
		{
			ID: UserSHOID, Email: "sho@central.police", Name: "SHO Central",
			PasswordHash: hash, Role: models.RoleSHO,
			OrganizationType: models.OrgPoliceStation, OrganizationID: StationCentralID,
			IsActive: true, CreatedAt: now,
		},
		{
			ID: UserOfficerID, Email: "officer@central.police", Name: "Officer Central",
			PasswordHash: hash, Role: models.RolePolice,
			OrganizationType: models.OrgPoliceStation, OrganizationID: StationCentralID,
			IsActive: true, CreatedAt: now,
		},
		{
			ID: UserClerkID, Email: "clerk@district.court", Name: "Clerk District",
			PasswordHash: hash, Role: models.RoleCourtClerk,
			OrganizationType: models.OrgCourt, OrganizationID: CourtDistrictID,
			IsActive: true, CreatedAt: now,
		},
		{
			ID: UserJudgeID, Email: "judge@district.court", Name: "Judge District",
			PasswordHash: hash, Role: models.RoleJudge,
			OrganizationType: models.OrgCourt, OrganizationID: CourtDistrictID,
			IsActive: true, CreatedAt: now,
		},
	}
	for i := range users {
		if err := store.PutUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}
	return nil
}
