//go:build integration

package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/models"
	platformpg "github.com/daxp472/CMS/internal/platform/postgres"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
	"github.com/daxp472/CMS/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg      *containers.PostgresContainer
	store   *Store
	runner  *platformpg.Runner
	ctx     context.Context
	station *models.PoliceStation
	user    *models.User
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	s := new(PostgresStoreSuite)
	s.pg = containers.NewPostgresContainer(t)
	suite.Run(t, s)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = New(s.pg.DB)
	s.runner = platformpg.NewRunner(s.pg.DB)

	s.Require().NoError(s.pg.TruncateTables(s.ctx,
		"audit_log", "bail_applications", "court_actions", "accused", "witnesses",
		"evidence", "investigation_events", "documents", "firs",
		"current_case_states", "cases", "users", "courts", "police_stations",
	))

	s.station = &models.PoliceStation{
		ID:       uuid.New(),
		Name:     "Central Police Station",
		Code:     "PS-CENTRAL",
		District: "Central",
		State:    "Maharashtra",
	}
	s.Require().NoError(s.store.PutPoliceStation(s.ctx, s.station))

	s.user = &models.User{
		ID:               uuid.New(),
		Email:            "sho@central.police",
		Name:             "SHO Central",
		PasswordHash:     "x",
		Role:             models.RoleSHO,
		OrganizationType: models.OrgPoliceStation,
		OrganizationID:   s.station.ID,
		IsActive:         true,
		CreatedAt:        time.Now().UTC(),
	}
	s.Require().NoError(s.store.PutUser(s.ctx, s.user))
}

func (s *PostgresStoreSuite) newCase() *models.Case {
	id := uuid.New()
	return &models.Case{
		ID:              id,
		CaseNumber:      models.CaseNumberFor(id, 2026),
		Category:        models.CategoryCriminal,
		Sections:        "IPC 380",
		PoliceStationID: s.station.ID,
		CreatedAt:       time.Now().UTC(),
	}
}

func (s *PostgresStoreSuite) createCaseWithState(state string) *models.Case {
	c := s.newCase()
	s.Require().NoError(s.store.CreateCase(s.ctx, c))
	s.Require().NoError(s.store.CreateCaseState(s.ctx, &models.CurrentCaseState{
		CaseID:      c.ID,
		State:       state,
		UpdatedByID: s.user.ID,
		UpdatedAt:   time.Now().UTC(),
	}))
	return c
}

func (s *PostgresStoreSuite) TestCaseRoundTrip() {
	c := s.createCaseWithState("FIR_REGISTERED")

	got, err := s.store.GetCase(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(c.CaseNumber, got.CaseNumber)
	s.Equal(c.PoliceStationID, got.PoliceStationID)

	st, err := s.store.GetCaseState(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal("FIR_REGISTERED", st.State)

	s.Run("update persists", func() {
		got.AssignedOfficerID = &s.user.ID
		s.Require().NoError(s.store.UpdateCase(s.ctx, got))

		again, err := s.store.GetCase(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Require().NotNil(again.AssignedOfficerID)
		s.Equal(s.user.ID, *again.AssignedOfficerID)
	})

	s.Run("missing case yields not found", func() {
		_, err := s.store.GetCase(s.ctx, uuid.New())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("duplicate case number conflicts", func() {
		dup := s.newCase()
		dup.CaseNumber = c.CaseNumber
		err := s.store.CreateCase(s.ctx, dup)
		s.ErrorIs(err, sentinel.ErrConflict)
	})
}

func (s *PostgresStoreSuite) TestListStationCases() {
	open := s.createCaseWithState("FIR_REGISTERED")
	trial := s.createCaseWithState("UNDER_TRIAL")

	all, err := s.store.ListStationCases(s.ctx, s.station.ID, models.CaseFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	ids := map[uuid.UUID]bool{all[0].ID: true, all[1].ID: true}
	s.True(ids[open.ID])
	s.True(ids[trial.ID])

	filtered, err := s.store.ListStationCases(s.ctx, s.station.ID, models.CaseFilter{State: "UNDER_TRIAL"})
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal(trial.ID, filtered[0].ID)
}

func (s *PostgresStoreSuite) TestNextFIRSequence() {
	s.Run("increments within a transaction", func() {
		for want := 1; want <= 3; want++ {
			err := s.runner.RunInTx(s.ctx, func(ctx context.Context) error {
				seq, err := s.store.NextFIRSequence(ctx, s.station.ID, 2026)
				if err != nil {
					return err
				}
				s.Equal(want, seq)

				c := s.newCase()
				if err := s.store.CreateCase(ctx, c); err != nil {
					return err
				}
				return s.store.CreateFIR(ctx, &models.FIR{
					ID:                  uuid.New(),
					FIRNumber:           models.FIRNumberFor(s.station.Code, 2026, seq),
					CaseID:              c.ID,
					PoliceStationID:     s.station.ID,
					Year:                2026,
					Sequence:            seq,
					ComplainantName:     "Asha Verma",
					IncidentDate:        time.Now().UTC(),
					IncidentDescription: "burglary",
					Category:            models.CategoryCriminal,
					RegisteredByID:      s.user.ID,
					CreatedAt:           time.Now().UTC(),
				})
			})
			s.Require().NoError(err)
		}
	})

	s.Run("concurrent allocations never collide", func() {
		const n = 8
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.runner.RunInTx(s.ctx, func(ctx context.Context) error {
					seq, err := s.store.NextFIRSequence(ctx, s.station.ID, 2027)
					if err != nil {
						return err
					}
					c := s.newCase()
					if err := s.store.CreateCase(ctx, c); err != nil {
						return err
					}
					return s.store.CreateFIR(ctx, &models.FIR{
						ID:                  uuid.New(),
						FIRNumber:           models.FIRNumberFor(s.station.Code, 2027, seq),
						CaseID:              c.ID,
						PoliceStationID:     s.station.ID,
						Year:                2027,
						Sequence:            seq,
						ComplainantName:     "Asha Verma",
						IncidentDate:        time.Now().UTC(),
						IncidentDescription: "burglary",
						Category:            models.CategoryCriminal,
						RegisteredByID:      s.user.ID,
						CreatedAt:           time.Now().UTC(),
					})
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			s.NoError(err)
		}

		var count int
		err := s.pg.DB.QueryRowContext(s.ctx,
			`SELECT COUNT(DISTINCT sequence) FROM firs WHERE police_station_id = $1 AND year = 2027`,
			s.station.ID).Scan(&count)
		s.Require().NoError(err)
		s.Equal(n, count)
	})
}

func (s *PostgresStoreSuite) TestTransactionRollback() {
	boom := errors.New("boom")

	err := s.runner.RunInTx(s.ctx, func(ctx context.Context) error {
		c := s.newCase()
		if err := s.store.CreateCase(ctx, c); err != nil {
			return err
		}
		if err := s.store.Append(ctx, audit.Entry{
			ID:        uuid.New(),
			CaseID:    c.ID,
			ActorID:   s.user.ID,
			Action:    audit.ActionFIRRegistered,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	var cases, entries int
	s.Require().NoError(s.pg.DB.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM cases`).Scan(&cases))
	s.Require().NoError(s.pg.DB.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&entries))
	s.Zero(cases)
	s.Zero(entries)
}

func (s *PostgresStoreSuite) TestAuditFilter() {
	c := s.createCaseWithState("FIR_REGISTERED")
	now := time.Now().UTC()

	for i, action := range []audit.Action{
		audit.ActionFIRRegistered,
		audit.ActionDocumentCreated,
		audit.ActionCaseAssigned,
	} {
		s.Require().NoError(s.store.Append(s.ctx, audit.Entry{
			ID:         uuid.New(),
			CaseID:     c.ID,
			ActorID:    s.user.ID,
			Action:     action,
			EntityType: "case",
			EntityID:   c.ID,
			Timestamp:  now.Add(time.Duration(i) * time.Second),
		}))
	}

	all, err := s.store.ListByCase(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Len(all, 3)

	lifecycle, err := s.store.ListByCaseAndActions(s.ctx, c.ID, audit.LifecycleActions)
	s.Require().NoError(err)
	s.Require().Len(lifecycle, 2)
	for _, e := range lifecycle {
		s.NotEqual(audit.ActionDocumentCreated, e.Action)
	}
}

func (s *PostgresStoreSuite) TestDocumentVersionUniqueness() {
	c := s.createCaseWithState("FIR_REGISTERED")

	doc := &models.Document{
		ID:           uuid.New(),
		CaseID:       c.ID,
		DocumentType: models.DocChargesheet,
		Title:        "Chargesheet",
		FilePath:     "s3://cms/chargesheet.pdf",
		Version:      1,
		CreatedByID:  s.user.ID,
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateDocument(s.ctx, doc))

	dup := *doc
	dup.ID = uuid.New()
	err := s.store.CreateDocument(s.ctx, &dup)
	s.ErrorIs(err, sentinel.ErrConflict)

	latest, err := s.store.LatestDocumentVersion(s.ctx, c.ID, models.DocChargesheet)
	s.Require().NoError(err)
	s.Equal(1, latest)
}

func (s *PostgresStoreSuite) TestGetUserByEmail() {
	got, err := s.store.GetUserByEmail(s.ctx, "SHO@CENTRAL.POLICE")
	s.Require().NoError(err)
	s.Equal(s.user.ID, got.ID)

	_, err = s.store.GetUserByEmail(s.ctx, "nobody@central.police")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
