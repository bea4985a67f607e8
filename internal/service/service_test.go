package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/store/memory"
	"github.com/daxp472/CMS/internal/store/seed"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	store *memory.Store
	svc   *Service
	now   time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.Require().NoError(seed.Apply(context.Background(), s.store))
	s.now = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	s.svc = New(Deps{
		Store:    s.store,
		Tx:       s.store,
		Recorder: audit.NewRecorder(s.store),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// as builds a request context carrying the given principal and the fixed
// suite time.
func (s *ServiceSuite) as(userID uuid.UUID, role models.Role, orgType models.OrganizationType, orgID uuid.UUID) context.Context {
	ctx := requestcontext.WithPrincipal(context.Background(), requestcontext.PrincipalInfo{
		UserID:           userID.String(),
		Role:             string(role),
		OrganizationType: string(orgType),
		OrganizationID:   orgID.String(),
	})
	return requestcontext.WithTime(ctx, s.now)
}

func (s *ServiceSuite) asSHO() context.Context {
	return s.as(seed.UserSHOID, models.RoleSHO, models.OrgPoliceStation, seed.StationCentralID)
}

func (s *ServiceSuite) asOfficer() context.Context {
	return s.as(seed.UserOfficerID, models.RolePolice, models.OrgPoliceStation, seed.StationCentralID)
}

func (s *ServiceSuite) asClerk() context.Context {
	return s.as(seed.UserClerkID, models.RoleCourtClerk, models.OrgCourt, seed.CourtDistrictID)
}

func (s *ServiceSuite) asJudge() context.Context {
	return s.as(seed.UserJudgeID, models.RoleJudge, models.OrgCourt, seed.CourtDistrictID)
}

func (s *ServiceSuite) firInput() RegisterFIRInput {
	return RegisterFIRInput{
		ComplainantName:     "Asha Verma",
		ComplainantContact:  "+91-9000000001",
		IncidentDate:        s.now.AddDate(0, 0, -1),
		IncidentLocation:    "MG Road",
		IncidentDescription: "Shop burglary reported overnight",
		Sections:            "IPC 380",
		Category:            models.CategoryCriminal,
	}
}

// register creates a fresh FIR-backed case as the SHO.
func (s *ServiceSuite) register() (*models.FIR, *models.Case) {
	fir, c, err := s.svc.RegisterFIR(s.asSHO(), s.firInput())
	s.Require().NoError(err)
	return fir, c
}

// submit drives a case from wherever it stands to SUBMITTED_TO_COURT.
func (s *ServiceSuite) submit(caseID uuid.UUID) {
	if s.state(caseID) == "FIR_REGISTERED" {
		_, err := s.svc.RecordInvestigationEvent(s.asOfficer(), caseID, InvestigationEventInput{
			EventType:   "PRELIMINARY_INQUIRY",
			EventDate:   s.now,
			Description: "initial inquiry at the scene",
		})
		s.Require().NoError(err)
	}
	if s.state(caseID) == "UNDER_INVESTIGATION" {
		_, err := s.svc.CompleteInvestigation(s.asSHO(), caseID)
		s.Require().NoError(err)
	}
	_, err := s.svc.SubmitToCourt(s.asSHO(), caseID, seed.CourtDistrictID, "chargesheet attached")
	s.Require().NoError(err)
}

// intake drives a submitted case to PENDING_COURT_INTAKE.
func (s *ServiceSuite) intake(caseID uuid.UUID) {
	_, err := s.svc.IntakeCase(s.asClerk(), caseID, "received")
	s.Require().NoError(err)
}

func (s *ServiceSuite) courtAction(actionType models.CourtActionType) CourtActionInput {
	return CourtActionInput{
		ActionType:  actionType,
		ActionDate:  s.now,
		Description: "recorded in open court",
	}
}

func (s *ServiceSuite) state(caseID uuid.UUID) string {
	st, err := s.store.GetCaseState(context.Background(), caseID)
	s.Require().NoError(err)
	return st.State
}

func (s *ServiceSuite) TestRegisterFIR() {
	s.Run("allocates fir and case numbers", func() {
		fir, c := s.register()

		s.Equal("PS-CENTRAL/2026/0001", fir.FIRNumber)
		s.Equal(1, fir.Sequence)
		s.Equal(2026, fir.Year)
		s.Equal(c.ID, fir.CaseID)
		s.Regexp(`^CASE/2026/[0-9A-F]{8}$`, c.CaseNumber)
		s.Equal("FIR_REGISTERED", s.state(c.ID))

		fir2, _, err := s.svc.RegisterFIR(s.asSHO(), s.firInput())
		s.Require().NoError(err)
		s.Equal("PS-CENTRAL/2026/0002", fir2.FIRNumber)
	})

	s.Run("writes the first audit entry", func() {
		fir, c := s.register()
		entries, err := s.store.ListByCase(context.Background(), c.ID)
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.Equal(audit.ActionFIRRegistered, entries[0].Action)
		s.Equal(seed.UserSHOID, entries[0].ActorID)
		s.Equal(fir.FIRNumber, entries[0].Detail)
		s.True(entries[0].Timestamp.Equal(s.now))
	})

	s.Run("officer may register", func() {
		_, _, err := s.svc.RegisterFIR(s.asOfficer(), s.firInput())
		s.NoError(err)
	})

	s.Run("court roles may not register", func() {
		_, _, err := s.svc.RegisterFIR(s.asClerk(), s.firInput())
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("rejects missing complainant name", func() {
		in := s.firInput()
		in.ComplainantName = "  "
		_, _, err := s.svc.RegisterFIR(s.asSHO(), in)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("rejects unknown category", func() {
		in := s.firInput()
		in.Category = "MARITIME"
		_, _, err := s.svc.RegisterFIR(s.asSHO(), in)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("no principal yields unauthorized", func() {
		ctx := requestcontext.WithTime(context.Background(), s.now)
		_, _, err := s.svc.RegisterFIR(ctx, s.firInput())
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) TestOrganizationScope() {
	_, c := s.register()

	s.Run("other station sho denied", func() {
		ctx := s.as(uuid.New(), models.RoleSHO, models.OrgPoliceStation, seed.StationNorthID)
		_, err := s.svc.GetCase(ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("court denied before submission", func() {
		_, err := s.svc.GetCase(s.asClerk(), c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("court sees the case after submission", func() {
		s.submit(c.ID)
		view, err := s.svc.GetCase(s.asClerk(), c.ID)
		s.Require().NoError(err)
		s.Equal("SUBMITTED_TO_COURT", view.State)
	})

	s.Run("other court still denied", func() {
		ctx := s.as(uuid.New(), models.RoleJudge, models.OrgCourt, seed.CourtSessionsID)
		_, err := s.svc.GetCase(ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("unknown case yields not found", func() {
		_, err := s.svc.GetCase(s.asSHO(), uuid.New())
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestLifecycleHappyPath() {
	_, c := s.register()

	s.Run("first evidence moves the case under investigation", func() {
		_, err := s.svc.AddEvidence(s.asOfficer(), c.ID, EvidenceInput{
			EvidenceType:  models.EvidencePhysical,
			Description:   "broken lock",
			CollectedDate: s.now,
		})
		s.Require().NoError(err)
		s.Equal("UNDER_INVESTIGATION", s.state(c.ID))
	})

	s.Run("second record keeps the state", func() {
		_, err := s.svc.AddWitness(s.asOfficer(), c.ID, WitnessInput{
			Name:        "Ravi Kumar",
			WitnessType: models.WitnessEye,
		})
		s.Require().NoError(err)
		s.Equal("UNDER_INVESTIGATION", s.state(c.ID))
	})

	s.Run("complete investigation", func() {
		view, err := s.svc.CompleteInvestigation(s.asSHO(), c.ID)
		s.Require().NoError(err)
		s.Equal("INVESTIGATION_COMPLETE", view.State)
	})

	s.Run("submit to court locks documents", func() {
		view, err := s.svc.SubmitToCourt(s.asSHO(), c.ID, seed.CourtDistrictID, "full casefile")
		s.Require().NoError(err)
		s.Equal("SUBMITTED_TO_COURT", view.State)
		s.True(view.DocumentsLocked)
		s.Require().NotNil(view.Case.CourtID)
		s.Equal(seed.CourtDistrictID, *view.Case.CourtID)
		s.Require().NotNil(view.Case.SubmittedToCourtAt)
	})

	s.Run("clerk acknowledges intake", func() {
		view, err := s.svc.IntakeCase(s.asClerk(), c.ID, "docket 42")
		s.Require().NoError(err)
		s.Equal("PENDING_COURT_INTAKE", view.State)
		s.Equal("docket 42", view.Case.AcknowledgementNotes)
	})

	s.Run("hearing moves the case to trial", func() {
		_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionHearingScheduled))
		s.Require().NoError(err)
		s.Equal("UNDER_TRIAL", s.state(c.ID))
	})

	s.Run("judgment concludes the trial", func() {
		_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionJudgment))
		s.Require().NoError(err)
		s.Equal("JUDGMENT_DELIVERED", s.state(c.ID))
	})

	s.Run("clerk archives the concluded case", func() {
		view, err := s.svc.ArchiveCase(s.asClerk(), c.ID)
		s.Require().NoError(err)
		s.Equal("ARCHIVED", view.State)
		s.True(view.Case.Archived)
	})

	s.Run("audit trail covers every step", func() {
		entries, err := s.store.ListByCase(context.Background(), c.ID)
		s.Require().NoError(err)

		seen := make(map[audit.Action]bool, len(entries))
		for _, e := range entries {
			seen[e.Action] = true
		}
		for _, want := range []audit.Action{
			audit.ActionFIRRegistered,
			audit.ActionEvidenceAdded,
			audit.ActionWitnessAdded,
			audit.ActionInvestigationComplete,
			audit.ActionCaseSubmittedToCourt,
			audit.ActionCaseIntake,
			audit.ActionCourtActionCreated,
			audit.ActionCaseArchived,
		} {
			s.True(seen[want], "missing audit action %s", want)
		}
	})
}

func (s *ServiceSuite) TestDismissal() {
	_, c := s.register()
	s.submit(c.ID)
	s.intake(c.ID)

	_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionCaseDismissed))
	s.Require().NoError(err)
	s.Equal("CLOSED", s.state(c.ID))

	s.Run("closed case can be archived", func() {
		view, err := s.svc.ArchiveCase(s.asClerk(), c.ID)
		s.Require().NoError(err)
		s.Equal("ARCHIVED", view.State)
	})
}

func (s *ServiceSuite) TestCourtActionRules() {
	_, c := s.register()
	s.submit(c.ID)
	s.intake(c.ID)

	s.Run("clerk may not record actions", func() {
		_, err := s.svc.RecordCourtAction(s.asClerk(), c.ID, s.courtAction(models.ActionAdjourned))
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("non-transitioning action keeps the state", func() {
		action, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionAdjourned))
		s.Require().NoError(err)
		s.Equal(models.ActionAdjourned, action.ActionType)
		s.Equal(seed.UserJudgeID, action.JudgeID)
		s.Equal("PENDING_COURT_INTAKE", s.state(c.ID))
	})

	s.Run("rejects unknown action type", func() {
		_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction("RECESS"))
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionJudgment))
	s.Require().NoError(err)
	s.Require().Equal("JUDGMENT_DELIVERED", s.state(c.ID))

	s.Run("transitioning action rejected in a terminal state", func() {
		_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionHearingScheduled))
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("failed action leaves no row behind", func() {
		actions, err := s.svc.ListCourtActions(s.asJudge(), c.ID)
		s.Require().NoError(err)
		s.Len(actions, 2)

		entries, err := s.store.ListByCaseAndActions(context.Background(), c.ID, []audit.Action{audit.ActionCourtActionCreated})
		s.Require().NoError(err)
		s.Len(entries, 2)
	})

	s.Run("archived case refuses all actions", func() {
		_, err := s.svc.ArchiveCase(s.asClerk(), c.ID)
		s.Require().NoError(err)

		_, err = s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionAdjourned))
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Contains(err.Error(), "archived")
	})
}

func (s *ServiceSuite) TestDocuments() {
	_, c := s.register()

	s.Run("versions are allocated per document type", func() {
		doc, err := s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
			DocumentType: models.DocChargesheet,
			Title:        "Chargesheet draft",
			FilePath:     "s3://cms/chargesheet-1.pdf",
		})
		s.Require().NoError(err)
		s.Equal(1, doc.Version)

		doc2, err := s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
			DocumentType: models.DocChargesheet,
			Title:        "Chargesheet revised",
			FilePath:     "s3://cms/chargesheet-2.pdf",
		})
		s.Require().NoError(err)
		s.Equal(2, doc2.Version)

		other, err := s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
			DocumentType: models.DocForensicReport,
			Title:        "Fingerprint analysis",
			FilePath:     "s3://cms/forensics.pdf",
		})
		s.Require().NoError(err)
		s.Equal(1, other.Version)
	})

	s.Run("finalize is one way", func() {
		doc, err := s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
			DocumentType: models.DocInvestigationReport,
			Title:        "Final report",
			FilePath:     "s3://cms/report.pdf",
		})
		s.Require().NoError(err)

		finalized, err := s.svc.FinalizeDocument(s.asOfficer(), doc.ID)
		s.Require().NoError(err)
		s.True(finalized.IsFinalized)

		_, err = s.svc.FinalizeDocument(s.asOfficer(), doc.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("submission freezes documents", func() {
		doc, err := s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
			DocumentType: models.DocOther,
			Title:        "Site sketch",
			FilePath:     "s3://cms/sketch.pdf",
		})
		s.Require().NoError(err)

		s.submit(c.ID)

		_, err = s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
			DocumentType: models.DocOther,
			Title:        "Late addition",
			FilePath:     "s3://cms/late.pdf",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.Contains(err.Error(), "locked")

		_, err = s.svc.FinalizeDocument(s.asOfficer(), doc.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("rejects unknown document type", func() {
		_, c2 := s.register()
		_, err := s.svc.CreateDocument(s.asOfficer(), c2.ID, CreateDocumentInput{
			DocumentType: "NAPKIN",
			Title:        "notes",
			FilePath:     "s3://cms/napkin.pdf",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestAssignOfficer() {
	_, c := s.register()

	s.Run("sho assigns an active station officer", func() {
		view, err := s.svc.AssignOfficer(s.asSHO(), c.ID, seed.UserOfficerID)
		s.Require().NoError(err)
		s.Require().NotNil(view.Case.AssignedOfficerID)
		s.Equal(seed.UserOfficerID, *view.Case.AssignedOfficerID)

		entries, err := s.store.ListByCase(context.Background(), c.ID)
		s.Require().NoError(err)
		found := false
		for _, e := range entries {
			if e.Action == audit.ActionCaseAssigned {
				found = true
				s.Contains(e.Detail, "Officer Central")
			}
		}
		s.True(found)
	})

	s.Run("officers may not assign", func() {
		_, err := s.svc.AssignOfficer(s.asOfficer(), c.ID, seed.UserOfficerID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("unknown officer", func() {
		_, err := s.svc.AssignOfficer(s.asSHO(), c.ID, uuid.New())
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("clerk is not assignable", func() {
		_, err := s.svc.AssignOfficer(s.asSHO(), c.ID, seed.UserClerkID)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("other station officer is not assignable", func() {
		foreign := &models.User{
			ID:               uuid.New(),
			Email:            "officer@north.police",
			Name:             "Officer North",
			Role:             models.RolePolice,
			OrganizationType: models.OrgPoliceStation,
			OrganizationID:   seed.StationNorthID,
			IsActive:         true,
		}
		s.Require().NoError(s.store.PutUser(context.Background(), foreign))

		_, err := s.svc.AssignOfficer(s.asSHO(), c.ID, foreign.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Contains(err.Error(), "same police station")
	})
}

func (s *ServiceSuite) TestListCases() {
	_, c1 := s.register()
	_, c2 := s.register()
	_, err := s.svc.AssignOfficer(s.asSHO(), c1.ID, seed.UserOfficerID)
	s.Require().NoError(err)

	s.Run("sho lists the whole station", func() {
		views, err := s.svc.ListCases(s.asSHO(), models.CaseFilter{})
		s.Require().NoError(err)
		s.Len(views, 2)
	})

	s.Run("sho filters by state", func() {
		_, err := s.svc.CompleteInvestigation(s.asSHO(), c2.ID)
		s.Require().Error(err) // still FIR_REGISTERED, investigation never began

		views, err := s.svc.ListCases(s.asSHO(), models.CaseFilter{State: "FIR_REGISTERED"})
		s.Require().NoError(err)
		s.Len(views, 2)

		views, err = s.svc.ListCases(s.asSHO(), models.CaseFilter{State: "ARCHIVED"})
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("officer sees own and unassigned cases", func() {
		views, err := s.svc.ListCases(s.asOfficer(), models.CaseFilter{})
		s.Require().NoError(err)
		s.Len(views, 2)
	})

	s.Run("court sees nothing before submission", func() {
		views, err := s.svc.ListCases(s.asClerk(), models.CaseFilter{})
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("court sees submitted cases", func() {
		s.submit(c2.ID)
		views, err := s.svc.ListCases(s.asClerk(), models.CaseFilter{})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(c2.ID, views[0].Case.ID)
	})
}

func (s *ServiceSuite) TestBailApplications() {
	_, c := s.register()
	s.submit(c.ID)
	s.intake(c.ID)

	s.Run("clerk submits a pending application", func() {
		app, err := s.svc.SubmitBailApplication(s.asClerk(), c.ID, BailApplicationInput{
			ApplicantName:  "Mohan Lal",
			Grounds:        "no prior record, permanent residence",
			AmountProposed: 50000,
		})
		s.Require().NoError(err)
		s.Equal(models.BailPending, app.Status)
		s.Equal(seed.UserClerkID, app.SubmittedByID)
	})

	s.Run("police may not submit", func() {
		_, err := s.svc.SubmitBailApplication(s.asOfficer(), c.ID, BailApplicationInput{
			ApplicantName: "Mohan Lal",
			Grounds:       "grounds",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("rejects empty grounds", func() {
		_, err := s.svc.SubmitBailApplication(s.asJudge(), c.ID, BailApplicationInput{
			ApplicantName: "Mohan Lal",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("archived case refuses applications", func() {
		_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionCaseDismissed))
		s.Require().NoError(err)
		_, err = s.svc.ArchiveCase(s.asClerk(), c.ID)
		s.Require().NoError(err)

		_, err = s.svc.SubmitBailApplication(s.asJudge(), c.ID, BailApplicationInput{
			ApplicantName: "Mohan Lal",
			Grounds:       "grounds",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestTimeline() {
	_, c := s.register()

	_, err := s.svc.RecordInvestigationEvent(s.asOfficer(), c.ID, InvestigationEventInput{
		EventType:   "SITE_VISIT",
		EventDate:   s.now.Add(-2 * time.Hour),
		Description: "examined the point of entry",
	})
	s.Require().NoError(err)

	_, err = s.svc.CreateDocument(s.asOfficer(), c.ID, CreateDocumentInput{
		DocumentType: models.DocEvidenceReport,
		Title:        "Evidence inventory",
		FilePath:     "s3://cms/inventory.pdf",
	})
	s.Require().NoError(err)

	s.submit(c.ID)
	s.intake(c.ID)

	_, err = s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionHearingScheduled))
	s.Require().NoError(err)

	_, err = s.svc.SubmitBailApplication(s.asClerk(), c.ID, BailApplicationInput{
		ApplicantName: "Mohan Lal",
		Grounds:       "medical grounds",
	})
	s.Require().NoError(err)

	items, err := s.svc.GetTimeline(s.asJudge(), c.ID)
	s.Require().NoError(err)
	s.NotEmpty(items)

	kinds := make(map[string]bool, len(items))
	for _, item := range items {
		kinds[item.Kind] = true
	}
	for _, want := range []string{"lifecycle", "investigation_event", "document", "court_action", "bail_application"} {
		s.True(kinds[want], "missing timeline kind %s", want)
	}

	for i := 1; i < len(items); i++ {
		s.False(items[i].Timestamp.After(items[i-1].Timestamp), "timeline not sorted newest first at %d", i)
	}

	s.Run("scoped like every other read", func() {
		ctx := s.as(uuid.New(), models.RoleSHO, models.OrgPoliceStation, seed.StationNorthID)
		_, err := s.svc.GetTimeline(ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *ServiceSuite) TestGetAuditLog() {
	_, c := s.register()

	entries, err := s.svc.GetAuditLog(s.asSHO(), c.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(audit.ActionFIRRegistered, entries[0].Action)

	ctx := s.as(uuid.New(), models.RoleSHO, models.OrgPoliceStation, seed.StationNorthID)
	_, err = s.svc.GetAuditLog(ctx, c.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *ServiceSuite) TestGetCaseFIR() {
	fir, c := s.register()

	got, err := s.svc.GetCaseFIR(s.asSHO(), c.ID)
	s.Require().NoError(err)
	s.Equal(fir.ID, got.ID)

	byID, err := s.svc.GetFIR(s.asOfficer(), fir.ID)
	s.Require().NoError(err)
	s.Equal(fir.FIRNumber, byID.FIRNumber)
}

func (s *ServiceSuite) TestInvestigationRecords() {
	_, c := s.register()

	s.Run("event moves the case under investigation", func() {
		ev, err := s.svc.RecordInvestigationEvent(s.asOfficer(), c.ID, InvestigationEventInput{
			EventType:   "SITE_VISIT",
			EventDate:   s.now,
			Description: "examined the point of entry",
		})
		s.Require().NoError(err)
		s.Equal(seed.UserOfficerID, ev.RecordedByID)
		s.Equal("UNDER_INVESTIGATION", s.state(c.ID))
	})

	s.Run("accused requires a name", func() {
		_, err := s.svc.AddAccused(s.asOfficer(), c.ID, AccusedInput{})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("late records leave a completed investigation untouched", func() {
		_, err := s.svc.CompleteInvestigation(s.asSHO(), c.ID)
		s.Require().NoError(err)

		w, err := s.svc.AddWitness(s.asOfficer(), c.ID, WitnessInput{
			Name:        "Late Witness",
			WitnessType: models.WitnessEye,
		})
		s.Require().NoError(err)
		s.Equal("Late Witness", w.Name)
		s.Equal("INVESTIGATION_COMPLETE", s.state(c.ID))
	})

	s.Run("court roles may not record", func() {
		s.submit(c.ID)
		_, err := s.svc.RecordInvestigationEvent(s.asJudge(), c.ID, InvestigationEventInput{
			EventType:   "SITE_VISIT",
			EventDate:   s.now,
			Description: "late visit",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("police may still file records after submission", func() {
		_, err := s.svc.AddEvidence(s.asOfficer(), c.ID, EvidenceInput{
			EvidenceType:  models.EvidencePhysical,
			Description:   "recovered weapon",
			CollectedDate: s.now,
		})
		s.Require().NoError(err)
		s.Equal("SUBMITTED_TO_COURT", s.state(c.ID))
	})

	s.Run("archived case refuses records", func() {
		s.intake(c.ID)
		_, err := s.svc.RecordCourtAction(s.asJudge(), c.ID, s.courtAction(models.ActionJudgment))
		s.Require().NoError(err)
		_, err = s.svc.ArchiveCase(s.asClerk(), c.ID)
		s.Require().NoError(err)

		_, err = s.svc.AddWitness(s.asOfficer(), c.ID, WitnessInput{Name: "Too Late"})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Contains(err.Error(), "archived")
	})

	s.Run("lists are scoped reads", func() {
		events, err := s.svc.ListInvestigationEvents(s.asJudge(), c.ID)
		s.Require().NoError(err)
		s.Len(events, 1)
	})
}

func (s *ServiceSuite) TestReferenceListings() {
	stations, err := s.svc.ListPoliceStations(s.asOfficer())
	s.Require().NoError(err)
	s.Len(stations, 2)

	courts, err := s.svc.ListCourts(s.asClerk())
	s.Require().NoError(err)
	s.Len(courts, 2)

	_, err = s.svc.ListCourts(context.Background())
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
