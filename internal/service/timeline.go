package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/models"
)

// TimelineItem is one entry in a case's merged history.
type TimelineItem struct {
	Timestamp time.Time
	Kind      string
	Title     string
	Detail    string
	ActorID   uuid.UUID
	EntityID  uuid.UUID
}

// GetTimeline builds the case's merged history from the lifecycle audit
// entries, investigation events, documents, court actions and bail
// applications. The sources are independent reads, so they are fetched
// concurrently; the merge sorts newest first with a stable order for ties.
func (s *Service) GetTimeline(ctx context.Context, caseID uuid.UUID) ([]TimelineItem, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}

	var (
		entries   []audit.Entry
		events    []*models.InvestigationEvent
		documents []*models.Document
		actions   []*models.CourtAction
		bail      []*models.BailApplication
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.store.ListByCaseAndActions(gctx, caseID, audit.LifecycleActions)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.store.ListInvestigationEvents(gctx, caseID)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = s.store.ListDocuments(gctx, caseID)
		return err
	})
	g.Go(func() error {
		var err error
		actions, err = s.store.ListCourtActions(gctx, caseID)
		return err
	})
	g.Go(func() error {
		var err error
		bail, err = s.store.ListBailApplications(gctx, caseID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, translateStoreErr(err, "timeline sources not found")
	}

	items := make([]TimelineItem, 0, len(entries)+len(events)+len(documents)+len(actions)+len(bail))
	for _, e := range entries {
		items = append(items, TimelineItem{
			Timestamp: e.Timestamp,
			Kind:      "lifecycle",
			Title:     string(e.Action),
			Detail:    e.Detail,
			ActorID:   e.ActorID,
			EntityID:  e.EntityID,
		})
	}
	for _, ev := range events {
		items = append(items, TimelineItem{
			Timestamp: ev.EventDate,
			Kind:      "investigation_event",
			Title:     ev.EventType,
			Detail:    ev.Description,
			ActorID:   ev.RecordedByID,
			EntityID:  ev.ID,
		})
	}
	for _, doc := range documents {
		items = append(items, TimelineItem{
			Timestamp: doc.CreatedAt,
			Kind:      "document",
			Title:     string(doc.DocumentType),
			Detail:    doc.Title,
			ActorID:   doc.CreatedByID,
			EntityID:  doc.ID,
		})
	}
	for _, a := range actions {
		items = append(items, TimelineItem{
			Timestamp: a.ActionDate,
			Kind:      "court_action",
			Title:     string(a.ActionType),
			Detail:    a.Description,
			ActorID:   a.JudgeID,
			EntityID:  a.ID,
		})
	}
	for _, b := range bail {
		items = append(items, TimelineItem{
			Timestamp: b.CreatedAt,
			Kind:      "bail_application",
			Title:     string(b.Status),
			Detail:    b.ApplicantName,
			ActorID:   b.SubmittedByID,
			EntityID:  b.ID,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}
