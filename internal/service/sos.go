package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/floodguard/sos_dispatch_system/internal/config"
	"github.com/floodguard/sos_dispatch_system/internal/models"
	"github.com/floodguard/sos_dispatch_system/internal/webhook"
)

//go:generate mockgen -source=sos.go -destination=mock_sos.go -package=service -self_package=github.com/floodguard/sos_dispatch_system/internal/service

// UnitKind selects which assignment set a unit id belongs to.
type UnitKind string

const (
	UnitRescuer   UnitKind = "rescuer"
	UnitVolunteer UnitKind = "volunteer"
)

// DispatchResult reports the outcome of an assignment. NewlyAssigned counts
// ids that were not yet on the report; AlreadyAssigned counts requested ids
// that were present before the call.
type DispatchResult struct {
	Report          *models.SosReport
	NewlyAssigned   int
	AlreadyAssigned int
}

// ReportRepository defines the store contract for SOS reports. Mutate must
// apply the given transition to the current stored state under a per-report
// lock, so concurrent dispatches union instead of overwriting each other.
type ReportRepository interface {
	Create(ctx context.Context, report *models.SosReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SosReport, error)
	ListAll(ctx context.Context) ([]*models.SosReport, error)
	Mutate(ctx context.Context, id uuid.UUID, apply func(*models.SosReport) error) (*models.SosReport, error)
}

// PersonnelRepository exposes the read-only candidate pools.
type PersonnelRepository interface {
	ListRescuers(ctx context.Context) ([]*models.User, error)
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// SosService is the triage-and-dispatch core: ranking of open reports, unit
// assignment with its lifecycle state machine, resolution, and the audit
// history view.
type SosService interface {
	CreateReport(ctx context.Context, report *models.SosReport) error
	GetReport(ctx context.Context, reportID uuid.UUID) (*models.SosReport, error)
	RankReports(ctx context.Context, policy RankPolicy, operator *models.Location) (*TriageList, error)
	AssignUnits(ctx context.Context, reportID uuid.UUID, rescuerIDs, volunteerIDs []string) (*DispatchResult, error)
	RemoveUnit(ctx context.Context, reportID uuid.UUID, unitID string, kind UnitKind) (*models.SosReport, error)
	Resolve(ctx context.Context, reportID uuid.UUID) (*models.SosReport, error)
	History(ctx context.Context, view HistoryView) ([]*models.SosReport, error)
	ListRescuers(ctx context.Context) ([]*models.Rescuer, error)
	ListVolunteers(ctx context.Context) ([]*models.VolunteerProfile, error)
}

type sosService struct {
	repo      ReportRepository
	personnel PersonnelRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
	now       func() time.Time
}

func NewSosService(repo ReportRepository, personnel PersonnelRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) SosService {
	return &sosService{
		repo:      repo,
		personnel: personnel,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateReport stores a new intake report in the pending state with empty
// unit sets. Location, urgency score and form answers are frozen from here on.
func (s *sosService) CreateReport(ctx context.Context, report *models.SosReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "CreateReport",
	})
	log.Info("Creating SOS report")

	report.Status = models.StatusPending
	report.RescueUnits = []string{}
	report.VolunteerUnits = []string{}
	report.CreatedAt = s.now()
	report.ResolvedAt = nil

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create SOS report in repository")
		return storeFailure(fmt.Errorf("service: could not create report: %w", err))
	}

	log.WithField("report_id", report.ID).Info("SOS report created")
	return nil
}

// GetReport fetches a single report by id.
func (s *sosService) GetReport(ctx context.Context, reportID uuid.UUID) (*models.SosReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "GetReport",
		"report_id": reportID,
	})
	log.Info("Fetching SOS report")

	report, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		log.WithError(err).Error("Failed to get SOS report from repository")
		return nil, storeFailure(fmt.Errorf("service: could not get report: %w", err))
	}
	return report, nil
}

// AssignUnits unions the given unit ids into the report's assignment sets.
// Assigning an id that is already present is a no-op for that id, never an
// error: the dispatcher may safely resubmit after a partial UI failure.
// A successful dispatch always leaves the report responding, even when every
// requested id was already assigned.
func (s *sosService) AssignUnits(ctx context.Context, reportID uuid.UUID, rescuerIDs, volunteerIDs []string) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "sos",
		"method":     "AssignUnits",
		"report_id":  reportID,
		"rescuers":   len(rescuerIDs),
		"volunteers": len(volunteerIDs),
	})
	log.Info("Dispatching units to SOS report")

	rescuerIDs = dedupe(rescuerIDs)
	volunteerIDs = dedupe(volunteerIDs)
	if len(rescuerIDs) == 0 && len(volunteerIDs) == 0 {
		log.Warn("Dispatch requested with no units selected")
		return nil, fmt.Errorf("service: assign units: %w", ErrNoSelection)
	}

	var newly int
	report, err := s.repo.Mutate(ctx, reportID, func(r *models.SosReport) error {
		if r.Status == models.StatusResolved {
			return ErrInvalidState
		}
		newly = unionInto(&r.RescueUnits, rescuerIDs)
		newly += unionInto(&r.VolunteerUnits, volunteerIDs)
		r.Status = models.StatusResponding
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to dispatch units")
		return nil, storeFailure(fmt.Errorf("service: assign units: %w", err))
	}

	s.publishEvent(ctx, webhook.EventUnitsDispatched, report)

	log.WithField("newly_assigned", newly).Info("Units dispatched")
	return &DispatchResult{
		Report:          report,
		NewlyAssigned:   newly,
		AlreadyAssigned: len(rescuerIDs) + len(volunteerIDs) - newly,
	}, nil
}

// RemoveUnit takes a unit off the report. Removing an absent id is a no-op.
// The status is recomputed from both sets jointly: the report stays
// responding as long as any unit of either kind remains assigned.
func (s *sosService) RemoveUnit(ctx context.Context, reportID uuid.UUID, unitID string, kind UnitKind) (*models.SosReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "RemoveUnit",
		"report_id": reportID,
		"unit_id":   unitID,
		"unit_kind": kind,
	})
	log.Info("Removing unit from SOS report")

	if kind != UnitRescuer && kind != UnitVolunteer {
		return nil, fmt.Errorf("service: unknown unit kind %q", kind)
	}

	report, err := s.repo.Mutate(ctx, reportID, func(r *models.SosReport) error {
		if r.Status == models.StatusResolved {
			return ErrInvalidState
		}
		if kind == UnitRescuer {
			r.RescueUnits = removeID(r.RescueUnits, unitID)
		} else {
			r.VolunteerUnits = removeID(r.VolunteerUnits, unitID)
		}
		if r.HasUnits() {
			r.Status = models.StatusResponding
		} else {
			r.Status = models.StatusPending
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to remove unit")
		return nil, storeFailure(fmt.Errorf("service: remove unit: %w", err))
	}

	log.WithField("status", report.Status).Info("Unit removed")
	return report, nil
}

// Resolve marks the report safely concluded. Resolution is terminal: the
// resolved timestamp is written exactly once and the assignment sets are
// frozen from then on.
func (s *sosService) Resolve(ctx context.Context, reportID uuid.UUID) (*models.SosReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "Resolve",
		"report_id": reportID,
	})
	log.Info("Resolving SOS report")

	report, err := s.repo.Mutate(ctx, reportID, func(r *models.SosReport) error {
		if r.Status == models.StatusResolved {
			return ErrInvalidState
		}
		resolvedAt := s.now()
		r.Status = models.StatusResolved
		r.ResolvedAt = &resolvedAt
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to resolve SOS report")
		return nil, storeFailure(fmt.Errorf("service: resolve report: %w", err))
	}

	s.publishEvent(ctx, webhook.EventReportResolved, report)

	log.Info("SOS report resolved")
	return report, nil
}

// publishEvent enqueues a notification event. Delivery is best-effort and
// never fails the operation that triggered it.
func (s *sosService) publishEvent(ctx context.Context, kind string, report *models.SosReport) {
	if s.publisher == nil {
		return
	}
	event := webhook.Event{
		Kind:           kind,
		ReportID:       report.ID.String(),
		Status:         report.Status,
		RescueUnits:    report.RescueUnits,
		VolunteerUnits: report.VolunteerUnits,
		Timestamp:      s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("report_id", report.ID).Warn("Failed to enqueue notification event")
	}
}

// storeFailure classifies repository errors: domain sentinels pass through,
// everything else is surfaced as a store availability failure.
func storeFailure(err error) error {
	if errors.Is(err, ErrReportNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrNoSelection) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// dedupe returns ids with duplicates removed, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// unionInto appends the ids not already present in the set and returns how
// many were added.
func unionInto(set *[]string, ids []string) int {
	existing := make(map[string]struct{}, len(*set))
	for _, id := range *set {
		existing[id] = struct{}{}
	}
	added := 0
	for _, id := range ids {
		if _, ok := existing[id]; ok {
			continue
		}
		existing[id] = struct{}{}
		*set = append(*set, id)
		added++
	}
	return added
}

func removeID(set []string, id string) []string {
	out := make([]string, 0, len(set))
	for _, existing := range set {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
