package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"volunteer-roster-backend/internal/database/models"
	apperrors "volunteer-roster-backend/internal/errors"
	"volunteer-roster-backend/internal/repository"
	"volunteer-roster-backend/internal/scheduler"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SolverService orchestrates one solve: it validates the request, loads an
// immutable snapshot of the organization's data in the window, runs the
// scheduler, scores the result and persists the solution atomically.
type SolverService struct {
	orgRepo      repository.OrganizationRepositoryInterface
	personRepo   repository.PersonRepositoryInterface
	eventRepo    repository.EventRepositoryInterface
	timeOffRepo  repository.TimeOffRepositoryInterface
	solutionRepo repository.SolutionRepositoryInterface
	solverConfig scheduler.Config
	validator    *validator.Validate
	logger       *logrus.Logger
}

// NewSolverService creates a new solver service
func NewSolverService(
	orgRepo repository.OrganizationRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	timeOffRepo repository.TimeOffRepositoryInterface,
	solutionRepo repository.SolutionRepositoryInterface,
	solverConfig scheduler.Config,
	validator *validator.Validate,
	logger *logrus.Logger,
) *SolverService {
	return &SolverService{
		orgRepo:      orgRepo,
		personRepo:   personRepo,
		eventRepo:    eventRepo,
		timeOffRepo:  timeOffRepo,
		solutionRepo: solutionRepo,
		solverConfig: solverConfig,
		validator:    validator,
		logger:       logger,
	}
}

// SolveRequest represents the request to generate a schedule
type SolveRequest struct {
	OrganizationID uuid.UUID `json:"org_id" validate:"required"`
	FromDate       string    `json:"from_date" validate:"required"`
	ToDate         string    `json:"to_date" validate:"required"`
	Mode           string    `json:"mode,omitempty"`
}

// SolveMetrics represents the quality metrics of a solve
type SolveMetrics struct {
	HardViolations int     `json:"hard_violations"`
	HealthScore    float64 `json:"health_score"`
	SolveMS        int64   `json:"solve_ms"`
}

// SolveResponse represents the response to a solve request
type SolveResponse struct {
	SolutionID      uuid.UUID    `json:"solution_id"`
	AssignmentCount int          `json:"assignment_count"`
	Metrics         SolveMetrics `json:"metrics"`
	Message         string       `json:"message"`
}

// Solve runs one schedule generation for an organization's date window.
//
// Validation failures (bad dates, unknown org, empty window) fail fast with
// a typed error before any solving happens. Unfillable slots do not fail the
// solve: they surface as hard_violations on a partial solution.
func (s *SolverService) Solve(req *SolveRequest) (*SolveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	from, err := time.Parse(scheduler.DateLayout, req.FromDate)
	if err != nil {
		return nil, apperrors.NewValidationError("from_date", "must be a YYYY-MM-DD date")
	}
	to, err := time.Parse(scheduler.DateLayout, req.ToDate)
	if err != nil {
		return nil, apperrors.NewValidationError("to_date", "must be a YYYY-MM-DD date")
	}
	if from.After(to) {
		return nil, apperrors.ErrInvalidDateRange
	}

	mode := models.SolveMode(req.Mode)
	if mode == "" {
		mode = models.SolveModeBalanced
	}
	if !mode.IsValid() {
		return nil, apperrors.ErrInvalidSolveMode
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	snap, err := s.loadSnapshot(req.OrganizationID, from, to)
	if err != nil {
		return nil, err
	}
	if len(snap.Events) == 0 {
		return nil, apperrors.ErrNoEventsInRange
	}

	started := time.Now()
	result := scheduler.New(s.solverConfig).Solve(snap, mode)
	metrics := scheduler.Score(result)
	solveMS := time.Since(started).Milliseconds()

	solution := &models.Solution{
		OrganizationID:  req.OrganizationID,
		FromDate:        from,
		ToDate:          to,
		Mode:            mode,
		AssignmentCount: metrics.AssignmentCount,
		HardViolations:  metrics.HardViolations,
		HealthScore:     metrics.HealthScore,
		SolveMS:         solveMS,
	}

	assignments := make([]models.Assignment, len(result.Assignments))
	for i, a := range result.Assignments {
		assignments[i] = models.Assignment{
			OrganizationID: req.OrganizationID,
			EventID:        a.EventID,
			PersonID:       a.PersonID,
			Role:           string(a.Role),
		}
	}

	if err := s.solutionRepo.Save(solution, assignments); err != nil {
		return nil, apperrors.NewPersistenceError("save solution", err)
	}

	s.logger.WithFields(logrus.Fields{
		"org_id":           req.OrganizationID,
		"from_date":        req.FromDate,
		"to_date":          req.ToDate,
		"mode":             mode,
		"events":           len(snap.Events),
		"people":           len(snap.People),
		"assignment_count": metrics.AssignmentCount,
		"hard_violations":  metrics.HardViolations,
		"health_score":     metrics.HealthScore,
		"solve_ms":         solveMS,
	}).Info("Solve completed")

	return &SolveResponse{
		SolutionID:      solution.ID,
		AssignmentCount: metrics.AssignmentCount,
		Metrics: SolveMetrics{
			HardViolations: metrics.HardViolations,
			HealthScore:    metrics.HealthScore,
			SolveMS:        solveMS,
		},
		Message: buildSolveMessage(result),
	}, nil
}

// loadSnapshot reads all solver input for the window in one pass. The
// snapshot is never written back; writes landing after this point do not
// affect the in-flight solve.
func (s *SolverService) loadSnapshot(orgID uuid.UUID, from, to time.Time) (*scheduler.Snapshot, error) {
	events, err := s.eventRepo.GetByWindow(orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	people, err := s.personRepo.GetActiveByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}

	personIDs := make([]uuid.UUID, len(people))
	for i, p := range people {
		personIDs[i] = p.ID
	}
	var timeOff []models.TimeOffRange
	if len(personIDs) > 0 {
		timeOff, err = s.timeOffRepo.GetByPersonIDs(personIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load time-off ranges: %w", err)
		}
	}

	snap := &scheduler.Snapshot{
		OrgID:    orgID,
		FromDate: from.Format(scheduler.DateLayout),
		ToDate:   to.Format(scheduler.DateLayout),
		Events:   make([]scheduler.EventSnapshot, len(events)),
		People:   make([]scheduler.PersonSnapshot, len(people)),
		TimeOff:  make([]scheduler.TimeOffSnapshot, len(timeOff)),
	}
	for i, ev := range events {
		snap.Events[i] = scheduler.EventSnapshot{
			ID:           ev.ID,
			Type:         ev.Type,
			StartTime:    ev.StartTime,
			EndTime:      ev.EndTime,
			Location:     ev.Location,
			Requirements: ev.RoleRequirements,
		}
	}
	for i, p := range people {
		snap.People[i] = scheduler.PersonSnapshot{
			ID:    p.ID,
			Name:  p.Name,
			Roles: p.Roles,
		}
	}
	for i, rng := range timeOff {
		snap.TimeOff[i] = scheduler.TimeOffSnapshot{
			PersonID:  rng.PersonID,
			StartDate: rng.StartDate.Format(scheduler.DateLayout),
			EndDate:   rng.EndDate.Format(scheduler.DateLayout),
		}
	}
	return snap, nil
}

// buildSolveMessage summarizes the solve for the operator. A zero-assignment
// result with unfilled slots reads very differently from a clean fill, and
// the per-role shortfall counts tell the admin which roles need more people.
func buildSolveMessage(result *scheduler.Result) string {
	filled := len(result.Assignments)
	total := result.TotalDemandedSlots
	if len(result.Shortfalls) == 0 {
		return fmt.Sprintf("All %d required slots filled.", total)
	}

	missingByRole := make(map[models.RoleID]int)
	for _, sf := range result.Shortfalls {
		missingByRole[sf.Role] += sf.Missing
	}
	roles := make([]models.RoleID, 0, len(missingByRole))
	for role := range missingByRole {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	parts := make([]string, len(roles))
	for i, role := range roles {
		parts[i] = fmt.Sprintf("%d %s", missingByRole[role], role)
	}
	return fmt.Sprintf("Filled %d of %d required slots. Unfilled: %s. Add eligible people or adjust role requirements.",
		filled, total, strings.Join(parts, ", "))
}
