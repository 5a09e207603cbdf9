package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/platform/logger"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidStudentID            = errors.New("invalid student_id")
	ErrInvalidPlanID               = errors.New("invalid plan id")
	ErrPlanNotFound                = errors.New("plan not found")
	ErrFinancialRulesNotConfigured = errors.New("financial rules not configured")
)

// recentMetricWeeks bounds the study-hours fetch; the pace estimator never
// looks past this window.
const recentMetricWeeks = 6

// GenerateOptions carries the per-request knobs for a flight-deck run. All
// fields are optional; absent hints fall back to the documented cold-start
// defaults inside the projection pipeline.
type GenerateOptions struct {
	PlanID        string
	Hints         *projection.PlanHints
	Exam          *projection.ExamOverride
	Replaced      *projection.ReplacedProvider
	PaymentMethod entities.PaymentMethod
}

// IFlightDeckUseCase exposes the dashboard projection operations.
//
//   - Generate composes every input, runs the projection pipeline and
//     persists the resulting plan snapshot.
//   - GetPlan returns the last persisted snapshot for a plan.

type IFlightDeckUseCase interface {
	Generate(ctx context.Context, studentID string, opts GenerateOptions) (projection.FlightDeckResult, error)
	GetPlan(ctx context.Context, planID string) (entities.PlanFinancials, error)
}

type FlightDeckUseCase struct {
	enrollments interfaces.IEnrollmentRepository
	metrics     interfaces.IWeeklyMetricRepository
	pricing     interfaces.IPricingRuleRepository
	financial   interfaces.IFinancialRulesRepository
	plans       interfaces.IPlanFinancialsRepository
	log         *logger.Logger
	now         func() time.Time
}

var _ IFlightDeckUseCase = (*FlightDeckUseCase)(nil)

func NewFlightDeckUseCase(
	enrollments interfaces.IEnrollmentRepository,
	metrics interfaces.IWeeklyMetricRepository,
	pricing interfaces.IPricingRuleRepository,
	financial interfaces.IFinancialRulesRepository,
	plans interfaces.IPlanFinancialsRepository,
	log *logger.Logger,
) *FlightDeckUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &FlightDeckUseCase{
		enrollments: enrollments,
		metrics:     metrics,
		pricing:     pricing,
		financial:   financial,
		plans:       plans,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *FlightDeckUseCase) Generate(ctx context.Context, studentID string, opts GenerateOptions) (projection.FlightDeckResult, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return projection.FlightDeckResult{}, ErrInvalidStudentID
	}
	planID := strings.TrimSpace(opts.PlanID)
	if planID == "" {
		planID = uuid.NewString()
	}

	var (
		enrollments []entities.Enrollment
		metrics     []entities.WeeklyMetric
		rules       []entities.PricingRule
		fin         entities.FinancialRules
		finFound    bool
		durations   []entities.DurationRule
		prior       entities.PlanFinancials
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		enrollments, err = u.enrollments.ListByStudentID(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = u.metrics.ListRecentByStudentID(gctx, studentID, recentMetricWeeks)
		return err
	})
	g.Go(func() error {
		var err error
		rules, err = u.pricing.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		fin, finFound, err = u.financial.Get(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		durations, err = u.financial.ListDurationRules(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		prior, err = u.plans.GetByPlanID(gctx, planID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Error("flight-deck input fetch failed", "student_id", studentID, "error", err)
		return projection.FlightDeckResult{}, err
	}
	if !finFound {
		u.log.Error("financial rules row not seeded", "student_id", studentID)
		return projection.FlightDeckResult{}, ErrFinancialRulesNotConfigured
	}

	var priorTotal *float64
	if prior.PlanID != "" {
		t := prior.ProjectedTotal
		priorTotal = &t
	}

	res := projection.BuildFlightDeck(projection.Input{
		StudentID:           studentID,
		PlanID:              planID,
		Enrollments:         enrollments,
		Metrics:             metrics,
		Rules:               rules,
		Financial:           fin,
		Durations:           projection.DurationTableFromRules(durations),
		Hints:               opts.Hints,
		Exam:                opts.Exam,
		Replaced:            opts.Replaced,
		PaymentMethod:       opts.PaymentMethod,
		PriorProjectedTotal: priorTotal,
		Now:                 u.now(),
	})
	for _, w := range res.Warnings {
		u.log.Warn("flight-deck degraded input", "student_id", studentID, "plan_id", planID, "warning", w)
	}

	if _, err := u.plans.Upsert(ctx, res.Snapshot()); err != nil {
		u.log.Error("plan snapshot upsert failed", "student_id", studentID, "plan_id", planID, "error", err)
		return projection.FlightDeckResult{}, err
	}
	u.log.Info("flight-deck generated",
		"student_id", studentID,
		"plan_id", planID,
		"projected_total", res.Plan.ProjectedTotal,
		"alert_level", res.Insights.AlertLevel,
	)
	return res, nil
}

func (u *FlightDeckUseCase) GetPlan(ctx context.Context, planID string) (entities.PlanFinancials, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.PlanFinancials{}, ErrInvalidPlanID
	}

	p, err := u.plans.GetByPlanID(ctx, planID)
	if err != nil {
		return entities.PlanFinancials{}, err
	}
	if p.PlanID == "" {
		return entities.PlanFinancials{}, ErrPlanNotFound
	}
	return p, nil
}
