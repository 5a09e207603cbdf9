package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/platform/logger"
	mock_interfaces "github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type flightDeckMocks struct {
	enrollments *mock_interfaces.MockIEnrollmentRepository
	metrics     *mock_interfaces.MockIWeeklyMetricRepository
	pricing     *mock_interfaces.MockIPricingRuleRepository
	financial   *mock_interfaces.MockIFinancialRulesRepository
	plans       *mock_interfaces.MockIPlanFinancialsRepository
}

func newFlightDeckMocks(ctrl *gomock.Controller) flightDeckMocks {
	return flightDeckMocks{
		enrollments: mock_interfaces.NewMockIEnrollmentRepository(ctrl),
		metrics:     mock_interfaces.NewMockIWeeklyMetricRepository(ctrl),
		pricing:     mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		financial:   mock_interfaces.NewMockIFinancialRulesRepository(ctrl),
		plans:       mock_interfaces.NewMockIPlanFinancialsRepository(ctrl),
	}
}

func (m flightDeckMocks) usecase() *FlightDeckUseCase {
	uc := NewFlightDeckUseCase(m.enrollments, m.metrics, m.pricing, m.financial, m.plans, logger.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) }
	return uc
}

// expectFetches wires the happy-path reads. The fetches run concurrently, so
// expectations stay order-free.
func (m flightDeckMocks) expectFetches(planID string, prior entities.PlanFinancials) {
	m.enrollments.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return([]entities.Enrollment{
		{ProviderKey: "Sophia Learning", CourseCode: "SOPH-101", Credits: 3, Status: entities.EnrollmentStatusCompleted},
		{ProviderKey: "Sophia Learning", CourseCode: "SOPH-102", Credits: 3, Status: entities.EnrollmentStatusInProgress},
	}, nil)
	m.metrics.EXPECT().ListRecentByStudentID(gomock.Any(), "stu-1", recentMetricWeeks).Return([]entities.WeeklyMetric{
		{StudentID: "stu-1", WeekOf: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), HoursStudied: 12},
	}, nil)
	m.pricing.EXPECT().ListActive(gomock.Any()).Return([]entities.PricingRule{
		{ID: "r1", Provider: "Sophia Learning", Model: entities.PricingModelSubscription, MonthlyPriceCents: 9_900, CoursesPerMonth: 2},
	}, nil)
	m.financial.EXPECT().Get(gomock.Any()).Return(entities.DefaultFinancialRules(), true, nil)
	m.financial.EXPECT().ListDurationRules(gomock.Any()).Return(nil, nil)
	m.plans.EXPECT().GetByPlanID(gomock.Any(), planID).Return(prior, nil)
}

func TestFlightDeckUseCase_Generate(t *testing.T) {
	t.Run("empty student id", func(t *testing.T) {
		uc := NewFlightDeckUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Generate(context.Background(), "  ", GenerateOptions{})
		if !errors.Is(err, ErrInvalidStudentID) {
			t.Fatalf("expected ErrInvalidStudentID, got %v", err)
		}
	})

	t.Run("financial rules not seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.enrollments.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return(nil, nil).AnyTimes()
		m.metrics.EXPECT().ListRecentByStudentID(gomock.Any(), "stu-1", recentMetricWeeks).Return(nil, nil).AnyTimes()
		m.pricing.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()
		m.financial.EXPECT().Get(gomock.Any()).Return(entities.FinancialRules{}, false, nil)
		m.financial.EXPECT().ListDurationRules(gomock.Any()).Return(nil, nil).AnyTimes()
		m.plans.EXPECT().GetByPlanID(gomock.Any(), "plan-1").Return(entities.PlanFinancials{}, nil).AnyTimes()

		_, err := m.usecase().Generate(context.Background(), "stu-1", GenerateOptions{PlanID: "plan-1"})
		if !errors.Is(err, ErrFinancialRulesNotConfigured) {
			t.Fatalf("expected ErrFinancialRulesNotConfigured, got %v", err)
		}
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.enrollments.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return(nil, errors.New("db down")).AnyTimes()
		m.metrics.EXPECT().ListRecentByStudentID(gomock.Any(), "stu-1", recentMetricWeeks).Return(nil, nil).AnyTimes()
		m.pricing.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()
		m.financial.EXPECT().Get(gomock.Any()).Return(entities.DefaultFinancialRules(), true, nil).AnyTimes()
		m.financial.EXPECT().ListDurationRules(gomock.Any()).Return(nil, nil).AnyTimes()
		m.plans.EXPECT().GetByPlanID(gomock.Any(), "plan-1").Return(entities.PlanFinancials{}, nil).AnyTimes()

		_, err := m.usecase().Generate(context.Background(), "stu-1", GenerateOptions{PlanID: "plan-1"})
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down, got %v", err)
		}
	})

	t.Run("generates and persists the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.expectFetches("plan-1", entities.PlanFinancials{})

		var persisted entities.PlanFinancials
		m.plans.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PlanFinancials) (entities.PlanFinancials, error) {
				persisted = p
				return p, nil
			})

		res, err := m.usecase().Generate(context.Background(), "stu-1", GenerateOptions{
			PlanID: "plan-1",
			Hints:  &projection.PlanHints{PaceMonths: 12, SessionsActual: 2, RemainingULCredits: 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StudentID != "stu-1" || res.PlanID != "plan-1" {
			t.Fatalf("unexpected identifiers: %+v", res)
		}
		if persisted.PlanID != "plan-1" || persisted.StudentID != "stu-1" {
			t.Fatalf("snapshot keys drifted: %+v", persisted)
		}
		if persisted.ProjectedTotal != res.Plan.ProjectedTotal {
			t.Fatalf("snapshot total drifted")
		}
		if res.Insights.Trend.HasPrior {
			t.Fatalf("first run must not report a prior trend")
		}
	})

	t.Run("prior snapshot feeds the trend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.expectFetches("plan-1", entities.PlanFinancials{PlanID: "plan-1", ProjectedTotal: 9_000})
		m.plans.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PlanFinancials) (entities.PlanFinancials, error) {
				return p, nil
			})

		res, err := m.usecase().Generate(context.Background(), "stu-1", GenerateOptions{
			PlanID: "plan-1",
			Hints:  &projection.PlanHints{PaceMonths: 12, SessionsActual: 2, RemainingULCredits: 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Insights.Trend.HasPrior {
			t.Fatalf("expected trend against the prior snapshot")
		}
	})

	t.Run("blank plan id gets generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.enrollments.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return(nil, nil)
		m.metrics.EXPECT().ListRecentByStudentID(gomock.Any(), "stu-1", recentMetricWeeks).Return(nil, nil)
		m.pricing.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
		m.financial.EXPECT().Get(gomock.Any()).Return(entities.DefaultFinancialRules(), true, nil)
		m.financial.EXPECT().ListDurationRules(gomock.Any()).Return(nil, nil)
		m.plans.EXPECT().GetByPlanID(gomock.Any(), gomock.Any()).Return(entities.PlanFinancials{}, nil)
		m.plans.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PlanFinancials) (entities.PlanFinancials, error) {
				return p, nil
			})

		res, err := m.usecase().Generate(context.Background(), "stu-1", GenerateOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PlanID == "" {
			t.Fatalf("expected a generated plan id")
		}
	})
}

func TestFlightDeckUseCase_GetPlan(t *testing.T) {
	t.Run("empty plan id", func(t *testing.T) {
		uc := NewFlightDeckUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.GetPlan(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPlanID) {
			t.Fatalf("expected ErrInvalidPlanID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.plans.EXPECT().GetByPlanID(gomock.Any(), "plan-x").Return(entities.PlanFinancials{}, nil)

		_, err := m.usecase().GetPlan(context.Background(), "plan-x")
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newFlightDeckMocks(ctrl)
		m.plans.EXPECT().GetByPlanID(gomock.Any(), "plan-1").Return(entities.PlanFinancials{PlanID: "plan-1", ProjectedTotal: 12_600}, nil)

		p, err := m.usecase().GetPlan(context.Background(), "plan-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ProjectedTotal != 12_600 {
			t.Fatalf("unexpected plan: %+v", p)
		}
	})
}
