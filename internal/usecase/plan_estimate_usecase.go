package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"
)

var (
	ErrInvalidPaceMonths = errors.New("invalid pace months")
	ErrInvalidSessions   = errors.New("invalid sessions")
	ErrInvalidPhase1Cost = errors.New("invalid phase 1 cost")
)

// PlanEstimateInput is a standalone what-if: no student record is read, the
// caller supplies the cost drivers directly.
type PlanEstimateInput struct {
	PaceMonths      int
	SessionsActual  int
	Phase1CostCents int64
	Exam            *projection.ExamOverride
	Replaced        *projection.ReplacedProvider
	PaymentMethod   entities.PaymentMethod
}

// IPlanEstimateUseCase exposes the financial sub-entry point: a payment plan
// computed from explicit inputs, nothing persisted.

type IPlanEstimateUseCase interface {
	Estimate(ctx context.Context, in PlanEstimateInput) (projection.PaymentPlan, error)
}

type PlanEstimateUseCase struct {
	financial interfaces.IFinancialRulesRepository
	now       func() time.Time
}

var _ IPlanEstimateUseCase = (*PlanEstimateUseCase)(nil)

func NewPlanEstimateUseCase(financial interfaces.IFinancialRulesRepository) *PlanEstimateUseCase {
	return &PlanEstimateUseCase{
		financial: financial,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PlanEstimateUseCase) Estimate(ctx context.Context, in PlanEstimateInput) (projection.PaymentPlan, error) {
	if in.PaceMonths <= 0 {
		return projection.PaymentPlan{}, ErrInvalidPaceMonths
	}
	if in.SessionsActual < 0 {
		return projection.PaymentPlan{}, ErrInvalidSessions
	}
	if in.Phase1CostCents < 0 {
		return projection.PaymentPlan{}, ErrInvalidPhase1Cost
	}

	fin, found, err := u.financial.Get(ctx)
	if err != nil {
		return projection.PaymentPlan{}, err
	}
	if !found {
		return projection.PaymentPlan{}, ErrFinancialRulesNotConfigured
	}
	durations, err := u.financial.ListDurationRules(ctx)
	if err != nil {
		return projection.PaymentPlan{}, err
	}

	plan := projection.BuildPaymentPlan(projection.ScheduleInput{
		PaceMonths:      in.PaceMonths,
		SessionsActual:  in.SessionsActual,
		Phase1CostCents: in.Phase1CostCents,
		Exam:            in.Exam,
		Replaced:        in.Replaced,
		PaymentMethod:   in.PaymentMethod,
		StartDate:       u.now(),
	}, fin, projection.DurationTableFromRules(durations))
	return plan, nil
}
