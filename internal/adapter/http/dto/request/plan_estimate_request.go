package request

import (
	"errors"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
)

var ErrInvalidEstimateInput = errors.New("invalid estimate input")

// PlanEstimateRequest is the standalone what-if payload. Phase1Cost is
// dollars; pace_months is the only required field.
type PlanEstimateRequest struct {
	PaceMonths     int                  `json:"pace_months" binding:"required"`
	SessionsActual int                  `json:"sessions_actual"`
	Phase1Cost     float64              `json:"phase1_cost"`
	PaymentMethod  string               `json:"payment_method"`
	Exam           *ExamOverrideRequest `json:"exam"`
}

func (r PlanEstimateRequest) ResolvePhase1CostCents() (int64, error) {
	if r.Phase1Cost < 0 {
		return 0, ErrInvalidEstimateInput
	}
	return dollarsToCents(r.Phase1Cost), nil
}

func (r PlanEstimateRequest) ResolveExam() (*projection.ExamOverride, *projection.ReplacedProvider, error) {
	return resolveExam(r.Exam)
}

func (r PlanEstimateRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	return resolvePaymentMethod(r.PaymentMethod)
}
