package request

import (
	"errors"
	"math"
	"strings"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidExamOverride  = errors.New("invalid exam override")
)

// ExamOverrideRequest substitutes a premium exam for standard coursework.
// Amounts are dollars; they are converted to cents at the boundary.
type ExamOverrideRequest struct {
	ExamCode             string  `json:"exam_code"`
	Credits              int     `json:"credits"`
	ExamCost             float64 `json:"exam_cost"`
	ReplacedProvider     string  `json:"replaced_provider"`
	ReplacedPerCreditEst float64 `json:"replaced_per_credit_est"`
}

// GenerateFlightDeckRequest is the optional body for a flight-deck run. An
// empty body is a plain regeneration with stored data and defaults.
type GenerateFlightDeckRequest struct {
	PlanID             string               `json:"plan_id"`
	PaceMonths         int                  `json:"pace_months"`
	SessionsActual     int                  `json:"sessions_actual"`
	RemainingULCredits int                  `json:"remaining_ul_credits"`
	PaymentMethod      string               `json:"payment_method"`
	Exam               *ExamOverrideRequest `json:"exam"`
}

// ResolveHints returns nil when the caller supplied no plan hints at all;
// the engine then applies its cold-start defaults and surfaces a warning.
func (r GenerateFlightDeckRequest) ResolveHints() *projection.PlanHints {
	if r.PaceMonths == 0 && r.SessionsActual == 0 && r.RemainingULCredits == 0 {
		return nil
	}
	return &projection.PlanHints{
		PaceMonths:         r.PaceMonths,
		SessionsActual:     r.SessionsActual,
		RemainingULCredits: r.RemainingULCredits,
	}
}

func (r GenerateFlightDeckRequest) ResolveExam() (*projection.ExamOverride, *projection.ReplacedProvider, error) {
	return resolveExam(r.Exam)
}

func (r GenerateFlightDeckRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	return resolvePaymentMethod(r.PaymentMethod)
}

func resolveExam(e *ExamOverrideRequest) (*projection.ExamOverride, *projection.ReplacedProvider, error) {
	if e == nil {
		return nil, nil, nil
	}
	if e.ExamCost < 0 || e.Credits < 0 || e.ReplacedPerCreditEst < 0 {
		return nil, nil, ErrInvalidExamOverride
	}
	exam := &projection.ExamOverride{
		Use:           true,
		ExamCode:      strings.TrimSpace(e.ExamCode),
		Credits:       e.Credits,
		ExamCostCents: dollarsToCents(e.ExamCost),
	}
	var replaced *projection.ReplacedProvider
	if strings.TrimSpace(e.ReplacedProvider) != "" || e.ReplacedPerCreditEst > 0 {
		replaced = &projection.ReplacedProvider{
			Provider:          strings.TrimSpace(e.ReplacedProvider),
			PerCreditEstCents: dollarsToCents(e.ReplacedPerCreditEst),
		}
	}
	return exam, replaced, nil
}

func resolvePaymentMethod(v string) (entities.PaymentMethod, error) {
	switch entities.PaymentMethod(strings.ToLower(strings.TrimSpace(v))) {
	case "":
		return entities.PaymentMethodCard, nil
	case entities.PaymentMethodCard:
		return entities.PaymentMethodCard, nil
	case entities.PaymentMethodACH:
		return entities.PaymentMethodACH, nil
	case entities.PaymentMethodWire:
		return entities.PaymentMethodWire, nil
	}
	return "", ErrInvalidPaymentMethod
}

func dollarsToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
