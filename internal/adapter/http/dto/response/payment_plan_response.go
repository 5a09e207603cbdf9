package response

import (
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
)

type ScheduleEntryResponse struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	TotalPaid        float64 `json:"total_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// PaymentPlanResponse is the cost projection plus the month-by-month ledger.
// Amounts are dollars rounded to 2 decimals.
type PaymentPlanResponse struct {
	PaceMonths       int                     `json:"pace_months"`
	SessionsActual   int                     `json:"sessions_actual"`
	PaymentMethod    string                  `json:"payment_method"`
	BaseTotal        float64                 `json:"base_total"`
	ExamDelta        float64                 `json:"exam_delta"`
	ProjectedTotal   float64                 `json:"projected_total"`
	Over15k          bool                    `json:"over_15k"`
	OverageReasons   []string                `json:"overage_reasons,omitempty"`
	UpfrontDue       float64                 `json:"upfront_due"`
	Remaining        float64                 `json:"remaining"`
	BaseMonthly      float64                 `json:"base_monthly"`
	InstallmentFee   float64                 `json:"installment_fee"`
	MonthlyPayment   float64                 `json:"monthly_payment"`
	Schedule         []ScheduleEntryResponse `json:"schedule"`
	StartDate        time.Time               `json:"start_date"`
	CompletionTarget time.Time               `json:"completion_target"`
}

func FromPaymentPlan(p projection.PaymentPlan) PaymentPlanResponse {
	return PaymentPlanResponse{
		PaceMonths:       p.PaceMonths,
		SessionsActual:   p.SessionsActual,
		PaymentMethod:    string(p.PaymentMethod),
		BaseTotal:        p.BaseTotal,
		ExamDelta:        p.ExamDelta,
		ProjectedTotal:   p.ProjectedTotal,
		Over15k:          p.Over15k,
		OverageReasons:   p.OverageReasons,
		UpfrontDue:       p.UpfrontDue,
		Remaining:        p.Remaining,
		BaseMonthly:      p.BaseMonthly,
		InstallmentFee:   p.InstallmentFee,
		MonthlyPayment:   p.MonthlyPayment,
		Schedule:         scheduleEntries(p.Schedule),
		StartDate:        p.StartDate,
		CompletionTarget: p.CompletionTarget,
	}
}

func scheduleEntries(entries []entities.ScheduleEntry) []ScheduleEntryResponse {
	out := make([]ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ScheduleEntryResponse{
			Month:            e.Month,
			Payment:          e.Payment,
			TotalPaid:        e.TotalPaid,
			RemainingBalance: e.RemainingBalance,
		})
	}
	return out
}
