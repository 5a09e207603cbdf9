package entities

import "time"

// PaymentMethod selects the installment fee applied to the payment schedule.

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodACH  PaymentMethod = "ach"
	PaymentMethodWire PaymentMethod = "wire"
)

// ScheduleEntry is one month of the payment ledger. Amounts are dollars
// already rounded to 2 decimals for display; the running totals were
// accumulated in full precision before rounding.
type ScheduleEntry struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	TotalPaid        float64 `json:"total_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// PlanFinancials is the persisted snapshot of a generated plan projection.
//
// Storage model (DynamoDB):
//   - PK: plan_id
//
// Regeneration upserts by plan_id, so there is at most one row per plan and
// the last writer wins. Amounts are presentation dollars (2 decimals).
type PlanFinancials struct {
	PlanID           string          `json:"plan_id"`
	StudentID        string          `json:"student_id"`
	PaceMonths       int             `json:"pace_months"`
	SessionsActual   int             `json:"sessions_actual"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	BaseTotal        float64         `json:"base_total"`
	ExamDelta        float64         `json:"exam_delta"`
	ProjectedTotal   float64         `json:"projected_total"`
	Over15k          bool            `json:"over_15k"`
	OverageReasons   []string        `json:"overage_reasons"`
	UpfrontDue       float64         `json:"upfront_due"`
	MonthlyPayment   float64         `json:"monthly_payment"`
	Schedule         []ScheduleEntry `json:"schedule"`
	StartDate        time.Time       `json:"start_date"`
	CompletionTarget time.Time       `json:"completion_target"`
	GeneratedAt      time.Time       `json:"generated_at"`
}
