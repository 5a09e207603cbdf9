package response

import (
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// PlanFinancialsResponse is a persisted plan snapshot.
type PlanFinancialsResponse struct {
	PlanID           string                  `json:"plan_id"`
	StudentID        string                  `json:"student_id"`
	PaceMonths       int                     `json:"pace_months"`
	SessionsActual   int                     `json:"sessions_actual"`
	PaymentMethod    string                  `json:"payment_method"`
	BaseTotal        float64                 `json:"base_total"`
	ExamDelta        float64                 `json:"exam_delta"`
	ProjectedTotal   float64                 `json:"projected_total"`
	Over15k          bool                    `json:"over_15k"`
	OverageReasons   []string                `json:"overage_reasons,omitempty"`
	UpfrontDue       float64                 `json:"upfront_due"`
	MonthlyPayment   float64                 `json:"monthly_payment"`
	Schedule         []ScheduleEntryResponse `json:"schedule"`
	StartDate        time.Time               `json:"start_date"`
	CompletionTarget time.Time               `json:"completion_target"`
	GeneratedAt      time.Time               `json:"generated_at"`
}

func FromPlanFinancials(p entities.PlanFinancials) PlanFinancialsResponse {
	return PlanFinancialsResponse{
		PlanID:           p.PlanID,
		StudentID:        p.StudentID,
		PaceMonths:       p.PaceMonths,
		SessionsActual:   p.SessionsActual,
		PaymentMethod:    string(p.PaymentMethod),
		BaseTotal:        p.BaseTotal,
		ExamDelta:        p.ExamDelta,
		ProjectedTotal:   p.ProjectedTotal,
		Over15k:          p.Over15k,
		OverageReasons:   p.OverageReasons,
		UpfrontDue:       p.UpfrontDue,
		MonthlyPayment:   p.MonthlyPayment,
		Schedule:         scheduleEntries(p.Schedule),
		StartDate:        p.StartDate,
		CompletionTarget: p.CompletionTarget,
		GeneratedAt:      p.GeneratedAt,
	}
}
