package response

import (
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
)

// FlightDeckResponse is the full dashboard payload. The engine output types
// already carry their wire shape; only the payment plan is re-mapped so both
// plan endpoints serve the same structure.
type FlightDeckResponse struct {
	StudentID   string                       `json:"student_id"`
	PlanID      string                       `json:"plan_id"`
	AlertLevel  string                       `json:"alert_level"`
	Credits     projection.CreditsSummary    `json:"credits"`
	Pace        projection.Pace              `json:"pace"`
	Pricing     projection.PricingResult     `json:"pricing"`
	Residency   projection.ResidencyEstimate `json:"residency"`
	Plan        PaymentPlanResponse          `json:"plan"`
	ETA         projection.ETA               `json:"eta"`
	Insights    projection.Insights          `json:"insights"`
	Warnings    []string                     `json:"warnings,omitempty"`
	GeneratedAt time.Time                    `json:"generated_at"`
}

func FromFlightDeck(r projection.FlightDeckResult) FlightDeckResponse {
	return FlightDeckResponse{
		StudentID:   r.StudentID,
		PlanID:      r.PlanID,
		AlertLevel:  r.Insights.AlertLevel,
		Credits:     r.Credits,
		Pace:        r.Pace,
		Pricing:     r.Pricing,
		Residency:   r.Residency,
		Plan:        FromPaymentPlan(r.Plan),
		ETA:         r.ETA,
		Insights:    r.Insights,
		Warnings:    r.Warnings,
		GeneratedAt: r.GeneratedAt,
	}
}
