package projection

import (
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

const (
	defaultBaselineSessions   = 2
	defaultRemainingULCredits = 10
)

// PlanHints carries the student's chosen pace and session plan. When absent
// the documented cold-start defaults apply; the pipeline surfaces that as a
// warning because a silently defaulting hints row may be a data-sync gap.
type PlanHints struct {
	PaceMonths         int `json:"pace_months"`
	SessionsActual     int `json:"sessions_actual"`
	RemainingULCredits int `json:"remaining_ul_credits"`
}

// Input is the composed snapshot the engine runs over. Everything is
// already fetched and validated; the engine performs no I/O. Now is
// injectable so regeneration and tests are deterministic.
type Input struct {
	StudentID     string
	PlanID        string
	Enrollments   []entities.Enrollment
	Metrics       []entities.WeeklyMetric
	Rules         []entities.PricingRule
	Financial     entities.FinancialRules
	Durations     DurationTable
	Hints         *PlanHints
	Exam          *ExamOverride
	Replaced      *ReplacedProvider
	PaymentMethod entities.PaymentMethod
	// PriorProjectedTotal is last week's persisted projected total, when a
	// prior snapshot exists.
	PriorProjectedTotal *float64
	Now                 time.Time
}

// FlightDeckResult aggregates everything the dashboard renders.
type FlightDeckResult struct {
	StudentID   string            `json:"student_id"`
	PlanID      string            `json:"plan_id"`
	Credits     CreditsSummary    `json:"credits"`
	Pace        Pace              `json:"pace"`
	Pricing     PricingResult     `json:"pricing"`
	Residency   ResidencyEstimate `json:"residency"`
	Plan        PaymentPlan       `json:"plan"`
	ETA         ETA               `json:"eta"`
	Insights    Insights          `json:"insights"`
	Warnings    []string          `json:"warnings,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// BuildFlightDeck sequences the pipeline: progress and pace, then pricing
// and the payment schedule, then the ETA, then insights. Pure function of
// its input; identical inputs produce identical results.
func BuildFlightDeck(in Input) FlightDeckResult {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var warnings []string

	summary := AggregateProgress(in.Enrollments)
	pace := EstimatePace(in.Metrics, in.Enrollments)

	index := NewRuleIndex(in.Rules)
	pricing := ResolveProviderCosts(in.Enrollments, index)
	warnings = append(warnings, pricing.Warnings...)

	residency := UMPIResidency(summary.Completed, summary.InProgress, index, in.Financial)

	hints := in.Hints
	if hints == nil {
		hints = &PlanHints{
			PaceMonths:         defaultPaceMonths,
			SessionsActual:     defaultBaselineSessions,
			RemainingULCredits: defaultRemainingULCredits,
		}
		warnings = append(warnings, "plan hints missing; using defaults (2 sessions, 10 UL credits)")
	}
	sessions := hints.SessionsActual
	if sessions <= 0 {
		sessions = residency.SessionsNeeded
	}
	paceMonths := hints.PaceMonths
	if paceMonths <= 0 {
		paceMonths = defaultPaceMonths
	}

	durations := in.Durations
	if len(durations) == 0 {
		durations = DefaultDurationTable()
	}

	plan := BuildPaymentPlan(ScheduleInput{
		PaceMonths:      paceMonths,
		SessionsActual:  sessions,
		Phase1CostCents: pricing.Phase1CostCents,
		Exam:            in.Exam,
		Replaced:        in.Replaced,
		PaymentMethod:   in.PaymentMethod,
		StartDate:       now,
	}, in.Financial, durations)

	eta := CalculateETA(summary, pace, ProgramTotalCredits)
	if eta.Degraded {
		warnings = append(warnings, "weekly pace unusable; ETA computed with the default 10 hrs/week")
	}

	insights := BuildInsights(InsightsInput{
		Summary:                summary,
		Pace:                   pace,
		Plan:                   plan,
		ETA:                    eta,
		BudgetTotal:            Dollars(in.Financial.TotalProjectionCents),
		LastWeekProjectedTotal: in.PriorProjectedTotal,
	})

	return FlightDeckResult{
		StudentID:   in.StudentID,
		PlanID:      in.PlanID,
		Credits:     summary,
		Pace:        pace,
		Pricing:     pricing,
		Residency:   residency,
		Plan:        plan,
		ETA:         eta,
		Insights:    insights,
		Warnings:    warnings,
		GeneratedAt: now,
	}
}

// Snapshot converts the result into the persisted form upserted by plan id.
func (r FlightDeckResult) Snapshot() entities.PlanFinancials {
	return entities.PlanFinancials{
		PlanID:           r.PlanID,
		StudentID:        r.StudentID,
		PaceMonths:       r.Plan.PaceMonths,
		SessionsActual:   r.Plan.SessionsActual,
		PaymentMethod:    r.Plan.PaymentMethod,
		BaseTotal:        r.Plan.BaseTotal,
		ExamDelta:        r.Plan.ExamDelta,
		ProjectedTotal:   r.Plan.ProjectedTotal,
		Over15k:          r.Plan.Over15k,
		OverageReasons:   r.Plan.OverageReasons,
		UpfrontDue:       r.Plan.UpfrontDue,
		MonthlyPayment:   r.Plan.MonthlyPayment,
		Schedule:         r.Plan.Schedule,
		StartDate:        r.Plan.StartDate,
		CompletionTarget: r.Plan.CompletionTarget,
		GeneratedAt:      r.GeneratedAt,
	}
}
