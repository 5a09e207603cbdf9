package projection

import (
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

const defaultPaceMonths = 12

const (
	OverageReasonExtraSessions = "Extra UMPI session(s)"
	OverageReasonPremiumExam   = "Premium language exam"
)

// DurationTable maps a chosen pace-in-months to a cost multiplier.
type DurationTable map[int]float64

// DefaultDurationTable is the documented baseline: compressed timelines
// cost more, extended ones less.
func DefaultDurationTable() DurationTable {
	return DurationTable{6: 1.50, 9: 1.20, 12: 1.00, 15: 0.90, 18: 0.80}
}

// DurationTableFromRules builds the lookup from configured rows, ignoring
// rows with a non-positive multiplier.
func DurationTableFromRules(rules []entities.DurationRule) DurationTable {
	t := make(DurationTable, len(rules))
	for _, r := range rules {
		if r.Months > 0 && r.CostMultiplier > 0 {
			t[r.Months] = r.CostMultiplier
		}
	}
	return t
}

// Multiplier defaults to 1.0 for unknown month values.
func (t DurationTable) Multiplier(months int) float64 {
	if m, ok := t[months]; ok && m > 0 {
		return m
	}
	return 1.0
}

// ExamOverride models substituting a premium exam for standard coursework.
type ExamOverride struct {
	Use           bool   `json:"use"`
	ExamCode      string `json:"exam_code"`
	Credits       int    `json:"credits"`
	ExamCostCents int64  `json:"exam_cost_cents"`
}

// ReplacedProvider describes the coursework the exam replaces, for the
// marginal cost delta.
type ReplacedProvider struct {
	Provider          string `json:"provider"`
	PerCreditEstCents int64  `json:"per_credit_est_cents"`
}

// ScheduleInput is everything BuildPaymentPlan needs. StartDate is
// injectable so tests (and regeneration comparisons) are deterministic.
type ScheduleInput struct {
	PaceMonths      int
	SessionsActual  int
	Phase1CostCents int64
	Exam            *ExamOverride
	Replaced        *ReplacedProvider
	PaymentMethod   entities.PaymentMethod
	StartDate       time.Time
}

// PaymentPlan is the full cost projection and month-by-month ledger.
// Figures are dollars rounded to 2 decimals at this boundary only; all
// intermediate arithmetic ran in full precision, so calling the builder
// twice with identical inputs yields byte-identical output.
type PaymentPlan struct {
	PaceMonths       int                      `json:"pace_months"`
	SessionsActual   int                      `json:"sessions_actual"`
	PaymentMethod    entities.PaymentMethod   `json:"payment_method"`
	BaseTotal        float64                  `json:"base_total"`
	ExamDelta        float64                  `json:"exam_delta"`
	ProjectedTotal   float64                  `json:"projected_total"`
	Over15k          bool                     `json:"over_15k"`
	OverageReasons   []string                 `json:"overage_reasons"`
	UpfrontDue       float64                  `json:"upfront_due"`
	Remaining        float64                  `json:"remaining"`
	BaseMonthly      float64                  `json:"base_monthly"`
	InstallmentFee   float64                  `json:"installment_fee"`
	MonthlyPayment   float64                  `json:"monthly_payment"`
	Schedule         []entities.ScheduleEntry `json:"schedule"`
	StartDate        time.Time                `json:"start_date"`
	CompletionTarget time.Time                `json:"completion_target"`
}

// BuildPaymentPlan combines base costs, the duration multiplier, the
// optional premium-exam delta and the payment-method fee into the projected
// total and monthly ledger.
func BuildPaymentPlan(in ScheduleInput, fin entities.FinancialRules, durations DurationTable) PaymentPlan {
	paceMonths := in.PaceMonths
	if paceMonths <= 0 {
		paceMonths = defaultPaceMonths
	}
	sessions := in.SessionsActual
	if sessions < 0 {
		sessions = 0
	}
	if len(durations) == 0 {
		durations = DefaultDurationTable()
	}

	multiplier := durations.Multiplier(paceMonths)
	lumiereFee := Dollars(fin.LumiereFeeCents)
	sessionsCost := float64(sessions) * Dollars(fin.UMPISessionCostCents)
	baseTotal := (lumiereFee + Dollars(in.Phase1CostCents) + sessionsCost) * multiplier

	// The exam delta is the added cost of substituting the premium exam for
	// the coursework it replaces. A cheaper exam yields zero, never a
	// credit back.
	examDelta := 0.0
	if in.Exam != nil && in.Exam.Use {
		replacedCost := 0.0
		if in.Replaced != nil && in.Exam.Credits > 0 {
			replacedCost = float64(in.Exam.Credits) * Dollars(in.Replaced.PerCreditEstCents)
		}
		examDelta = Dollars(in.Exam.ExamCostCents) - replacedCost
		if examDelta < 0 {
			examDelta = 0
		}
	}

	projectedTotal := baseTotal + examDelta
	over := projectedTotal > Dollars(fin.TotalProjectionCents)

	var reasons []string
	if over {
		if sessions > fin.BaselineSessions {
			reasons = append(reasons, OverageReasonExtraSessions)
		}
		if examDelta > 0 {
			reasons = append(reasons, OverageReasonPremiumExam)
		}
	}

	upfront := lumiereFee
	remaining := projectedTotal - upfront
	baseMonthly := remaining / float64(paceMonths)

	var fee float64
	switch in.PaymentMethod {
	case entities.PaymentMethodCard:
		fee = baseMonthly * fin.CardFeePct / 100
	case entities.PaymentMethodACH:
		fee = baseMonthly * fin.ACHFeePct / 100
	case entities.PaymentMethodWire:
		fee = Dollars(fin.WireFeeFlatCents)
	}
	monthly := baseMonthly + fee

	// Each ledger entry is rounded independently for display; the running
	// totals stay in full precision so the schedule remains internally
	// consistent through the final month.
	totalPaid := upfront
	schedule := make([]entities.ScheduleEntry, 0, paceMonths)
	for month := 1; month <= paceMonths; month++ {
		totalPaid += monthly
		balance := projectedTotal - totalPaid
		if balance < 0 {
			balance = 0
		}
		schedule = append(schedule, entities.ScheduleEntry{
			Month:            month,
			Payment:          Round2(monthly),
			TotalPaid:        Round2(totalPaid),
			RemainingBalance: Round2(balance),
		})
	}

	return PaymentPlan{
		PaceMonths:       paceMonths,
		SessionsActual:   sessions,
		PaymentMethod:    in.PaymentMethod,
		BaseTotal:        Round2(baseTotal),
		ExamDelta:        Round2(examDelta),
		ProjectedTotal:   Round2(projectedTotal),
		Over15k:          over,
		OverageReasons:   reasons,
		UpfrontDue:       Round2(upfront),
		Remaining:        Round2(remaining),
		BaseMonthly:      Round2(baseMonthly),
		InstallmentFee:   Round2(fee),
		MonthlyPayment:   Round2(monthly),
		Schedule:         schedule,
		StartDate:        in.StartDate,
		CompletionTarget: in.StartDate.AddDate(0, paceMonths, 0),
	}
}
