package projection

import (
	"fmt"
	"math"
)

const (
	AlertLevelGreen = "green"
	AlertLevelRed   = "red"

	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"

	IconDollar = "dollar"
	IconAlert  = "alert"
	IconZap    = "zap"
	IconBook   = "book"
	IconTrophy = "trophy"

	// slowPaceThresholdPct: below this percent of the target weekly hours
	// the whole dashboard goes red.
	slowPaceThresholdPct = 70.0
)

// Insight is one rule-produced message plus a display-icon hint.
type Insight struct {
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// Recommendations groups next-best-action suggestions into the three
// independent buckets the dashboard renders.
type Recommendations struct {
	Pace    []Insight `json:"pace"`
	Credits []Insight `json:"credits"`
	Budget  []Insight `json:"budget"`
}

// Trend is the week-over-week movement of the projected total. HasPrior
// distinguishes "no prior snapshot" from an actual zero change.
type Trend struct {
	Direction     string  `json:"direction"`
	Delta         float64 `json:"delta"`
	PercentChange float64 `json:"percent_change"`
	HasPrior      bool    `json:"has_prior"`
}

// Insights is the threshold-rule output over the rest of the pipeline.
type Insights struct {
	AlertLevel      string          `json:"alert_level"`
	PercentOfTarget float64         `json:"percent_of_target"`
	TargetHours     float64         `json:"target_hours"`
	BudgetWarnings  []Insight       `json:"budget_warnings"`
	Milestones      []Insight       `json:"milestones"`
	Recommendations Recommendations `json:"recommendations"`
	Trend           Trend           `json:"trend"`
}

// InsightsInput feeds the stateless rule set. BudgetTotal is the configured
// projection threshold in dollars.
type InsightsInput struct {
	Summary                CreditsSummary
	Pace                   Pace
	Plan                   PaymentPlan
	ETA                    ETA
	BudgetTotal            float64
	LastWeekProjectedTotal *float64
}

// BuildInsights applies the threshold rules. It keeps no state: milestone
// celebrations are recomputed from current totals every run rather than
// flagged as already-fired.
func BuildInsights(in InsightsInput) Insights {
	target := targetWeeklyHours(in)
	percent := 100.0
	if target > 0 {
		percent = in.Pace.WeeklyHours / target * 100
	}

	out := Insights{
		PercentOfTarget: Round2(percent),
		TargetHours:     Round2(target),
		AlertLevel:      AlertLevelGreen,
		Trend:           buildTrend(in.Plan.ProjectedTotal, in.LastWeekProjectedTotal),
	}
	if in.Plan.Over15k || in.ETA.ExceedsOneYear || percent < slowPaceThresholdPct {
		out.AlertLevel = AlertLevelRed
	}

	out.BudgetWarnings = budgetWarnings(in.Plan, in.BudgetTotal)
	out.Milestones = milestones(in.Summary)
	out.Recommendations = recommendations(in, target, percent)
	return out
}

// targetWeeklyHours is the weekly study rate needed to finish the remaining
// credits within the plan's pace.
func targetWeeklyHours(in InsightsInput) float64 {
	months := in.Plan.PaceMonths
	if months <= 0 {
		months = defaultPaceMonths
	}
	weeks := float64(months) * weeksPerMonth
	return float64(in.ETA.RemainingCredits) * in.Pace.HoursPerCredit / weeks
}

func budgetWarnings(plan PaymentPlan, budget float64) []Insight {
	if !plan.Over15k {
		return nil
	}
	warnings := []Insight{{
		Message: fmt.Sprintf("Projected total $%.2f exceeds your $%.2f budget", plan.ProjectedTotal, budget),
		Icon:    IconDollar,
	}}
	for _, reason := range plan.OverageReasons {
		icon := IconDollar
		if reason == OverageReasonPremiumExam {
			icon = IconAlert
		}
		warnings = append(warnings, Insight{Message: reason, Icon: icon})
	}
	return warnings
}

func milestones(summary CreditsSummary) []Insight {
	var out []Insight
	if summary.Completed >= 1 {
		out = append(out, Insight{Message: "First credits are on the books", Icon: IconTrophy})
	}
	total := float64(ProgramTotalCredits)
	for _, pct := range []int{50, 75, 100} {
		threshold := int(math.Ceil(total * float64(pct) / 100))
		if summary.Completed >= threshold {
			out = append(out, Insight{
				Message: fmt.Sprintf("%d%% of the program complete (%d credits)", pct, summary.Completed),
				Icon:    IconTrophy,
			})
		}
	}
	return out
}

func recommendations(in InsightsInput, target, percent float64) Recommendations {
	var rec Recommendations

	if percent < 100 && in.ETA.RemainingCredits > 0 {
		rec.Pace = append(rec.Pace, Insight{
			Message: fmt.Sprintf("Increase study time to %.0f hrs/week to finish on time", math.Ceil(target)),
			Icon:    IconZap,
		})
	}

	if in.Summary.InProgress == 0 && in.ETA.RemainingCredits > 0 {
		rec.Credits = append(rec.Credits, Insight{
			Message: "No courses in progress; add one this term to keep momentum",
			Icon:    IconBook,
		})
	}

	if in.Plan.PaymentMethod == "card" {
		rec.Budget = append(rec.Budget, Insight{
			Message: "Consider ACH to avoid card processing fees on every installment",
			Icon:    IconDollar,
		})
	}
	if in.Plan.Over15k && in.Plan.ExamDelta > 0 {
		rec.Budget = append(rec.Budget, Insight{
			Message: "The premium exam adds cost; compare it against standard coursework",
			Icon:    IconAlert,
		})
	}
	return rec
}

func buildTrend(projectedTotal float64, lastWeek *float64) Trend {
	if lastWeek == nil {
		return Trend{Direction: TrendFlat}
	}
	delta := projectedTotal - *lastWeek
	t := Trend{Delta: Round2(delta), HasPrior: true, Direction: TrendFlat}
	if *lastWeek != 0 {
		t.PercentChange = Round2(delta / *lastWeek * 100)
	}
	switch {
	case delta > 0.005:
		t.Direction = TrendUp
	case delta < -0.005:
		t.Direction = TrendDown
	}
	return t
}
