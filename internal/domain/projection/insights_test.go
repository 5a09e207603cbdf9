package projection

import (
	"strings"
	"testing"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

func healthyInsightsInput() InsightsInput {
	// 60 remaining credits over 12 months needs about 17.3 h/week; 20
	// logged hours comfortably exceeds the target.
	return InsightsInput{
		Summary:     CreditsSummary{Completed: 45, InProgress: 15},
		Pace:        Pace{WeeklyHours: 20, HoursPerCredit: 15},
		Plan:        PaymentPlan{PaceMonths: 12, ProjectedTotal: 12_600, PaymentMethod: ""},
		ETA:         ETA{RemainingCredits: 60, Months: 11},
		BudgetTotal: 15_000,
	}
}

func TestBuildInsights_AlertLevel(t *testing.T) {
	t.Run("green when on budget and on pace", func(t *testing.T) {
		out := BuildInsights(healthyInsightsInput())
		if out.AlertLevel != AlertLevelGreen {
			t.Fatalf("expected green, got %s (%+v)", out.AlertLevel, out)
		}
	})

	t.Run("red on budget overage", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Plan.Over15k = true
		if out := BuildInsights(in); out.AlertLevel != AlertLevelRed {
			t.Fatalf("expected red")
		}
	})

	t.Run("red when the ETA exceeds a year", func(t *testing.T) {
		in := healthyInsightsInput()
		in.ETA.ExceedsOneYear = true
		if out := BuildInsights(in); out.AlertLevel != AlertLevelRed {
			t.Fatalf("expected red")
		}
	})

	t.Run("red when pace drops below seventy percent of target", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Pace.WeeklyHours = 10 // target is about 17.3
		out := BuildInsights(in)
		if out.PercentOfTarget >= slowPaceThresholdPct {
			t.Fatalf("test setup: percent %v not below threshold", out.PercentOfTarget)
		}
		if out.AlertLevel != AlertLevelRed {
			t.Fatalf("expected red")
		}
	})
}

func TestBuildInsights_BudgetWarnings(t *testing.T) {
	t.Run("silent under budget", func(t *testing.T) {
		if out := BuildInsights(healthyInsightsInput()); len(out.BudgetWarnings) != 0 {
			t.Fatalf("unexpected warnings: %+v", out.BudgetWarnings)
		}
	})

	t.Run("one message per overage reason plus the headline", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Plan.Over15k = true
		in.Plan.ProjectedTotal = 18_900
		in.Plan.OverageReasons = []string{OverageReasonExtraSessions, OverageReasonPremiumExam}
		out := BuildInsights(in)
		if len(out.BudgetWarnings) != 3 {
			t.Fatalf("expected 3 warnings, got %+v", out.BudgetWarnings)
		}
		if out.BudgetWarnings[0].Icon != IconDollar || !strings.Contains(out.BudgetWarnings[0].Message, "18900.00") {
			t.Fatalf("unexpected headline: %+v", out.BudgetWarnings[0])
		}
		if out.BudgetWarnings[2].Icon != IconAlert {
			t.Fatalf("premium exam warning should hint the alert icon: %+v", out.BudgetWarnings[2])
		}
	})
}

func TestBuildInsights_Milestones(t *testing.T) {
	t.Run("none with zero credits", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Summary = CreditsSummary{}
		if out := BuildInsights(in); len(out.Milestones) != 0 {
			t.Fatalf("unexpected milestones: %+v", out.Milestones)
		}
	})

	t.Run("fires every crossed threshold", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Summary = CreditsSummary{Completed: 90}
		out := BuildInsights(in)
		// first credit, 50% (60) and 75% (90)
		if len(out.Milestones) != 3 {
			t.Fatalf("expected 3 milestones, got %+v", out.Milestones)
		}
		for _, m := range out.Milestones {
			if m.Icon != IconTrophy {
				t.Fatalf("milestones use the trophy icon: %+v", m)
			}
		}
	})

	t.Run("full program fires everything", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Summary = CreditsSummary{Completed: 120}
		if out := BuildInsights(in); len(out.Milestones) != 4 {
			t.Fatalf("expected 4 milestones, got %+v", out.Milestones)
		}
	})
}

func TestBuildInsights_Recommendations(t *testing.T) {
	t.Run("pace bucket below target", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Pace.WeeklyHours = 15 // below ~17.3 target but above 70%
		out := BuildInsights(in)
		if len(out.Recommendations.Pace) != 1 {
			t.Fatalf("expected a pace recommendation, got %+v", out.Recommendations)
		}
		if out.Recommendations.Pace[0].Icon != IconZap {
			t.Fatalf("unexpected icon: %+v", out.Recommendations.Pace[0])
		}
	})

	t.Run("credits bucket when nothing is in progress", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Summary.InProgress = 0
		out := BuildInsights(in)
		if len(out.Recommendations.Credits) != 1 {
			t.Fatalf("expected a credits recommendation, got %+v", out.Recommendations)
		}
	})

	t.Run("budget bucket suggests ach on card", func(t *testing.T) {
		in := healthyInsightsInput()
		in.Plan.PaymentMethod = entities.PaymentMethodCard
		out := BuildInsights(in)
		if len(out.Recommendations.Budget) != 1 || !strings.Contains(out.Recommendations.Budget[0].Message, "ACH") {
			t.Fatalf("expected the ACH suggestion, got %+v", out.Recommendations.Budget)
		}
	})

	t.Run("on-target student gets no pace nag", func(t *testing.T) {
		out := BuildInsights(healthyInsightsInput())
		if len(out.Recommendations.Pace) != 0 {
			t.Fatalf("unexpected pace recommendation: %+v", out.Recommendations.Pace)
		}
	})
}

func TestBuildInsights_Trend(t *testing.T) {
	t.Run("no prior snapshot is flat without a prior", func(t *testing.T) {
		out := BuildInsights(healthyInsightsInput())
		if out.Trend.HasPrior {
			t.Fatalf("expected no prior")
		}
		if out.Trend.Direction != TrendFlat || out.Trend.Delta != 0 {
			t.Fatalf("unexpected trend: %+v", out.Trend)
		}
	})

	t.Run("up and down movements", func(t *testing.T) {
		in := healthyInsightsInput()
		prior := 12_000.0
		in.LastWeekProjectedTotal = &prior
		out := BuildInsights(in)
		if out.Trend.Direction != TrendUp || out.Trend.Delta != 600.00 {
			t.Fatalf("expected up 600, got %+v", out.Trend)
		}
		if out.Trend.PercentChange != 5.00 {
			t.Fatalf("expected 5%% change, got %v", out.Trend.PercentChange)
		}

		prior = 13_000.0
		out = BuildInsights(in)
		if out.Trend.Direction != TrendDown {
			t.Fatalf("expected down, got %+v", out.Trend)
		}
	})

	t.Run("identical totals are flat with a prior", func(t *testing.T) {
		in := healthyInsightsInput()
		prior := in.Plan.ProjectedTotal
		in.LastWeekProjectedTotal = &prior
		out := BuildInsights(in)
		if !out.Trend.HasPrior || out.Trend.Direction != TrendFlat {
			t.Fatalf("expected flat with prior, got %+v", out.Trend)
		}
	})
}
