package projection

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

func flightDeckInput() Input {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	return Input{
		StudentID: "stu-1",
		PlanID:    "plan-1",
		Enrollments: []entities.Enrollment{
			{ProviderKey: "Sophia Learning", CourseCode: "SOPH-101", Credits: 3, Status: entities.EnrollmentStatusCompleted},
			{ProviderKey: "Sophia Learning", CourseCode: "SOPH-102", Credits: 3, Status: entities.EnrollmentStatusCompleted},
			{ProviderKey: "Study.com", CourseCode: "STDY-201", Credits: 3, Status: entities.EnrollmentStatusCompleted},
			{ProviderKey: "Study.com", CourseCode: "STDY-202", Credits: 3, Status: entities.EnrollmentStatusInProgress},
		},
		Metrics: metricsFromHours(12, 10, 8),
		Rules: []entities.PricingRule{
			{ID: "r1", Provider: "Sophia Learning", Model: entities.PricingModelSubscription, MonthlyPriceCents: 9_900, CoursesPerMonth: 2},
			{ID: "r2", Provider: "Study.com", Model: entities.PricingModelPerCredit, PerCreditPriceCents: 5_900},
		},
		Financial: entities.FinancialRules{
			TotalProjectionCents: 1_500_000,
			LumiereFeeCents:      700_000,
			UMPISessionCostCents: 180_000,
			BaselineSessions:     2,
			CardFeePct:           3,
		},
		Hints: &PlanHints{PaceMonths: 12, SessionsActual: 2, RemainingULCredits: 10},
		Now:   now,
	}
}

func TestBuildFlightDeck(t *testing.T) {
	t.Run("assembles every section", func(t *testing.T) {
		res := BuildFlightDeck(flightDeckInput())
		if res.Credits.Completed != 9 || res.Credits.InProgress != 3 {
			t.Fatalf("unexpected credits: %+v", res.Credits)
		}
		if res.Pace.WeeklyHours <= 0 {
			t.Fatalf("missing pace")
		}
		// sophia 2 courses => 9900; study 6 credits => 35400
		if res.Pricing.Phase1CostCents != 45_300 {
			t.Fatalf("unexpected phase1: %d", res.Pricing.Phase1CostCents)
		}
		if res.Residency.RemainingCredits != 108 {
			t.Fatalf("unexpected residency: %+v", res.Residency)
		}
		if res.Plan.PaceMonths != 12 || len(res.Plan.Schedule) != 12 {
			t.Fatalf("unexpected plan: %+v", res.Plan)
		}
		if res.ETA.Months == 0 {
			t.Fatalf("expected a non-zero ETA")
		}
		if res.Insights.AlertLevel == "" {
			t.Fatalf("missing insights")
		}
		if res.GeneratedAt != flightDeckInput().Now {
			t.Fatalf("generated-at must come from the injected clock")
		}
		if len(res.Warnings) != 0 {
			t.Fatalf("healthy input should carry no warnings: %v", res.Warnings)
		}
	})

	t.Run("byte-identical regeneration", func(t *testing.T) {
		in := flightDeckInput()
		first, err := json.Marshal(BuildFlightDeck(in))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		for i := 0; i < 10; i++ {
			again, err := json.Marshal(BuildFlightDeck(in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if !bytes.Equal(first, again) {
				t.Fatalf("regeneration is not byte-stable")
			}
		}
	})

	t.Run("missing plan hints default with a surfaced warning", func(t *testing.T) {
		in := flightDeckInput()
		in.Hints = nil
		res := BuildFlightDeck(in)
		if res.Plan.PaceMonths != 12 || res.Plan.SessionsActual != 2 {
			t.Fatalf("expected cold-start defaults, got %+v", res.Plan)
		}
		found := false
		for _, w := range res.Warnings {
			if strings.Contains(w, "plan hints missing") {
				found = true
			}
		}
		if !found {
			t.Fatalf("the hints gap must be surfaced, got %v", res.Warnings)
		}
	})

	t.Run("prior snapshot feeds the trend", func(t *testing.T) {
		in := flightDeckInput()
		prior := 11_000.0
		in.PriorProjectedTotal = &prior
		res := BuildFlightDeck(in)
		if !res.Insights.Trend.HasPrior || res.Insights.Trend.Direction != TrendUp {
			t.Fatalf("unexpected trend: %+v", res.Insights.Trend)
		}
	})

	t.Run("empty everything still returns a complete result", func(t *testing.T) {
		res := BuildFlightDeck(Input{
			StudentID: "stu-2",
			PlanID:    "plan-2",
			Financial: entities.DefaultFinancialRules(),
			Now:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		})
		if res.Credits.Completed != 0 || res.Credits.InProgress != 0 {
			t.Fatalf("expected zero credits")
		}
		if res.Pace.WeeklyHours != DefaultWeeklyHours {
			t.Fatalf("expected default pace")
		}
		if res.Plan.ProjectedTotal <= 0 {
			t.Fatalf("a brand-new student still gets a priced plan: %+v", res.Plan)
		}
		if res.ETA.Months == 0 {
			t.Fatalf("expected a full-program ETA")
		}
	})
}

func TestFlightDeckResult_Snapshot(t *testing.T) {
	res := BuildFlightDeck(flightDeckInput())
	snap := res.Snapshot()
	if snap.PlanID != "plan-1" || snap.StudentID != "stu-1" {
		t.Fatalf("unexpected keys: %+v", snap)
	}
	if snap.ProjectedTotal != res.Plan.ProjectedTotal {
		t.Fatalf("snapshot total drifted")
	}
	if len(snap.Schedule) != len(res.Plan.Schedule) {
		t.Fatalf("snapshot schedule drifted")
	}
	if !snap.GeneratedAt.Equal(res.GeneratedAt) {
		t.Fatalf("snapshot timestamp drifted")
	}
}
