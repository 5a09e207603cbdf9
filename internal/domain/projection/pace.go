package projection

import (
	"math"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

const (
	DefaultWeeklyHours    = 10.0
	DefaultHoursPerCredit = 15.0

	// paceWindowWeeks bounds how much history feeds the estimate.
	paceWindowWeeks = 6

	minWeeklyHours    = 1.0
	maxWeeklyHours    = 168.0
	minHoursPerCredit = 5.0
	maxHoursPerCredit = 40.0

	// hoursPerCredit is only derived once enough coursework exists to make
	// the ratio meaningful.
	minCompletedForDerivation = 3
)

// Pace is the student's estimated study rhythm.
type Pace struct {
	WeeklyHours    float64 `json:"weekly_hours"`
	HoursPerCredit float64 `json:"hours_per_credit"`
	// Derived is true when HoursPerCredit came from the student's own
	// history rather than the default.
	Derived bool `json:"derived"`
}

// EstimatePace computes a linearly decaying weighted average of the most
// recent weekly study logs: with N weeks available the newest gets weight N,
// the oldest weight 1. A student who studied heavily six weeks ago but has
// since stopped shows a declining pace instead of an inflated average.
//
// Metrics must be ordered most recent first; anything past the window is
// ignored.
func EstimatePace(metrics []entities.WeeklyMetric, enrollments []entities.Enrollment) Pace {
	if len(metrics) > paceWindowWeeks {
		metrics = metrics[:paceWindowWeeks]
	}
	if len(metrics) == 0 {
		return Pace{WeeklyHours: DefaultWeeklyHours, HoursPerCredit: DefaultHoursPerCredit}
	}

	n := len(metrics)
	var weightedSum, weightTotal, totalHours float64
	for i, m := range metrics {
		hours := m.HoursStudied
		if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
			hours = 0
		}
		w := float64(n - i)
		weightedSum += hours * w
		weightTotal += w
		totalHours += hours
	}
	weekly := weightedSum / weightTotal

	hoursPerCredit := DefaultHoursPerCredit
	derived := false
	completedCount := 0
	completedCredits := 0
	for _, e := range enrollments {
		if e.Status != entities.EnrollmentStatusCompleted {
			continue
		}
		completedCount++
		if e.Credits > 0 {
			completedCredits += e.Credits
		}
	}
	if completedCount >= minCompletedForDerivation && totalHours > 0 && completedCredits > 0 {
		if d := totalHours / float64(completedCredits); d >= minHoursPerCredit && d <= maxHoursPerCredit {
			hoursPerCredit = d
			derived = true
		}
	}

	return Pace{
		WeeklyHours:    clampFloat(weekly, minWeeklyHours, maxWeeklyHours),
		HoursPerCredit: clampFloat(hoursPerCredit, minHoursPerCredit, maxHoursPerCredit),
		Derived:        derived,
	}
}
