package projection

import "math"

const (
	weeksPerMonth = 4.33

	// timelineCapMonths bounds the chart-only timeline; the authoritative
	// ETA in Months is never capped.
	timelineCapMonths = 12
)

// TimelinePoint is one month on the display timeline: cumulative projected
// credits by the end of that month.
type TimelinePoint struct {
	Month   int     `json:"month"`
	Credits float64 `json:"credits"`
}

// ETA is the completion time estimate at the current pace.
type ETA struct {
	RemainingCredits int             `json:"remaining_credits"`
	WeeksNeeded      float64         `json:"weeks_needed"`
	Months           int             `json:"months"`
	ExceedsOneYear   bool            `json:"exceeds_one_year"`
	// Degraded is set when the pace input was unusable and the default
	// weekly hours were substituted.
	Degraded bool            `json:"degraded"`
	Timeline []TimelinePoint `json:"timeline"`
}

// CalculateETA converts remaining credits and current pace into months to
// completion. A non-positive weekly-hours figure falls back to the default
// pace instead of dividing by zero, and the estimate is flagged degraded.
func CalculateETA(summary CreditsSummary, pace Pace, programTotal int) ETA {
	if programTotal <= 0 {
		programTotal = ProgramTotalCredits
	}
	remaining := programTotal - summary.Completed - summary.InProgress
	if remaining < 0 {
		remaining = 0
	}

	weekly := pace.WeeklyHours
	degraded := false
	if weekly <= 0 || math.IsNaN(weekly) {
		weekly = DefaultWeeklyHours
		degraded = true
	}

	weeks := float64(remaining) * pace.HoursPerCredit / weekly
	months := int(math.Ceil(weeks / weeksPerMonth))
	if months < 0 {
		months = 0
	}

	eta := ETA{
		RemainingCredits: remaining,
		WeeksNeeded:      weeks,
		Months:           months,
		ExceedsOneYear:   months > timelineCapMonths,
		Degraded:         degraded,
	}

	if months == 0 {
		return eta
	}

	// Chart display only: cap at 12 months, spread credits evenly, and
	// force the exact target on the literal final month when it fits.
	span := months
	if span > timelineCapMonths {
		span = timelineCapMonths
	}
	current := float64(summary.Completed + summary.InProgress)
	perMonth := float64(remaining) / float64(months)
	timeline := make([]TimelinePoint, 0, span)
	for m := 1; m <= span; m++ {
		credits := current + perMonth*float64(m)
		if months <= timelineCapMonths && m == months {
			credits = float64(programTotal)
		}
		timeline = append(timeline, TimelinePoint{Month: m, Credits: Round2(credits)})
	}
	eta.Timeline = timeline
	return eta
}
