package projection

import (
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

const (
	// ProgramTotalCredits is the degree program length ceiling. Credit
	// totals are clamped to it before any downstream arithmetic so corrupt
	// rows cannot poison the projection.
	ProgramTotalCredits = 120

	maxSampleCodes = 20
)

// CreditsSummary reduces a student's enrollments to credit totals plus a
// bounded sample of course identifiers for display.
type CreditsSummary struct {
	Completed  int      `json:"completed"`
	InProgress int      `json:"in_progress"`
	Codes      []string `json:"codes"`
}

// AggregateProgress sums completed and in-progress credits. Absent data
// yields zeros; it never fails.
func AggregateProgress(enrollments []entities.Enrollment) CreditsSummary {
	var s CreditsSummary
	for _, e := range enrollments {
		credits := e.Credits
		if credits < 0 {
			credits = 0
		}
		switch e.Status {
		case entities.EnrollmentStatusCompleted:
			s.Completed += credits
		case entities.EnrollmentStatusInProgress:
			s.InProgress += credits
		default:
			continue
		}
		if e.CourseCode != "" && len(s.Codes) < maxSampleCodes {
			s.Codes = append(s.Codes, e.CourseCode)
		}
	}
	s.Completed = clampInt(s.Completed, 0, ProgramTotalCredits)
	s.InProgress = clampInt(s.InProgress, 0, ProgramTotalCredits)
	return s
}
