package entities

import "time"

// WeeklyMetric is one self-reported study-hours entry per student per ISO
// week. WeekOf is always the Monday of that week; the student upserts the
// row, so there is at most one per (student, week).
//
// Storage model (DynamoDB):
//   - PK: student_id
//   - SK: week_of (RFC3339 date, sorts chronologically)
type WeeklyMetric struct {
	StudentID    string    `json:"student_id"`
	WeekOf       time.Time `json:"week_of"`
	HoursStudied float64   `json:"hours_studied"`
}
