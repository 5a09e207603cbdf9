package entities

import "time"

// EnrollmentStatus tracks a roadmap course through its lifecycle.
//
// Only completed and in_progress entries contribute to credit progress;
// dropped entries are ignored everywhere downstream.

type EnrollmentStatus string

const (
	EnrollmentStatusTodo       EnrollmentStatus = "todo"
	EnrollmentStatusInProgress EnrollmentStatus = "in_progress"
	EnrollmentStatusCompleted  EnrollmentStatus = "completed"
	EnrollmentStatusDropped    EnrollmentStatus = "dropped"
)

// Enrollment is one course on a student's roadmap.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (student_id-index): student_id
type Enrollment struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id"`
	ProviderKey string           `json:"provider_key"`
	CourseCode  string           `json:"course_code"`
	Credits     int              `json:"credits"`
	Status      EnrollmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
