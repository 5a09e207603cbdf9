package interfaces

import (
	"context"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// IEnrollmentRepository abstracts DynamoDB persistence for Enrollment.

type IEnrollmentRepository interface {
	ListByStudentID(ctx context.Context, studentID string) ([]entities.Enrollment, error)
}
