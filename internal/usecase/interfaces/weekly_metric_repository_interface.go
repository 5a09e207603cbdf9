package interfaces

import (
	"context"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// IWeeklyMetricRepository abstracts DynamoDB persistence for WeeklyMetric.
//
// ListRecentByStudentID returns at most limit rows ordered newest-first; the
// pace estimator only ever looks at the most recent weeks.

type IWeeklyMetricRepository interface {
	ListRecentByStudentID(ctx context.Context, studentID string, limit int) ([]entities.WeeklyMetric, error)
}
