package interfaces

import (
	"context"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// IPlanFinancialsRepository abstracts DynamoDB persistence for PlanFinancials.
//
// Upsert overwrites the snapshot for a plan id; every flight-deck run
// replaces the previous projection wholesale.

type IPlanFinancialsRepository interface {
	Upsert(ctx context.Context, p entities.PlanFinancials) (entities.PlanFinancials, error)
	GetByPlanID(ctx context.Context, planID string) (entities.PlanFinancials, error)
}
