package interfaces

import (
	"context"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// IPlanPaymentRepository abstracts DynamoDB persistence for PlanPayment.

type IPlanPaymentRepository interface {
	Create(ctx context.Context, p entities.PlanPayment) (entities.PlanPayment, error)
	GetByID(ctx context.Context, id string) (entities.PlanPayment, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error)
}
