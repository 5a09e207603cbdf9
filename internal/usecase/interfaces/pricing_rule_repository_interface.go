package interfaces

import (
	"context"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// IPricingRuleRepository abstracts DynamoDB persistence for PricingRule.

type IPricingRuleRepository interface {
	ListActive(ctx context.Context) ([]entities.PricingRule, error)
}
