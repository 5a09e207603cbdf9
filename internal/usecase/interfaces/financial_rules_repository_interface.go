package interfaces

import (
	"context"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

// IFinancialRulesRepository abstracts DynamoDB persistence for the
// institution-wide financial configuration.
//
// Get reports found=false when the singleton row has never been seeded;
// callers treat that as a setup error rather than silently defaulting the
// money constants.

type IFinancialRulesRepository interface {
	Get(ctx context.Context) (rules entities.FinancialRules, found bool, err error)
	ListDurationRules(ctx context.Context) ([]entities.DurationRule, error)
}
