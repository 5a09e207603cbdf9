package entities

import "time"

// PricingModel selects how a provider's cost is computed from enrollment
// counts and credits.

type PricingModel string

const (
	PricingModelSubscription PricingModel = "subscription"
	PricingModelPerSession   PricingModel = "per_session"
	PricingModelPerCourse    PricingModel = "per_course"
	PricingModelPerCredit    PricingModel = "per_credit"
	PricingModelHybrid       PricingModel = "hybrid"
)

// PricingRule is one pricing configuration for a course provider.
//
// Monetary fields are integer minor units (cents); they are divided by 100
// only at the point of use.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariant: at most one active rule (EndsOn == nil) per provider. Rules
// with EndsOn set are historical and never matched.
type PricingRule struct {
	ID                   string       `json:"id"`
	Provider             string       `json:"provider"`
	Model                PricingModel `json:"model"`
	MonthlyPriceCents    int64        `json:"monthly_price_cents"`
	CoursesPerMonth      int          `json:"courses_per_month"`
	PerSessionPriceCents int64        `json:"per_session_price_cents"`
	PerCreditPriceCents  int64        `json:"per_credit_price_cents"`
	FeeCents             int64        `json:"fee_cents"`
	EndsOn               *time.Time   `json:"ends_on"`
}

// Active reports whether the rule is the provider's current one.
func (r PricingRule) Active() bool {
	return r.EndsOn == nil
}
