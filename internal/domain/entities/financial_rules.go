package entities

// FinancialRules is the singleton configuration row the projection engine
// cannot price anything without. Monetary fields are integer cents.
//
// Storage model (DynamoDB):
//   - table financial_rules, fixed PK id = "default"

type FinancialRules struct {
	TotalProjectionCents int64   `json:"total_projection_cents"`
	LumiereFeeCents      int64   `json:"lumiere_fee_cents"`
	UMPISessionCostCents int64   `json:"umpi_session_cost_cents"`
	BaselineSessions     int     `json:"baseline_sessions"`
	CardFeePct           float64 `json:"card_fee_pct"`
	ACHFeePct            float64 `json:"ach_fee_pct"`
	WireFeeFlatCents     int64   `json:"wire_fee_flat_cents"`
}

// DefaultFinancialRules returns the documented defaults used to seed a new
// environment. A missing row is still a configuration error at runtime;
// these exist for seeding and tests.
func DefaultFinancialRules() FinancialRules {
	return FinancialRules{
		TotalProjectionCents: 1_500_000,
		LumiereFeeCents:      700_000,
		UMPISessionCostCents: 180_000,
		BaselineSessions:     2,
	}
}

// DurationRule maps a chosen pace-in-months to a cost scaling factor.
// Compressed timelines cost more, extended ones less.
//
// Storage model (DynamoDB): table duration_rules, PK months.
type DurationRule struct {
	Months         int     `json:"months"`
	CostMultiplier float64 `json:"cost_multiplier"`
}
