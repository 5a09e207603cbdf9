package projection

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

const (
	// creditsPerSession is the UMPI session capacity used by per-session
	// pricing and the residency estimate.
	creditsPerSession = 30

	// fallbackPerCreditCents is the documented flat estimate used when no
	// active pricing rules exist at all. The projection degrades to this
	// instead of failing.
	fallbackPerCreditCents int64 = 6_000

	// umpiProviderKey identifies the home institution. Its cost is handled
	// by the residency estimate, not the external-provider resolver.
	umpiProviderKey = "umpi"
)

// PricingStrategy computes a provider's cost in cents from the number of
// enrolled courses and their summed credits. Each concrete strategy carries
// only the fields its model needs, so a resolver cannot read an irrelevant
// field for the wrong model.
type PricingStrategy interface {
	Cost(courses, credits int) int64
}

// SubscriptionPricing bills a monthly price for as many months as the
// course load requires at the configured throughput.
type SubscriptionPricing struct {
	MonthlyPriceCents int64
	CoursesPerMonth   int
}

func (p SubscriptionPricing) Cost(courses, _ int) int64 {
	if p.CoursesPerMonth <= 0 || courses <= 0 {
		return 0
	}
	return p.MonthlyPriceCents * int64(ceilDiv(courses, p.CoursesPerMonth))
}

// PerSessionPricing bills per testing session; any remaining credits cost at
// least one session.
type PerSessionPricing struct {
	PerSessionPriceCents int64
}

func (p PerSessionPricing) Cost(_, credits int) int64 {
	sessions := ceilDiv(credits, creditsPerSession)
	if sessions < 1 {
		sessions = 1
	}
	return p.PerSessionPriceCents * int64(sessions)
}

// PerCoursePricing bills a flat price per course, optionally on top of a
// monthly base subscription.
type PerCoursePricing struct {
	PerCoursePriceCents int64
	Base                *SubscriptionPricing
}

func (p PerCoursePricing) Cost(courses, credits int) int64 {
	cost := p.PerCoursePriceCents * int64(courses)
	if p.Base != nil {
		cost += p.Base.Cost(courses, credits)
	}
	return cost
}

// PerCreditPricing bills per credit, optionally on top of a monthly base
// subscription.
type PerCreditPricing struct {
	PerCreditPriceCents int64
	Base                *SubscriptionPricing
}

func (p PerCreditPricing) Cost(courses, credits int) int64 {
	cost := p.PerCreditPriceCents * int64(credits)
	if p.Base != nil {
		cost += p.Base.Cost(courses, credits)
	}
	return cost
}

// HybridPricing sums a subscription component, a per-credit component
// (preferred) or per-course component, and a flat one-time fee.
type HybridPricing struct {
	Base                *SubscriptionPricing
	PerCreditPriceCents int64
	PerCoursePriceCents int64
	FlatFeeCents        int64
}

func (p HybridPricing) Cost(courses, credits int) int64 {
	var cost int64
	if p.Base != nil {
		cost += p.Base.Cost(courses, credits)
	}
	if p.PerCreditPriceCents > 0 {
		cost += p.PerCreditPriceCents * int64(credits)
	} else if p.PerCoursePriceCents > 0 {
		cost += p.PerCoursePriceCents * int64(courses)
	}
	cost += p.FlatFeeCents
	return cost
}

// StrategyFromRule builds the strategy for a rule's model. The second
// return is false when the rule's model is unknown.
func StrategyFromRule(r entities.PricingRule) (PricingStrategy, bool) {
	base := subscriptionBase(r)
	switch r.Model {
	case entities.PricingModelSubscription:
		if base == nil {
			return nil, false
		}
		return *base, true
	case entities.PricingModelPerSession:
		return PerSessionPricing{PerSessionPriceCents: r.PerSessionPriceCents}, true
	case entities.PricingModelPerCourse:
		return PerCoursePricing{PerCoursePriceCents: r.PerSessionPriceCents, Base: base}, true
	case entities.PricingModelPerCredit:
		return PerCreditPricing{PerCreditPriceCents: r.PerCreditPriceCents, Base: base}, true
	case entities.PricingModelHybrid:
		return HybridPricing{
			Base:                base,
			PerCreditPriceCents: r.PerCreditPriceCents,
			PerCoursePriceCents: r.PerSessionPriceCents,
			FlatFeeCents:        r.FeeCents,
		}, true
	default:
		return nil, false
	}
}

func subscriptionBase(r entities.PricingRule) *SubscriptionPricing {
	if r.MonthlyPriceCents <= 0 || r.CoursesPerMonth <= 0 {
		return nil
	}
	return &SubscriptionPricing{MonthlyPriceCents: r.MonthlyPriceCents, CoursesPerMonth: r.CoursesPerMonth}
}

// NormalizeProviderKey lowercases and strips everything but letters and
// digits so "Sophia Learning" and "sophia-learning" match the same rule.
func NormalizeProviderKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RuleIndex is the explicit provider-to-strategy lookup passed into the
// resolver. It is built once per request by the orchestration layer; there
// is no process-wide memoized state to go stale after catalog edits.
type RuleIndex struct {
	strategies map[string]PricingStrategy
	rules      map[string]entities.PricingRule
}

// NewRuleIndex indexes only active rules. With at most one active rule per
// provider the first active rule per key wins.
func NewRuleIndex(rules []entities.PricingRule) RuleIndex {
	ix := RuleIndex{
		strategies: make(map[string]PricingStrategy),
		rules:      make(map[string]entities.PricingRule),
	}
	for _, r := range rules {
		if !r.Active() {
			continue
		}
		key := NormalizeProviderKey(r.Provider)
		if key == "" {
			continue
		}
		if _, exists := ix.strategies[key]; exists {
			continue
		}
		strategy, ok := StrategyFromRule(r)
		if !ok {
			continue
		}
		ix.strategies[key] = strategy
		ix.rules[key] = r
	}
	return ix
}

func (ix RuleIndex) Empty() bool {
	return len(ix.strategies) == 0
}

func (ix RuleIndex) Lookup(provider string) (PricingStrategy, bool) {
	s, ok := ix.strategies[NormalizeProviderKey(provider)]
	return s, ok
}

func (ix RuleIndex) Rule(provider string) (entities.PricingRule, bool) {
	r, ok := ix.rules[NormalizeProviderKey(provider)]
	return r, ok
}

// ProviderCost is one provider group's resolved cost.
type ProviderCost struct {
	Provider  string  `json:"provider"`
	Courses   int     `json:"courses"`
	Credits   int     `json:"credits"`
	CostCents int64   `json:"cost_cents"`
	Cost      float64 `json:"cost"`
}

// PricingResult is the external-provider cost breakdown. Warnings are
// data-quality notes for the caller to log; they never abort the pipeline.
type PricingResult struct {
	Providers       []ProviderCost `json:"providers"`
	Phase1CostCents int64          `json:"phase1_cost_cents"`
	Phase1Cost      float64        `json:"phase1_cost"`
	Warnings        []string       `json:"-"`
	UsedFallback    bool           `json:"used_fallback"`
}

// ResolveProviderCosts groups non-dropped enrollments by normalized
// provider key and prices each group with its matched strategy. Unmatched
// providers contribute zero cost plus a warning. UMPI enrollments are
// excluded here; residency cost is computed separately.
//
// With no active rules at all, the whole spend degrades to a flat
// per-credit fallback estimate so the projection still completes.
func ResolveProviderCosts(enrollments []entities.Enrollment, index RuleIndex) PricingResult {
	type group struct {
		display string
		courses int
		credits int
	}
	groups := make(map[string]*group)
	totalCredits := 0
	for _, e := range enrollments {
		if e.Status == entities.EnrollmentStatusDropped {
			continue
		}
		key := NormalizeProviderKey(e.ProviderKey)
		if key == "" || key == umpiProviderKey {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{display: e.ProviderKey}
			groups[key] = g
		}
		credits := e.Credits
		if credits < 0 {
			credits = 0
		}
		g.courses++
		g.credits += credits
		totalCredits += credits
	}

	var result PricingResult
	if index.Empty() {
		if totalCredits > 0 {
			result.Phase1CostCents = fallbackPerCreditCents * int64(totalCredits)
			result.UsedFallback = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no active pricing rules configured; estimated %d credits at the flat fallback rate", totalCredits))
		}
		result.Phase1Cost = Dollars(result.Phase1CostCents)
		return result
	}

	// Map iteration order is random; sort keys so identical inputs always
	// produce identical output.
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		g := groups[key]
		strategy, ok := index.strategies[key]
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no active pricing rule for provider %q; contributing zero cost", g.display))
			result.Providers = append(result.Providers, ProviderCost{
				Provider: g.display, Courses: g.courses, Credits: g.credits,
			})
			continue
		}
		cents := strategy.Cost(g.courses, g.credits)
		result.Providers = append(result.Providers, ProviderCost{
			Provider:  g.display,
			Courses:   g.courses,
			Credits:   g.credits,
			CostCents: cents,
			Cost:      Dollars(cents),
		})
		result.Phase1CostCents += cents
	}
	result.Phase1Cost = Dollars(result.Phase1CostCents)
	return result
}

// ResidencyEstimate is the UMPI home-institution cost for the credits the
// student still has to earn.
type ResidencyEstimate struct {
	RemainingCredits int     `json:"remaining_credits"`
	SessionsNeeded   int     `json:"sessions_needed"`
	SessionCostCents int64   `json:"session_cost_cents"`
	CostCents        int64   `json:"cost_cents"`
	Cost             float64 `json:"cost"`
}

// UMPIResidency prices the remaining-credit sessions. The session price
// comes from the UMPI pricing rule when one is configured, otherwise from
// the FinancialRules default.
func UMPIResidency(completed, inProgress int, index RuleIndex, fin entities.FinancialRules) ResidencyEstimate {
	remaining := ProgramTotalCredits - completed - inProgress
	if remaining < 0 {
		remaining = 0
	}
	sessions := ceilDiv(remaining, creditsPerSession)
	if sessions < 1 {
		sessions = 1
	}

	sessionCost := fin.UMPISessionCostCents
	if r, ok := index.Rule(umpiProviderKey); ok && r.Model == entities.PricingModelPerSession && r.PerSessionPriceCents > 0 {
		sessionCost = r.PerSessionPriceCents
	}

	cents := int64(sessions) * sessionCost
	return ResidencyEstimate{
		RemainingCredits: remaining,
		SessionsNeeded:   sessions,
		SessionCostCents: sessionCost,
		CostCents:        cents,
		Cost:             Dollars(cents),
	}
}
