package repository

import (
	"context"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingRulesTableName = "pricing_rules"

type pricingRuleItem struct {
	ID                   string `dynamodbav:"id"`
	Provider             string `dynamodbav:"provider"`
	Model                string `dynamodbav:"model"`
	MonthlyPriceCents    int64  `dynamodbav:"monthly_price_cents"`
	CoursesPerMonth      int    `dynamodbav:"courses_per_month"`
	PerSessionPriceCents int64  `dynamodbav:"per_session_price_cents"`
	PerCreditPriceCents  int64  `dynamodbav:"per_credit_price_cents"`
	FeeCents             int64  `dynamodbav:"fee_cents"`
	EndsOn               string `dynamodbav:"ends_on,omitempty"`
}

// PricingRuleDynamoRepository persists PricingRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The rule set is small (one row per provider plus history), so listing is a
// full Scan filtered in code.

type PricingRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleDynamoRepository)(nil)

func NewPricingRuleDynamoRepository(ddb *dynamodb.Client) *PricingRuleDynamoRepository {
	return &PricingRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_RULES_TABLE", defaultPricingRulesTableName),
	}
}

func (r *PricingRuleDynamoRepository) ListActive(ctx context.Context) ([]entities.PricingRule, error) {
	var rules []entities.PricingRule
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pricingRuleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rule := fromPricingRuleItem(it)
			if rule.Active() {
				rules = append(rules, rule)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return rules, nil
}

func fromPricingRuleItem(it pricingRuleItem) entities.PricingRule {
	var endsOn *time.Time
	if it.EndsOn != "" {
		if t, err := time.Parse(time.RFC3339, it.EndsOn); err == nil {
			endsOn = &t
		}
	}
	return entities.PricingRule{
		ID:                   it.ID,
		Provider:             it.Provider,
		Model:                entities.PricingModel(it.Model),
		MonthlyPriceCents:    it.MonthlyPriceCents,
		CoursesPerMonth:      it.CoursesPerMonth,
		PerSessionPriceCents: it.PerSessionPriceCents,
		PerCreditPriceCents:  it.PerCreditPriceCents,
		FeeCents:             it.FeeCents,
		EndsOn:               endsOn,
	}
}
