package repository

import (
	"context"
	"strconv"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFinancialRulesTableName = "financial_rules"
	defaultDurationRulesTableName  = "duration_rules"
	financialRulesSingletonID      = "default"
)

type financialRulesItem struct {
	ID                   string `dynamodbav:"id"`
	TotalProjectionCents int64  `dynamodbav:"total_projection_cents"`
	LumiereFeeCents      int64  `dynamodbav:"lumiere_fee_cents"`
	UMPISessionCostCents int64  `dynamodbav:"umpi_session_cost_cents"`
	BaselineSessions     int    `dynamodbav:"baseline_sessions"`
	CardFeePct           string `dynamodbav:"card_fee_pct"`
	ACHFeePct            string `dynamodbav:"ach_fee_pct"`
	WireFeeFlatCents     int64  `dynamodbav:"wire_fee_flat_cents"`
}

type durationRuleItem struct {
	Months         int    `dynamodbav:"months"`
	CostMultiplier string `dynamodbav:"cost_multiplier"`
}

// FinancialRulesDynamoRepository reads the institution-wide money settings.
//
// Table requirements:
//   - financial_rules: PK id (string), single row with id = "default"
//   - duration_rules: PK months (number), one row per selectable pace

type FinancialRulesDynamoRepository struct {
	ddb            *dynamodb.Client
	rulesTable     string
	durationsTable string
}

var _ interfaces.IFinancialRulesRepository = (*FinancialRulesDynamoRepository)(nil)

func NewFinancialRulesDynamoRepository(ddb *dynamodb.Client) *FinancialRulesDynamoRepository {
	return &FinancialRulesDynamoRepository{
		ddb:            ddb,
		rulesTable:     getenvDefault("FINANCIAL_RULES_TABLE", defaultFinancialRulesTableName),
		durationsTable: getenvDefault("DURATION_RULES_TABLE", defaultDurationRulesTableName),
	}
}

func (r *FinancialRulesDynamoRepository) Get(ctx context.Context) (entities.FinancialRules, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.rulesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: financialRulesSingletonID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialRules{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialRules{}, false, nil
	}

	var it financialRulesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialRules{}, false, err
	}
	cardPct, _ := strconv.ParseFloat(it.CardFeePct, 64)
	achPct, _ := strconv.ParseFloat(it.ACHFeePct, 64)
	return entities.FinancialRules{
		TotalProjectionCents: it.TotalProjectionCents,
		LumiereFeeCents:      it.LumiereFeeCents,
		UMPISessionCostCents: it.UMPISessionCostCents,
		BaselineSessions:     it.BaselineSessions,
		CardFeePct:           cardPct,
		ACHFeePct:            achPct,
		WireFeeFlatCents:     it.WireFeeFlatCents,
	}, true, nil
}

func (r *FinancialRulesDynamoRepository) ListDurationRules(ctx context.Context) ([]entities.DurationRule, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.durationsTable),
	})
	if err != nil {
		return nil, err
	}

	rules := make([]entities.DurationRule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it durationRuleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		multiplier, _ := strconv.ParseFloat(it.CostMultiplier, 64)
		rules = append(rules, entities.DurationRule{
			Months:         it.Months,
			CostMultiplier: multiplier,
		})
	}
	return rules, nil
}
