package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlanPaymentsTableName = "plan_payments"
	paymentsPlanIDIndex          = "plan_id-index"
)

type planPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	PlanID       string                 `dynamodbav:"plan_id"`
	Date         string                 `dynamodbav:"date"`
	Amount       string                 `dynamodbav:"amount"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PlanPaymentDynamoRepository persists PlanPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plan_id-index (PK: plan_id)

type PlanPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanPaymentRepository = (*PlanPaymentDynamoRepository)(nil)

func NewPlanPaymentDynamoRepository(ddb *dynamodb.Client) *PlanPaymentDynamoRepository {
	return &PlanPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLAN_PAYMENTS_TABLE", defaultPlanPaymentsTableName),
	}
}

func (r *PlanPaymentDynamoRepository) Create(ctx context.Context, p entities.PlanPayment) (entities.PlanPayment, error) {
	it := toPlanPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PlanPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PlanPayment{}, err
	}
	return p, nil
}

func (r *PlanPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PlanPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlanPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlanPayment{}, nil
	}

	var it planPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlanPayment{}, err
	}
	return fromPlanPaymentItem(it), nil
}

func (r *PlanPaymentDynamoRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsPlanIDIndex),
		KeyConditionExpression: aws.String("plan_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: planID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PlanPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanPaymentItem(it))
	}
	return items, nil
}

func toPlanPaymentItem(p entities.PlanPayment) planPaymentItem {
	return planPaymentItem{
		ID:           p.ID,
		PlanID:       p.PlanID,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Amount:       floatToString(p.Amount),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromPlanPaymentItem(it planPaymentItem) entities.PlanPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.PlanPayment{
		ID:           it.ID,
		PlanID:       it.PlanID,
		Date:         dt,
		Amount:       amount,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
