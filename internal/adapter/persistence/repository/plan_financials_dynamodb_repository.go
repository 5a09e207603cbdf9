package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlanFinancialsTableName = "plan_financials"

type planFinancialsItem struct {
	PlanID           string   `dynamodbav:"plan_id"`
	StudentID        string   `dynamodbav:"student_id"`
	PaceMonths       int      `dynamodbav:"pace_months"`
	SessionsActual   int      `dynamodbav:"sessions_actual"`
	PaymentMethod    string   `dynamodbav:"payment_method"`
	BaseTotal        string   `dynamodbav:"base_total"`
	ExamDelta        string   `dynamodbav:"exam_delta"`
	ProjectedTotal   string   `dynamodbav:"projected_total"`
	Over15k          bool     `dynamodbav:"over_15k"`
	OverageReasons   []string `dynamodbav:"overage_reasons,omitempty"`
	UpfrontDue       string   `dynamodbav:"upfront_due"`
	MonthlyPayment   string   `dynamodbav:"monthly_payment"`
	Schedule         string   `dynamodbav:"schedule,omitempty"`
	StartDate        string   `dynamodbav:"start_date"`
	CompletionTarget string   `dynamodbav:"completion_target"`
	GeneratedAt      string   `dynamodbav:"generated_at"`
}

// PlanFinancialsDynamoRepository persists PlanFinancials snapshots in DynamoDB.
//
// Table requirements:
//   - PK: plan_id (string)
//
// The schedule ledger is stored as a JSON string attribute; it is only ever
// read back whole, never queried by month.

type PlanFinancialsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanFinancialsRepository = (*PlanFinancialsDynamoRepository)(nil)

func NewPlanFinancialsDynamoRepository(ddb *dynamodb.Client) *PlanFinancialsDynamoRepository {
	return &PlanFinancialsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLAN_FINANCIALS_TABLE", defaultPlanFinancialsTableName),
	}
}

// Upsert overwrites any previous snapshot for the plan. Regeneration is a
// full replace, so no condition expression is used.
func (r *PlanFinancialsDynamoRepository) Upsert(ctx context.Context, p entities.PlanFinancials) (entities.PlanFinancials, error) {
	it, err := toPlanFinancialsItem(p)
	if err != nil {
		return entities.PlanFinancials{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PlanFinancials{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PlanFinancials{}, err
	}
	return p, nil
}

func (r *PlanFinancialsDynamoRepository) GetByPlanID(ctx context.Context, planID string) (entities.PlanFinancials, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"plan_id": &types.AttributeValueMemberS{Value: planID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlanFinancials{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlanFinancials{}, nil
	}

	var it planFinancialsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlanFinancials{}, err
	}
	return fromPlanFinancialsItem(it)
}

func toPlanFinancialsItem(p entities.PlanFinancials) (planFinancialsItem, error) {
	schedule := ""
	if len(p.Schedule) > 0 {
		b, err := json.Marshal(p.Schedule)
		if err != nil {
			return planFinancialsItem{}, err
		}
		schedule = string(b)
	}
	return planFinancialsItem{
		PlanID:           p.PlanID,
		StudentID:        p.StudentID,
		PaceMonths:       p.PaceMonths,
		SessionsActual:   p.SessionsActual,
		PaymentMethod:    string(p.PaymentMethod),
		BaseTotal:        floatToString(p.BaseTotal),
		ExamDelta:        floatToString(p.ExamDelta),
		ProjectedTotal:   floatToString(p.ProjectedTotal),
		Over15k:          p.Over15k,
		OverageReasons:   p.OverageReasons,
		UpfrontDue:       floatToString(p.UpfrontDue),
		MonthlyPayment:   floatToString(p.MonthlyPayment),
		Schedule:         schedule,
		StartDate:        p.StartDate.UTC().Format(time.RFC3339Nano),
		CompletionTarget: p.CompletionTarget.UTC().Format(time.RFC3339Nano),
		GeneratedAt:      p.GeneratedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromPlanFinancialsItem(it planFinancialsItem) (entities.PlanFinancials, error) {
	var schedule []entities.ScheduleEntry
	if it.Schedule != "" {
		if err := json.Unmarshal([]byte(it.Schedule), &schedule); err != nil {
			return entities.PlanFinancials{}, err
		}
	}
	baseTotal, _ := strconv.ParseFloat(it.BaseTotal, 64)
	examDelta, _ := strconv.ParseFloat(it.ExamDelta, 64)
	projectedTotal, _ := strconv.ParseFloat(it.ProjectedTotal, 64)
	upfrontDue, _ := strconv.ParseFloat(it.UpfrontDue, 64)
	monthlyPayment, _ := strconv.ParseFloat(it.MonthlyPayment, 64)
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	completionTarget, _ := time.Parse(time.RFC3339Nano, it.CompletionTarget)
	generatedAt, _ := time.Parse(time.RFC3339Nano, it.GeneratedAt)
	return entities.PlanFinancials{
		PlanID:           it.PlanID,
		StudentID:        it.StudentID,
		PaceMonths:       it.PaceMonths,
		SessionsActual:   it.SessionsActual,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		BaseTotal:        baseTotal,
		ExamDelta:        examDelta,
		ProjectedTotal:   projectedTotal,
		Over15k:          it.Over15k,
		OverageReasons:   it.OverageReasons,
		UpfrontDue:       upfrontDue,
		MonthlyPayment:   monthlyPayment,
		Schedule:         schedule,
		StartDate:        startDate,
		CompletionTarget: completionTarget,
		GeneratedAt:      generatedAt,
	}, nil
}
