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

const defaultWeeklyMetricsTableName = "weekly_metrics"

type weeklyMetricItem struct {
	StudentID    string `dynamodbav:"student_id"`
	WeekOf       string `dynamodbav:"week_of"`
	HoursStudied string `dynamodbav:"hours_studied"`
}

// WeeklyMetricDynamoRepository persists WeeklyMetric entities in DynamoDB.
//
// Table requirements:
//   - PK: student_id (string)
//   - SK: week_of (string, RFC3339 date; lexical order equals chronological)

type WeeklyMetricDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWeeklyMetricRepository = (*WeeklyMetricDynamoRepository)(nil)

func NewWeeklyMetricDynamoRepository(ddb *dynamodb.Client) *WeeklyMetricDynamoRepository {
	return &WeeklyMetricDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEEKLY_METRICS_TABLE", defaultWeeklyMetricsTableName),
	}
}

// ListRecentByStudentID returns at most limit rows, newest week first.
func (r *WeeklyMetricDynamoRepository) ListRecentByStudentID(ctx context.Context, studentID string, limit int) ([]entities.WeeklyMetric, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("student_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: studentID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.WeeklyMetric, 0, len(out.Items))
	for _, raw := range out.Items {
		var it weeklyMetricItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWeeklyMetricItem(it))
	}
	return items, nil
}

func fromWeeklyMetricItem(it weeklyMetricItem) entities.WeeklyMetric {
	weekOf, _ := time.Parse(time.RFC3339, it.WeekOf)
	hours, _ := strconv.ParseFloat(it.HoursStudied, 64)
	return entities.WeeklyMetric{
		StudentID:    it.StudentID,
		WeekOf:       weekOf,
		HoursStudied: hours,
	}
}
