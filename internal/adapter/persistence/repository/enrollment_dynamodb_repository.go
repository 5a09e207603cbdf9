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

const (
	defaultEnrollmentsTableName = "enrollments"
	enrollmentsStudentIDIndex   = "student_id-index"
)

type enrollmentItem struct {
	ID          string `dynamodbav:"id"`
	StudentID   string `dynamodbav:"student_id"`
	ProviderKey string `dynamodbav:"provider_key"`
	CourseCode  string `dynamodbav:"course_code"`
	Credits     int    `dynamodbav:"credits"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// EnrollmentDynamoRepository persists Enrollment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_id-index (PK: student_id)

type EnrollmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentDynamoRepository)(nil)

func NewEnrollmentDynamoRepository(ddb *dynamodb.Client) *EnrollmentDynamoRepository {
	return &EnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

func (r *EnrollmentDynamoRepository) ListByStudentID(ctx context.Context, studentID string) ([]entities.Enrollment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(enrollmentsStudentIDIndex),
		KeyConditionExpression: aws.String("student_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: studentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Enrollment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it enrollmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEnrollmentItem(it))
	}
	return items, nil
}

func fromEnrollmentItem(it enrollmentItem) entities.Enrollment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Enrollment{
		ID:          it.ID,
		StudentID:   it.StudentID,
		ProviderKey: it.ProviderKey,
		CourseCode:  it.CourseCode,
		Credits:     it.Credits,
		Status:      entities.EnrollmentStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
