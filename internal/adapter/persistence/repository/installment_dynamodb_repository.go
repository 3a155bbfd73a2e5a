package repository

import (
	"context"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInstallmentsTableName = "installments"
	installmentsStudentIDIndex   = "student_id-index"
)

type installmentItem struct {
	ID           string  `dynamodbav:"id"`
	StudentID    string  `dynamodbav:"student_id"`
	EnrollmentID string  `dynamodbav:"enrollment_id"`
	Sequence     int     `dynamodbav:"sequence"`
	TotalCount   int     `dynamodbav:"total_count"`
	DueDate      string  `dynamodbav:"due_date"`
	Value        float64 `dynamodbav:"value"`
	CurrentValue float64 `dynamodbav:"current_value,omitempty"`
	Status       string  `dynamodbav:"status"`
	PaymentLink  string  `dynamodbav:"payment_link,omitempty"`
	PaymentProof string  `dynamodbav:"payment_proof,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// InstallmentDynamoRepository persists Installment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_id-index (PK: student_id)

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) ListByStudent(ctx context.Context, studentID string, status entities.InstallmentStatus) ([]entities.Installment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(installmentsStudentIDIndex),
		KeyConditionExpression: aws.String("student_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: studentID},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Installment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInstallmentItem(it))
	}
	return items, nil
}

func (r *InstallmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InstallmentStatus) (entities.Installment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":now":    &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Installment{}, err
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) SetPaymentLink(ctx context.Context, id string, link string) error {
	return r.setField(ctx, id, "payment_link", link)
}

func (r *InstallmentDynamoRepository) SetPaymentProof(ctx context.Context, id string, proof string) error {
	return r.setField(ctx, id, "payment_proof", proof)
}

func (r *InstallmentDynamoRepository) setField(ctx context.Context, id, field, value string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #f = :v, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":   &types.AttributeValueMemberS{Value: value},
			":now": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	return entities.Installment{
		ID:           it.ID,
		StudentID:    it.StudentID,
		EnrollmentID: it.EnrollmentID,
		Sequence:     it.Sequence,
		TotalCount:   it.TotalCount,
		DueDate:      parseTime(it.DueDate),
		Value:        it.Value,
		CurrentValue: it.CurrentValue,
		Status:       entities.InstallmentStatus(it.Status),
		PaymentLink:  it.PaymentLink,
		PaymentProof: it.PaymentProof,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
