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
	defaultAgreementsTableName = "agreement_installments"
	agreementsProposalIDIndex  = "proposal_id-index"
)

type agreementItem struct {
	ID          string  `dynamodbav:"id"`
	ProposalID  string  `dynamodbav:"proposal_id"`
	Sequence    int     `dynamodbav:"sequence"`
	TotalCount  int     `dynamodbav:"total_count"`
	Value       float64 `dynamodbav:"value"`
	DueDate     string  `dynamodbav:"due_date"`
	Status      string  `dynamodbav:"status"`
	PaymentLink string  `dynamodbav:"payment_link,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// AgreementInstallmentDynamoRepository persists AgreementInstallment
// entities. The batch insert happens inside the negotiation repository's
// transaction; this repository covers individual reads and transitions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type AgreementInstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgreementInstallmentRepository = (*AgreementInstallmentDynamoRepository)(nil)

func NewAgreementInstallmentDynamoRepository(ddb *dynamodb.Client) *AgreementInstallmentDynamoRepository {
	return &AgreementInstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGREEMENT_INSTALLMENTS_TABLE", defaultAgreementsTableName),
	}
}

func (r *AgreementInstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.AgreementInstallment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AgreementInstallment{}, err
	}
	if len(out.Item) == 0 {
		return entities.AgreementInstallment{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AgreementInstallment{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementInstallmentDynamoRepository) ListByProposal(ctx context.Context, proposalID string) ([]entities.AgreementInstallment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(agreementsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AgreementInstallment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it agreementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAgreementItem(it))
	}
	return items, nil
}

func (r *AgreementInstallmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AgreementInstallmentStatus) (entities.AgreementInstallment, error) {
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
		return entities.AgreementInstallment{}, err
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AgreementInstallment{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementInstallmentDynamoRepository) SetPaymentLink(ctx context.Context, id string, link string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET payment_link = :v, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":   &types.AttributeValueMemberS{Value: link},
			":now": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func toAgreementItem(ai entities.AgreementInstallment) agreementItem {
	return agreementItem{
		ID:          ai.ID,
		ProposalID:  ai.ProposalID,
		Sequence:    ai.Sequence,
		TotalCount:  ai.TotalCount,
		Value:       ai.Value,
		DueDate:     formatTime(ai.DueDate),
		Status:      string(ai.Status),
		PaymentLink: ai.PaymentLink,
		CreatedAt:   formatTime(ai.CreatedAt),
		UpdatedAt:   formatTime(ai.UpdatedAt),
	}
}

func fromAgreementItem(it agreementItem) entities.AgreementInstallment {
	return entities.AgreementInstallment{
		ID:          it.ID,
		ProposalID:  it.ProposalID,
		Sequence:    it.Sequence,
		TotalCount:  it.TotalCount,
		Value:       it.Value,
		DueDate:     parseTime(it.DueDate),
		Status:      entities.AgreementInstallmentStatus(it.Status),
		PaymentLink: it.PaymentLink,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
