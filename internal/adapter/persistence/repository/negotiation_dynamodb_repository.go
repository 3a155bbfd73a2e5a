package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNegotiationsTableName = "negotiations"
	defaultAuditTableName        = "negotiation_audit"
	negotiationsStudentIDIndex   = "student_id-index"

	// TransactWriteItems caps at 100 items; one proposal write plus three
	// items per covered installment (status update, agreement put, audit put)
	// bounds the covered set.
	maxTransactInstallments = 33
)

type negotiationItem struct {
	ID             string   `dynamodbav:"id"`
	StudentID      string   `dynamodbav:"student_id"`
	InstallmentIDs []string `dynamodbav:"installment_ids"`
	OriginalValue  float64  `dynamodbav:"original_value"`
	ProposedValue  float64  `dynamodbav:"proposed_value"`
	DiscountPct    float64  `dynamodbav:"discount_pct"`
	Count          int      `dynamodbav:"count"`
	FirstDueDate   string   `dynamodbav:"first_due_date"`
	PaymentMethod  string   `dynamodbav:"payment_method"`
	Justification  string   `dynamodbav:"justification,omitempty"`
	Status         string   `dynamodbav:"status"`
	DecidedBy      string   `dynamodbav:"decided_by,omitempty"`
	DecidedAt      string   `dynamodbav:"decided_at,omitempty"`
	Rationale      string   `dynamodbav:"rationale,omitempty"`
	Feedback       string   `dynamodbav:"feedback,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

type auditItem struct {
	ID            string `dynamodbav:"id"`
	ProposalID    string `dynamodbav:"proposal_id"`
	InstallmentID string `dynamodbav:"installment_id"`
	StudentID     string `dynamodbav:"student_id"`
	Note          string `dynamodbav:"note"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// NegotiationDynamoRepository persists NegotiationProposal entities and
// applies the approval unit of work.
//
// Table requirements:
//   - negotiations: PK id, GSI student_id-index (PK: student_id)
//   - negotiation_audit: PK id
//
// The approval write also touches the installments and agreement-installments
// tables through TransactWriteItems, which is what gives the engine its
// all-or-nothing guarantee.

type NegotiationDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	auditTableName  string
	installmentsTbl string
	agreementsTbl   string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb *dynamodb.Client) *NegotiationDynamoRepository {
	return &NegotiationDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("NEGOTIATIONS_TABLE", defaultNegotiationsTableName),
		auditTableName:  getenvDefault("NEGOTIATION_AUDIT_TABLE", defaultAuditTableName),
		installmentsTbl: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
		agreementsTbl:   getenvDefault("AGREEMENT_INSTALLMENTS_TABLE", defaultAgreementsTableName),
	}
}

func (r *NegotiationDynamoRepository) Create(ctx context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error) {
	av, err := attributevalue.MarshalMap(toNegotiationItem(p))
	if err != nil {
		return entities.NegotiationProposal{}, err
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
		return entities.NegotiationProposal{}, err
	}
	return p, nil
}

func (r *NegotiationDynamoRepository) GetByID(ctx context.Context, id string) (entities.NegotiationProposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.NegotiationProposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.NegotiationProposal{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.NegotiationProposal{}, err
	}
	return fromNegotiationItem(it), nil
}

func (r *NegotiationDynamoRepository) ListByStudent(ctx context.Context, studentID string, status entities.NegotiationStatus) ([]entities.NegotiationProposal, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(negotiationsStudentIDIndex),
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

	items := make([]entities.NegotiationProposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it negotiationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNegotiationItem(it))
	}
	return items, nil
}

// UpdateDecision records a manual decision. The write is conditioned on the
// proposal still being pendente; losing that race surfaces as
// ErrNegotiationConflict.
func (r *NegotiationDynamoRepository) UpdateDecision(ctx context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		UpdateExpression:          aws.String("SET #status = :status, decided_by = :by, decided_at = :at, rationale = :rat, feedback = :fb, updated_at = :now"),
		ConditionExpression:       aws.String("#status = :pendente"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: decisionValues(p),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.NegotiationProposal{}, fmt.Errorf("%w: proposal %s already decided", interfaces.ErrNegotiationConflict, p.ID)
		}
		return entities.NegotiationProposal{}, err
	}
	return p, nil
}

// ApproveAndMaterialize applies the whole approval as one TransactWriteItems
// call: the proposal write, every covered installment conditioned on still
// being vencida, the agreement batch and the audit entries. DynamoDB cancels
// the transaction when any condition fails, so no partial approval is ever
// visible to readers.
func (r *NegotiationDynamoRepository) ApproveAndMaterialize(ctx context.Context, p entities.NegotiationProposal, batch []entities.AgreementInstallment, audit []entities.NegotiationAuditEntry, insertProposal bool) error {
	if len(p.InstallmentIDs) > maxTransactInstallments {
		return fmt.Errorf("negotiation covers %d installments; the transactional limit is %d", len(p.InstallmentIDs), maxTransactInstallments)
	}

	tx := make([]types.TransactWriteItem, 0, 1+len(p.InstallmentIDs)+len(batch)+len(audit))

	proposalWrite, err := r.proposalWrite(p, insertProposal)
	if err != nil {
		return err
	}
	tx = append(tx, proposalWrite)

	now := formatTime(time.Now())
	for _, instID := range p.InstallmentIDs {
		tx = append(tx, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.installmentsTbl),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: instID},
				},
				UpdateExpression:    aws.String("SET #status = :negociacao, updated_at = :now"),
				ConditionExpression: aws.String("#status = :vencida"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":negociacao": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusEmNegociacao)},
					":vencida":    &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusVencida)},
					":now":        &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	for _, ai := range batch {
		av, err := attributevalue.MarshalMap(toAgreementItem(ai))
		if err != nil {
			return err
		}
		tx = append(tx, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.agreementsTbl),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	for _, entry := range audit {
		av, err := attributevalue.MarshalMap(auditItem{
			ID:            entry.ID,
			ProposalID:    entry.ProposalID,
			InstallmentID: entry.InstallmentID,
			StudentID:     entry.StudentID,
			Note:          entry.Note,
			CreatedAt:     formatTime(entry.CreatedAt),
		})
		if err != nil {
			return err
		}
		tx = append(tx, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.auditTableName),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("%w: %s", interfaces.ErrNegotiationConflict, aws.ToString(reason.Message))
				}
			}
		}
		return err
	}
	return nil
}

func (r *NegotiationDynamoRepository) proposalWrite(p entities.NegotiationProposal, insertProposal bool) (types.TransactWriteItem, error) {
	if insertProposal {
		av, err := attributevalue.MarshalMap(toNegotiationItem(p))
		if err != nil {
			return types.TransactWriteItem{}, err
		}
		return types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		}, nil
	}

	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: p.ID},
			},
			UpdateExpression:          aws.String("SET #status = :status, decided_by = :by, decided_at = :at, rationale = :rat, feedback = :fb, updated_at = :now"),
			ConditionExpression:       aws.String("#status = :pendente"),
			ExpressionAttributeNames:  map[string]string{"#status": "status"},
			ExpressionAttributeValues: decisionValues(p),
		},
	}, nil
}

func decisionValues(p entities.NegotiationProposal) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: string(p.Status)},
		":by":       &types.AttributeValueMemberS{Value: p.DecidedBy},
		":at":       &types.AttributeValueMemberS{Value: formatTime(p.DecidedAt)},
		":rat":      &types.AttributeValueMemberS{Value: p.Rationale},
		":fb":       &types.AttributeValueMemberS{Value: p.Feedback},
		":now":      &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		":pendente": &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusPendente)},
	}
}

func toNegotiationItem(p entities.NegotiationProposal) negotiationItem {
	return negotiationItem{
		ID:             p.ID,
		StudentID:      p.StudentID,
		InstallmentIDs: p.InstallmentIDs,
		OriginalValue:  p.OriginalValue,
		ProposedValue:  p.ProposedValue,
		DiscountPct:    p.DiscountPct,
		Count:          p.Count,
		FirstDueDate:   formatTime(p.FirstDueDate),
		PaymentMethod:  p.PaymentMethod,
		Justification:  p.Justification,
		Status:         string(p.Status),
		DecidedBy:      p.DecidedBy,
		DecidedAt:      formatTime(p.DecidedAt),
		Rationale:      p.Rationale,
		Feedback:       p.Feedback,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromNegotiationItem(it negotiationItem) entities.NegotiationProposal {
	return entities.NegotiationProposal{
		ID:             it.ID,
		StudentID:      it.StudentID,
		InstallmentIDs: it.InstallmentIDs,
		OriginalValue:  it.OriginalValue,
		ProposedValue:  it.ProposedValue,
		DiscountPct:    it.DiscountPct,
		Count:          it.Count,
		FirstDueDate:   parseTime(it.FirstDueDate),
		PaymentMethod:  it.PaymentMethod,
		Justification:  it.Justification,
		Status:         entities.NegotiationStatus(it.Status),
		DecidedBy:      it.DecidedBy,
		DecidedAt:      parseTime(it.DecidedAt),
		Rationale:      it.Rationale,
		Feedback:       it.Feedback,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
