package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for Installment.
//
// ListByStudent accepts an optional status filter (empty = all).

type IInstallmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	ListByStudent(ctx context.Context, studentID string, status entities.InstallmentStatus) ([]entities.Installment, error)
	UpdateStatus(ctx context.Context, id string, status entities.InstallmentStatus) (entities.Installment, error)
	SetPaymentLink(ctx context.Context, id string, link string) error
	SetPaymentProof(ctx context.Context, id string, proof string) error
}
