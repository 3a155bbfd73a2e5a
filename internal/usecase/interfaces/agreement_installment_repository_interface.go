package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// IAgreementInstallmentRepository abstracts persistence for the installments
// of an approved negotiation. Batch creation happens inside
// INegotiationRepository.ApproveAndMaterialize; this port covers individual
// reads and transitions afterwards.

type IAgreementInstallmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.AgreementInstallment, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.AgreementInstallment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AgreementInstallmentStatus) (entities.AgreementInstallment, error)
	SetPaymentLink(ctx context.Context, id string, link string) error
}
