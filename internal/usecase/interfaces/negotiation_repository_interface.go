package interfaces

import (
	"context"
	"errors"

	"cobranca_service/internal/domain/entities"
)

// ErrNegotiationConflict is returned by ApproveAndMaterialize (and by
// UpdateDecision) when a condition check fails: an installment left vencida
// between validation and the write, or the proposal was decided concurrently.
var ErrNegotiationConflict = errors.New("negotiation conflict")

// INegotiationRepository abstracts persistence for NegotiationProposal and
// the approval unit of work.
//
// ApproveAndMaterialize applies one atomic write covering:
//   - the proposal record (insert for auto-approval, decision update for
//     manual review),
//   - every covered installment flipped to em_negociacao, each conditioned on
//     the row still being vencida (the concurrency check of the engine),
//   - the agreement-installment batch,
//   - one audit entry per covered installment.
//
// A lost race (an installment no longer vencida) must surface as
// ErrNegotiationConflict so the engine can reject the proposal instead of
// leaving partial effects.

type INegotiationRepository interface {
	Create(ctx context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error)
	GetByID(ctx context.Context, id string) (entities.NegotiationProposal, error)
	ListByStudent(ctx context.Context, studentID string, status entities.NegotiationStatus) ([]entities.NegotiationProposal, error)
	UpdateDecision(ctx context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error)
	ApproveAndMaterialize(ctx context.Context, p entities.NegotiationProposal, batch []entities.AgreementInstallment, audit []entities.NegotiationAuditEntry, insertProposal bool) error
}
