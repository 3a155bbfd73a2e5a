package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound       = errors.New("negotiation proposal not found")
	ErrInvalidProposal        = errors.New("invalid negotiation proposal")
	ErrProposalAlreadyDecided = errors.New("negotiation proposal already decided")
	ErrConcurrentNegotiation  = errors.New("concurrent negotiation conflict")
	ErrInvalidProposalID      = errors.New("invalid proposal id")
	ErrInvalidReviewerID      = errors.New("invalid reviewer id")
)

// Decision texts recorded on proposals. Rationale is reviewer-facing; the
// feedback messages are shown to the student.
const (
	autoApprovalRationale = "aprovada automaticamente pelas regras de negociação vigentes"

	feedbackApproved    = "Proposta aprovada! As novas parcelas do acordo já estão disponíveis para pagamento."
	feedbackUnderReview = "Proposta recebida. Ela está em análise pela equipe financeira e você será avisado da decisão."
	feedbackRejected    = "Proposta recusada pela equipe financeira."
)

// ProposalDraft is the submission payload for a new negotiation.
type ProposalDraft struct {
	StudentID      string
	InstallmentIDs []string
	ProposedValue  float64
	Count          int
	FirstDueDate   time.Time
	PaymentMethod  string
	Justification  string
}

// INegotiationUseCase is the proposal engine: it validates drafts against the
// eligibility rules, decides auto-approval, and drives the transactional
// approval that materializes the agreement schedule.

type INegotiationUseCase interface {
	Submit(ctx context.Context, draft ProposalDraft) (entities.NegotiationProposal, error)
	GetByID(ctx context.Context, id string) (entities.NegotiationProposal, error)
	ListByStudent(ctx context.Context, studentID string, status entities.NegotiationStatus) ([]entities.NegotiationProposal, error)
	ApproveManually(ctx context.Context, proposalID, reviewerID, rationale string) (entities.NegotiationProposal, error)
	RejectManually(ctx context.Context, proposalID, reviewerID, rationale string) (entities.NegotiationProposal, error)
	ListAgreementInstallments(ctx context.Context, proposalID string) ([]entities.AgreementInstallment, error)
}

type NegotiationUseCase struct {
	installments interfaces.IInstallmentRepository
	negotiations interfaces.INegotiationRepository
	agreements   interfaces.IAgreementInstallmentRepository
	rules        interfaces.IRulesProvider
	now          func() time.Time
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(installments interfaces.IInstallmentRepository, negotiations interfaces.INegotiationRepository, agreements interfaces.IAgreementInstallmentRepository, rules interfaces.IRulesProvider) *NegotiationUseCase {
	return &NegotiationUseCase{
		installments: installments,
		negotiations: negotiations,
		agreements:   agreements,
		rules:        rules,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates every referenced installment, decides auto-approval
// against the configured thresholds and persists the proposal. Approved
// proposals additionally flip the covered installments to em_negociacao and
// create the agreement schedule, all in one atomic write; a pending proposal
// changes nothing but itself.
func (u *NegotiationUseCase) Submit(ctx context.Context, draft ProposalDraft) (entities.NegotiationProposal, error) {
	log.Printf("[negotiation][usecase] submit start student_id=%s installments=%d proposed_value=%.2f count=%d",
		draft.StudentID, len(draft.InstallmentIDs), draft.ProposedValue, draft.Count)

	if err := validateDraft(draft); err != nil {
		log.Printf("[negotiation][usecase] submit invalid draft student_id=%s err=%v", draft.StudentID, err)
		return entities.NegotiationProposal{}, err
	}

	rules := u.rules.Rules()
	now := u.now()

	activeProposals := 0
	if !rules.AllowConcurrent {
		pending, err := u.negotiations.ListByStudent(ctx, draft.StudentID, entities.NegotiationStatusPendente)
		if err != nil {
			return entities.NegotiationProposal{}, err
		}
		approved, err := u.negotiations.ListByStudent(ctx, draft.StudentID, entities.NegotiationStatusAprovada)
		if err != nil {
			return entities.NegotiationProposal{}, err
		}
		activeProposals = len(pending) + len(approved)
	}

	// Every installment must pass eligibility on its own; abort on the first
	// failure so no partial effect is ever produced.
	installments := make([]entities.Installment, 0, len(draft.InstallmentIDs))
	originalValue := 0.0
	for _, id := range draft.InstallmentIDs {
		inst, err := u.installments.GetByID(ctx, id)
		if err != nil {
			return entities.NegotiationProposal{}, err
		}
		if inst.ID == "" {
			return entities.NegotiationProposal{}, ErrInstallmentNotFound
		}
		res := EvaluateEligibility(inst, draft.StudentID, activeProposals, rules, now)
		if !res.Eligible {
			log.Printf("[negotiation][usecase] submit ineligible student_id=%s installment_id=%s reason=%q", draft.StudentID, id, res.Reason)
			return entities.NegotiationProposal{}, fmt.Errorf("%w: %s", ErrIneligibleInstallment, res.Reason)
		}
		installments = append(installments, inst)
		originalValue += inst.EffectiveValue()
	}

	if draft.ProposedValue > originalValue {
		log.Printf("[negotiation][usecase] submit proposed above original student_id=%s proposed=%.2f original=%.2f", draft.StudentID, draft.ProposedValue, originalValue)
		return entities.NegotiationProposal{}, fmt.Errorf("%w: proposed value above original value", ErrInvalidProposal)
	}

	discountPct := (1 - draft.ProposedValue/originalValue) * 100
	autoApprove := discountPct <= rules.MaxAutoDiscountPercent && draft.Count <= rules.MaxAutoInstallmentCount

	p := entities.NegotiationProposal{
		ID:             uuid.NewString(),
		StudentID:      draft.StudentID,
		InstallmentIDs: draft.InstallmentIDs,
		OriginalValue:  originalValue,
		ProposedValue:  draft.ProposedValue,
		DiscountPct:    discountPct,
		Count:          draft.Count,
		FirstDueDate:   draft.FirstDueDate,
		PaymentMethod:  draft.PaymentMethod,
		Justification:  draft.Justification,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if !autoApprove {
		p.Status = entities.NegotiationStatusPendente
		p.Feedback = feedbackUnderReview
		created, err := u.negotiations.Create(ctx, p)
		if err != nil {
			return entities.NegotiationProposal{}, err
		}
		log.Printf("[negotiation][usecase] submit pending student_id=%s proposal_id=%s discount_pct=%.2f count=%d", p.StudentID, p.ID, discountPct, p.Count)
		return created, nil
	}

	p.Status = entities.NegotiationStatusAprovada
	p.DecidedBy = entities.DecidedBySystem
	p.DecidedAt = now
	p.Rationale = autoApprovalRationale
	p.Feedback = feedbackApproved

	if err := u.approve(ctx, p, true); err != nil {
		return entities.NegotiationProposal{}, err
	}
	log.Printf("[negotiation][usecase] submit auto-approved student_id=%s proposal_id=%s discount_pct=%.2f count=%d", p.StudentID, p.ID, discountPct, p.Count)
	return p, nil
}

// approve generates the agreement batch and applies the atomic approval
// write. The repository re-checks each installment's status inside the
// transaction, so a concurrent submission covering the same installment loses
// cleanly instead of double-negotiating.
func (u *NegotiationUseCase) approve(ctx context.Context, p entities.NegotiationProposal, insertProposal bool) error {
	batch, err := GenerateAgreementInstallments(p, u.now())
	if err != nil {
		return err
	}

	audit := make([]entities.NegotiationAuditEntry, 0, len(p.InstallmentIDs))
	for _, instID := range p.InstallmentIDs {
		audit = append(audit, entities.NegotiationAuditEntry{
			ID:            uuid.NewString(),
			ProposalID:    p.ID,
			InstallmentID: instID,
			StudentID:     p.StudentID,
			Note:          fmt.Sprintf("parcela incluída na negociação %s", p.ID),
			CreatedAt:     u.now(),
		})
	}

	if err := u.negotiations.ApproveAndMaterialize(ctx, p, batch, audit, insertProposal); err != nil {
		if errors.Is(err, interfaces.ErrNegotiationConflict) {
			log.Printf("[negotiation][usecase] approval lost race proposal_id=%s err=%v", p.ID, err)
			return fmt.Errorf("%w: %s", ErrConcurrentNegotiation, ReasonAlreadyInNegotiation)
		}
		log.Printf("[negotiation][usecase] approval write failed proposal_id=%s err=%v", p.ID, err)
		return err
	}
	return nil
}

func (u *NegotiationUseCase) GetByID(ctx context.Context, id string) (entities.NegotiationProposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.NegotiationProposal{}, ErrInvalidProposalID
	}

	p, err := u.negotiations.GetByID(ctx, id)
	if err != nil {
		return entities.NegotiationProposal{}, err
	}
	if p.ID == "" {
		return entities.NegotiationProposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *NegotiationUseCase) ListByStudent(ctx context.Context, studentID string, status entities.NegotiationStatus) ([]entities.NegotiationProposal, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, ErrInvalidStudentID
	}
	return u.negotiations.ListByStudent(ctx, studentID, status)
}

// ApproveManually promotes a pending proposal with the same invariants as
// auto-approval: the covered installments must still be vencida when the
// transaction runs.
func (u *NegotiationUseCase) ApproveManually(ctx context.Context, proposalID, reviewerID, rationale string) (entities.NegotiationProposal, error) {
	p, err := u.loadPending(ctx, proposalID, reviewerID)
	if err != nil {
		return entities.NegotiationProposal{}, err
	}

	now := u.now()
	p.Status = entities.NegotiationStatusAprovada
	p.DecidedBy = strings.TrimSpace(reviewerID)
	p.DecidedAt = now
	p.Rationale = rationale
	p.Feedback = feedbackApproved
	p.UpdatedAt = now

	if err := u.approve(ctx, p, false); err != nil {
		return entities.NegotiationProposal{}, err
	}
	log.Printf("[negotiation][usecase] manual approval proposal_id=%s reviewer_id=%s", p.ID, p.DecidedBy)
	return p, nil
}

func (u *NegotiationUseCase) RejectManually(ctx context.Context, proposalID, reviewerID, rationale string) (entities.NegotiationProposal, error) {
	p, err := u.loadPending(ctx, proposalID, reviewerID)
	if err != nil {
		return entities.NegotiationProposal{}, err
	}

	now := u.now()
	p.Status = entities.NegotiationStatusRejeitada
	p.DecidedBy = strings.TrimSpace(reviewerID)
	p.DecidedAt = now
	p.Rationale = rationale
	p.Feedback = feedbackRejected
	p.UpdatedAt = now

	updated, err := u.negotiations.UpdateDecision(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrNegotiationConflict) {
			return entities.NegotiationProposal{}, ErrProposalAlreadyDecided
		}
		return entities.NegotiationProposal{}, err
	}
	log.Printf("[negotiation][usecase] manual rejection proposal_id=%s reviewer_id=%s", p.ID, p.DecidedBy)
	return updated, nil
}

// ListAgreementInstallments returns the materialized schedule of a proposal.
func (u *NegotiationUseCase) ListAgreementInstallments(ctx context.Context, proposalID string) ([]entities.AgreementInstallment, error) {
	p, err := u.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return u.agreements.ListByProposal(ctx, p.ID)
}

func (u *NegotiationUseCase) loadPending(ctx context.Context, proposalID, reviewerID string) (entities.NegotiationProposal, error) {
	if strings.TrimSpace(reviewerID) == "" {
		return entities.NegotiationProposal{}, ErrInvalidReviewerID
	}
	p, err := u.GetByID(ctx, proposalID)
	if err != nil {
		return entities.NegotiationProposal{}, err
	}
	if p.Status != entities.NegotiationStatusPendente {
		return entities.NegotiationProposal{}, ErrProposalAlreadyDecided
	}
	return p, nil
}

func validateDraft(draft ProposalDraft) error {
	if strings.TrimSpace(draft.StudentID) == "" {
		return ErrInvalidStudentID
	}
	if len(draft.InstallmentIDs) == 0 {
		return fmt.Errorf("%w: at least one installment is required", ErrInvalidProposal)
	}
	seen := make(map[string]bool, len(draft.InstallmentIDs))
	for _, id := range draft.InstallmentIDs {
		if strings.TrimSpace(id) == "" {
			return ErrInvalidInstallmentID
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicated installment %s", ErrInvalidProposal, id)
		}
		seen[id] = true
	}
	if draft.ProposedValue <= 0 {
		return fmt.Errorf("%w: proposed value must be positive", ErrInvalidProposal)
	}
	if draft.Count < 1 {
		return fmt.Errorf("%w: installment count must be >= 1", ErrInvalidProposal)
	}
	if draft.FirstDueDate.IsZero() {
		return fmt.Errorf("%w: first due date is required", ErrInvalidProposal)
	}
	return nil
}
