package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
)

var (
	ErrInstallmentNotFound  = errors.New("installment not found")
	ErrInvalidInstallmentID = errors.New("invalid installment id")
	ErrInvalidStudentID     = errors.New("invalid student id")

	// ErrIneligibleInstallment wraps the user-facing reason, e.g.
	// fmt.Errorf("%w: %s", ErrIneligibleInstallment, result.Reason).
	ErrIneligibleInstallment = errors.New("installment not eligible for negotiation")
)

// Eligibility rule reasons, in evaluation order. These are user-facing
// outcomes, surfaced verbatim to the student portal.
const (
	ReasonNotOwner             = "a parcela não pertence ao aluno informado"
	ReasonAlreadyPaid          = "a parcela já foi quitada"
	ReasonAlreadyInNegotiation = "a parcela já faz parte de uma negociação"
	ReasonCancelled            = "a parcela foi cancelada"
	ReasonNotOverdue           = "a parcela ainda não está vencida"
	ReasonConcurrentProposal   = "já existe uma negociação em andamento para este aluno"
)

// EligibilityResult is the outcome of one eligibility check. Reason is empty
// when Eligible is true.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// IEligibilityUseCase decides whether an installment may enter negotiation.

type IEligibilityUseCase interface {
	CheckEligibility(ctx context.Context, installmentID, studentID string) (EligibilityResult, error)
}

type EligibilityUseCase struct {
	installments interfaces.IInstallmentRepository
	negotiations interfaces.INegotiationRepository
	rules        interfaces.IRulesProvider
	now          func() time.Time
}

var _ IEligibilityUseCase = (*EligibilityUseCase)(nil)

func NewEligibilityUseCase(installments interfaces.IInstallmentRepository, negotiations interfaces.INegotiationRepository, rules interfaces.IRulesProvider) *EligibilityUseCase {
	return &EligibilityUseCase{
		installments: installments,
		negotiations: negotiations,
		rules:        rules,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CheckEligibility loads the installment and the student's active proposals
// and evaluates the negotiation rules. It has no side effects and may be
// called repeatedly and concurrently.
func (u *EligibilityUseCase) CheckEligibility(ctx context.Context, installmentID, studentID string) (EligibilityResult, error) {
	installmentID = strings.TrimSpace(installmentID)
	if installmentID == "" {
		return EligibilityResult{}, ErrInvalidInstallmentID
	}
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return EligibilityResult{}, ErrInvalidStudentID
	}

	inst, err := u.installments.GetByID(ctx, installmentID)
	if err != nil {
		return EligibilityResult{}, err
	}
	if inst.ID == "" {
		return EligibilityResult{}, ErrInstallmentNotFound
	}

	rules := u.rules.Rules()

	activeProposals, err := u.countActiveProposals(ctx, studentID, rules)
	if err != nil {
		return EligibilityResult{}, err
	}

	return EvaluateEligibility(inst, studentID, activeProposals, rules, u.now()), nil
}

func (u *EligibilityUseCase) countActiveProposals(ctx context.Context, studentID string, rules entities.NegotiationRules) (int, error) {
	if rules.AllowConcurrent {
		return 0, nil
	}
	pending, err := u.negotiations.ListByStudent(ctx, studentID, entities.NegotiationStatusPendente)
	if err != nil {
		return 0, err
	}
	approved, err := u.negotiations.ListByStudent(ctx, studentID, entities.NegotiationStatusAprovada)
	if err != nil {
		return 0, err
	}
	return len(pending) + len(approved), nil
}

// EvaluateEligibility applies the negotiation rules in a fixed order,
// short-circuiting on the first failure. It is a pure function: identical
// inputs always yield identical results.
//
// Order: ownership, paid, already negotiating, cancelled, not yet overdue,
// one-at-a-time, minimum overdue delay, minimum value.
func EvaluateEligibility(inst entities.Installment, studentID string, activeProposals int, rules entities.NegotiationRules, now time.Time) EligibilityResult {
	if inst.StudentID != studentID {
		return EligibilityResult{Reason: ReasonNotOwner}
	}
	if inst.Status == entities.InstallmentStatusPaga {
		return EligibilityResult{Reason: ReasonAlreadyPaid}
	}
	if inst.Status == entities.InstallmentStatusEmNegociacao || inst.Status == entities.InstallmentStatusEmAcordo {
		return EligibilityResult{Reason: ReasonAlreadyInNegotiation}
	}
	if inst.Status == entities.InstallmentStatusCancelada {
		return EligibilityResult{Reason: ReasonCancelled}
	}
	// Only vencida installments enter negotiation. An aberta installment can
	// otherwise slip through when MinOverdueDays is zero, because DaysOverdue
	// clamps future due dates to 0.
	if inst.Status != entities.InstallmentStatusVencida {
		return EligibilityResult{Reason: ReasonNotOverdue}
	}
	if !rules.AllowConcurrent && activeProposals > 0 {
		return EligibilityResult{Reason: ReasonConcurrentProposal}
	}
	if inst.DaysOverdue(now) < rules.MinOverdueDays {
		return EligibilityResult{Reason: fmt.Sprintf("a parcela precisa estar vencida há pelo menos %d dias", rules.MinOverdueDays)}
	}
	if inst.EffectiveValue() < rules.MinNegotiableValue {
		return EligibilityResult{Reason: fmt.Sprintf("o valor mínimo para negociação é R$ %.2f", rules.MinNegotiableValue)}
	}
	return EligibilityResult{Eligible: true}
}
