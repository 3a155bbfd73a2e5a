package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
)

var (
	ErrInvalidChargeID        = errors.New("invalid charge id")
	ErrInstallmentNotPayable  = errors.New("installment not payable")
	ErrAgreementInstNotFound  = errors.New("agreement installment not found")
	ErrInvalidChargeReference = errors.New("invalid charge reference")
)

// IChargeUseCase orchestrates payment-collection calls through the gateway
// router. Charge creation always happens outside the negotiation transaction:
// a slow or failed provider call never holds a lock on installment rows.

type IChargeUseCase interface {
	CreateForInstallment(ctx context.Context, installmentID, provider string, payer entities.ChargePayer) (entities.GatewayCharge, error)
	CreateForAgreementInstallment(ctx context.Context, agreementInstallmentID, provider string, payer entities.ChargePayer) (entities.GatewayCharge, error)
	GetCharge(ctx context.Context, chargeID, provider string) (entities.GatewayCharge, error)
	CancelCharge(ctx context.Context, chargeID, provider string) (entities.ChargeCancelResult, error)
	ConfirmPayment(ctx context.Context, chargeID, provider string) (entities.GatewayCharge, error)
}

type ChargeUseCase struct {
	installments interfaces.IInstallmentRepository
	agreements   interfaces.IAgreementInstallmentRepository
	negotiations interfaces.INegotiationRepository
	router       interfaces.IGatewayRouter
	callbackURL  string
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(installments interfaces.IInstallmentRepository, agreements interfaces.IAgreementInstallmentRepository, negotiations interfaces.INegotiationRepository, router interfaces.IGatewayRouter, callbackURL string) *ChargeUseCase {
	return &ChargeUseCase{
		installments: installments,
		agreements:   agreements,
		negotiations: negotiations,
		router:       router,
		callbackURL:  callbackURL,
	}
}

// CreateForInstallment creates a provider charge for one installment and
// stores the payable link back on the record. The installment id doubles as
// the provider-side idempotency reference, so a retried call after a timeout
// cannot create a duplicate charge.
func (u *ChargeUseCase) CreateForInstallment(ctx context.Context, installmentID, provider string, payer entities.ChargePayer) (entities.GatewayCharge, error) {
	installmentID = strings.TrimSpace(installmentID)
	if installmentID == "" {
		return entities.GatewayCharge{}, ErrInvalidInstallmentID
	}

	inst, err := u.installments.GetByID(ctx, installmentID)
	if err != nil {
		return entities.GatewayCharge{}, err
	}
	if inst.ID == "" {
		return entities.GatewayCharge{}, ErrInstallmentNotFound
	}
	if inst.Status == entities.InstallmentStatusPaga || inst.Status == entities.InstallmentStatusCancelada {
		return entities.GatewayCharge{}, fmt.Errorf("%w: status %s", ErrInstallmentNotPayable, inst.Status)
	}

	// A direct installment carries no negotiated method, so every provider
	// method stays enabled; the value is still collected in one payment.
	req := entities.ChargeRequest{
		Value:           inst.EffectiveValue(),
		Description:     fmt.Sprintf("Parcela %d/%d da matrícula %s", inst.Sequence, inst.TotalCount, inst.EnrollmentID),
		Reference:       inst.ID,
		DueDate:         inst.DueDate,
		Payer:           payer,
		CallbackURL:     u.callbackURL,
		MaxInstallments: 1,
	}

	charge, err := u.createCharge(ctx, provider, req)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	if err := u.installments.SetPaymentLink(ctx, inst.ID, charge.PaymentLink); err != nil {
		// The provider charge already exists; failing the call now would only
		// push the caller into creating another one.
		log.Printf("[charge][usecase] link write-back failed installment_id=%s charge_id=%s err=%v", inst.ID, charge.ID, err)
	}
	return charge, nil
}

// CreateForAgreementInstallment is the agreement-schedule variant of
// CreateForInstallment.
func (u *ChargeUseCase) CreateForAgreementInstallment(ctx context.Context, agreementInstallmentID, provider string, payer entities.ChargePayer) (entities.GatewayCharge, error) {
	agreementInstallmentID = strings.TrimSpace(agreementInstallmentID)
	if agreementInstallmentID == "" {
		return entities.GatewayCharge{}, ErrInvalidInstallmentID
	}

	ai, err := u.agreements.GetByID(ctx, agreementInstallmentID)
	if err != nil {
		return entities.GatewayCharge{}, err
	}
	if ai.ID == "" {
		return entities.GatewayCharge{}, ErrAgreementInstNotFound
	}
	if ai.Status != entities.AgreementInstallmentStatusAberta {
		return entities.GatewayCharge{}, fmt.Errorf("%w: status %s", ErrInstallmentNotPayable, ai.Status)
	}

	p, err := u.negotiations.GetByID(ctx, ai.ProposalID)
	if err != nil {
		return entities.GatewayCharge{}, err
	}
	if p.ID == "" {
		return entities.GatewayCharge{}, ErrProposalNotFound
	}

	// The agreement was settled on one payment method; the charge offers only
	// that method, and the schedule split already happened so the provider
	// must not split again.
	req := entities.ChargeRequest{
		Value:           ai.Value,
		Description:     fmt.Sprintf("Acordo %s - parcela %d/%d", ai.ProposalID, ai.Sequence, ai.TotalCount),
		Reference:       ai.ID,
		DueDate:         ai.DueDate,
		Payer:           payer,
		CallbackURL:     u.callbackURL,
		PaymentMethods:  []string{p.PaymentMethod},
		MaxInstallments: 1,
	}

	charge, err := u.createCharge(ctx, provider, req)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	if err := u.agreements.SetPaymentLink(ctx, ai.ID, charge.PaymentLink); err != nil {
		log.Printf("[charge][usecase] link write-back failed agreement_installment_id=%s charge_id=%s err=%v", ai.ID, charge.ID, err)
	}
	return charge, nil
}

func (u *ChargeUseCase) createCharge(ctx context.Context, provider string, req entities.ChargeRequest) (entities.GatewayCharge, error) {
	adapter, err := u.router.Resolve(provider, "")
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	log.Printf("[charge][usecase] create start provider=%s reference=%s value=%.2f", adapter.Provider(), req.Reference, req.Value)
	charge, err := adapter.CreateCharge(ctx, req)
	if err != nil {
		log.Printf("[charge][usecase] create failed provider=%s reference=%s err=%v", adapter.Provider(), req.Reference, err)
		return entities.GatewayCharge{}, err
	}
	log.Printf("[charge][usecase] create success provider=%s reference=%s charge_id=%s status=%s", adapter.Provider(), req.Reference, charge.ID, charge.Status)
	return charge, nil
}

func (u *ChargeUseCase) GetCharge(ctx context.Context, chargeID, provider string) (entities.GatewayCharge, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.GatewayCharge{}, ErrInvalidChargeID
	}

	adapter, err := u.router.Resolve(provider, chargeID)
	if err != nil {
		return entities.GatewayCharge{}, err
	}
	return adapter.GetCharge(ctx, chargeID)
}

func (u *ChargeUseCase) CancelCharge(ctx context.Context, chargeID, provider string) (entities.ChargeCancelResult, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.ChargeCancelResult{}, ErrInvalidChargeID
	}

	adapter, err := u.router.Resolve(provider, chargeID)
	if err != nil {
		return entities.ChargeCancelResult{}, err
	}

	res, err := adapter.CancelCharge(ctx, chargeID)
	if err != nil {
		log.Printf("[charge][usecase] cancel failed provider=%s charge_id=%s err=%v", adapter.Provider(), chargeID, err)
		return entities.ChargeCancelResult{}, err
	}
	return res, nil
}

// ConfirmPayment is the payment-callback contract. The pushed payload is
// never trusted: the charge is re-queried at the provider and only a
// normalized paid status mutates anything. A provider outage surfaces as an
// error, never as "payment failed".
func (u *ChargeUseCase) ConfirmPayment(ctx context.Context, chargeID, provider string) (entities.GatewayCharge, error) {
	charge, err := u.GetCharge(ctx, chargeID, provider)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	if charge.Status != entities.ChargeStatusPaid {
		log.Printf("[charge][usecase] confirm skipped charge_id=%s status=%s", charge.ID, charge.Status)
		return charge, nil
	}
	if charge.Reference == "" {
		return entities.GatewayCharge{}, ErrInvalidChargeReference
	}

	// The reference is the id of either an installment or an agreement
	// installment; try the direct obligation first.
	inst, err := u.installments.GetByID(ctx, charge.Reference)
	if err != nil {
		return entities.GatewayCharge{}, err
	}
	if inst.ID != "" {
		if _, err := u.installments.UpdateStatus(ctx, inst.ID, entities.InstallmentStatusPaga); err != nil {
			return entities.GatewayCharge{}, err
		}
		if err := u.installments.SetPaymentProof(ctx, inst.ID, charge.ID); err != nil {
			log.Printf("[charge][usecase] proof write-back failed installment_id=%s charge_id=%s err=%v", inst.ID, charge.ID, err)
		}
		log.Printf("[charge][usecase] installment settled installment_id=%s charge_id=%s", inst.ID, charge.ID)
		return charge, nil
	}

	ai, err := u.agreements.GetByID(ctx, charge.Reference)
	if err != nil {
		return entities.GatewayCharge{}, err
	}
	if ai.ID == "" {
		return entities.GatewayCharge{}, ErrInvalidChargeReference
	}
	if _, err := u.agreements.UpdateStatus(ctx, ai.ID, entities.AgreementInstallmentStatusPaga); err != nil {
		return entities.GatewayCharge{}, err
	}
	log.Printf("[charge][usecase] agreement installment settled agreement_installment_id=%s charge_id=%s", ai.ID, charge.ID)

	u.promoteNegotiatedInstallments(ctx, ai.ProposalID)
	return charge, nil
}

// promoteNegotiatedInstallments moves the covered installments from
// em_negociacao to em_acordo once the agreement starts being honored.
// Best-effort: a partial promotion is retried on the next confirmation.
func (u *ChargeUseCase) promoteNegotiatedInstallments(ctx context.Context, proposalID string) {
	p, err := u.negotiations.GetByID(ctx, proposalID)
	if err != nil || p.ID == "" {
		log.Printf("[charge][usecase] promotion lookup failed proposal_id=%s err=%v", proposalID, err)
		return
	}
	for _, instID := range p.InstallmentIDs {
		inst, err := u.installments.GetByID(ctx, instID)
		if err != nil || inst.ID == "" {
			log.Printf("[charge][usecase] promotion lookup failed installment_id=%s err=%v", instID, err)
			continue
		}
		if inst.Status != entities.InstallmentStatusEmNegociacao {
			continue
		}
		if _, err := u.installments.UpdateStatus(ctx, instID, entities.InstallmentStatusEmAcordo); err != nil {
			log.Printf("[charge][usecase] promotion failed installment_id=%s err=%v", instID, err)
		}
	}
}
