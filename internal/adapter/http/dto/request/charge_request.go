package request

import (
	"errors"
	"strings"

	"cobranca_service/internal/domain/entities"
)

var ErrMissingChargeTarget = errors.New("either installment_id or agreement_installment_id is required")

type ChargePayerRequest struct {
	Name    string `json:"name" binding:"required"`
	CPFCNPJ string `json:"cpf_cnpj" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
}

// ChargeCreateRequest targets exactly one obligation: a regular installment
// or an installment of an approved agreement. gateway is optional; the router
// falls back to the configured default.
type ChargeCreateRequest struct {
	InstallmentID          string             `json:"installment_id"`
	AgreementInstallmentID string             `json:"agreement_installment_id"`
	Gateway                string             `json:"gateway"`
	Payer                  ChargePayerRequest `json:"payer" binding:"required"`
}

func (r ChargeCreateRequest) Validate() error {
	inst := strings.TrimSpace(r.InstallmentID)
	agr := strings.TrimSpace(r.AgreementInstallmentID)
	if (inst == "") == (agr == "") {
		return ErrMissingChargeTarget
	}
	return nil
}

func (r ChargeCreateRequest) ToPayer() entities.ChargePayer {
	return entities.ChargePayer{
		Name:    strings.TrimSpace(r.Payer.Name),
		CPFCNPJ: strings.TrimSpace(r.Payer.CPFCNPJ),
		Email:   strings.TrimSpace(r.Payer.Email),
		Phone:   strings.TrimSpace(r.Payer.Phone),
	}
}

// ChargeWebhookRequest is the provider callback body. Only the charge id and
// (optionally) the gateway are read; any pushed status is ignored and the
// charge is re-queried instead.
type ChargeWebhookRequest struct {
	ChargeID string `json:"charge_id" binding:"required"`
	Gateway  string `json:"gateway"`
}
