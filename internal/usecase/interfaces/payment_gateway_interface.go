package interfaces

import (
	"context"

	"cobranca_service/internal/domain/entities"
)

// Gateway capabilities, one per operation. A provider adapter implements all
// three; adding a provider means adding one implementation, never new
// branches in callers.

type IChargeCreator interface {
	CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.GatewayCharge, error)
}

type IChargeReader interface {
	GetCharge(ctx context.Context, id string) (entities.GatewayCharge, error)
}

type IChargeCanceller interface {
	CancelCharge(ctx context.Context, id string) (entities.ChargeCancelResult, error)
}

// IPaymentGateway is the full adapter surface of one provider.
type IPaymentGateway interface {
	IChargeCreator
	IChargeReader
	IChargeCanceller
	Provider() entities.GatewayProvider
}

// IGatewayRouter resolves which provider adapter serves a call. Resolution
// order: explicit choice, then the charge-id prefix convention, then the
// configured default.
type IGatewayRouter interface {
	Resolve(explicit string, chargeID string) (IPaymentGateway, error)
	TranslateStatus(providerStatus string, provider entities.GatewayProvider) entities.ChargeStatus
}
