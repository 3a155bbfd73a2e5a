package payments

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
)

var ErrUnconfiguredGateway = errors.New("payment gateway not configured")

// Charge ids are tagged with a provider prefix when they leave an adapter, so
// a later call carrying only the id can be routed back to the right provider.
const (
	lytexChargePrefix       = "lyt_"
	infinityPayChargePrefix = "ifp_"
)

// Status translation tables, one closed map per provider. Adapters never leak
// provider literals past these tables; anything absent normalizes to unknown.
var statusTables = map[entities.GatewayProvider]map[string]entities.ChargeStatus{
	entities.ProviderLytex: {
		"pending":         entities.ChargeStatusPending,
		"waiting_payment": entities.ChargeStatusPending,
		"processing":      entities.ChargeStatusPending,
		"paid":            entities.ChargeStatusPaid,
		"liquidated":      entities.ChargeStatusPaid,
		"canceled":        entities.ChargeStatusCancelled,
		"cancelled":       entities.ChargeStatusCancelled,
		"expired":         entities.ChargeStatusExpired,
	},
	entities.ProviderInfinityPay: {
		"created":  entities.ChargeStatusPending,
		"pending":  entities.ChargeStatusPending,
		"waiting":  entities.ChargeStatusPending,
		"approved": entities.ChargeStatusPaid,
		"paid":     entities.ChargeStatusPaid,
		"success":  entities.ChargeStatusPaid,
		"canceled": entities.ChargeStatusCancelled,
		"refunded": entities.ChargeStatusCancelled,
		"expired":  entities.ChargeStatusExpired,
	},
}

// GatewayRouter selects the provider adapter serving a call and owns status
// normalization. Adding a provider means registering one more adapter here,
// never branching in callers.

type GatewayRouter struct {
	adapters        map[entities.GatewayProvider]interfaces.IPaymentGateway
	defaultProvider entities.GatewayProvider
}

var _ interfaces.IGatewayRouter = (*GatewayRouter)(nil)

func NewGatewayRouter(defaultProvider entities.GatewayProvider, adapters ...interfaces.IPaymentGateway) *GatewayRouter {
	m := make(map[entities.GatewayProvider]interfaces.IPaymentGateway, len(adapters))
	for _, a := range adapters {
		if a == nil {
			continue
		}
		m[a.Provider()] = a
	}
	return &GatewayRouter{adapters: m, defaultProvider: defaultProvider}
}

// Resolve picks the adapter for a call. Resolution order: the explicit
// provider name wins; else the charge-id prefix convention; else the
// configured default.
func (r *GatewayRouter) Resolve(explicit string, chargeID string) (interfaces.IPaymentGateway, error) {
	provider := r.defaultProvider

	switch {
	case strings.TrimSpace(explicit) != "":
		provider = entities.GatewayProvider(strings.ToLower(strings.TrimSpace(explicit)))
	case strings.HasPrefix(chargeID, lytexChargePrefix):
		provider = entities.ProviderLytex
	case strings.HasPrefix(chargeID, infinityPayChargePrefix):
		provider = entities.ProviderInfinityPay
	}

	adapter, ok := r.adapters[provider]
	if !ok {
		log.Printf("[gateway][router] no adapter registered provider=%s explicit=%q charge_id=%q", provider, explicit, chargeID)
		return nil, fmt.Errorf("%w: %s", ErrUnconfiguredGateway, provider)
	}
	return adapter, nil
}

func (r *GatewayRouter) TranslateStatus(providerStatus string, provider entities.GatewayProvider) entities.ChargeStatus {
	return translateStatus(providerStatus, provider)
}

// translateStatus is a pure lookup; unknown provider statuses (and unknown
// providers) normalize to unknown so callers always receive a value.
func translateStatus(providerStatus string, provider entities.GatewayProvider) entities.ChargeStatus {
	table, ok := statusTables[provider]
	if !ok {
		return entities.ChargeStatusUnknown
	}
	if s, ok := table[strings.ToLower(strings.TrimSpace(providerStatus))]; ok {
		return s
	}
	return entities.ChargeStatusUnknown
}
