package interfaces

import "cobranca_service/internal/domain/entities"

// IRulesProvider supplies the negotiation rules snapshot. Implementations
// must read the rules fresh on every call so configuration changes take
// effect immediately, without a service restart.

type IRulesProvider interface {
	Rules() entities.NegotiationRules
}
