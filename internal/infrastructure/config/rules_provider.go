package config

import (
	"os"
	"strconv"
	"strings"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
)

// Defaults applied when the corresponding env var is unset or unparsable.
const (
	defaultMaxAutoDiscountPercent  = 10.0
	defaultMaxAutoInstallmentCount = 6
	defaultMinOverdueDays          = 10
	defaultMinNegotiableValue      = 100.0
)

// EnvRulesProvider reads the negotiation rules from the environment on every
// call, so an operator changing a threshold does not need a restart for it to
// take effect.

type EnvRulesProvider struct{}

var _ interfaces.IRulesProvider = (*EnvRulesProvider)(nil)

func NewEnvRulesProvider() *EnvRulesProvider {
	return &EnvRulesProvider{}
}

func (p *EnvRulesProvider) Rules() entities.NegotiationRules {
	return entities.NegotiationRules{
		MaxAutoDiscountPercent:  envFloat("NEGOTIATION_MAX_AUTO_DISCOUNT_PERCENT", defaultMaxAutoDiscountPercent),
		MaxAutoInstallmentCount: envInt("NEGOTIATION_MAX_AUTO_INSTALLMENTS", defaultMaxAutoInstallmentCount),
		MinOverdueDays:          envInt("NEGOTIATION_MIN_OVERDUE_DAYS", defaultMinOverdueDays),
		MinNegotiableValue:      envFloat("NEGOTIATION_MIN_VALUE", defaultMinNegotiableValue),
		AllowConcurrent:         envBool("NEGOTIATION_ALLOW_CONCURRENT"),
	}
}

func envFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
