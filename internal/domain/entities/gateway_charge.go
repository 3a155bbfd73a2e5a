package entities

import "time"

// ChargeStatus is the provider-neutral status vocabulary. Adapters never leak
// their provider's literals past the gateway router's translation tables;
// anything outside a provider's table normalizes to unknown.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusPaid      ChargeStatus = "paid"
	ChargeStatusCancelled ChargeStatus = "cancelled"
	ChargeStatusExpired   ChargeStatus = "expired"
	ChargeStatusUnknown   ChargeStatus = "unknown"
)

// GatewayProvider identifies a registered payment provider.
type GatewayProvider string

const (
	ProviderLytex       GatewayProvider = "lytex"
	ProviderInfinityPay GatewayProvider = "infinitypay"
)

// GatewayCharge is the provider-agnostic view of a payable charge. It is
// transient: adapters produce it, callers decide what (if anything) to
// persist from it.
type GatewayCharge struct {
	ID          string          `json:"id"`
	Provider    GatewayProvider `json:"provider"`
	Status      ChargeStatus    `json:"status"`
	Reference   string          `json:"reference,omitempty"`
	Value       float64         `json:"value"`
	PaymentLink string          `json:"payment_link,omitempty"`
	PixCopyCola string          `json:"pix_copy_cola,omitempty"`
	PixQRCode   string          `json:"pix_qr_code,omitempty"`
	BoletoLine  string          `json:"boleto_line,omitempty"`
	BoletoPDF   string          `json:"boleto_pdf,omitempty"`
}

// ChargePayer carries the payer identity fields providers require.
type ChargePayer struct {
	Name    string `json:"name"`
	CPFCNPJ string `json:"cpf_cnpj"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

// ChargeRequest is the provider-agnostic charge-creation request. Reference
// is the caller-supplied idempotency key: adapters must pass it through
// unchanged on every attempt so a retried creation never duplicates the
// charge on the provider side.
type ChargeRequest struct {
	Value           float64     `json:"value"`
	Description     string      `json:"description"`
	Reference       string      `json:"reference"`
	DueDate         time.Time   `json:"due_date"`
	Payer           ChargePayer `json:"payer"`
	PaymentMethods  []string    `json:"payment_methods,omitempty"`
	MaxInstallments int         `json:"max_installments,omitempty"`
	CallbackURL     string      `json:"callback_url,omitempty"`
}

// ChargeCancelResult is the outcome of a cancellation request.
type ChargeCancelResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
