package entities

import "time"

type AgreementInstallmentStatus string

const (
	AgreementInstallmentStatusAberta    AgreementInstallmentStatus = "aberta"
	AgreementInstallmentStatusPaga      AgreementInstallmentStatus = "paga"
	AgreementInstallmentStatusCancelada AgreementInstallmentStatus = "cancelada"
)

// AgreementInstallment is one scheduled payment within an approved
// negotiation. The batch for a proposal is created atomically when the
// proposal is approved; entries then transition individually.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// Invariant: the sum of Value over a proposal's batch equals the proposal's
// ProposedValue exactly; the last entry absorbs the rounding remainder.
type AgreementInstallment struct {
	ID          string                     `json:"id"`
	ProposalID  string                     `json:"proposal_id"`
	Sequence    int                        `json:"sequence"`
	TotalCount  int                        `json:"total_count"`
	Value       float64                    `json:"value"`
	DueDate     time.Time                  `json:"due_date"`
	Status      AgreementInstallmentStatus `json:"status"`
	PaymentLink string                     `json:"payment_link,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}
