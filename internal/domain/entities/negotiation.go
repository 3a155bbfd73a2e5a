package entities

import "time"

// NegotiationStatus represents the lifecycle of a negotiation proposal.
// aprovada and rejeitada are terminal.

type NegotiationStatus string

const (
	NegotiationStatusPendente  NegotiationStatus = "pendente"
	NegotiationStatusAprovada  NegotiationStatus = "aprovada"
	NegotiationStatusRejeitada NegotiationStatus = "rejeitada"
)

// DecidedBySystem is recorded on auto-approved proposals; manually reviewed
// proposals carry the reviewer id instead.
const DecidedBySystem = "system"

// NegotiationProposal is a student's request to settle one or more overdue
// installments under new terms.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (student_id-index): student_id
type NegotiationProposal struct {
	ID             string            `json:"id"`
	StudentID      string            `json:"student_id"`
	InstallmentIDs []string          `json:"installment_ids"`
	OriginalValue  float64           `json:"original_value"`
	ProposedValue  float64           `json:"proposed_value"`
	DiscountPct    float64           `json:"discount_pct"`
	Count          int               `json:"count"`
	FirstDueDate   time.Time         `json:"first_due_date"`
	PaymentMethod  string            `json:"payment_method"`
	Justification  string            `json:"justification,omitempty"`
	Status         NegotiationStatus `json:"status"`
	DecidedBy      string            `json:"decided_by,omitempty"`
	DecidedAt      time.Time         `json:"decided_at,omitempty"`
	Rationale      string            `json:"rationale,omitempty"`
	Feedback       string            `json:"feedback,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// NegotiationRules is the configuration snapshot applied to eligibility checks
// and auto-approval decisions. It is read fresh per evaluation and never
// mutated by the engine.
type NegotiationRules struct {
	MaxAutoDiscountPercent  float64 `json:"max_auto_discount_percent"`
	MaxAutoInstallmentCount int     `json:"max_auto_installment_count"`
	MinOverdueDays          int     `json:"min_overdue_days"`
	MinNegotiableValue      float64 `json:"min_negotiable_value"`
	AllowConcurrent         bool    `json:"allow_concurrent_negotiations"`
}

// NegotiationAuditEntry records the inclusion of one installment in an
// approved negotiation. One entry per covered installment is written inside
// the approval transaction.
type NegotiationAuditEntry struct {
	ID            string    `json:"id"`
	ProposalID    string    `json:"proposal_id"`
	InstallmentID string    `json:"installment_id"`
	StudentID     string    `json:"student_id"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}
