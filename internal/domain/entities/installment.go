package entities

import "time"

// InstallmentStatus represents the lifecycle of a tuition installment (parcela).
//
// Domain notes:
//   - Installments are created when an enrollment schedule is generated and
//     flipped to vencida by a time-based sweep; both live outside this service.
//   - em_negociacao / em_acordo are only ever set by the negotiation engine.
//   - paga is set by the payment-confirmation callback.

type InstallmentStatus string

const (
	InstallmentStatusAberta       InstallmentStatus = "aberta"
	InstallmentStatusPaga         InstallmentStatus = "paga"
	InstallmentStatusVencida      InstallmentStatus = "vencida"
	InstallmentStatusEmNegociacao InstallmentStatus = "em_negociacao"
	InstallmentStatusEmAcordo     InstallmentStatus = "em_acordo"
	InstallmentStatusCancelada    InstallmentStatus = "cancelada"
)

// Installment is one scheduled or overdue payment obligation of a student.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (student_id-index): student_id
//
// Monetary representation:
//   - Value is the face value of the installment.
//   - CurrentValue, when set, is the face value plus accrued penalties; zero
//     means "no recalculation happened yet".
type Installment struct {
	ID           string            `json:"id"`
	StudentID    string            `json:"student_id"`
	EnrollmentID string            `json:"enrollment_id"`
	Sequence     int               `json:"sequence"`
	TotalCount   int               `json:"total_count"`
	DueDate      time.Time         `json:"due_date"`
	Value        float64           `json:"value"`
	CurrentValue float64           `json:"current_value,omitempty"`
	Status       InstallmentStatus `json:"status"`
	PaymentLink  string            `json:"payment_link,omitempty"`
	PaymentProof string            `json:"payment_proof,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// EffectiveValue returns the amount currently owed for the installment.
func (i Installment) EffectiveValue() float64 {
	if i.CurrentValue > 0 {
		return i.CurrentValue
	}
	return i.Value
}

// DaysOverdue returns how many whole days the installment is past due at ref.
func (i Installment) DaysOverdue(ref time.Time) int {
	d := int(ref.Sub(i.DueDate).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
