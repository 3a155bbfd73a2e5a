package response

import (
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

type NegotiationResponse struct {
	ID             string     `json:"id"`
	StudentID      string     `json:"student_id"`
	InstallmentIDs []string   `json:"installment_ids"`
	OriginalValue  float64    `json:"original_value"`
	ProposedValue  float64    `json:"proposed_value"`
	DiscountPct    float64    `json:"discount_pct"`
	Count          int        `json:"count"`
	FirstDueDate   time.Time  `json:"first_due_date"`
	PaymentMethod  string     `json:"payment_method"`
	Justification  string     `json:"justification,omitempty"`
	Status         string     `json:"status"`
	DecidedBy      string     `json:"decided_by,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	Rationale      string     `json:"rationale,omitempty"`
	Feedback       string     `json:"feedback,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromNegotiation(p entities.NegotiationProposal) NegotiationResponse {
	res := NegotiationResponse{
		ID:             p.ID,
		StudentID:      p.StudentID,
		InstallmentIDs: p.InstallmentIDs,
		OriginalValue:  p.OriginalValue,
		ProposedValue:  p.ProposedValue,
		DiscountPct:    p.DiscountPct,
		Count:          p.Count,
		FirstDueDate:   p.FirstDueDate,
		PaymentMethod:  p.PaymentMethod,
		Justification:  p.Justification,
		Status:         string(p.Status),
		DecidedBy:      p.DecidedBy,
		Rationale:      p.Rationale,
		Feedback:       p.Feedback,
		CreatedAt:      p.CreatedAt,
	}
	if !p.DecidedAt.IsZero() {
		at := p.DecidedAt
		res.DecidedAt = &at
	}
	return res
}

func FromNegotiations(list []entities.NegotiationProposal) []NegotiationResponse {
	out := make([]NegotiationResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromNegotiation(p))
	}
	return out
}

type EligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

func FromEligibility(r usecase.EligibilityResult) EligibilityResponse {
	return EligibilityResponse{Eligible: r.Eligible, Reason: r.Reason}
}

type AgreementInstallmentResponse struct {
	ID          string    `json:"id"`
	ProposalID  string    `json:"proposal_id"`
	Sequence    int       `json:"sequence"`
	TotalCount  int       `json:"total_count"`
	Value       float64   `json:"value"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	PaymentLink string    `json:"payment_link,omitempty"`
}

func FromAgreementInstallments(list []entities.AgreementInstallment) []AgreementInstallmentResponse {
	out := make([]AgreementInstallmentResponse, 0, len(list))
	for _, ai := range list {
		out = append(out, AgreementInstallmentResponse{
			ID:          ai.ID,
			ProposalID:  ai.ProposalID,
			Sequence:    ai.Sequence,
			TotalCount:  ai.TotalCount,
			Value:       ai.Value,
			DueDate:     ai.DueDate,
			Status:      string(ai.Status),
			PaymentLink: ai.PaymentLink,
		})
	}
	return out
}
