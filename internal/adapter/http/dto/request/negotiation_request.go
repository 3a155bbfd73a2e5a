package request

import (
	"errors"
	"strings"
	"time"

	"cobranca_service/internal/usecase"
)

var ErrInvalidFirstDueDate = errors.New("invalid first_due_date")

// ProposalCreateRequest is the payload for submitting a negotiation proposal.
// first_due_date uses the YYYY-MM-DD convention of the student portal.
type ProposalCreateRequest struct {
	StudentID      string   `json:"student_id" binding:"required"`
	InstallmentIDs []string `json:"installment_ids" binding:"required"`
	ProposedValue  float64  `json:"proposed_value" binding:"required"`
	Count          int      `json:"count" binding:"required"`
	FirstDueDate   string   `json:"first_due_date" binding:"required"`
	PaymentMethod  string   `json:"payment_method"`
	Justification  string   `json:"justification"`
}

func (r ProposalCreateRequest) ToDraft() (usecase.ProposalDraft, error) {
	due, err := time.Parse("2006-01-02", strings.TrimSpace(r.FirstDueDate))
	if err != nil {
		return usecase.ProposalDraft{}, ErrInvalidFirstDueDate
	}

	method := strings.TrimSpace(r.PaymentMethod)
	if method == "" {
		method = "pix"
	}

	return usecase.ProposalDraft{
		StudentID:      strings.TrimSpace(r.StudentID),
		InstallmentIDs: r.InstallmentIDs,
		ProposedValue:  r.ProposedValue,
		Count:          r.Count,
		FirstDueDate:   due.UTC(),
		PaymentMethod:  method,
		Justification:  strings.TrimSpace(r.Justification),
	}, nil
}

// ProposalDecisionRequest is the payload for the manual review endpoints.
type ProposalDecisionRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
	Rationale  string `json:"rationale"`
}
