package request

import (
	"errors"
	"testing"
	"time"
)

func TestProposalCreateRequest_ToDraft(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := ProposalCreateRequest{
			StudentID:      " stu-1 ",
			InstallmentIDs: []string{"inst-1"},
			ProposedValue:  950,
			Count:          3,
			FirstDueDate:   "2026-04-10",
			Justification:  " dificuldade financeira ",
		}

		draft, err := r.ToDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.StudentID != "stu-1" {
			t.Fatalf("expected trimmed student id, got %q", draft.StudentID)
		}
		if !draft.FirstDueDate.Equal(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected first due date: %v", draft.FirstDueDate)
		}
		if draft.PaymentMethod != "pix" {
			t.Fatalf("expected default payment method pix, got %q", draft.PaymentMethod)
		}
		if draft.Justification != "dificuldade financeira" {
			t.Fatalf("expected trimmed justification, got %q", draft.Justification)
		}
	})

	t.Run("explicit payment method", func(t *testing.T) {
		r := ProposalCreateRequest{StudentID: "stu-1", FirstDueDate: "2026-04-10", PaymentMethod: "boleto"}
		draft, err := r.ToDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.PaymentMethod != "boleto" {
			t.Fatalf("expected boleto, got %q", draft.PaymentMethod)
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		r := ProposalCreateRequest{StudentID: "stu-1", FirstDueDate: "10/04/2026"}
		if _, err := r.ToDraft(); !errors.Is(err, ErrInvalidFirstDueDate) {
			t.Fatalf("expected ErrInvalidFirstDueDate, got %v", err)
		}
	})
}

func TestChargeCreateRequest_Validate(t *testing.T) {
	if err := (ChargeCreateRequest{InstallmentID: "inst-1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (ChargeCreateRequest{AgreementInstallmentID: "ai-1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (ChargeCreateRequest{}).Validate(); !errors.Is(err, ErrMissingChargeTarget) {
		t.Fatalf("expected ErrMissingChargeTarget, got %v", err)
	}
	if err := (ChargeCreateRequest{InstallmentID: "inst-1", AgreementInstallmentID: "ai-1"}).Validate(); !errors.Is(err, ErrMissingChargeTarget) {
		t.Fatalf("expected ErrMissingChargeTarget for double target, got %v", err)
	}
}
