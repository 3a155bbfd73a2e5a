package usecase

import (
	"errors"
	"math"
	"testing"
	"time"

	"cobranca_service/internal/domain/entities"
)

func approvedProposal(value float64, count int, firstDue time.Time) entities.NegotiationProposal {
	return entities.NegotiationProposal{
		ID:            "neg-1",
		StudentID:     "stu-1",
		ProposedValue: value,
		Count:         count,
		FirstDueDate:  firstDue,
		Status:        entities.NegotiationStatusAprovada,
	}
}

func TestGenerateAgreementInstallments(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	firstDue := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("not approved", func(t *testing.T) {
		p := approvedProposal(1000, 3, firstDue)
		p.Status = entities.NegotiationStatusPendente
		_, err := GenerateAgreementInstallments(p, now)
		if !errors.Is(err, ErrProposalNotApproved) {
			t.Fatalf("expected ErrProposalNotApproved, got %v", err)
		}
	})

	t.Run("last installment absorbs remainder", func(t *testing.T) {
		batch, err := GenerateAgreementInstallments(approvedProposal(1000, 3, firstDue), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(batch) != 3 {
			t.Fatalf("expected 3 installments, got %d", len(batch))
		}
		if batch[0].Value != 333.33 || batch[1].Value != 333.33 || batch[2].Value != 333.34 {
			t.Fatalf("unexpected values: %.2f %.2f %.2f", batch[0].Value, batch[1].Value, batch[2].Value)
		}
	})

	t.Run("batch sums exactly to proposed value", func(t *testing.T) {
		for _, tc := range []struct {
			value float64
			count int
		}{
			{1000, 3},
			{100, 7},
			{999.99, 12},
			{0.05, 2},
			{2500, 1},
		} {
			batch, err := GenerateAgreementInstallments(approvedProposal(tc.value, tc.count, firstDue), now)
			if err != nil {
				t.Fatalf("value=%.2f count=%d: unexpected error: %v", tc.value, tc.count, err)
			}
			sum := 0.0
			for _, ai := range batch {
				sum += ai.Value
			}
			if math.Abs(sum-tc.value) > 1e-9 {
				t.Fatalf("value=%.2f count=%d: batch sums to %.10f", tc.value, tc.count, sum)
			}
		}
	})

	t.Run("due dates advance by calendar month", func(t *testing.T) {
		batch, err := GenerateAgreementInstallments(approvedProposal(600, 3, firstDue), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Time{
			time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		}
		for i, ai := range batch {
			if !ai.DueDate.Equal(want[i]) {
				t.Fatalf("installment %d: expected due %v, got %v", i+1, want[i], ai.DueDate)
			}
		}
	})

	t.Run("month-end due dates clamp", func(t *testing.T) {
		jan31 := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
		batch, err := GenerateAgreementInstallments(approvedProposal(900, 3, jan31), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Time{
			time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		}
		for i, ai := range batch {
			if !ai.DueDate.Equal(want[i]) {
				t.Fatalf("installment %d: expected due %v, got %v", i+1, want[i], ai.DueDate)
			}
		}
	})

	t.Run("sequence and linkage", func(t *testing.T) {
		batch, err := GenerateAgreementInstallments(approvedProposal(500, 5, firstDue), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen := make(map[string]bool, len(batch))
		for i, ai := range batch {
			if ai.ID == "" || seen[ai.ID] {
				t.Fatalf("installment %d: expected unique id, got %q", i+1, ai.ID)
			}
			seen[ai.ID] = true
			if ai.ProposalID != "neg-1" || ai.Sequence != i+1 || ai.TotalCount != 5 {
				t.Fatalf("installment %d: unexpected linkage: %+v", i+1, ai)
			}
			if ai.Status != entities.AgreementInstallmentStatusAberta {
				t.Fatalf("installment %d: expected aberta, got %s", i+1, ai.Status)
			}
		}
	})

	t.Run("invalid count", func(t *testing.T) {
		_, err := GenerateAgreementInstallments(approvedProposal(1000, 0, firstDue), now)
		if !errors.Is(err, ErrInvalidProposal) {
			t.Fatalf("expected ErrInvalidProposal, got %v", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := GenerateAgreementInstallments(approvedProposal(0, 3, firstDue), now)
		if !errors.Is(err, ErrInvalidProposal) {
			t.Fatalf("expected ErrInvalidProposal, got %v", err)
		}
	})

	t.Run("value too small for installment count", func(t *testing.T) {
		// 0.50 over 100 rounds to 0.01 per installment and a negative
		// remainder on the last one.
		for _, tc := range []struct {
			value float64
			count int
		}{
			{0.50, 100},
			{0.01, 2},
		} {
			_, err := GenerateAgreementInstallments(approvedProposal(tc.value, tc.count, firstDue), now)
			if !errors.Is(err, ErrInvalidProposal) {
				t.Fatalf("value=%.2f count=%d: expected ErrInvalidProposal, got %v", tc.value, tc.count, err)
			}
		}
	})
}

func TestAddMonthsClamped(t *testing.T) {
	for _, tc := range []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain month", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), 1, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)},
		{"jan 31 to feb", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"leap february", time.Date(2028, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"year rollover", time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC), 3, time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"zero months", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), 0, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := addMonthsClamped(tc.start, tc.months); !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
