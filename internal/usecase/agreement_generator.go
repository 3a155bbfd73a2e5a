package usecase

import (
	"errors"
	"fmt"
	"time"

	"cobranca_service/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProposalNotApproved = errors.New("proposal not approved")

// GenerateAgreementInstallments materializes the payment schedule of an
// approved proposal: Count installments of ProposedValue/Count each (rounded
// to cents), due one calendar month apart starting at FirstDueDate. The last
// installment absorbs the rounding remainder so the batch sums exactly to
// ProposedValue.
//
// Callers persist the returned batch atomically; this function never writes.
func GenerateAgreementInstallments(p entities.NegotiationProposal, now time.Time) ([]entities.AgreementInstallment, error) {
	if p.Status != entities.NegotiationStatusAprovada {
		return nil, ErrProposalNotApproved
	}
	if p.Count < 1 {
		return nil, fmt.Errorf("%w: installment count must be >= 1", ErrInvalidProposal)
	}
	if p.ProposedValue <= 0 {
		return nil, fmt.Errorf("%w: proposed value must be positive", ErrInvalidProposal)
	}

	total := decimal.NewFromFloat(p.ProposedValue).Round(2)
	per := total.Div(decimal.NewFromInt(int64(p.Count))).Round(2)
	last := total.Sub(per.Mul(decimal.NewFromInt(int64(p.Count - 1))))

	// Splitting a tiny value over many installments rounds per up to 0.01 and
	// drives the remainder negative (0.50 over 100 leaves last = -0.49).
	if !per.IsPositive() || !last.IsPositive() {
		return nil, fmt.Errorf("%w: proposed value of %s does not split into %d positive installments", ErrInvalidProposal, total.StringFixed(2), p.Count)
	}

	batch := make([]entities.AgreementInstallment, 0, p.Count)
	for seq := 1; seq <= p.Count; seq++ {
		value := per
		if seq == p.Count {
			value = last
		}
		batch = append(batch, entities.AgreementInstallment{
			ID:         uuid.NewString(),
			ProposalID: p.ID,
			Sequence:   seq,
			TotalCount: p.Count,
			Value:      value.InexactFloat64(),
			DueDate:    addMonthsClamped(p.FirstDueDate, seq-1),
			Status:     entities.AgreementInstallmentStatusAberta,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return batch, nil
}

// addMonthsClamped advances t by whole calendar months, clamping the day to
// the target month's last day. time.AddDate alone would normalize Jan 31 + 1
// month into Mar 2/3; billing cadence requires the last valid day of February
// instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	h, min, s := t.Clock()

	anchor := time.Date(y, m+time.Month(months), 1, h, min, s, t.Nanosecond(), t.Location())
	if last := daysInMonth(anchor.Year(), anchor.Month()); d > last {
		d = last
	}
	return time.Date(anchor.Year(), anchor.Month(), d, h, min, s, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
