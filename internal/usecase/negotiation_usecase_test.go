package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
	mock_interfaces "cobranca_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type negotiationMocks struct {
	installments *mock_interfaces.MockIInstallmentRepository
	negotiations *mock_interfaces.MockINegotiationRepository
	agreements   *mock_interfaces.MockIAgreementInstallmentRepository
	rules        *mock_interfaces.MockIRulesProvider
}

func newNegotiationUC(t *testing.T, now time.Time) (*NegotiationUseCase, negotiationMocks) {
	ctrl := gomock.NewController(t)
	m := negotiationMocks{
		installments: mock_interfaces.NewMockIInstallmentRepository(ctrl),
		negotiations: mock_interfaces.NewMockINegotiationRepository(ctrl),
		agreements:   mock_interfaces.NewMockIAgreementInstallmentRepository(ctrl),
		rules:        mock_interfaces.NewMockIRulesProvider(ctrl),
	}
	m.rules.EXPECT().Rules().Return(testRules).AnyTimes()

	uc := NewNegotiationUseCase(m.installments, m.negotiations, m.agreements, m.rules)
	uc.now = func() time.Time { return now }
	return uc, m
}

func expectNoActiveProposals(m negotiationMocks, studentID string) {
	m.negotiations.EXPECT().ListByStudent(gomock.Any(), studentID, entities.NegotiationStatusPendente).Return(nil, nil)
	m.negotiations.EXPECT().ListByStudent(gomock.Any(), studentID, entities.NegotiationStatusAprovada).Return(nil, nil)
}

func validDraft(now time.Time) ProposalDraft {
	return ProposalDraft{
		StudentID:      "stu-1",
		InstallmentIDs: []string{"inst-1"},
		ProposedValue:  950,
		Count:          3,
		FirstDueDate:   now.AddDate(0, 1, 0),
		PaymentMethod:  "pix",
	}
}

func TestNegotiationUseCase_Submit(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("invalid drafts", func(t *testing.T) {
		uc, _ := newNegotiationUC(t, now)

		for name, mutate := range map[string]func(*ProposalDraft){
			"empty student":          func(d *ProposalDraft) { d.StudentID = " " },
			"no installments":        func(d *ProposalDraft) { d.InstallmentIDs = nil },
			"blank installment id":   func(d *ProposalDraft) { d.InstallmentIDs = []string{""} },
			"duplicated installment": func(d *ProposalDraft) { d.InstallmentIDs = []string{"inst-1", "inst-1"} },
			"zero value":             func(d *ProposalDraft) { d.ProposedValue = 0 },
			"zero count":             func(d *ProposalDraft) { d.Count = 0 },
			"zero first due date":    func(d *ProposalDraft) { d.FirstDueDate = time.Time{} },
		} {
			draft := validDraft(now)
			mutate(&draft)
			if _, err := uc.Submit(context.Background(), draft); err == nil {
				t.Fatalf("%s: expected error", name)
			}
		}
	})

	t.Run("ineligible installment aborts with reason", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")

		paid := overdueInstallment(now, 40)
		paid.Status = entities.InstallmentStatusPaga
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(paid, nil)

		_, err := uc.Submit(context.Background(), validDraft(now))
		if !errors.Is(err, ErrIneligibleInstallment) {
			t.Fatalf("expected ErrIneligibleInstallment, got %v", err)
		}
		if !strings.Contains(err.Error(), ReasonAlreadyPaid) {
			t.Fatalf("expected reason %q in error, got %v", ReasonAlreadyPaid, err)
		}
	})

	t.Run("first ineligible aborts, later installments untouched", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")

		other := overdueInstallment(now, 40)
		other.StudentID = "stu-2"
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(other, nil)
		// inst-2 must never be loaded.

		draft := validDraft(now)
		draft.InstallmentIDs = []string{"inst-1", "inst-2"}
		_, err := uc.Submit(context.Background(), draft)
		if !errors.Is(err, ErrIneligibleInstallment) {
			t.Fatalf("expected ErrIneligibleInstallment, got %v", err)
		}
	})

	t.Run("proposed value above original", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)

		draft := validDraft(now)
		draft.ProposedValue = 1500
		_, err := uc.Submit(context.Background(), draft)
		if !errors.Is(err, ErrInvalidProposal) {
			t.Fatalf("expected ErrInvalidProposal, got %v", err)
		}
	})

	t.Run("auto-approved within thresholds", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)

		m.negotiations.EXPECT().
			ApproveAndMaterialize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, p entities.NegotiationProposal, batch []entities.AgreementInstallment, audit []entities.NegotiationAuditEntry, _ bool) error {
				if p.Status != entities.NegotiationStatusAprovada || p.DecidedBy != entities.DecidedBySystem {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if len(batch) != 3 {
					t.Fatalf("expected 3 agreement installments, got %d", len(batch))
				}
				if len(audit) != 1 || audit[0].InstallmentID != "inst-1" {
					t.Fatalf("unexpected audit: %+v", audit)
				}
				return nil
			})

		// 950 over 1000 is a 5% discount, under the 10% threshold.
		created, err := uc.Submit(context.Background(), validDraft(now))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.NegotiationStatusAprovada {
			t.Fatalf("expected aprovada, got %s", created.Status)
		}
		if created.DiscountPct < 4.99 || created.DiscountPct > 5.01 {
			t.Fatalf("expected ~5%% discount, got %.4f", created.DiscountPct)
		}
		if created.Feedback != feedbackApproved || created.Rationale != autoApprovalRationale {
			t.Fatalf("unexpected decision texts: %+v", created)
		}
	})

	t.Run("above discount threshold goes to review", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)

		m.negotiations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error) {
				if p.Status != entities.NegotiationStatusPendente || p.DecidedBy != "" {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				return p, nil
			})

		// 850 over 1000 is a 15% discount, above the 10% threshold.
		draft := validDraft(now)
		draft.ProposedValue = 850
		created, err := uc.Submit(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.NegotiationStatusPendente {
			t.Fatalf("expected pendente, got %s", created.Status)
		}
		if created.Feedback != feedbackUnderReview {
			t.Fatalf("unexpected feedback: %q", created.Feedback)
		}
	})

	t.Run("above count threshold goes to review", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)
		m.negotiations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error) { return p, nil })

		draft := validDraft(now)
		draft.Count = 12
		created, err := uc.Submit(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.NegotiationStatusPendente {
			t.Fatalf("expected pendente, got %s", created.Status)
		}
	})

	t.Run("approval race maps to concurrent negotiation", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		expectNoActiveProposals(m, "stu-1")
		m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)
		m.negotiations.EXPECT().
			ApproveAndMaterialize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(interfaces.ErrNegotiationConflict)

		_, err := uc.Submit(context.Background(), validDraft(now))
		if !errors.Is(err, ErrConcurrentNegotiation) {
			t.Fatalf("expected ErrConcurrentNegotiation, got %v", err)
		}
	})
}

func TestNegotiationUseCase_ManualDecisions(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	pendingProposal := func() entities.NegotiationProposal {
		return entities.NegotiationProposal{
			ID:             "neg-1",
			StudentID:      "stu-1",
			InstallmentIDs: []string{"inst-1"},
			OriginalValue:  1000,
			ProposedValue:  850,
			Count:          3,
			FirstDueDate:   now.AddDate(0, 1, 0),
			Status:         entities.NegotiationStatusPendente,
		}
	}

	t.Run("approve pending", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-1").Return(pendingProposal(), nil)
		m.negotiations.EXPECT().
			ApproveAndMaterialize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, p entities.NegotiationProposal, batch []entities.AgreementInstallment, _ []entities.NegotiationAuditEntry, _ bool) error {
				if p.Status != entities.NegotiationStatusAprovada || p.DecidedBy != "rev-1" {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if len(batch) != 3 {
					t.Fatalf("expected 3 agreement installments, got %d", len(batch))
				}
				return nil
			})

		p, err := uc.ApproveManually(context.Background(), "neg-1", "rev-1", "desconto autorizado pela coordenação")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.NegotiationStatusAprovada || p.Feedback != feedbackApproved {
			t.Fatalf("unexpected proposal: %+v", p)
		}
		if !p.DecidedAt.Equal(now) {
			t.Fatalf("expected decided_at %v, got %v", now, p.DecidedAt)
		}
	})

	t.Run("reject pending", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-1").Return(pendingProposal(), nil)
		m.negotiations.EXPECT().UpdateDecision(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.NegotiationProposal) (entities.NegotiationProposal, error) {
				if p.Status != entities.NegotiationStatusRejeitada || p.Feedback != feedbackRejected {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				return p, nil
			})

		p, err := uc.RejectManually(context.Background(), "neg-1", "rev-1", "desconto acima da alçada")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.NegotiationStatusRejeitada {
			t.Fatalf("expected rejeitada, got %s", p.Status)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		decided := pendingProposal()
		decided.Status = entities.NegotiationStatusAprovada
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-1").Return(decided, nil)

		_, err := uc.ApproveManually(context.Background(), "neg-1", "rev-1", "")
		if !errors.Is(err, ErrProposalAlreadyDecided) {
			t.Fatalf("expected ErrProposalAlreadyDecided, got %v", err)
		}
	})

	t.Run("decision race on reject", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-1").Return(pendingProposal(), nil)
		m.negotiations.EXPECT().UpdateDecision(gomock.Any(), gomock.Any()).Return(entities.NegotiationProposal{}, interfaces.ErrNegotiationConflict)

		_, err := uc.RejectManually(context.Background(), "neg-1", "rev-1", "")
		if !errors.Is(err, ErrProposalAlreadyDecided) {
			t.Fatalf("expected ErrProposalAlreadyDecided, got %v", err)
		}
	})

	t.Run("missing reviewer", func(t *testing.T) {
		uc, _ := newNegotiationUC(t, now)
		_, err := uc.ApproveManually(context.Background(), "neg-1", "  ", "")
		if !errors.Is(err, ErrInvalidReviewerID) {
			t.Fatalf("expected ErrInvalidReviewerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-404").Return(entities.NegotiationProposal{}, nil)

		_, err := uc.RejectManually(context.Background(), "neg-404", "rev-1", "")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestNegotiationUseCase_ListAgreementInstallments(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-1").
			Return(entities.NegotiationProposal{ID: "neg-1", Status: entities.NegotiationStatusAprovada}, nil)
		m.agreements.EXPECT().ListByProposal(gomock.Any(), "neg-1").
			Return([]entities.AgreementInstallment{{ID: "ai-1"}, {ID: "ai-2"}}, nil)

		batch, err := uc.ListAgreementInstallments(context.Background(), "neg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(batch) != 2 {
			t.Fatalf("expected 2 installments, got %d", len(batch))
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		uc, m := newNegotiationUC(t, now)
		m.negotiations.EXPECT().GetByID(gomock.Any(), "neg-404").Return(entities.NegotiationProposal{}, nil)

		_, err := uc.ListAgreementInstallments(context.Background(), "neg-404")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}
