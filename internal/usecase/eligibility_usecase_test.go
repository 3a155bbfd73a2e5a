package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cobranca_service/internal/domain/entities"
	mock_interfaces "cobranca_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testRules = entities.NegotiationRules{
	MaxAutoDiscountPercent:  10,
	MaxAutoInstallmentCount: 6,
	MinOverdueDays:          10,
	MinNegotiableValue:      100,
	AllowConcurrent:         false,
}

func overdueInstallment(now time.Time, days int) entities.Installment {
	return entities.Installment{
		ID:        "inst-1",
		StudentID: "stu-1",
		Value:     1000,
		DueDate:   now.AddDate(0, 0, -days),
		Status:    entities.InstallmentStatusVencida,
	}
}

func TestEvaluateEligibility(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("eligible", func(t *testing.T) {
		res := EvaluateEligibility(overdueInstallment(now, 40), "stu-1", 0, testRules, now)
		if !res.Eligible || res.Reason != "" {
			t.Fatalf("expected eligible, got %+v", res)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		res := EvaluateEligibility(overdueInstallment(now, 40), "stu-2", 0, testRules, now)
		if res.Eligible || res.Reason != ReasonNotOwner {
			t.Fatalf("expected %q, got %+v", ReasonNotOwner, res)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		inst := overdueInstallment(now, 40)
		inst.Status = entities.InstallmentStatusPaga
		res := EvaluateEligibility(inst, "stu-1", 0, testRules, now)
		if res.Eligible || res.Reason != ReasonAlreadyPaid {
			t.Fatalf("expected %q, got %+v", ReasonAlreadyPaid, res)
		}
	})

	t.Run("already in negotiation", func(t *testing.T) {
		for _, status := range []entities.InstallmentStatus{entities.InstallmentStatusEmNegociacao, entities.InstallmentStatusEmAcordo} {
			inst := overdueInstallment(now, 40)
			inst.Status = status
			res := EvaluateEligibility(inst, "stu-1", 0, testRules, now)
			if res.Eligible || res.Reason != ReasonAlreadyInNegotiation {
				t.Fatalf("status %s: expected %q, got %+v", status, ReasonAlreadyInNegotiation, res)
			}
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		inst := overdueInstallment(now, 40)
		inst.Status = entities.InstallmentStatusCancelada
		res := EvaluateEligibility(inst, "stu-1", 0, testRules, now)
		if res.Eligible || res.Reason != ReasonCancelled {
			t.Fatalf("expected %q, got %+v", ReasonCancelled, res)
		}
	})

	t.Run("aberta installment is not negotiable even with zero overdue delay", func(t *testing.T) {
		rules := testRules
		rules.MinOverdueDays = 0
		inst := overdueInstallment(now, 0)
		inst.Status = entities.InstallmentStatusAberta
		inst.DueDate = now.AddDate(0, 0, 10)
		res := EvaluateEligibility(inst, "stu-1", 0, rules, now)
		if res.Eligible || res.Reason != ReasonNotOverdue {
			t.Fatalf("expected %q, got %+v", ReasonNotOverdue, res)
		}
	})

	t.Run("concurrent proposal", func(t *testing.T) {
		res := EvaluateEligibility(overdueInstallment(now, 40), "stu-1", 1, testRules, now)
		if res.Eligible || res.Reason != ReasonConcurrentProposal {
			t.Fatalf("expected %q, got %+v", ReasonConcurrentProposal, res)
		}
	})

	t.Run("concurrent allowed by rules", func(t *testing.T) {
		rules := testRules
		rules.AllowConcurrent = true
		res := EvaluateEligibility(overdueInstallment(now, 40), "stu-1", 3, rules, now)
		if !res.Eligible {
			t.Fatalf("expected eligible with AllowConcurrent, got %+v", res)
		}
	})

	t.Run("not overdue long enough", func(t *testing.T) {
		res := EvaluateEligibility(overdueInstallment(now, 5), "stu-1", 0, testRules, now)
		want := fmt.Sprintf("a parcela precisa estar vencida há pelo menos %d dias", testRules.MinOverdueDays)
		if res.Eligible || res.Reason != want {
			t.Fatalf("expected %q, got %+v", want, res)
		}
	})

	t.Run("below minimum value", func(t *testing.T) {
		inst := overdueInstallment(now, 40)
		inst.Value = 50
		res := EvaluateEligibility(inst, "stu-1", 0, testRules, now)
		want := fmt.Sprintf("o valor mínimo para negociação é R$ %.2f", testRules.MinNegotiableValue)
		if res.Eligible || res.Reason != want {
			t.Fatalf("expected %q, got %+v", want, res)
		}
	})

	t.Run("current value wins over face value", func(t *testing.T) {
		inst := overdueInstallment(now, 40)
		inst.Value = 50
		inst.CurrentValue = 150
		res := EvaluateEligibility(inst, "stu-1", 0, testRules, now)
		if !res.Eligible {
			t.Fatalf("expected eligible with current value 150, got %+v", res)
		}
	})

	t.Run("ownership is checked before status", func(t *testing.T) {
		inst := overdueInstallment(now, 40)
		inst.Status = entities.InstallmentStatusPaga
		res := EvaluateEligibility(inst, "stu-2", 0, testRules, now)
		if res.Reason != ReasonNotOwner {
			t.Fatalf("expected ownership to fail first, got %+v", res)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		inst := overdueInstallment(now, 40)
		first := EvaluateEligibility(inst, "stu-1", 0, testRules, now)
		for i := 0; i < 5; i++ {
			if got := EvaluateEligibility(inst, "stu-1", 0, testRules, now); got != first {
				t.Fatalf("expected identical results, got %+v then %+v", first, got)
			}
		}
	})
}

func TestEligibilityUseCase_CheckEligibility(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	newUC := func(t *testing.T) (*EligibilityUseCase, *mock_interfaces.MockIInstallmentRepository, *mock_interfaces.MockINegotiationRepository) {
		ctrl := gomock.NewController(t)
		instRepo := mock_interfaces.NewMockIInstallmentRepository(ctrl)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		rules := mock_interfaces.NewMockIRulesProvider(ctrl)
		rules.EXPECT().Rules().Return(testRules).AnyTimes()

		uc := NewEligibilityUseCase(instRepo, negRepo, rules)
		uc.now = func() time.Time { return now }
		return uc, instRepo, negRepo
	}

	t.Run("invalid installment id", func(t *testing.T) {
		uc := NewEligibilityUseCase(nil, nil, nil)
		_, err := uc.CheckEligibility(context.Background(), "  ", "stu-1")
		if !errors.Is(err, ErrInvalidInstallmentID) {
			t.Fatalf("expected ErrInvalidInstallmentID, got %v", err)
		}
	})

	t.Run("invalid student id", func(t *testing.T) {
		uc := NewEligibilityUseCase(nil, nil, nil)
		_, err := uc.CheckEligibility(context.Background(), "inst-1", "")
		if !errors.Is(err, ErrInvalidStudentID) {
			t.Fatalf("expected ErrInvalidStudentID, got %v", err)
		}
	})

	t.Run("installment not found", func(t *testing.T) {
		uc, instRepo, _ := newUC(t)
		instRepo.EXPECT().GetByID(gomock.Any(), "inst-404").Return(entities.Installment{}, nil)

		_, err := uc.CheckEligibility(context.Background(), "inst-404", "stu-1")
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, instRepo, _ := newUC(t)
		instRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.Installment{}, errors.New("db"))

		_, err := uc.CheckEligibility(context.Background(), "inst-1", "stu-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("eligible installment", func(t *testing.T) {
		uc, instRepo, negRepo := newUC(t)
		instRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)
		negRepo.EXPECT().ListByStudent(gomock.Any(), "stu-1", entities.NegotiationStatusPendente).Return(nil, nil)
		negRepo.EXPECT().ListByStudent(gomock.Any(), "stu-1", entities.NegotiationStatusAprovada).Return(nil, nil)

		res, err := uc.CheckEligibility(context.Background(), "inst-1", "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Eligible {
			t.Fatalf("expected eligible, got %+v", res)
		}
	})

	t.Run("active proposal blocks", func(t *testing.T) {
		uc, instRepo, negRepo := newUC(t)
		instRepo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(overdueInstallment(now, 40), nil)
		negRepo.EXPECT().ListByStudent(gomock.Any(), "stu-1", entities.NegotiationStatusPendente).
			Return([]entities.NegotiationProposal{{ID: "neg-1"}}, nil)
		negRepo.EXPECT().ListByStudent(gomock.Any(), "stu-1", entities.NegotiationStatusAprovada).Return(nil, nil)

		res, err := uc.CheckEligibility(context.Background(), "inst-1", "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Eligible || res.Reason != ReasonConcurrentProposal {
			t.Fatalf("expected %q, got %+v", ReasonConcurrentProposal, res)
		}
	})
}
