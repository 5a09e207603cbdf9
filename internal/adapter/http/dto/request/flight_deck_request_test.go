package request

import (
	"errors"
	"testing"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

func TestGenerateFlightDeckRequest_ResolveHints(t *testing.T) {
	r := GenerateFlightDeckRequest{}
	if got := r.ResolveHints(); got != nil {
		t.Fatalf("expected nil hints, got %+v", got)
	}

	r2 := GenerateFlightDeckRequest{PaceMonths: 14, RemainingULCredits: 9}
	hints := r2.ResolveHints()
	if hints == nil || hints.PaceMonths != 14 || hints.SessionsActual != 0 || hints.RemainingULCredits != 9 {
		t.Fatalf("unexpected hints: %+v", hints)
	}
}

func TestResolveExam(t *testing.T) {
	exam, replaced, err := resolveExam(nil)
	if err != nil || exam != nil || replaced != nil {
		t.Fatalf("expected nils for missing exam, got %+v %+v %v", exam, replaced, err)
	}

	exam, replaced, err = resolveExam(&ExamOverrideRequest{ExamCode: " CLEP-BIO ", Credits: 3, ExamCost: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exam.Use || exam.ExamCode != "CLEP-BIO" || exam.Credits != 3 || exam.ExamCostCents != 15_000 {
		t.Fatalf("unexpected exam: %+v", exam)
	}
	if replaced != nil {
		t.Fatalf("expected no replaced provider, got %+v", replaced)
	}

	_, replaced, err = resolveExam(&ExamOverrideRequest{ExamCost: 99.99, ReplacedProvider: "study.com", ReplacedPerCreditEst: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced == nil || replaced.Provider != "study.com" || replaced.PerCreditEstCents != 7_000 {
		t.Fatalf("unexpected replaced provider: %+v", replaced)
	}

	if _, _, err := resolveExam(&ExamOverrideRequest{ExamCost: -1}); !errors.Is(err, ErrInvalidExamOverride) {
		t.Fatalf("expected ErrInvalidExamOverride, got %v", err)
	}
	if _, _, err := resolveExam(&ExamOverrideRequest{Credits: -3}); !errors.Is(err, ErrInvalidExamOverride) {
		t.Fatalf("expected ErrInvalidExamOverride, got %v", err)
	}
}

func TestResolvePaymentMethod(t *testing.T) {
	cases := []struct {
		in      string
		want    entities.PaymentMethod
		wantErr bool
	}{
		{"", entities.PaymentMethodCard, false},
		{"card", entities.PaymentMethodCard, false},
		{" ACH ", entities.PaymentMethodACH, false},
		{"Wire", entities.PaymentMethodWire, false},
		{"crypto", "", true},
	}

	for _, tc := range cases {
		got, err := resolvePaymentMethod(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPaymentMethod) {
				t.Fatalf("for %q expected ErrInvalidPaymentMethod, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("for %q expected %q, got %q err=%v", tc.in, tc.want, got, err)
		}
	}
}

func TestDollarsToCents(t *testing.T) {
	cases := map[float64]int64{
		0:      0,
		150:    15_000,
		99.99:  9_999,
		466.67: 46_667,
		0.005:  1,
	}
	for in, want := range cases {
		if got := dollarsToCents(in); got != want {
			t.Fatalf("for %v expected %d, got %d", in, want, got)
		}
	}
}
