package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/handlers/mocks"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/projection"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFlightDeckHandler_GenerateFlightDeck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.POST("/v1/students/:student_id/flight-deck", h.GenerateFlightDeck)

		req := httptest.NewRequest(http.MethodPost, "/v1/students/stu-1/flight-deck", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.POST("/v1/students/:student_id/flight-deck", h.GenerateFlightDeck)

		req := httptest.NewRequest(http.MethodPost, "/v1/students/stu-1/flight-deck", bytes.NewBufferString(`{"payment_method":"crypto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body regenerates with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.POST("/v1/students/:student_id/flight-deck", h.GenerateFlightDeck)

		uc.EXPECT().Generate(gomock.Any(), "stu-1", gomock.Any()).DoAndReturn(
			func(_ any, studentID string, opts usecase.GenerateOptions) (projection.FlightDeckResult, error) {
				if opts.Hints != nil || opts.Exam != nil {
					t.Fatalf("expected empty options, got %+v", opts)
				}
				if opts.PaymentMethod != entities.PaymentMethodCard {
					t.Fatalf("expected card default, got %q", opts.PaymentMethod)
				}
				return projection.FlightDeckResult{StudentID: studentID, PlanID: "plan-1", GeneratedAt: time.Now().UTC()}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/students/stu-1/flight-deck", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["plan_id"] != "plan-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("forwards hints and exam override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.POST("/v1/students/:student_id/flight-deck", h.GenerateFlightDeck)

		uc.EXPECT().Generate(gomock.Any(), "stu-1", gomock.Any()).DoAndReturn(
			func(_ any, studentID string, opts usecase.GenerateOptions) (projection.FlightDeckResult, error) {
				if opts.Hints == nil || opts.Hints.PaceMonths != 10 {
					t.Fatalf("expected pace hint 10, got %+v", opts.Hints)
				}
				if opts.Exam == nil || opts.Exam.ExamCostCents != 15000 {
					t.Fatalf("expected exam cost 15000 cents, got %+v", opts.Exam)
				}
				return projection.FlightDeckResult{StudentID: studentID, PlanID: "plan-2"}, nil
			})

		body := `{"pace_months":10,"exam":{"exam_code":"CLEP-BIO","credits":3,"exam_cost":150}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/students/stu-1/flight-deck", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rules not configured maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.POST("/v1/students/:student_id/flight-deck", h.GenerateFlightDeck)

		uc.EXPECT().Generate(gomock.Any(), "stu-1", gomock.Any()).Return(projection.FlightDeckResult{}, usecase.ErrFinancialRulesNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/students/stu-1/flight-deck", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestFlightDeckHandler_GetPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.GET("/v1/plans/:plan_id", h.GetPlan)

		uc.EXPECT().GetPlan(gomock.Any(), "plan-404").Return(entities.PlanFinancials{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/plan-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFlightDeckUseCase(ctrl)
		h := NewFlightDeckHandler(uc)

		r := gin.New()
		r.GET("/v1/plans/:plan_id", h.GetPlan)

		uc.EXPECT().GetPlan(gomock.Any(), "plan-1").Return(entities.PlanFinancials{
			PlanID:         "plan-1",
			StudentID:      "stu-1",
			PaceMonths:     12,
			ProjectedTotal: 12600,
			UpfrontDue:     7000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/plan-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["plan_id"] != "plan-1" || body["upfront_due"] != 7000.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapFlightDeckError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidStudentID, http.StatusBadRequest},
		{usecase.ErrInvalidPlanID, http.StatusBadRequest},
		{usecase.ErrFinancialRulesNotConfigured, http.StatusConflict},
		{usecase.ErrPlanNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapFlightDeckError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
