package handlers

import (
	"errors"
	"net/http"

	request "github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/dto/request"
	response "github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/dto/response"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// PlanEstimateHandler handles the standalone payment-plan what-if endpoint.

type PlanEstimateHandler struct {
	usecase usecase.IPlanEstimateUseCase
}

func NewPlanEstimateHandler(uc usecase.IPlanEstimateUseCase) *PlanEstimateHandler {
	return &PlanEstimateHandler{usecase: uc}
}

func (h *PlanEstimateHandler) EstimatePlan(c *gin.Context) {
	var payload request.PlanEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	phase1, err := payload.ResolvePhase1CostCents()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	exam, replaced, err := payload.ResolveExam()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	method, err := payload.ResolvePaymentMethod()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.Estimate(c.Request.Context(), usecase.PlanEstimateInput{
		PaceMonths:      payload.PaceMonths,
		SessionsActual:  payload.SessionsActual,
		Phase1CostCents: phase1,
		Exam:            exam,
		Replaced:        replaced,
		PaymentMethod:   method,
	})
	if err != nil {
		appErr := mapPlanEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentPlan(plan))
}

func mapPlanEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaceMonths), errors.Is(err, usecase.ErrInvalidSessions), errors.Is(err, usecase.ErrInvalidPhase1Cost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinancialRulesNotConfigured):
		return pkg.NewDomainErrorSimple("SETUP_REQUIRED", "Financial rules are not configured", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
