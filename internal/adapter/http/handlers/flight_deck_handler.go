package handlers

import (
	"errors"
	"io"
	"net/http"

	request "github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/dto/request"
	response "github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/dto/response"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFlightDeckPayload = pkg.NewDomainErrorSimple("INVALID_FLIGHT_DECK_INPUT", "Invalid flight-deck payload", http.StatusBadRequest)

// FlightDeckHandler handles HTTP requests for the dashboard projection.

type FlightDeckHandler struct {
	usecase usecase.IFlightDeckUseCase
}

func NewFlightDeckHandler(uc usecase.IFlightDeckUseCase) *FlightDeckHandler {
	return &FlightDeckHandler{usecase: uc}
}

// GenerateFlightDeck runs the projection pipeline for a student and persists
// the resulting plan snapshot. The body is optional; an empty body is a plain
// regeneration with stored data.
func (h *FlightDeckHandler) GenerateFlightDeck(c *gin.Context) {
	studentID := c.Param("student_id")

	var payload request.GenerateFlightDeckRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidFlightDeckPayload.HTTPStatus, errInvalidFlightDeckPayload.ToHTTPError())
		return
	}

	exam, replaced, err := payload.ResolveExam()
	if err != nil {
		c.JSON(errInvalidFlightDeckPayload.HTTPStatus, errInvalidFlightDeckPayload.ToHTTPError())
		return
	}
	method, err := payload.ResolvePaymentMethod()
	if err != nil {
		c.JSON(errInvalidFlightDeckPayload.HTTPStatus, errInvalidFlightDeckPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Generate(c.Request.Context(), studentID, usecase.GenerateOptions{
		PlanID:        payload.PlanID,
		Hints:         payload.ResolveHints(),
		Exam:          exam,
		Replaced:      replaced,
		PaymentMethod: method,
	})
	if err != nil {
		appErr := mapFlightDeckError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFlightDeck(res))
}

// GetPlan returns the last persisted snapshot for a plan.
func (h *FlightDeckHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.GetPlan(c.Request.Context(), c.Param("plan_id"))
	if err != nil {
		appErr := mapFlightDeckError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlanFinancials(plan))
}

func mapFlightDeckError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStudentID), errors.Is(err, usecase.ErrInvalidPlanID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinancialRulesNotConfigured):
		return pkg.NewDomainErrorSimple("SETUP_REQUIRED", "Financial rules are not configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
