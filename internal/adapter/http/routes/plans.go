package routes

import (
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStudents = "/students"
	PathPlans    = "/plans"
)

func addPlanRoutes(rg *gin.RouterGroup, flightDeckHandler *handlers.FlightDeckHandler, estimateHandler *handlers.PlanEstimateHandler, paymentHandler *handlers.PlanPaymentHandler) {
	students := rg.Group(PathStudents)
	{
		students.POST("/:student_id/flight-deck", flightDeckHandler.GenerateFlightDeck)
	}

	plans := rg.Group(PathPlans)
	{
		plans.POST("/estimate", estimateHandler.EstimatePlan)
		plans.GET("/:plan_id", flightDeckHandler.GetPlan)
		plans.POST("/:plan_id/payments", paymentHandler.CreatePaymentByPlanID)
		plans.GET("/:plan_id/payments", paymentHandler.GetPaymentByPlanID)
	}
}
