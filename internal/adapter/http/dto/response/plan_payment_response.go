package response

import (
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
)

type PlanPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	PlanID      string    `json:"plan_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPlanPayment(p entities.PlanPayment) PlanPaymentResponse {
	return PlanPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		PlanID:       p.PlanID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
