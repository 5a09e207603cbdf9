package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the upfront-fee payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PlanPayment records the upfront Lumiere-fee payment for a plan.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (plan_id-index): plan_id
//
// Mercado Pago payload:
//   - MPPayloadRaw keeps the original provider response (JSON) for
//     traceability; MPPayload is the parsed form for querying/debugging.
type PlanPayment struct {
	ID     string        `json:"id"`
	PlanID string        `json:"plan_id"`
	Date   time.Time     `json:"date"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
