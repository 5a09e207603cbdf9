package request

import "encoding/json"

// PlanPaymentCreateRequest is the payload for the upfront-fee payment route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type PlanPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
