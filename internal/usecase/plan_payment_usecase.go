package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/domain/entities"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/platform/logger"
	"github.com/JoFly70/lumiere-student-portal-v2-sub001/internal/usecase/interfaces"
)

var (
	ErrPlanPaymentNotFound            = errors.New("plan payment not found")
	ErrInvalidPaymentPlanID           = errors.New("invalid plan_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPlanHasNoUpfrontDue            = errors.New("plan has no upfront amount due")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPlanPaymentUseCase encapsulates the "collect the upfront fee" behavior.
//
// The amount charged is never taken from the request; the persisted plan
// snapshot's upfront figure is the source of truth.

type IPlanPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, planID string, mpPayload json.RawMessage) (entities.PlanPayment, error)
	GetByID(ctx context.Context, id string) (entities.PlanPayment, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error)
}

type PlanPaymentUseCase struct {
	repo    interfaces.IPlanPaymentRepository
	plans   interfaces.IPlanFinancialsRepository
	gateway interfaces.IPaymentGateway
	log     *logger.Logger
}

var _ IPlanPaymentUseCase = (*PlanPaymentUseCase)(nil)

func NewPlanPaymentUseCase(repo interfaces.IPlanPaymentRepository, plans interfaces.IPlanFinancialsRepository, gateway interfaces.IPaymentGateway, log *logger.Logger) *PlanPaymentUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &PlanPaymentUseCase{repo: repo, plans: plans, gateway: gateway, log: log}
}

func (u *PlanPaymentUseCase) CreateAndApprove(ctx context.Context, planID string, mpPayload json.RawMessage) (entities.PlanPayment, error) {
	mockMode := isPaymentGatewayMockEnabled()
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.PlanPayment{}, ErrInvalidPaymentPlanID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			u.log.Warn("payment payload rejected", "plan_id", planID)
			return entities.PlanPayment{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		return entities.PlanPayment{}, errors.New("payment gateway not configured")
	}
	if u.plans == nil {
		return entities.PlanPayment{}, errors.New("plan repository not configured")
	}

	plan, err := u.plans.GetByPlanID(ctx, planID)
	if err != nil {
		u.log.Error("plan lookup failed", "plan_id", planID, "error", err)
		return entities.PlanPayment{}, err
	}
	if plan.PlanID == "" {
		return entities.PlanPayment{}, ErrPlanNotFound
	}
	if plan.UpfrontDue <= 0 {
		return entities.PlanPayment{}, ErrPlanHasNoUpfrontDue
	}

	// Ensure basic linkage with the plan when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.PlanPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			return entities.PlanPayment{}, ErrInvalidMPPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = planID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Plan %s upfront fee", planID)
		}

		// The source of truth for amount is the plan snapshot in DB.
		reqMap["transaction_amount"] = plan.UpfrontDue
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		u.log.Info("payment gateway mock mode; skipping external call", "plan_id", planID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = planID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = plan.UpfrontDue
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.PlanPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			u.log.Error("payment gateway call failed", "plan_id", planID, "error", err)
			if isGatewayCustomerNotFound(err) {
				return entities.PlanPayment{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.PlanPayment{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.PlanPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.PlanPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.PlanPayment{}, err
		}
	}
	u.log.Info("payment gateway success", "plan_id", planID, "provider_payment_id", providerPaymentID, "provider_status", providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response unmarshal failed", "plan_id", planID, "error", err)
	}

	p := entities.PlanPayment{
		ID:           providerPaymentID,
		PlanID:       planID,
		Date:         time.Now().UTC(),
		Amount:       plan.UpfrontDue,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("payment create failed", "plan_id", planID, "payment_id", p.ID, "error", err)
		return entities.PlanPayment{}, err
	}
	return created, nil
}

func (u *PlanPaymentUseCase) GetByID(ctx context.Context, id string) (entities.PlanPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PlanPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PlanPayment{}, err
	}
	if p.ID == "" {
		return entities.PlanPayment{}, ErrPlanPaymentNotFound
	}
	return p, nil
}

func (u *PlanPaymentUseCase) ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, ErrInvalidPaymentPlanID
	}
	return u.repo.ListByPlanID(ctx, planID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
