package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_service/internal/adapter/http/handlers/mocks"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/infrastructure/payments"
	"cobranca_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newChargeRouter(t *testing.T) (*gin.Engine, *mocks.MockIChargeUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChargeUseCase(ctrl)
	h := NewChargeHandler(uc)

	r := gin.New()
	r.POST("/v1/charges", h.CreateCharge)
	r.GET("/v1/charges/:charge_id", h.GetCharge)
	r.DELETE("/v1/charges/:charge_id", h.CancelCharge)
	r.POST("/v1/charges/webhook", h.PaymentWebhook)
	return r, uc
}

const chargePayerJSON = `"payer":{"name":"Maria","cpf_cnpj":"12345678900","email":"maria@example.com"}`

func TestChargeHandler_CreateCharge(t *testing.T) {
	t.Run("installment charge", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().CreateForInstallment(gomock.Any(), "inst-1", "lytex", entities.ChargePayer{
			Name: "Maria", CPFCNPJ: "12345678900", Email: "maria@example.com",
		}).Return(entities.GatewayCharge{ID: "lyt_abc", Status: entities.ChargeStatusPending}, nil)

		payload := `{"installment_id":"inst-1","gateway":"lytex",` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("agreement installment charge", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().CreateForAgreementInstallment(gomock.Any(), "ai-1", "", gomock.Any()).
			Return(entities.GatewayCharge{ID: "ifp_xyz", Status: entities.ChargeStatusPending}, nil)

		payload := `{"agreement_installment_id":"ai-1",` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("both targets rejected", func(t *testing.T) {
		r, _ := newChargeRouter(t)
		payload := `{"installment_id":"inst-1","agreement_installment_id":"ai-1",` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("neither target rejected", func(t *testing.T) {
		r, _ := newChargeRouter(t)
		payload := `{` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payer rejected", func(t *testing.T) {
		r, _ := newChargeRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{"installment_id":"inst-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().CreateForInstallment(gomock.Any(), "inst-1", "paypal", gomock.Any()).
			Return(entities.GatewayCharge{}, payments.ErrUnconfiguredGateway)

		payload := `{"installment_id":"inst-1","gateway":"paypal",` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable is 502", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().CreateForInstallment(gomock.Any(), "inst-1", "", gomock.Any()).
			Return(entities.GatewayCharge{}, payments.ErrGatewayUnavailable)

		payload := `{"installment_id":"inst-1",` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("not payable is 409", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().CreateForInstallment(gomock.Any(), "inst-1", "", gomock.Any()).
			Return(entities.GatewayCharge{}, usecase.ErrInstallmentNotPayable)

		payload := `{"installment_id":"inst-1",` + chargePayerJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestChargeHandler_GetCharge(t *testing.T) {
	r, uc := newChargeRouter(t)
	uc.EXPECT().GetCharge(gomock.Any(), "lyt_abc", "lytex").
		Return(entities.GatewayCharge{ID: "lyt_abc", Status: entities.ChargeStatusPaid}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charges/lyt_abc?gateway=lytex", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if body["id"] != "lyt_abc" || body["status"] != "paid" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChargeHandler_CancelCharge(t *testing.T) {
	r, uc := newChargeRouter(t)
	uc.EXPECT().CancelCharge(gomock.Any(), "lyt_abc", "").
		Return(entities.ChargeCancelResult{Success: true}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/charges/lyt_abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChargeHandler_PaymentWebhook(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "lyt_abc", "lytex").
			Return(entities.GatewayCharge{ID: "lyt_abc", Status: entities.ChargeStatusPaid}, nil)

		payload := `{"charge_id":"lyt_abc","gateway":"lytex","status":"paid"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges/webhook", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing charge id", func(t *testing.T) {
		r, _ := newChargeRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/charges/webhook", bytes.NewBufferString(`{"gateway":"lytex"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider outage is 502 not failure", func(t *testing.T) {
		r, uc := newChargeRouter(t)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "lyt_abc", "").
			Return(entities.GatewayCharge{}, payments.ErrGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/webhook", bytes.NewBufferString(`{"charge_id":"lyt_abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
