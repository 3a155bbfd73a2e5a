package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"
)

const defaultInfinityPayBaseURL = "https://api.infinitypay.io"

// InfinityPayGateway talks to the InfinityPay charges API. Authentication is
// a static API key, so there is no token lifecycle here.

type InfinityPayGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IPaymentGateway = (*InfinityPayGateway)(nil)

func NewInfinityPayGateway(baseURL, apiKey string) *InfinityPayGateway {
	return &InfinityPayGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

// NewInfinityPayGatewayFromEnv builds the adapter from INFINITYPAY_* env
// vars; returns nil when the API key is absent.
func NewInfinityPayGatewayFromEnv() *InfinityPayGateway {
	apiKey := os.Getenv("INFINITYPAY_API_KEY")
	if apiKey == "" {
		log.Printf("[gateway][infinitypay] api key not set; adapter disabled")
		return nil
	}

	base := os.Getenv("INFINITYPAY_BASE_URL")
	if base == "" {
		base = defaultInfinityPayBaseURL
	}
	return NewInfinityPayGateway(base, apiKey)
}

func (g *InfinityPayGateway) Provider() entities.GatewayProvider {
	return entities.ProviderInfinityPay
}

type infinityPayChargeRequest struct {
	Amount          int64               `json:"amount"`
	Description     string              `json:"description"`
	OrderNSU        string              `json:"order_nsu"`
	DueDate         string              `json:"due_date"`
	Customer        infinityPayCustomer `json:"customer"`
	PaymentMethods  []string            `json:"payment_methods,omitempty"`
	MaxInstallments int                 `json:"max_installments,omitempty"`
	CallbackURL     string              `json:"callback_url,omitempty"`
}

type infinityPayCustomer struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type infinityPayChargeResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	OrderNSU   string `json:"order_nsu"`
	PaymentURL string `json:"payment_url"`
	Pix        struct {
		EMV    string `json:"emv"`
		QRCode string `json:"qr_code"`
	} `json:"pix"`
	Boleto struct {
		DigitableLine string `json:"digitable_line"`
		PDFURL        string `json:"pdf_url"`
	} `json:"boleto"`
}

// CreateCharge creates an InfinityPay charge. order_nsu carries the caller
// reference unchanged on every attempt; the provider deduplicates on it.
func (g *InfinityPayGateway) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.GatewayCharge, error) {
	body := infinityPayChargeRequest{
		Amount:      toCents(req.Value),
		Description: req.Description,
		OrderNSU:    req.Reference,
		DueDate:     req.DueDate.Format("2006-01-02"),
		Customer: infinityPayCustomer{
			Name:     req.Payer.Name,
			Document: req.Payer.CPFCNPJ,
			Email:    req.Payer.Email,
			Phone:    req.Payer.Phone,
		},
		PaymentMethods:  req.PaymentMethods,
		MaxInstallments: req.MaxInstallments,
		CallbackURL:     req.CallbackURL,
	}

	var resp infinityPayChargeResponse
	err := doJSON(ctx, g.client, "infinitypay", http.MethodPost, g.baseURL+"/v2/charges", g.headers(), body, &resp)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	log.Printf("[gateway][infinitypay] charge created charge_id=%s reference=%s status=%s", resp.ID, req.Reference, resp.Status)
	return g.toCharge(resp), nil
}

func (g *InfinityPayGateway) GetCharge(ctx context.Context, id string) (entities.GatewayCharge, error) {
	var resp infinityPayChargeResponse
	url := fmt.Sprintf("%s/v2/charges/%s", g.baseURL, strings.TrimPrefix(id, infinityPayChargePrefix))
	if err := doJSON(ctx, g.client, "infinitypay", http.MethodGet, url, g.headers(), nil, &resp); err != nil {
		return entities.GatewayCharge{}, err
	}
	return g.toCharge(resp), nil
}

func (g *InfinityPayGateway) CancelCharge(ctx context.Context, id string) (entities.ChargeCancelResult, error) {
	url := fmt.Sprintf("%s/v2/charges/%s/cancel", g.baseURL, strings.TrimPrefix(id, infinityPayChargePrefix))
	if err := doJSON(ctx, g.client, "infinitypay", http.MethodPost, url, g.headers(), nil, nil); err != nil {
		return entities.ChargeCancelResult{}, err
	}
	log.Printf("[gateway][infinitypay] charge cancelled charge_id=%s", id)
	return entities.ChargeCancelResult{Success: true, Message: "cobrança cancelada"}, nil
}

func (g *InfinityPayGateway) toCharge(resp infinityPayChargeResponse) entities.GatewayCharge {
	return entities.GatewayCharge{
		ID:          infinityPayChargePrefix + resp.ID,
		Provider:    entities.ProviderInfinityPay,
		Status:      translateStatus(resp.Status, entities.ProviderInfinityPay),
		Reference:   resp.OrderNSU,
		Value:       fromCents(resp.Amount),
		PaymentLink: resp.PaymentURL,
		PixCopyCola: resp.Pix.EMV,
		PixQRCode:   resp.Pix.QRCode,
		BoletoLine:  resp.Boleto.DigitableLine,
		BoletoPDF:   resp.Boleto.PDFURL,
	}
}

func (g *InfinityPayGateway) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + g.apiKey}
}
