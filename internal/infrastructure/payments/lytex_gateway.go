package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

const (
	defaultLytexBaseURL           = "https://api-pay.lytex.com.br"
	defaultLytexTokenSafetyMargin = 60 * time.Second
)

// LytexGateway talks to the Lytex invoicing API. Authentication is OAuth
// client-credentials; the token is cached until it enters the safety margin
// before expiry, and concurrent callers share a single in-flight refresh.

type LytexGateway struct {
	baseURL      string
	clientID     string
	clientSecret string
	safetyMargin time.Duration
	client       *http.Client
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	refresh     singleflight.Group
}

var _ interfaces.IPaymentGateway = (*LytexGateway)(nil)

func NewLytexGateway(baseURL, clientID, clientSecret string, safetyMargin time.Duration) *LytexGateway {
	return &LytexGateway{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		safetyMargin: safetyMargin,
		client:       newHTTPClient(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// NewLytexGatewayFromEnv builds the adapter from LYTEX_* env vars; returns
// nil when credentials are absent so the router simply skips registration.
func NewLytexGatewayFromEnv() *LytexGateway {
	clientID := os.Getenv("LYTEX_CLIENT_ID")
	clientSecret := os.Getenv("LYTEX_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Printf("[gateway][lytex] credentials not set; adapter disabled")
		return nil
	}

	margin := defaultLytexTokenSafetyMargin
	if v := os.Getenv("LYTEX_TOKEN_SAFETY_MARGIN_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			margin = time.Duration(secs) * time.Second
		}
	}

	base := os.Getenv("LYTEX_BASE_URL")
	if base == "" {
		base = defaultLytexBaseURL
	}
	return NewLytexGateway(base, clientID, clientSecret, margin)
}

func (g *LytexGateway) Provider() entities.GatewayProvider {
	return entities.ProviderLytex
}

type lytexTokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// accessToken returns a usable token, fetching a fresh one once the cached
// token is inside the safety margin. A failed acquisition caches nothing.
func (g *LytexGateway) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	if g.token != "" && g.now().Before(g.tokenExpiry.Add(-g.safetyMargin)) {
		token := g.token
		g.mu.Unlock()
		return token, nil
	}
	g.mu.Unlock()

	v, err, _ := g.refresh.Do("token", func() (any, error) {
		return g.obtainToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (g *LytexGateway) obtainToken(ctx context.Context) (string, error) {
	log.Printf("[gateway][lytex] obtaining access token")

	var resp lytexTokenResponse
	body := map[string]string{
		"grantType":    "clientCredentials",
		"clientId":     g.clientID,
		"clientSecret": g.clientSecret,
	}
	err := doJSON(ctx, g.client, "lytex", http.MethodPost, g.baseURL+"/v2/auth/obtain_token", nil, body, &resp)
	if err != nil {
		log.Printf("[gateway][lytex] token acquisition failed err=%v", err)
		return "", ErrAuthenticationFailed
	}
	if resp.AccessToken == "" || resp.ExpiresIn <= 0 {
		log.Printf("[gateway][lytex] token response incomplete")
		return "", ErrAuthenticationFailed
	}

	g.mu.Lock()
	g.token = resp.AccessToken
	g.tokenExpiry = g.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	g.mu.Unlock()

	log.Printf("[gateway][lytex] access token obtained expires_in=%ds", resp.ExpiresIn)
	return resp.AccessToken, nil
}

type lytexInvoiceRequest struct {
	Client          lytexClient         `json:"client"`
	Items           []lytexItem         `json:"items"`
	DueDate         string              `json:"dueDate"`
	ReferenceID     string              `json:"referenceId"`
	PaymentMethods  lytexPaymentMethods `json:"paymentMethods"`
	NotificationURL string              `json:"notificationUrl,omitempty"`
}

type lytexClient struct {
	Name      string `json:"name"`
	CPFCNPJ   string `json:"cpfCnpj"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone,omitempty"`
}

type lytexItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Value    int64  `json:"value"`
}

type lytexPaymentMethods struct {
	Pix        lytexMethodToggle `json:"pix"`
	Boleto     lytexMethodToggle `json:"boleto"`
	CreditCard lytexCreditCard   `json:"creditCard"`
}

type lytexMethodToggle struct {
	Enable bool `json:"enable"`
}

type lytexCreditCard struct {
	Enable     bool `json:"enable"`
	MaxParcels int  `json:"maxParcels,omitempty"`
}

type lytexInvoiceResponse struct {
	ID           string `json:"_id"`
	Status       string `json:"status"`
	TotalValue   int64  `json:"totalValue"`
	ReferenceID  string `json:"referenceId"`
	LinkCheckout string `json:"linkCheckout"`
	Pix          struct {
		QRCode       string `json:"qrCode"`
		CopyAndPaste string `json:"copyAndPaste"`
	} `json:"pix"`
	Boleto struct {
		DigitableLine string `json:"digitableLine"`
		PDF           string `json:"pdf"`
	} `json:"boleto"`
}

// CreateCharge creates a Lytex invoice. The caller reference travels as
// referenceId on every attempt, which is what makes a retried creation
// converge on the provider side instead of duplicating the invoice.
func (g *LytexGateway) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.GatewayCharge, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	body := lytexInvoiceRequest{
		Client: lytexClient{
			Name:      req.Payer.Name,
			CPFCNPJ:   req.Payer.CPFCNPJ,
			Email:     req.Payer.Email,
			Cellphone: req.Payer.Phone,
		},
		Items: []lytexItem{{
			Name:     req.Description,
			Quantity: 1,
			Value:    toCents(req.Value),
		}},
		DueDate:         req.DueDate.Format("2006-01-02"),
		ReferenceID:     req.Reference,
		PaymentMethods:  lytexMethodsFor(req),
		NotificationURL: req.CallbackURL,
	}

	var resp lytexInvoiceResponse
	err = doJSON(ctx, g.client, "lytex", http.MethodPost, g.baseURL+"/v2/invoices", authHeader(token), body, &resp)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	log.Printf("[gateway][lytex] invoice created invoice_id=%s reference=%s status=%s", resp.ID, req.Reference, resp.Status)
	return g.toCharge(resp), nil
}

func (g *LytexGateway) GetCharge(ctx context.Context, id string) (entities.GatewayCharge, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return entities.GatewayCharge{}, err
	}

	var resp lytexInvoiceResponse
	url := fmt.Sprintf("%s/v2/invoices/%s", g.baseURL, strings.TrimPrefix(id, lytexChargePrefix))
	if err := doJSON(ctx, g.client, "lytex", http.MethodGet, url, authHeader(token), nil, &resp); err != nil {
		return entities.GatewayCharge{}, err
	}
	return g.toCharge(resp), nil
}

func (g *LytexGateway) CancelCharge(ctx context.Context, id string) (entities.ChargeCancelResult, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return entities.ChargeCancelResult{}, err
	}

	url := fmt.Sprintf("%s/v2/invoices/%s/cancel", g.baseURL, strings.TrimPrefix(id, lytexChargePrefix))
	if err := doJSON(ctx, g.client, "lytex", http.MethodPost, url, authHeader(token), nil, nil); err != nil {
		return entities.ChargeCancelResult{}, err
	}
	log.Printf("[gateway][lytex] invoice cancelled invoice_id=%s", id)
	return entities.ChargeCancelResult{Success: true, Message: "cobrança cancelada"}, nil
}

func (g *LytexGateway) toCharge(resp lytexInvoiceResponse) entities.GatewayCharge {
	return entities.GatewayCharge{
		ID:          lytexChargePrefix + resp.ID,
		Provider:    entities.ProviderLytex,
		Status:      translateStatus(resp.Status, entities.ProviderLytex),
		Reference:   resp.ReferenceID,
		Value:       fromCents(resp.TotalValue),
		PaymentLink: resp.LinkCheckout,
		PixCopyCola: resp.Pix.CopyAndPaste,
		PixQRCode:   resp.Pix.QRCode,
		BoletoLine:  resp.Boleto.DigitableLine,
		BoletoPDF:   resp.Boleto.PDF,
	}
}

func lytexMethodsFor(req entities.ChargeRequest) lytexPaymentMethods {
	if len(req.PaymentMethods) == 0 {
		return lytexPaymentMethods{
			Pix:        lytexMethodToggle{Enable: true},
			Boleto:     lytexMethodToggle{Enable: true},
			CreditCard: lytexCreditCard{Enable: true, MaxParcels: req.MaxInstallments},
		}
	}

	var m lytexPaymentMethods
	for _, method := range req.PaymentMethods {
		switch strings.ToLower(method) {
		case "pix":
			m.Pix.Enable = true
		case "boleto":
			m.Boleto.Enable = true
		case "cartao", "credit_card":
			m.CreditCard.Enable = true
			m.CreditCard.MaxParcels = req.MaxInstallments
		}
	}
	return m
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
