package response

import "cobranca_service/internal/domain/entities"

type ChargeResponse struct {
	ID          string  `json:"id"`
	Provider    string  `json:"provider"`
	Status      string  `json:"status"`
	Reference   string  `json:"reference,omitempty"`
	Value       float64 `json:"value"`
	PaymentLink string  `json:"payment_link,omitempty"`
	PixCopyCola string  `json:"pix_copy_cola,omitempty"`
	PixQRCode   string  `json:"pix_qr_code,omitempty"`
	BoletoLine  string  `json:"boleto_line,omitempty"`
	BoletoPDF   string  `json:"boleto_pdf,omitempty"`
}

func FromCharge(c entities.GatewayCharge) ChargeResponse {
	return ChargeResponse{
		ID:          c.ID,
		Provider:    string(c.Provider),
		Status:      string(c.Status),
		Reference:   c.Reference,
		Value:       c.Value,
		PaymentLink: c.PaymentLink,
		PixCopyCola: c.PixCopyCola,
		PixQRCode:   c.PixQRCode,
		BoletoLine:  c.BoletoLine,
		BoletoPDF:   c.BoletoPDF,
	}
}

type ChargeCancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func FromCancelResult(r entities.ChargeCancelResult) ChargeCancelResponse {
	return ChargeCancelResponse{Success: r.Success, Message: r.Message}
}
