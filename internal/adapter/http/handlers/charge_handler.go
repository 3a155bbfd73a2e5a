package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cobranca_service/internal/adapter/http/dto/request"
	response "cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/infrastructure/payments"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge payload", http.StatusBadRequest)

// ChargeHandler handles HTTP requests for payment-collection charges and the
// provider payment callback.

type ChargeHandler struct {
	usecase usecase.IChargeUseCase
}

func NewChargeHandler(uc usecase.IChargeUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

// CreateCharge creates a provider charge for an installment or an agreement
// installment and returns the payable link / PIX / boleto data.
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var payload request.ChargeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	var (
		created entities.GatewayCharge
		err     error
	)
	if payload.InstallmentID != "" {
		created, err = h.usecase.CreateForInstallment(c.Request.Context(), payload.InstallmentID, payload.Gateway, payload.ToPayer())
	} else {
		created, err = h.usecase.CreateForAgreementInstallment(c.Request.Context(), payload.AgreementInstallmentID, payload.Gateway, payload.ToPayer())
	}
	if err != nil {
		log.Printf("[charge][handler] create failed err=%v", err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCharge(created))
}

func (h *ChargeHandler) GetCharge(c *gin.Context) {
	charge, err := h.usecase.GetCharge(c.Request.Context(), c.Param("charge_id"), c.Query("gateway"))
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

func (h *ChargeHandler) CancelCharge(c *gin.Context) {
	res, err := h.usecase.CancelCharge(c.Request.Context(), c.Param("charge_id"), c.Query("gateway"))
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCancelResult(res))
}

// PaymentWebhook receives provider callbacks. The pushed body is only used to
// locate the charge; its status is re-queried at the provider before any
// installment is marked paid.
func (h *ChargeHandler) PaymentWebhook(c *gin.Context) {
	var payload request.ChargeWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	log.Printf("[charge][handler] webhook received charge_id=%s gateway=%q", payload.ChargeID, payload.Gateway)
	charge, err := h.usecase.ConfirmPayment(c.Request.Context(), payload.ChargeID, payload.Gateway)
	if err != nil {
		log.Printf("[charge][handler] webhook failed charge_id=%s err=%v", payload.ChargeID, err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstallmentID), errors.Is(err, usecase.ErrInvalidChargeID), errors.Is(err, usecase.ErrInvalidChargeReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstallmentNotFound), errors.Is(err, usecase.ErrAgreementInstNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotPayable):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_PAYABLE", "Installment cannot be charged in its current status", http.StatusConflict)
	case errors.Is(err, payments.ErrUnconfiguredGateway):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, payments.ErrAuthenticationFailed):
		return pkg.NewDomainErrorSimple("GATEWAY_AUTH_FAILED", "Payment gateway authentication failed", http.StatusBadGateway)
	case errors.Is(err, payments.ErrGatewayRejected):
		return pkg.NewDomainErrorSimple("GATEWAY_REJECTED", "Payment gateway rejected the charge", http.StatusUnprocessableEntity)
	case errors.Is(err, payments.ErrGatewayUnavailable):
		// Not a payment failure: the charge status is unknown and must be
		// re-queried by the caller.
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable, charge status unknown", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
