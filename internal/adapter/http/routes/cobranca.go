package routes

import (
	"os"

	"cobranca_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNegotiations = "/negotiations"
	PathCharges      = "/charges"
)

func addCobrancaRoutes(rg *gin.RouterGroup, negotiationHandler *handlers.NegotiationHandler, chargeHandler *handlers.ChargeHandler) {
	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.GET("/eligibility/:installment_id", negotiationHandler.CheckEligibility)
		negotiations.POST("", negotiationHandler.CreateProposal)
		negotiations.GET("", negotiationHandler.ListProposalsByStudent)
		negotiations.GET("/:id", negotiationHandler.GetProposal)
		negotiations.GET("/:id/installments", negotiationHandler.ListAgreementInstallments)
		negotiations.PATCH("/:id/approve", negotiationHandler.ApproveProposal)
		negotiations.PATCH("/:id/reject", negotiationHandler.RejectProposal)
	}

	charges := rg.Group(PathCharges)
	{
		charges.POST("", chargeHandler.CreateCharge)
		charges.GET("/:charge_id", chargeHandler.GetCharge)
		charges.DELETE("/:charge_id", chargeHandler.CancelCharge)
		charges.POST("/webhook", chargeHandler.PaymentWebhook)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
