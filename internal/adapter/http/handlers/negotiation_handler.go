package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "cobranca_service/internal/adapter/http/dto/request"
	response "cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNegotiationPayload = pkg.NewDomainErrorSimple("INVALID_NEGOTIATION_INPUT", "Invalid negotiation payload", http.StatusBadRequest)

// NegotiationHandler handles HTTP requests for debt negotiations: eligibility
// checks, proposal submission, manual review and the agreement schedule.

type NegotiationHandler struct {
	eligibility usecase.IEligibilityUseCase
	negotiation usecase.INegotiationUseCase
}

func NewNegotiationHandler(eligibility usecase.IEligibilityUseCase, negotiation usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{eligibility: eligibility, negotiation: negotiation}
}

// CheckEligibility answers whether one installment may enter negotiation for
// the given student. Ineligibility is a regular 200 with the reason, not an
// error: it is an expected business outcome.
func (h *NegotiationHandler) CheckEligibility(c *gin.Context) {
	installmentID := c.Param("installment_id")
	studentID := c.Query("student_id")

	res, err := h.eligibility.CheckEligibility(c.Request.Context(), installmentID, studentID)
	if err != nil {
		log.Printf("[negotiation][handler] eligibility failed installment_id=%s student_id=%s err=%v", installmentID, studentID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEligibility(res))
}

// CreateProposal submits a negotiation proposal draft.
func (h *NegotiationHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	log.Printf("[negotiation][handler] submit start student_id=%s installments=%d", draft.StudentID, len(draft.InstallmentIDs))
	created, err := h.negotiation.Submit(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[negotiation][handler] submit failed student_id=%s err=%v", draft.StudentID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[negotiation][handler] submit success student_id=%s proposal_id=%s status=%s", created.StudentID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromNegotiation(created))
}

func (h *NegotiationHandler) GetProposal(c *gin.Context) {
	p, err := h.negotiation.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNegotiation(p))
}

func (h *NegotiationHandler) ListProposalsByStudent(c *gin.Context) {
	studentID := c.Query("student_id")
	status := entities.NegotiationStatus(c.Query("status"))

	list, err := h.negotiation.ListByStudent(c.Request.Context(), studentID, status)
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNegotiations(list))
}

// ApproveProposal promotes a pending proposal after human review.
func (h *NegotiationHandler) ApproveProposal(c *gin.Context) {
	h.decide(c, h.negotiation.ApproveManually)
}

// RejectProposal declines a pending proposal after human review.
func (h *NegotiationHandler) RejectProposal(c *gin.Context) {
	h.decide(c, h.negotiation.RejectManually)
}

func (h *NegotiationHandler) decide(c *gin.Context, decision func(ctx context.Context, proposalID, reviewerID, rationale string) (entities.NegotiationProposal, error)) {
	var payload request.ProposalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	proposalID := c.Param("id")
	decided, err := decision(c.Request.Context(), proposalID, payload.ReviewerID, payload.Rationale)
	if err != nil {
		log.Printf("[negotiation][handler] decision failed proposal_id=%s reviewer_id=%s err=%v", proposalID, payload.ReviewerID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[negotiation][handler] decision applied proposal_id=%s status=%s", decided.ID, decided.Status)

	c.JSON(http.StatusOK, response.FromNegotiation(decided))
}

// ListAgreementInstallments returns the materialized schedule of an approved
// proposal.
func (h *NegotiationHandler) ListAgreementInstallments(c *gin.Context) {
	list, err := h.negotiation.ListAgreementInstallments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgreementInstallments(list))
}

func mapNegotiationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstallmentID), errors.Is(err, usecase.ErrInvalidStudentID), errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidReviewerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProposal):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIneligibleInstallment):
		return pkg.NewDomainErrorSimple("INELIGIBLE_INSTALLMENT", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrentNegotiation):
		return pkg.NewDomainErrorSimple("CONCURRENT_NEGOTIATION", "Another negotiation covering these installments was processed first", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalAlreadyDecided):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_DECIDED", "Proposal already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
