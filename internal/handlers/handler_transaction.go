package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
)

// transactionHandler handles the money-in endpoint.
type transactionHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newTransactionHandler(ps portssvc.PaymentSvcFacade) *transactionHandler {
	return &transactionHandler{paymentService: ps}
}

// registerTransactionRoutes registers the ledger write routes.
func registerTransactionRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newTransactionHandler(paymentService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.POST("/apply-credit", h.applyCredit)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Single money-in endpoint. type=payment records a payment bundle and auto-applies it to unpaid rent oldest-first (full months only); type=credit applies existing credit to rent; type=adjustment writes a standalone adjustment entry.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 409 {object} ErrorResponse "Insufficient credit"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	var outcome *dto.TransactionOutcome
	var err error
	switch req.Type {
	case "payment":
		outcome, err = h.paymentService.RecordPayment(c.Request.Context(), req, creatorID)
	case "credit":
		outcome, err = h.paymentService.ApplyCredit(c.Request.Context(), req, creatorID)
	case "adjustment":
		outcome, err = h.paymentService.RecordAdjustment(c.Request.Context(), req, creatorID)
	default:
		// Unreachable given the binding oneof, kept for safety.
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown transaction type"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Transaction recorded",
		slog.String("tenant_id", req.TenantID),
		slog.String("type", req.Type),
		slog.String("bundle_id", outcome.BundleID))
	c.JSON(http.StatusCreated, outcome)
}

// applyCredit godoc
// @Summary Apply banked credit to rent
// @Description Allocates existing unapplied credit to unpaid rent months, oldest first, full months only.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.ApplyCreditRequest true "Credit application details"
// @Success 201 {object} dto.TransactionOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 409 {object} ErrorResponse "No credit available"
// @Security BearerAuth
// @Router /transactions/apply-credit [post]
func (h *transactionHandler) applyCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for applyCredit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.ApplyCredit(c.Request.Context(), req.ToTransactionRequest(), creatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Credit applied",
		slog.String("tenant_id", req.TenantID),
		slog.String("bundle_id", outcome.BundleID))
	c.JSON(http.StatusCreated, outcome)
}
