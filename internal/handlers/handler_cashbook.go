package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
)

// cashbookHandler handles operator cash-book requests.
type cashbookHandler struct {
	cashbookService portssvc.CashbookSvcFacade
}

func newCashbookHandler(cs portssvc.CashbookSvcFacade) *cashbookHandler {
	return &cashbookHandler{cashbookService: cs}
}

// registerCashbookRoutes registers the cash-book routes.
func registerCashbookRoutes(rg *gin.RouterGroup, cashbookService portssvc.CashbookSvcFacade) {
	h := newCashbookHandler(cashbookService)

	cashbook := rg.Group("/cashbook")
	{
		cashbook.POST("/expenses", h.recordExpense)
		cashbook.POST("/withdrawals", h.recordWithdrawal)
		cashbook.GET("/balance", h.balance)
		cashbook.GET("/events", h.listEvents)
	}
}

func (h *cashbookHandler) recordEvent(c *gin.Context, record func(*gin.Context, dto.CreateCashEventRequest, string)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for cash event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}
	record(c, req, creatorID)
}

// recordExpense godoc
// @Summary Record an expense
// @Description Records money leaving the cash box for a property expense.
// @Tags cashbook
// @Accept json
// @Produce json
// @Param expense body dto.CreateCashEventRequest true "Expense details"
// @Success 201 {object} dto.CashEventResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/expenses [post]
func (h *cashbookHandler) recordExpense(c *gin.Context) {
	h.recordEvent(c, func(c *gin.Context, req dto.CreateCashEventRequest, creatorID string) {
		event, err := h.cashbookService.RecordExpense(c.Request.Context(), req, creatorID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToCashEventResponse(event))
	})
}

// recordWithdrawal godoc
// @Summary Record an owner withdrawal
// @Tags cashbook
// @Accept json
// @Produce json
// @Param withdrawal body dto.CreateCashEventRequest true "Withdrawal details"
// @Success 201 {object} dto.CashEventResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/withdrawals [post]
func (h *cashbookHandler) recordWithdrawal(c *gin.Context) {
	h.recordEvent(c, func(c *gin.Context, req dto.CreateCashEventRequest, creatorID string) {
		event, err := h.cashbookService.RecordWithdrawal(c.Request.Context(), req, creatorID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToCashEventResponse(event))
	})
}

// balance godoc
// @Summary Operator cash balance
// @Description Collections from tenant payments minus expenses and withdrawals, plus manual adjustments.
// @Tags cashbook
// @Produce json
// @Success 200 {object} dto.CashBalanceResponse
// @Security BearerAuth
// @Router /cashbook/balance [get]
func (h *cashbookHandler) balance(c *gin.Context) {
	balance, err := h.cashbookService.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// listEvents godoc
// @Summary List cash events
// @Description Returns a page of cash-book events, newest first.
// @Tags cashbook
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/events [get]
func (h *cashbookHandler) listEvents(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, perr := strconv.Atoi(limitStr)
		if perr != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	events, next, err := h.cashbookService.ListEvents(c.Request.Context(), limit, nextToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "nextToken": next})
}
