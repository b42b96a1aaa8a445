package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
)

// rollbackHandler handles payment reversal requests.
type rollbackHandler struct {
	rollbackService portssvc.RollbackSvcFacade
}

func newRollbackHandler(rs portssvc.RollbackSvcFacade) *rollbackHandler {
	return &rollbackHandler{rollbackService: rs}
}

// registerRollbackRoutes registers the rollback routes.
func registerRollbackRoutes(rg *gin.RouterGroup, rollbackService portssvc.RollbackSvcFacade) {
	h := newRollbackHandler(rollbackService)

	rollback := rg.Group("/rollback")
	{
		rollback.POST("/validate", h.validate)
		rollback.POST("/execute", h.execute)
	}
}

// validate godoc
// @Summary Validate a rollback
// @Description Dry-runs the reversal of the bundle containing the given ledger entry: what would be deleted, blocking errors, and warnings about later transactions that depended on the bundle's credit.
// @Tags rollback
// @Accept json
// @Produce json
// @Param target body dto.ValidateRollbackRequest true "Rollback target"
// @Success 200 {object} domain.RollbackValidation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ledger entry not found"
// @Security BearerAuth
// @Router /rollback/validate [post]
func (h *rollbackHandler) validate(c *gin.Context) {
	var req dto.ValidateRollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	validation, err := h.rollbackService.ValidateRollback(c.Request.Context(), req.LedgerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, validation)
}

// execute godoc
// @Summary Execute a rollback
// @Description Deletes the bundle's ledger entries and their rent payments and writes an immutable audit record, atomically.
// @Tags rollback
// @Accept json
// @Produce json
// @Param rollback body dto.ExecuteRollbackRequest true "Rollback request"
// @Success 200 {object} domain.RollbackResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ledger entry not found"
// @Failure 409 {object} ErrorResponse "Already rolled back"
// @Security BearerAuth
// @Router /rollback/execute [post]
func (h *rollbackHandler) execute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExecuteRollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	actorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	result, err := h.rollbackService.ExecuteRollback(c.Request.Context(), req.LedgerID, req.Reason, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Rollback executed",
		slog.String("rollback_id", result.RollbackID),
		slog.String("entry_id", req.LedgerID))
	c.JSON(http.StatusOK, result)
}
