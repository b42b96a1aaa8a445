package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
)

// tenantHandler handles HTTP requests related to tenants, their room
// allocations, balances and ledger history.
type tenantHandler struct {
	tenantService  portssvc.TenantSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade, bs portssvc.BalanceSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts, balanceService: bs}
}

// registerTenantRoutes registers tenant lifecycle and ledger-read routes.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newTenantHandler(tenantService, balanceService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/:tenantID", h.getTenant)
		tenants.POST("/:tenantID/allocate", h.allocateRoom)
		tenants.POST("/:tenantID/vacate", h.vacate)
		tenants.GET("/:tenantID/balance", h.balance)
		tenants.GET("/:tenantID/ledger", h.ledger)
	}
}

// createTenant godoc
// @Summary Register a tenant
// @Description Creates a tenant. Non-zero openingDues is recorded as a negative opening-balance ledger entry.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTenant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	tenants, err := h.tenantService.ListTenants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = dto.ToTenantResponse(&tenants[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenantID} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// allocateRoom godoc
// @Summary Move a tenant into a room
// @Description Opens an allocation. Optionally records a rent change for the room effective from the move-in month.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param allocation body dto.AllocateRoomRequest true "Allocation details"
// @Success 201 {object} dto.AllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Room already occupied"
// @Security BearerAuth
// @Router /tenants/{tenantID}/allocate [post]
func (h *tenantHandler) allocateRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.AllocateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for allocateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	allocation, err := h.tenantService.AllocateRoom(c.Request.Context(), tenantID, req, creatorID)
	if err != nil {
		// The allocation may stand even when the bundled rent change
		// failed; report the conflict but include the allocation.
		if allocation != nil {
			c.JSON(http.StatusConflict, gin.H{
				"allocation": dto.ToAllocationResponse(allocation),
				"error":      err.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	logger.Info("Room allocated",
		slog.String("tenant_id", tenantID),
		slog.String("room_id", req.RoomID))
	c.JSON(http.StatusCreated, dto.ToAllocationResponse(allocation))
}

// vacate godoc
// @Summary Move a tenant out of a room
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param vacate body dto.VacateRequest true "Vacate details"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenantID}/vacate [post]
func (h *tenantHandler) vacate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.VacateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for vacate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	updaterID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	allocation, err := h.tenantService.Vacate(c.Request.Context(), tenantID, req, updaterID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Room vacated",
		slog.String("tenant_id", tenantID),
		slog.String("room_id", req.RoomID))
	c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// balance godoc
// @Summary Tenant balance
// @Description Returns the tenant's net credit and unpaid periods. With asOfDate (YYYY-MM-DD) the ledger is replayed only up to that date; asOfCreatedAt (RFC3339) breaks ties among same-day entries.
// @Tags tenants
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param asOfDate query string false "Cutoff transaction date (YYYY-MM-DD)"
// @Param asOfCreatedAt query string false "Cutoff creation timestamp (RFC3339)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenantID}/balance [get]
func (h *tenantHandler) balance(c *gin.Context) {
	tenantID := c.Param("tenantID")

	var snapshot *domain.BalanceSnapshot
	var err error
	if asOfDateStr := c.Query("asOfDate"); asOfDateStr != "" {
		asOfDate, perr := time.Parse(dto.DateLayout, asOfDateStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "asOfDate must be formatted as YYYY-MM-DD"})
			return
		}
		asOfCreatedAt := asOfDate.Add(24*time.Hour - time.Nanosecond)
		if createdAtStr := c.Query("asOfCreatedAt"); createdAtStr != "" {
			asOfCreatedAt, perr = time.Parse(time.RFC3339, createdAtStr)
			if perr != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "asOfCreatedAt must be formatted as RFC3339"})
				return
			}
		}
		snapshot, err = h.balanceService.BalanceAsOf(c.Request.Context(), tenantID, asOfDate, asOfCreatedAt)
	} else {
		snapshot, err = h.balanceService.CurrentBalance(c.Request.Context(), tenantID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	unpaidTotal, unpaidPeriods, err := h.balanceService.UnpaidRent(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		LedgerTotal:     snapshot.LedgerTotal,
		RentConsumed:    snapshot.RentConsumed,
		NetCredit:       snapshot.NetCredit,
		UnpaidRentTotal: unpaidTotal,
		UnpaidPeriods:   unpaidPeriods,
	})
}

// ledger godoc
// @Summary Tenant ledger history
// @Description Returns a page of the tenant's ledger entries, newest first.
// @Tags tenants
// @Produce json
// @Param tenantID path string true "Tenant ID"
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{tenantID}/ledger [get]
func (h *tenantHandler) ledger(c *gin.Context) {
	tenantID := c.Param("tenantID")

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

	page, err := h.balanceService.LedgerHistory(c.Request.Context(), tenantID, limit, nextToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
