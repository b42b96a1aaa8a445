package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
)

// reportingHandler serves the read-only ledger aggregations.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/defaulters", h.defaulters)
		reports.GET("/collection-rate", h.collectionRate)
	}
}

// defaulters godoc
// @Summary List defaulters
// @Description Lists tenants with unpaid periods through the current month, highest arrears first.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.DefaulterRow
// @Security BearerAuth
// @Router /reports/defaulters [get]
func (h *reportingHandler) defaulters(c *gin.Context) {
	rows, err := h.reportingService.Defaulters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// collectionRate godoc
// @Summary Collection rate report
// @Description Rent due vs rent collected per month over an inclusive range.
// @Tags reports
// @Produce json
// @Param from query string true "First month (YYYY-MM)"
// @Param through query string true "Last month (YYYY-MM)"
// @Success 200 {object} domain.CollectionReport
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/collection-rate [get]
func (h *reportingHandler) collectionRate(c *gin.Context) {
	from, err := domain.ParsePeriod(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from must be formatted as YYYY-MM"})
		return
	}
	through, err := domain.ParsePeriod(c.Query("through"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "through must be formatted as YYYY-MM"})
		return
	}

	report, err := h.reportingService.CollectionRate(c.Request.Context(), from, through)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
