package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the baseline, the derived injections and ledger views.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(svc portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: svc}
}

// registerLedgerRoutes registers the baseline, injection and ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(svc)

	rg.GET("/baseline", h.getBaseline)
	rg.PUT("/baseline", h.setBaseline)
	rg.GET("/injections", h.listInjections)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.getLedgerView)
		ledger.GET("/streaks", h.getStreaks)
	}
}

// getBaseline godoc
// @Summary Get the baseline
// @Description Returns the configured baseline; configured is false when none was set
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.BaselineResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve baseline"
// @Security BearerAuth
// @Router /baseline [get]
func (h *ledgerHandler) getBaseline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	baseline, err := h.ledgerService.GetBaseline(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve baseline")
		return
	}
	c.JSON(http.StatusOK, dto.ToBaselineResponse(baseline))
}

// setBaseline godoc
// @Summary Set or clear the baseline
// @Description Sets the starting stake; a null amount clears it. Injections are recomputed.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   baseline body dto.SetBaselineRequest true "Baseline amount, negative values are read by magnitude"
// @Success 200 {object} dto.BaselineResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set baseline"
// @Security BearerAuth
// @Router /baseline [put]
func (h *ledgerHandler) setBaseline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.SetBaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBaseline", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	baseline, err := h.ledgerService.SetBaseline(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to set baseline")
		return
	}
	c.JSON(http.StatusOK, dto.ToBaselineResponse(baseline))
}

// listInjections godoc
// @Summary List derived capital injections
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.ListCapitalInjectionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list injections"
// @Security BearerAuth
// @Router /injections [get]
func (h *ledgerHandler) listInjections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	injections, err := h.ledgerService.ListCapitalInjections(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list injections")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCapitalInjectionsResponse(injections))
}

// getLedgerView godoc
// @Summary Get the balance series
// @Description Reconstructs the running balance, windowed and aggregated, with summary statistics
// @Tags ledger
// @Produce  json
// @Param   window query string false "all, ytd, last-n-days or custom" default(all)
// @Param   days query int false "Days for last-n-days"
// @Param   from query string false "First local day of a custom window (YYYY-MM-DD)"
// @Param   to query string false "Last local day of a custom window, inclusive (YYYY-MM-DD)"
// @Param   granularity query string false "per-bet or per-day" default(per-bet)
// @Param   bankrollId query string false "Use one bankroll's baseline and entries"
// @Success 200 {object} domain.LedgerView
// @Failure 400 {object} map[string]string "Invalid window or granularity"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bankroll not found"
// @Failure 409 {object} map[string]string "Baseline is not configured"
// @Failure 500 {object} map[string]string "Failed to compute ledger"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getLedgerView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.LedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetLedgerView", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	view, err := h.ledgerService.GetLedgerView(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute ledger")
		return
	}
	c.JSON(http.StatusOK, view)
}

// getStreaks godoc
// @Summary Get win and loss streaks
// @Tags ledger
// @Produce  json
// @Param   bankrollId query string false "Restrict to one bankroll"
// @Success 200 {object} domain.StreakReport
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bankroll not found"
// @Failure 500 {object} map[string]string "Failed to compute streaks"
// @Security BearerAuth
// @Router /ledger/streaks [get]
func (h *ledgerHandler) getStreaks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.StreaksQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetStreaks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	var bankrollID *string
	if params.BankrollID != "" {
		bankrollID = &params.BankrollID
	}

	report, err := h.ledgerService.GetStreaks(c.Request.Context(), userID, bankrollID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute streaks")
		return
	}
	c.JSON(http.StatusOK, report)
}
