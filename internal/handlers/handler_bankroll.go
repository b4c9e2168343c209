package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankrollHandler handles HTTP requests related to bankrolls.
type bankrollHandler struct {
	bankrollService portssvc.BankrollSvcFacade
}

func newBankrollHandler(svc portssvc.BankrollSvcFacade) *bankrollHandler {
	return &bankrollHandler{bankrollService: svc}
}

// registerBankrollRoutes registers routes related to bankrolls.
func registerBankrollRoutes(rg *gin.RouterGroup, svc portssvc.BankrollSvcFacade) {
	h := newBankrollHandler(svc)

	bankrolls := rg.Group("/bankrolls")
	{
		bankrolls.GET("", h.listBankrolls)
		bankrolls.POST("", h.createBankroll)
		bankrolls.DELETE("/:id", h.deleteBankroll)
	}
}

// listBankrolls godoc
// @Summary List bankrolls
// @Tags bankrolls
// @Produce  json
// @Success 200 {array} dto.BankrollResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list bankrolls"
// @Security BearerAuth
// @Router /bankrolls [get]
func (h *bankrollHandler) listBankrolls(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	bankrolls, err := h.bankrollService.ListBankrolls(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list bankrolls")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankrollResponses(bankrolls))
}

// createBankroll godoc
// @Summary Create a bankroll
// @Description Creates an independent ledger partition with its own baseline
// @Tags bankrolls
// @Accept  json
// @Produce  json
// @Param   bankroll body dto.CreateBankrollRequest true "Bankroll details"
// @Success 201 {object} dto.BankrollResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Bankroll name already used"
// @Failure 500 {object} map[string]string "Failed to create bankroll"
// @Security BearerAuth
// @Router /bankrolls [post]
func (h *bankrollHandler) createBankroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateBankrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankroll", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bankroll, err := h.bankrollService.CreateBankroll(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create bankroll")
		return
	}
	logger.Info("Bankroll created successfully", slog.String("bankroll_id", bankroll.BankrollID))
	c.JSON(http.StatusCreated, dto.ToBankrollResponse(bankroll))
}

// deleteBankroll godoc
// @Summary Delete a bankroll
// @Description Removes the bankroll; its entries stay in the main ledger
// @Tags bankrolls
// @Param   id path string true "Bankroll ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bankroll not found"
// @Failure 500 {object} map[string]string "Failed to delete bankroll"
// @Security BearerAuth
// @Router /bankrolls/{id} [delete]
func (h *bankrollHandler) deleteBankroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	bankrollID := c.Param("id")

	if err := h.bankrollService.DeleteBankroll(c.Request.Context(), userID, bankrollID); err != nil {
		respondError(c, logger.With(slog.String("bankroll_id", bankrollID)), err, "Failed to delete bankroll")
		return
	}
	logger.Info("Bankroll deleted successfully", slog.String("bankroll_id", bankrollID))
	c.Status(http.StatusNoContent)
}
