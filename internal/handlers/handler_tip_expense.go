package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tipExpenseHandler handles HTTP requests related to tip expenses.
type tipExpenseHandler struct {
	tipExpenseService portssvc.TipExpenseSvcFacade
}

func newTipExpenseHandler(svc portssvc.TipExpenseSvcFacade) *tipExpenseHandler {
	return &tipExpenseHandler{tipExpenseService: svc}
}

// registerTipExpenseRoutes registers routes related to tip expenses.
func registerTipExpenseRoutes(rg *gin.RouterGroup, svc portssvc.TipExpenseSvcFacade) {
	h := newTipExpenseHandler(svc)

	expenses := rg.Group("/tip-expenses")
	{
		expenses.GET("", h.listTipExpenses)
		expenses.POST("", h.createTipExpense)
		expenses.PUT("/:id", h.updateTipExpense)
		expenses.DELETE("/:id", h.deleteTipExpense)
	}
}

// listTipExpenses godoc
// @Summary List tip expenses
// @Tags tip-expenses
// @Produce  json
// @Success 200 {array} dto.TipExpenseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list tip expenses"
// @Security BearerAuth
// @Router /tip-expenses [get]
func (h *tipExpenseHandler) listTipExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	expenses, err := h.tipExpenseService.ListTipExpenses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list tip expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToTipExpenseResponses(expenses))
}

// createTipExpense godoc
// @Summary Record a tip expense
// @Description Records money paid for tips or picks; injections are recomputed
// @Tags tip-expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateTipExpenseRequest true "Expense details"
// @Success 201 {object} dto.TipExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create tip expense"
// @Security BearerAuth
// @Router /tip-expenses [post]
func (h *tipExpenseHandler) createTipExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTipExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTipExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.tipExpenseService.CreateTipExpense(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create tip expense")
		return
	}
	logger.Info("Tip expense created successfully", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToTipExpenseResponse(expense))
}

// updateTipExpense godoc
// @Summary Replace a tip expense
// @Tags tip-expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   expense body dto.UpdateTipExpenseRequest true "Expense details"
// @Success 200 {object} dto.TipExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tip expense not found"
// @Failure 500 {object} map[string]string "Failed to update tip expense"
// @Security BearerAuth
// @Router /tip-expenses/{id} [put]
func (h *tipExpenseHandler) updateTipExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	expenseID := c.Param("id")

	var req dto.UpdateTipExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTipExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.tipExpenseService.UpdateTipExpense(c.Request.Context(), userID, expenseID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("expense_id", expenseID)), err, "Failed to update tip expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToTipExpenseResponse(expense))
}

// deleteTipExpense godoc
// @Summary Delete a tip expense
// @Tags tip-expenses
// @Param   id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tip expense not found"
// @Failure 500 {object} map[string]string "Failed to delete tip expense"
// @Security BearerAuth
// @Router /tip-expenses/{id} [delete]
func (h *tipExpenseHandler) deleteTipExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	expenseID := c.Param("id")

	if err := h.tipExpenseService.DeleteTipExpense(c.Request.Context(), userID, expenseID); err != nil {
		respondError(c, logger.With(slog.String("expense_id", expenseID)), err, "Failed to delete tip expense")
		return
	}
	logger.Info("Tip expense deleted successfully", slog.String("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}
