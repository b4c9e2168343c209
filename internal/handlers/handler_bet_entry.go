package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/bet_tracker/internal/core/ports/services"
	"github.com/SscSPs/bet_tracker/internal/dto"
	"github.com/SscSPs/bet_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

const maxImportBytes = 10 << 20

// betEntryHandler handles HTTP requests related to bet entries.
type betEntryHandler struct {
	betEntryService portssvc.BetEntrySvcFacade
}

// newBetEntryHandler creates a new betEntryHandler.
func newBetEntryHandler(svc portssvc.BetEntrySvcFacade) *betEntryHandler {
	return &betEntryHandler{betEntryService: svc}
}

// registerBetEntryRoutes registers routes related to bet entries.
func registerBetEntryRoutes(rg *gin.RouterGroup, svc portssvc.BetEntrySvcFacade) {
	h := newBetEntryHandler(svc)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listBetEntries)
		entries.POST("", h.createBetEntry)
		entries.POST("/import", h.importBetEntries)
		entries.GET("/export", h.exportBetEntries)
		entries.GET("/:id", h.getBetEntry)
		entries.PUT("/:id", h.updateBetEntry)
		entries.DELETE("/:id", h.deleteBetEntry)
	}
}

// listBetEntries godoc
// @Summary List bet entries
// @Description Retrieves one page of the user's bets, newest first
// @Tags entries
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Param   bankrollId query string false "Restrict to one bankroll"
// @Success 200 {object} dto.ListBetEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *betEntryHandler) listBetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListBetEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBetEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.betEntryService.ListBetEntries(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}
	logger.Info("Bet entries listed successfully", slog.Int("count", len(resp.Entries)))
	c.JSON(http.StatusOK, resp)
}

// createBetEntry godoc
// @Summary Log a bet
// @Description Creates a bet entry; net is computed from the amounts and injections are recomputed
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateBetEntryRequest true "Bet details"
// @Success 201 {object} dto.BetEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *betEntryHandler) createBetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateBetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBetEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.betEntryService.CreateBetEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create entry")
		return
	}
	logger.Info("Bet entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToBetEntryResponse(entry))
}

// getBetEntry godoc
// @Summary Get a bet entry
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.BetEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *betEntryHandler) getBetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	entryID := c.Param("id")

	entry, err := h.betEntryService.GetBetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToBetEntryResponse(entry))
}

// updateBetEntry godoc
// @Summary Replace a bet entry
// @Description Replaces every editable field of an entry and recomputes injections
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateBetEntryRequest true "Bet details"
// @Success 200 {object} dto.BetEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *betEntryHandler) updateBetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	entryID := c.Param("id")

	var req dto.UpdateBetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBetEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.betEntryService.UpdateBetEntry(c.Request.Context(), userID, entryID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to update entry")
		return
	}
	logger.Info("Bet entry updated successfully", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToBetEntryResponse(entry))
}

// deleteBetEntry godoc
// @Summary Delete a bet entry
// @Tags entries
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *betEntryHandler) deleteBetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	entryID := c.Param("id")

	if err := h.betEntryService.DeleteBetEntry(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to delete entry")
		return
	}
	logger.Info("Bet entry deleted successfully", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// importBetEntries godoc
// @Summary Import bets from CSV
// @Description Accepts a CSV body or a multipart "file" field with columns date, betAmount, winningAmount, net, notes. Duplicates and invalid rows are skipped and reported.
// @Tags entries
// @Accept  text/csv
// @Accept  multipart/form-data
// @Produce  json
// @Param   bankrollId query string false "Bankroll assigned to imported rows"
// @Param   file formData file false "CSV file"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} map[string]string "Missing header or unreadable file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to import entries"
// @Security BearerAuth
// @Router /entries/import [post]
func (h *betEntryHandler) importBetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var bankrollID *string
	if id := strings.TrimSpace(c.Query("bankrollId")); id != "" {
		bankrollID = &id
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			logger.Warn("Missing CSV file in multipart import", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart import requires a 'file' field"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			logger.Warn("Failed to open uploaded CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
			return
		}
		defer f.Close()
		body = f
	}

	result, err := h.betEntryService.ImportBetEntries(c.Request.Context(), userID, bankrollID, body)
	if err != nil {
		respondError(c, logger, err, "Failed to import entries")
		return
	}
	logger.Info("Bet entries imported", slog.Int("imported", result.Imported), slog.Int("duplicates", result.Duplicates), slog.Int("invalid", result.Invalid))
	c.JSON(http.StatusOK, dto.ToImportResultResponse(result))
}

// exportBetEntries godoc
// @Summary Export bets as CSV
// @Description Streams every entry chronologically with columns date, betAmount, winningAmount, net, notes
// @Tags entries
// @Produce  text/csv
// @Param   bankrollId query string false "Restrict to one bankroll"
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export entries"
// @Security BearerAuth
// @Router /entries/export [get]
func (h *betEntryHandler) exportBetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var bankrollID *string
	if id := strings.TrimSpace(c.Query("bankrollId")); id != "" {
		bankrollID = &id
	}

	var buf bytes.Buffer
	if err := h.betEntryService.ExportBetEntries(c.Request.Context(), userID, bankrollID, &buf); err != nil {
		respondError(c, logger, err, "Failed to export entries")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bets.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
