package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/core/domain"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/dto"
	"github.com/moneta-svc/moneta/internal/middleware"
	"github.com/moneta-svc/moneta/internal/platform/locale"
)

// moneyHandler handles HTTP requests that parse and format monetary text.
type moneyHandler struct {
	moneyService portssvc.MoneySvcFacade
}

// newMoneyHandler creates a new moneyHandler.
func newMoneyHandler(ms portssvc.MoneySvcFacade) *moneyHandler {
	return &moneyHandler{
		moneyService: ms,
	}
}

// RegisterMoneyRoutes registers routes related to money parsing and formatting.
func RegisterMoneyRoutes(rg *gin.RouterGroup, moneyService portssvc.MoneySvcFacade) {
	h := newMoneyHandler(moneyService)

	money := rg.Group("/money")
	{
		money.POST("/parse", h.parseMoney)
		money.POST("/try-parse", h.tryParseMoney)
		money.POST("/format", h.formatMoney)
	}
}

// requestTag resolves the locale for a request: an explicit body field wins
// over whatever the locale middleware derived from the query or headers.
func requestTag(c *gin.Context, explicit string) (language.Tag, error) {
	if explicit != "" {
		return locale.Parse(explicit)
	}
	return middleware.GetLocaleFromCtx(c.Request.Context()), nil
}

// parseStatus maps parse failures onto HTTP statuses: malformed input is the
// client's fault (400), input that is well-formed but unresolvable against
// the registry is unprocessable (422).
func parseStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrAmbiguousCurrency),
		errors.Is(err, apperrors.ErrCurrencyMismatch):
		return http.StatusUnprocessableEntity
	case apperrors.IsParseFailure(err), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseMoney godoc
// @Summary Parse monetary text
// @Description Recovers a currency and an exact decimal amount from a string like "EUR 234.25", "€ 1.234,56" or "1234.5 BTC"
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseMoneyRequest true "Text to parse, optional currency hint and locale"
// @Success 200 {object} dto.MoneyResponse
// @Failure 400 {object} map[string]string "Malformed input"
// @Failure 422 {object} map[string]string "Ambiguous or contradicted currency"
// @Failure 500 {object} map[string]string "Parse failed"
// @Router /money/parse [post]
func (h *moneyHandler) parseMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tag, err := requestTag(c, req.Locale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locale: " + req.Locale})
		return
	}

	m, err := h.moneyService.ParseMoney(c.Request.Context(), req.Text, req.CurrencyCode, tag)
	if err != nil {
		status := parseStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to parse monetary text", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to parse"})
			return
		}
		logger.Warn("Monetary text rejected", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	canonical, display, err := h.moneyService.FormatMoney(c.Request.Context(), *m, tag)
	if err != nil {
		logger.Error("Failed to render parsed money", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render parsed money"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneyResponse(m, canonical, display))
}

// tryParseMoney godoc
// @Summary Try to parse monetary text
// @Description Like parse, but malformed or unresolvable input yields ok=false with HTTP 200 instead of an error
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseMoneyRequest true "Text to parse, optional currency hint and locale"
// @Success 200 {object} dto.TryParseMoneyResponse
// @Failure 400 {object} map[string]string "Malformed request body"
// @Failure 500 {object} map[string]string "Parse failed"
// @Router /money/try-parse [post]
func (h *moneyHandler) tryParseMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TryParseMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tag, err := requestTag(c, req.Locale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locale: " + req.Locale})
		return
	}

	m, ok, err := h.moneyService.TryParseMoney(c.Request.Context(), req.Text, req.CurrencyCode, tag)
	if err != nil {
		logger.Error("Failed to try-parse monetary text", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse"})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, dto.TryParseMoneyResponse{OK: false})
		return
	}

	canonical, display, err := h.moneyService.FormatMoney(c.Request.Context(), *m, tag)
	if err != nil {
		logger.Error("Failed to render parsed money", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render parsed money"})
		return
	}

	money := dto.ToMoneyResponse(m, canonical, display)
	c.JSON(http.StatusOK, dto.TryParseMoneyResponse{OK: true, Money: &money})
}

// formatMoney godoc
// @Summary Format an amount
// @Description Renders an amount in the canonical round-trippable form and the locale's display form
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatMoneyRequest true "Amount, currency code and optional locale"
// @Success 200 {object} dto.FormatMoneyResponse
// @Failure 400 {object} map[string]string "Malformed amount or unknown currency"
// @Failure 500 {object} map[string]string "Format failed"
// @Router /money/format [post]
func (h *moneyHandler) formatMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tag, err := requestTag(c, req.Locale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locale: " + req.Locale})
		return
	}

	m, err := domain.NewMoneyFromString(req.Amount, req.CurrencyCode)
	if err != nil {
		logger.Warn("Malformed amount for FormatMoney", slog.String("amount", req.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	canonical, display, err := h.moneyService.FormatMoney(c.Request.Context(), m, tag)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Unknown currency for FormatMoney", slog.String("currency_code", req.CurrencyCode))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to format money", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to format"})
		return
	}

	c.JSON(http.StatusOK, dto.FormatMoneyResponse{Canonical: canonical, Display: display})
}
