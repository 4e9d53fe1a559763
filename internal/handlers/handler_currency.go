package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneta-svc/moneta/internal/apperrors"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/dto"
	"github.com/moneta-svc/moneta/internal/middleware"
)

// currencyHandler handles HTTP requests related to the currency registry.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers registry routes. Reads are public;
// register/unregister require authentication.
func RegisterCurrencyRoutes(public, protected *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	reads := public.Group("/currencies")
	{
		reads.GET("", h.listCurrencies)
		reads.GET("/current", h.getCurrentCurrency)
		reads.GET("/:currencyCode", h.getCurrencyByCode)
	}

	writes := protected.Group("/currencies")
	{
		writes.POST("", h.registerCurrency)
		writes.DELETE("/:currencyCode", h.unregisterCurrency)
	}
}

// listCurrencies godoc
// @Summary List registered currencies
// @Description Retrieves all registered currencies, or only those matching a symbol/code token when ?token= is given
// @Tags currencies
// @Produce  json
// @Param   token query string false "Symbol or code token, e.g. $ or USD"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if params.Token != "" {
		matched, err := h.currencyService.FindCurrenciesByToken(c.Request.Context(), params.Token)
		if err != nil {
			logger.Error("Failed to find currencies by token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
			return
		}
		c.JSON(http.StatusOK, dto.ToListCurrencyResponse(matched))
		return
	}

	all, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(all))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   currencyCode path string true "Currency code (3 letters, case-insensitive)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Malformed code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{currencyCode} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currencyCode")

	if len([]rune(currencyCode)) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// getCurrentCurrency godoc
// @Summary Get the current locale's currency
// @Description Resolves the tender currency of the request's locale (?locale= or Accept-Language); XXX when the locale has none
// @Tags currencies
// @Produce  json
// @Param   locale query string false "BCP 47 locale tag, e.g. de-DE"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Malformed locale"
// @Failure 500 {object} map[string]string "Failed to resolve currency"
// @Router /currencies/current [get]
func (h *currencyHandler) getCurrentCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tag := middleware.GetLocaleFromCtx(c.Request.Context())

	currency, err := h.currencyService.CurrencyForLocale(c.Request.Context(), tag)
	if err != nil {
		logger.Error("Failed to resolve currency for locale", slog.String("error", err.Error()),
			slog.String("locale", tag.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// registerCurrency godoc
// @Summary Register a currency
// @Description Adds a user-defined currency to the registry (admin operation)
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.RegisterCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Currency code already registered"
// @Failure 500 {object} map[string]string "Failed to register currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) registerCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	registered, err := h.currencyService.RegisterCurrency(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate currency", slog.String("currency_code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency code '%s' is already registered", req.Code)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error registering currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register currency"})
		}
		return
	}

	logger.Info("Currency registered successfully", slog.String("currency_code", registered.Code))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(registered))
}

// unregisterCurrency godoc
// @Summary Unregister a currency
// @Description Removes a currency from the registry and returns the removed entry (admin operation)
// @Tags currencies
// @Produce  json
// @Param   currencyCode path string true "Currency code (3 letters, case-insensitive)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Code cannot be unregistered"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to unregister currency"
// @Security BearerAuth
// @Router /currencies/{currencyCode} [delete]
func (h *currencyHandler) unregisterCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currencyCode")

	removerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Remover user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("currency_code", currencyCode),
		slog.String("remover_user_id", removerUserID),
	)

	removed, err := h.currencyService.UnregisterCurrency(c.Request.Context(), currencyCode, removerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency to unregister not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Refused to unregister currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to unregister currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister currency"})
		}
		return
	}

	logger.Info("Currency unregistered successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(removed))
}
