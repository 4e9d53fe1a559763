package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/moneta-svc/moneta/internal/dto"
	"github.com/moneta-svc/moneta/internal/middleware"
	"github.com/moneta-svc/moneta/internal/platform/config"
	"github.com/moneta-svc/moneta/internal/utils"
)

// AuthHandler issues JWT tokens for the configured admin account.
type AuthHandler struct {
	adminUser         string
	adminPasswordHash string
	jwtSecret         string
	jwtIssuer         string
	jwtDuration       time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		adminUser:         cfg.AdminUser,
		adminPasswordHash: cfg.AdminPasswordHash,
		jwtSecret:         cfg.JWTSecret,
		jwtIssuer:         cfg.JWTIssuer,
		jwtDuration:       cfg.JWTExpiryDuration,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterAuthRoutes sets up the token endpoint. The route stays public since
// it is the one that hands out tokens, so it carries its own tight rate limit.
func RegisterAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 requests per minute per client IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/token", limitMiddleware, h.Token)
	}
}

// Token godoc
// @Summary Issue an admin token
// @Description Authenticates the configured admin account and returns a JWT token for registry write operations.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Admin Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if h.adminUser == "" || h.adminPasswordHash == "" {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Admin credentials are not configured; token endpoint disabled")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}
	if req.Username != h.adminUser || !utils.CheckPasswordHash(req.Password, h.adminPasswordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	claims := jwt.RegisteredClaims{
		Issuer:    h.jwtIssuer,
		Subject:   h.adminUser,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.jwtDuration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: signedString})
}
