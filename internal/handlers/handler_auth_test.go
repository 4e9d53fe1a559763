package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moneta-svc/moneta/internal/dto"
	"github.com/moneta-svc/moneta/internal/handlers"
	"github.com/moneta-svc/moneta/internal/platform/config"
	"github.com/moneta-svc/moneta/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	hash, err := utils.HashPassword("s3cret-admin-pass")
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		AdminUser:         "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         testIssuer,
		JWTExpiryDuration: time.Hour,
	}
	handlers.RegisterAuthRoutes(suite.router, suite.cfg)
}

func (suite *AuthHandlerTestSuite) postToken(body dto.TokenRequest) *httptest.ResponseRecorder {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestToken_Success() {
	w := suite.postToken(dto.TokenRequest{Username: "admin", Password: "s3cret-admin-pass"})

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.TokenResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.NotEmpty(responseBody.Token)

	// The issued token must be verifiable with the configured secret and
	// carry the admin identity
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(responseBody.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	suite.NoError(err)
	suite.True(parsed.Valid)
	suite.Equal("admin", claims.Subject)
	suite.Equal(testIssuer, claims.Issuer)
}

func (suite *AuthHandlerTestSuite) TestToken_WrongPassword() {
	w := suite.postToken(dto.TokenRequest{Username: "admin", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestToken_UnknownUser() {
	w := suite.postToken(dto.TokenRequest{Username: "intruder", Password: "s3cret-admin-pass"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestToken_MissingFields() {
	w := suite.postToken(dto.TokenRequest{Username: "admin"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestToken_AdminNotConfigured() {
	// A separate router without admin credentials rejects every login
	router := gin.New()
	handlers.RegisterAuthRoutes(router, &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         testIssuer,
		JWTExpiryDuration: time.Hour,
	})

	jsonBody, _ := json.Marshal(dto.TokenRequest{Username: "admin", Password: "anything"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
