package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/core/domain"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/dto"
	"github.com/moneta-svc/moneta/internal/handlers" // Import handlers package
	"github.com/moneta-svc/moneta/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

const testIssuer = "moneta-test"

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyInfo), args.Error(1)
}
func (m *MockCurrencyService) FindCurrenciesByToken(ctx context.Context, token string) ([]domain.CurrencyInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyInfo), args.Error(1)
}
func (m *MockCurrencyService) CurrencyForLocale(ctx context.Context, tag language.Tag) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}
func (m *MockCurrencyService) RegisterCurrency(ctx context.Context, req dto.RegisterCurrencyRequest, creatorUserID string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}
func (m *MockCurrencyService) UnregisterCurrency(ctx context.Context, currencyCode string, removerUserID string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, currencyCode, removerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}
func (m *MockCurrencyService) LoadPersisted(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	jwtSecret           string // Store JWT secret for token generation
}

// int8Ptr returns a pointer to the provided int8 value.
func int8Ptr(i int8) *int8 {
	return &i
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CurrencyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCurrencyService = new(MockCurrencyService)

	// Mirror the production layering: reads are public, writes sit behind
	// the actual AuthMiddleware
	public := suite.router.Group("/api/v1", middleware.LocaleMiddleware(language.AmericanEnglish))
	protected := public.Group("", middleware.AuthMiddleware(suite.jwtSecret, testIssuer))
	handlers.RegisterCurrencyRoutes(public, protected, suite.mockCurrencyService)
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	expected := []domain.CurrencyInfo{
		{Code: "EUR", NumericCode: "978", Name: "Euro", Symbol: "€", InternationalSymbol: "€", MinorUnit: 2, IsISO: true},
		{Code: "USD", NumericCode: "840", Name: "US Dollar", Symbol: "$", InternationalSymbol: "US$", MinorUnit: 2, IsISO: true},
	}

	suite.mockCurrencyService.On("ListCurrencies",
		mock.AnythingOfType("*context.valueCtx"), // Context carries values from middleware
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody []dto.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody, 2)
	if len(responseBody) == 2 {
		suite.Equal("EUR", responseBody[0].Code)
		suite.Equal("USD", responseBody[1].Code)
		suite.Equal(int8(2), responseBody[0].MinorUnit)
	}

	suite.mockCurrencyService.AssertExpectations(suite.T())
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "FindCurrenciesByToken")
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_TokenFilter() {
	// "kr" is shared by the Nordic currencies, so all of them come back
	expected := []domain.CurrencyInfo{
		{Code: "DKK", Name: "Danish Krone", Symbol: "kr", MinorUnit: 2, IsISO: true},
		{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", MinorUnit: 2, IsISO: true},
		{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", MinorUnit: 2, IsISO: true},
	}

	suite.mockCurrencyService.On("FindCurrenciesByToken", mock.Anything, "kr").
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies?token=kr", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody []dto.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Len(responseBody, 3)

	suite.mockCurrencyService.AssertExpectations(suite.T())
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "ListCurrencies")
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_Success() {
	expected := &domain.CurrencyInfo{
		Code: "JOD", NumericCode: "400", Name: "Jordanian Dinar",
		Symbol: "د.أ", InternationalSymbol: "JD", MinorUnit: 3, IsISO: true,
	}

	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, "JOD").
		Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/JOD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("JOD", responseBody.Code)
	suite.Equal(int8(3), responseBody.MinorUnit)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, "ZZZ").
		Return(nil, fmt.Errorf("currency ZZZ: %w", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/ZZZ", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_MalformedCode() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/EURO", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "GetCurrencyByCode")
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrentCurrency_FromQueryLocale() {
	expected := &domain.CurrencyInfo{
		Code: "DKK", NumericCode: "208", Name: "Danish Krone",
		Symbol: "kr", InternationalSymbol: "Dkr", MinorUnit: 2, IsISO: true,
	}

	suite.mockCurrencyService.On("CurrencyForLocale",
		mock.Anything,
		mock.MatchedBy(func(tag language.Tag) bool { return tag.String() == "da-DK" }),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/current?locale=da-DK", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("DKK", responseBody.Code)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrentCurrency_MalformedLocale() {
	// The locale middleware rejects the request before the handler runs
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/current?locale=not!!valid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "CurrencyForLocale")
}

func (suite *CurrencyHandlerTestSuite) TestRegisterCurrency_Success() {
	creatorUserID := uuid.NewString()
	reqBody := dto.RegisterCurrencyRequest{
		Code:               "BTC",
		Name:               "Bitcoin",
		Symbol:             "₿",
		AlternativeSymbols: []string{"BTC"},
		MinorUnit:          int8Ptr(8),
	}
	expected := &domain.CurrencyInfo{
		Code: "BTC", NumericCode: "000", Name: "Bitcoin",
		Symbol: "₿", InternationalSymbol: "₿",
		AlternativeSymbols: []string{"BTC"}, MinorUnit: 8,
	}

	suite.mockCurrencyService.On("RegisterCurrency",
		mock.Anything,
		mock.MatchedBy(func(r dto.RegisterCurrencyRequest) bool { return r.Code == "BTC" }),
		creatorUserID, // Expect the user ID from the token
	).Return(expected, nil).Once()

	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	token := suite.generateTestToken(creatorUserID)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("BTC", responseBody.Code)
	suite.Equal(int8(8), responseBody.MinorUnit)
	suite.False(responseBody.IsISO)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestRegisterCurrency_NoToken() {
	reqBody := dto.RegisterCurrencyRequest{Code: "BTC", Name: "Bitcoin"}

	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "RegisterCurrency")
}

func (suite *CurrencyHandlerTestSuite) TestRegisterCurrency_Duplicate() {
	userID := uuid.NewString()
	reqBody := dto.RegisterCurrencyRequest{Code: "EUR", Name: "Euro"}

	suite.mockCurrencyService.On("RegisterCurrency", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("currency EUR: %w", apperrors.ErrDuplicate)).Once()

	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)

	var responseBody map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Contains(responseBody["error"], "already registered")

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestRegisterCurrency_InvalidCode() {
	userID := uuid.NewString()
	// Binding rejects a code that is not exactly 3 letters
	jsonBody := []byte(`{"code":"TOOLONG","name":"Bad"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "RegisterCurrency")
}

func (suite *CurrencyHandlerTestSuite) TestUnregisterCurrency_Success() {
	removerUserID := uuid.NewString()
	removed := &domain.CurrencyInfo{Code: "BTC", Name: "Bitcoin", Symbol: "₿", MinorUnit: 8}

	suite.mockCurrencyService.On("UnregisterCurrency", mock.Anything, "BTC", removerUserID).
		Return(removed, nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/currencies/BTC", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(removerUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("BTC", responseBody.Code, "Removed entry comes back in the response")

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestUnregisterCurrency_NotFound() {
	userID := uuid.NewString()

	suite.mockCurrencyService.On("UnregisterCurrency", mock.Anything, "ZZZ", userID).
		Return(nil, fmt.Errorf("currency ZZZ: %w", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/currencies/ZZZ", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
