package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/core/domain"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/core/services"
	"github.com/moneta-svc/moneta/internal/dto"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyInfo, creatorUserID string) error {
	args := m.Called(ctx, currency, creatorUserID)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyRegistryServiceTestSuite struct {
	suite.Suite
	service portssvc.CurrencySvcFacade // memory-only registry, fresh per test
}

func (suite *CurrencyRegistryServiceTestSuite) SetupTest() {
	suite.service = services.NewCurrencyRegistryService(nil)
}

func btcRequest() dto.RegisterCurrencyRequest {
	minor := int8(8)
	return dto.RegisterCurrencyRequest{
		Code:               "BTC",
		Name:               "Bitcoin",
		Symbol:             "₿",
		AlternativeSymbols: []string{"Ƀ"},
		MinorUnit:          &minor,
	}
}

// --- Test Cases ---

func (suite *CurrencyRegistryServiceTestSuite) TestGetCurrencyByCode_SeededISO() {
	ctx := context.Background()

	usd, err := suite.service.GetCurrencyByCode(ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal("US Dollar", usd.Name)
	suite.Equal("$", usd.Symbol)
	suite.Equal(domain.MinorUnitTwo, usd.MinorUnit)
	suite.True(usd.IsISO)

	// Lookup is case-insensitive.
	lower, err := suite.service.GetCurrencyByCode(ctx, "usd")
	suite.Require().NoError(err)
	suite.Equal("USD", lower.Code)
}

func (suite *CurrencyRegistryServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	info, err := suite.service.GetCurrencyByCode(ctx, "ZZZ")

	suite.Require().Error(err)
	suite.Nil(info)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyRegistryServiceTestSuite) TestListCurrencies_SortedByCode() {
	ctx := context.Background()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotEmpty(currencies)
	for i := 1; i < len(currencies); i++ {
		suite.Less(currencies[i-1].Code, currencies[i].Code)
	}
}

func (suite *CurrencyRegistryServiceTestSuite) TestFindCurrenciesByToken() {
	ctx := context.Background()

	euro, err := suite.service.FindCurrenciesByToken(ctx, "€")
	suite.Require().NoError(err)
	suite.Require().Len(euro, 1)
	suite.Equal("EUR", euro[0].Code)

	kroner, err := suite.service.FindCurrenciesByToken(ctx, "kr")
	suite.Require().NoError(err)
	codes := make([]string, len(kroner))
	for i, c := range kroner {
		codes[i] = c.Code
	}
	suite.Equal([]string{"DKK", "ISK", "NOK", "SEK"}, codes)

	dollar, err := suite.service.FindCurrenciesByToken(ctx, "$")
	suite.Require().NoError(err)
	suite.Greater(len(dollar), 5)

	// Codes match case-insensitively, symbols exactly.
	byLowerCode, err := suite.service.FindCurrenciesByToken(ctx, "usd")
	suite.Require().NoError(err)
	suite.Require().Len(byLowerCode, 1)
	suite.Equal("USD", byLowerCode[0].Code)

	none, err := suite.service.FindCurrenciesByToken(ctx, "")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *CurrencyRegistryServiceTestSuite) TestCurrencyForLocale() {
	ctx := context.Background()

	usd, err := suite.service.CurrencyForLocale(ctx, language.MustParse("en-US"))
	suite.Require().NoError(err)
	suite.Equal("USD", usd.Code)

	eur, err := suite.service.CurrencyForLocale(ctx, language.MustParse("de-DE"))
	suite.Require().NoError(err)
	suite.Equal("EUR", eur.Code)

	none, err := suite.service.CurrencyForLocale(ctx, language.Und)
	suite.Require().NoError(err)
	suite.True(none.IsNoCurrency())
}

func (suite *CurrencyRegistryServiceTestSuite) TestRegisterCurrency_Success() {
	ctx := context.Background()

	info, err := suite.service.RegisterCurrency(ctx, btcRequest(), "tester")

	suite.Require().NoError(err)
	suite.Equal("BTC", info.Code)
	suite.False(info.IsISO)
	suite.Equal(domain.MinorUnit(8), info.MinorUnit)

	found, err := suite.service.FindCurrenciesByToken(ctx, "₿")
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("BTC", found[0].Code)
}

func (suite *CurrencyRegistryServiceTestSuite) TestRegisterCurrency_DuplicateOfISO() {
	ctx := context.Background()
	req := btcRequest()
	req.Code = "USD"

	info, err := suite.service.RegisterCurrency(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(info)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyRegistryServiceTestSuite) TestRegisterCurrency_InvalidCode() {
	ctx := context.Background()
	req := btcRequest()
	req.Code = "TOOLONG"

	info, err := suite.service.RegisterCurrency(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(info)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyRegistryServiceTestSuite) TestUnregisterCurrency_ReturnsRemoved() {
	ctx := context.Background()
	_, err := suite.service.RegisterCurrency(ctx, btcRequest(), "tester")
	suite.Require().NoError(err)

	removed, err := suite.service.UnregisterCurrency(ctx, "btc", "tester")

	suite.Require().NoError(err)
	suite.Equal("BTC", removed.Code)
	suite.Equal("Bitcoin", removed.Name)

	_, err = suite.service.GetCurrencyByCode(ctx, "BTC")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	found, err := suite.service.FindCurrenciesByToken(ctx, "₿")
	suite.Require().NoError(err)
	suite.Empty(found)
}

func (suite *CurrencyRegistryServiceTestSuite) TestUnregisterCurrency_NotFound() {
	ctx := context.Background()

	removed, err := suite.service.UnregisterCurrency(ctx, "ZZZ", "tester")

	suite.Require().Error(err)
	suite.Nil(removed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyRegistryServiceTestSuite) TestUnregisterCurrency_SentinelRefused() {
	ctx := context.Background()

	removed, err := suite.service.UnregisterCurrency(ctx, domain.NoCurrencyCode, "tester")

	suite.Require().Error(err)
	suite.Nil(removed)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyRegistryServiceTestSuite) TestSharedSymbolSurvivesUnregister() {
	ctx := context.Background()

	_, err := suite.service.UnregisterCurrency(ctx, "SEK", "tester")
	suite.Require().NoError(err)

	kroner, err := suite.service.FindCurrenciesByToken(ctx, "kr")
	suite.Require().NoError(err)
	codes := make([]string, len(kroner))
	for i, c := range kroner {
		codes[i] = c.Code
	}
	suite.Equal([]string{"DKK", "ISK", "NOK"}, codes)
}

func (suite *CurrencyRegistryServiceTestSuite) TestConcurrentReadersAndWriter() {
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, _ = suite.service.GetCurrencyByCode(ctx, "EUR")
				_, _ = suite.service.FindCurrenciesByToken(ctx, "$")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			_, _ = suite.service.RegisterCurrency(ctx, btcRequest(), "tester")
			_, _ = suite.service.UnregisterCurrency(ctx, "BTC", "tester")
		}
	}()
	wg.Wait()

	eur, err := suite.service.GetCurrencyByCode(ctx, "EUR")
	suite.Require().NoError(err)
	suite.Equal("EUR", eur.Code)
}

// --- Persistence tests ---

type CurrencyRegistryPersistenceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyRegistryPersistenceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyRegistryService(suite.mockRepo)
}

func (suite *CurrencyRegistryPersistenceTestSuite) TestRegisterCurrency_WritesThrough() {
	ctx := context.Background()

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.CurrencyInfo) bool {
		return c.Code == "BTC" && c.Name == "Bitcoin"
	}), "tester").Return(nil).Once()

	info, err := suite.service.RegisterCurrency(ctx, btcRequest(), "tester")

	suite.Require().NoError(err)
	suite.Equal("BTC", info.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryPersistenceTestSuite) TestRegisterCurrency_RepoFailureLeavesRegistryUnchanged() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.CurrencyInfo"), "tester").Return(expectedErr).Once()

	info, err := suite.service.RegisterCurrency(ctx, btcRequest(), "tester")

	suite.Require().Error(err)
	suite.Nil(info)
	suite.ErrorIs(err, expectedErr)

	_, err = suite.service.GetCurrencyByCode(ctx, "BTC")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryPersistenceTestSuite) TestUnregisterCurrency_MissingRowIsFine() {
	ctx := context.Background()

	// Seeded ISO entries have no persisted row to delete.
	suite.mockRepo.On("DeleteCurrency", ctx, "VEF").Return(apperrors.ErrNotFound).Once()

	removed, err := suite.service.UnregisterCurrency(ctx, "VEF", "tester")

	suite.Require().NoError(err)
	suite.Equal("VEF", removed.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryPersistenceTestSuite) TestLoadPersisted_OverlaysRegistry() {
	ctx := context.Background()
	stored, buildErr := domain.NewCurrencyBuilder("BTC").
		WithName("Bitcoin").
		WithSymbol("₿").
		WithMinorUnit(domain.MinorUnit(8)).
		Build()
	suite.Require().NoError(buildErr)

	suite.mockRepo.On("ListCurrencies", ctx).Return([]domain.CurrencyInfo{stored}, nil).Once()

	err := suite.service.LoadPersisted(ctx)

	suite.Require().NoError(err)
	info, err := suite.service.GetCurrencyByCode(ctx, "BTC")
	suite.Require().NoError(err)
	suite.Equal("Bitcoin", info.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryPersistenceTestSuite) TestLoadPersisted_NoRepoIsNoOp() {
	ctx := context.Background()
	memOnly := services.NewCurrencyRegistryService(nil)

	suite.Require().NoError(memOnly.LoadPersisted(ctx))
}

// --- Run Suites ---
func TestCurrencyRegistryService(t *testing.T) {
	suite.Run(t, new(CurrencyRegistryServiceTestSuite))
}

func TestCurrencyRegistryPersistence(t *testing.T) {
	suite.Run(t, new(CurrencyRegistryPersistenceTestSuite))
}
