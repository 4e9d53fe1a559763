package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/core/domain"
	portsrepo "github.com/moneta-svc/moneta/internal/core/ports/repositories"
	portssvc "github.com/moneta-svc/moneta/internal/core/ports/services"
	"github.com/moneta-svc/moneta/internal/dto"
	"github.com/moneta-svc/moneta/internal/platform/locale"
)

// currencyRegistryService implements CurrencySvcFacade as an in-memory
// registry seeded with the ISO 4217 dataset. User-defined currencies are
// written through to the repository when one is configured, so they survive
// restarts; reads never touch the database.
type currencyRegistryService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade // nil when running memory-only

	mu      sync.RWMutex
	byCode  map[string]domain.CurrencyInfo
	byToken map[string][]string // symbol or code -> sorted currency codes
}

// NewCurrencyRegistryService creates a registry pre-populated with the ISO
// 4217 dataset. currencyRepo may be nil to run without persistence.
func NewCurrencyRegistryService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	s := &currencyRegistryService{
		currencyRepo: currencyRepo,
		byCode:       make(map[string]domain.CurrencyInfo),
		byToken:      make(map[string][]string),
	}
	for _, info := range domain.ISO4217Currencies() {
		s.insertLocked(info)
	}
	return s
}

// Ensure currencyRegistryService implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyRegistryService)(nil)

// insertLocked adds info to both indexes. Callers hold the write lock
// (or own the registry exclusively, as during construction).
func (s *currencyRegistryService) insertLocked(info domain.CurrencyInfo) {
	s.byCode[info.Code] = info
	for _, token := range info.Tokens() {
		codes := append(s.byToken[token], info.Code)
		sort.Strings(codes)
		s.byToken[token] = codes
	}
}

// removeLocked drops the entry for code from both indexes and returns it.
// Callers hold the write lock.
func (s *currencyRegistryService) removeLocked(code string) (domain.CurrencyInfo, bool) {
	info, ok := s.byCode[code]
	if !ok {
		return domain.CurrencyInfo{}, false
	}
	delete(s.byCode, code)
	for _, token := range info.Tokens() {
		codes := s.byToken[token]
		kept := codes[:0]
		for _, c := range codes {
			if c != code {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			delete(s.byToken, token)
		} else {
			s.byToken[token] = kept
		}
	}
	return info, true
}

// GetCurrencyByCode retrieves a registry entry by its case-insensitive code.
func (s *currencyRegistryService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyInfo, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)

	s.mu.RLock()
	info, ok := s.byCode[code]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: currency %q is not registered", apperrors.ErrNotFound, code)
	}

	out := info.Clone()
	return &out, nil
}

// ListCurrencies retrieves every registry entry sorted by code.
func (s *currencyRegistryService) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	s.mu.RLock()
	codes := make([]string, 0, len(s.byCode))
	for code := range s.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]domain.CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, s.byCode[code].Clone())
	}
	s.mu.RUnlock()

	return out, nil
}

// FindCurrenciesByToken retrieves the currencies whose symbol, international
// symbol, alternative symbol or code equals token, sorted by code. Symbols
// match exactly; codes also match case-insensitively.
func (s *currencyRegistryService) FindCurrenciesByToken(ctx context.Context, token string) ([]domain.CurrencyInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return []domain.CurrencyInfo{}, nil
	}

	s.mu.RLock()
	codes := s.byToken[token]
	if upper := domain.NormalizeCurrencyCode(token); upper != token {
		codes = mergeSortedCodes(codes, s.byToken[upper])
	}
	out := make([]domain.CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, s.byCode[code].Clone())
	}
	s.mu.RUnlock()

	return out, nil
}

// CurrencyForLocale resolves the currency circulating in the locale's region.
// Locales without a known tender currency, and tender currencies no longer in
// the registry, resolve to the no-currency sentinel.
func (s *currencyRegistryService) CurrencyForLocale(ctx context.Context, tag language.Tag) (*domain.CurrencyInfo, error) {
	code, ok := locale.CurrencyCode(tag)
	if !ok {
		s.LogDebug(ctx, "Locale has no tender currency, using no-currency sentinel",
			slog.String("locale", tag.String()))
		info := domain.NoCurrency()
		return &info, nil
	}

	info, err := s.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Tender currency for locale is not registered, using no-currency sentinel",
				slog.String("locale", tag.String()),
				slog.String("currency_code", code))
			sentinel := domain.NoCurrency()
			return &sentinel, nil
		}
		return nil, err
	}
	return info, nil
}

// RegisterCurrency validates and adds a user-defined currency. Codes already
// present, including the compiled-in ISO set, are duplicates.
func (s *currencyRegistryService) RegisterCurrency(ctx context.Context, req dto.RegisterCurrencyRequest, creatorUserID string) (*domain.CurrencyInfo, error) {
	builder := domain.NewCurrencyBuilder(req.Code).
		WithName(req.Name).
		WithSymbol(req.Symbol).
		WithInternationalSymbol(req.InternationalSymbol).
		WithAlternativeSymbols(req.AlternativeSymbols...)

	if req.NumericCode != "" {
		builder = builder.WithNumericCode(req.NumericCode)
	}
	if req.MinorUnit != nil {
		mu, err := domain.NewMinorUnit(*req.MinorUnit)
		if err != nil {
			return nil, err
		}
		builder = builder.WithMinorUnit(mu)
	} else {
		builder = builder.WithMinorUnit(domain.MinorUnitTwo)
	}
	if req.ReferenceTag != "" {
		if _, err := locale.Parse(req.ReferenceTag); err != nil {
			return nil, err
		}
		builder = builder.WithReferenceTag(req.ReferenceTag)
	}
	if req.IntroducedOn != "" {
		t, err := time.Parse(time.DateOnly, req.IntroducedOn)
		if err != nil {
			return nil, fmt.Errorf("%w: introducedOn %q is not a YYYY-MM-DD date", apperrors.ErrValidation, req.IntroducedOn)
		}
		builder = builder.WithIntroducedOn(t)
	}
	if req.ExpiredOn != "" {
		t, err := time.Parse(time.DateOnly, req.ExpiredOn)
		if err != nil {
			return nil, fmt.Errorf("%w: expiredOn %q is not a YYYY-MM-DD date", apperrors.ErrValidation, req.ExpiredOn)
		}
		builder = builder.WithExpiredOn(t)
	}

	info, err := builder.Build()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byCode[info.Code]; exists {
		return nil, fmt.Errorf("%w: currency %s is already registered", apperrors.ErrDuplicate, info.Code)
	}

	// Write-through before touching the indexes so a failed insert leaves
	// the registry unchanged.
	if s.currencyRepo != nil {
		if err := s.currencyRepo.SaveCurrency(ctx, info, creatorUserID); err != nil {
			s.LogError(ctx, err, "Failed to persist currency",
				slog.String("currency_code", info.Code))
			return nil, err
		}
	}

	s.insertLocked(info)
	s.LogInfo(ctx, "Currency registered",
		slog.String("currency_code", info.Code),
		slog.String("created_by", creatorUserID))

	out := info.Clone()
	return &out, nil
}

// UnregisterCurrency removes a currency and returns the removed entry. The
// no-currency sentinel stays registered so locale fallback always resolves.
func (s *currencyRegistryService) UnregisterCurrency(ctx context.Context, currencyCode string, removerUserID string) (*domain.CurrencyInfo, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if code == domain.NoCurrencyCode {
		return nil, fmt.Errorf("%w: the no-currency sentinel cannot be unregistered", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.removeLocked(code)
	if !ok {
		return nil, fmt.Errorf("%w: currency %q is not registered", apperrors.ErrNotFound, code)
	}

	if s.currencyRepo != nil {
		// Seeded ISO entries were never persisted, so a missing row is fine.
		if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete persisted currency",
				slog.String("currency_code", code))
			s.insertLocked(info)
			return nil, err
		}
	}

	s.LogInfo(ctx, "Currency unregistered",
		slog.String("currency_code", code),
		slog.String("removed_by", removerUserID))

	out := info.Clone()
	return &out, nil
}

// LoadPersisted overlays repository entries onto the registry, replacing any
// in-memory entry with the same code. Last write wins so edits made through
// the API survive restarts.
func (s *currencyRegistryService) LoadPersisted(ctx context.Context) error {
	if s.currencyRepo == nil {
		return nil
	}

	persisted, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted currencies: %w", err)
	}

	s.mu.Lock()
	for _, info := range persisted {
		s.removeLocked(info.Code)
		s.insertLocked(info)
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Persisted currencies loaded",
		slog.Int("count", len(persisted)))
	return nil
}

// mergeSortedCodes unions two sorted code slices without duplicates.
func mergeSortedCodes(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	merged := make([]string, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.Strings(merged)
	out := merged[:1]
	for _, c := range merged[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
