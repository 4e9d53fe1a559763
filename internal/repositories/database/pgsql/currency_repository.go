package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneta-svc/moneta/internal/apperrors"
	"github.com/moneta-svc/moneta/internal/core/domain"
	portsrepo "github.com/moneta-svc/moneta/internal/core/ports/repositories"
	"github.com/moneta-svc/moneta/internal/models"
	"github.com/moneta-svc/moneta/internal/utils/mapping"
)

// PgxCurrencyRepository persists user-registered currencies. The seeded ISO
// set never reaches this table; only registrations do.
type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a newly registered currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyInfo, creatorUserID string) error {
	modelCurr := mapping.ToModelCurrency(currency)
	now := time.Now().UTC()

	query := `
		INSERT INTO currencies (currency_code, numeric_code, name, symbol, international_symbol, alternative_symbols, minor_unit, is_iso, reference_tag, introduced_on, expired_on, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.NumericCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.InternationalSymbol,
		modelCurr.AlternativeSymbols,
		modelCurr.MinorUnit,
		modelCurr.IsISO,
		modelCurr.ReferenceTag,
		modelCurr.IntroducedOn,
		modelCurr.ExpiredOn,
		now,           // created_at
		creatorUserID, // created_by
		now,           // last_updated_at
		creatorUserID, // last_updated_by
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: currency %s already persisted", apperrors.ErrDuplicate, modelCurr.CurrencyCode)
			}
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// DeleteCurrency removes a persisted currency row.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	query := `
		DELETE FROM currencies
		WHERE currency_code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByCode retrieves a persisted currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyInfo, error) {
	query := `
		SELECT currency_code, numeric_code, name, symbol, international_symbol, alternative_symbols, minor_unit, is_iso, reference_tag, introduced_on, expired_on, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.NumericCode,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.InternationalSymbol,
		&modelCurr.AlternativeSymbols,
		&modelCurr.MinorUnit,
		&modelCurr.IsISO,
		&modelCurr.ReferenceTag,
		&modelCurr.IntroducedOn,
		&modelCurr.ExpiredOn,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all persisted currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	query := `
		SELECT currency_code, numeric_code, name, symbol, international_symbol, alternative_symbols, minor_unit, is_iso, reference_tag, introduced_on, expired_on, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.NumericCode,
			&currency.Name,
			&currency.Symbol,
			&currency.InternationalSymbol,
			&currency.AlternativeSymbols,
			&currency.MinorUnit,
			&currency.IsISO,
			&currency.ReferenceTag,
			&currency.IntroducedOn,
			&currency.ExpiredOn,
			&currency.CreatedAt,
			&currency.CreatedBy,
			&currency.LastUpdatedAt,
			&currency.LastUpdatedBy,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CurrencyInfo{}, nil // Return empty domain slice
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
