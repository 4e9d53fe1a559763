package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
// CurrencyRepo may be nil when the service runs without a database.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
}
