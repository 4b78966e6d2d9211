package driving

import "github.com/custodia-labs/wordle-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for a single configuration key and persists it.
	// Unknown keys and unparseable values return domain.ErrInvalidInput.
	Set(key, value string) error

	// Keys lists the configuration keys Set accepts, in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
