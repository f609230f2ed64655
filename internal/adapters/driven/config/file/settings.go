package file

import (
	"time"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyOutputDir       = "output.dir"
	KeyOutputOpenMensa = "output.openmensa"
	KeyFetchBaseURL    = "fetch.base_url"
	KeyFetchRate       = "fetch.rate"
	KeyFetchTimeout    = "fetch.timeout_seconds"
	KeyFetchUserAgent  = "fetch.user_agent"
	KeyFetchPdftotext  = "fetch.pdftotext"

	// KeyFetchURLPrefix prefixes the per-source PDF URL templates,
	// e.g. "fetch.urls.fmi-bistro".
	KeyFetchURLPrefix = "fetch.urls."
)

// Defaults applied when a key is not configured.
const (
	DefaultOutputDir      = "./dist"
	DefaultFetchBaseURL   = "https://www.studentenwerk-muenchen.de/mensa/speiseplan"
	DefaultFetchRate      = 1.0
	DefaultFetchTimeout   = 30
	DefaultFetchUserAgent = "eat-cli"
	DefaultPdftotext      = "pdftotext"
)

// Settings is the typed application configuration.
type Settings struct {
	OutputDir       string
	OutputOpenMensa bool

	FetchBaseURL   string
	FetchRate      float64
	FetchTimeout   time.Duration
	FetchUserAgent string
	Pdftotext      string

	// TextURLs maps a text source to the URL template of its weekly PDF.
	TextURLs map[string]string
}

// DefaultSettings returns the settings used without any configuration.
func DefaultSettings() Settings {
	return Settings{
		OutputDir:      DefaultOutputDir,
		FetchBaseURL:   DefaultFetchBaseURL,
		FetchRate:      DefaultFetchRate,
		FetchTimeout:   DefaultFetchTimeout * time.Second,
		FetchUserAgent: DefaultFetchUserAgent,
		Pdftotext:      DefaultPdftotext,
		TextURLs:       map[string]string{},
	}
}

// LoadSettings resolves the typed settings from store, falling back to
// defaults for missing or invalid values. A nil store yields the defaults.
func LoadSettings(store driven.ConfigStore) Settings {
	s := DefaultSettings()
	if store == nil {
		return s
	}

	if v := store.GetString(KeyOutputDir); v != "" {
		s.OutputDir = v
	}
	s.OutputOpenMensa = store.GetBool(KeyOutputOpenMensa)
	if v := store.GetString(KeyFetchBaseURL); v != "" {
		s.FetchBaseURL = v
	}
	if v := store.GetFloat(KeyFetchRate); v > 0 {
		s.FetchRate = v
	}
	if v := store.GetInt(KeyFetchTimeout); v > 0 {
		s.FetchTimeout = time.Duration(v) * time.Second
	}
	if v := store.GetString(KeyFetchUserAgent); v != "" {
		s.FetchUserAgent = v
	}
	if v := store.GetString(KeyFetchPdftotext); v != "" {
		s.Pdftotext = v
	}
	for _, source := range domain.Sources() {
		if v := store.GetString(KeyFetchURLPrefix + source); v != "" {
			s.TextURLs[source] = v
		}
	}
	return s
}
