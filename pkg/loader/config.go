package loader

import (
	"time"

	"github.com/linoteia/portfolio/pkg/i18n"
)

// Config holds loader settings read from the environment.
type Config struct {
	FadeDelay       time.Duration `env:"LOADER_FADE_DELAY" envDefault:"200ms"`
	DefaultLanguage string        `env:"LOADER_DEFAULT_LANGUAGE" envDefault:"en"`
	Languages       []string      `env:"LOADER_LANGUAGES" envDefault:"en,es,ru" envSeparator:","`
	CancelStale     bool          `env:"LOADER_CANCEL_STALE" envDefault:"false"`
}

// LanguageSet builds the offered language set from the config.
func (c Config) LanguageSet() (*i18n.Set, error) {
	return i18n.NewSet(c.DefaultLanguage, c.Languages...)
}
