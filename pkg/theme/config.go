package theme

import "time"

// Config holds theme toggle settings read from the environment.
type Config struct {
	FadeOut time.Duration `env:"THEME_FADE_OUT" envDefault:"100ms"`
	FadeIn  time.Duration `env:"THEME_FADE_IN" envDefault:"400ms"`
	Default string        `env:"THEME_DEFAULT" envDefault:"dark"`
}
