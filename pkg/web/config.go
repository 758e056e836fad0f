package web

import "time"

// Config holds web host settings read from the environment.
type Config struct {
	CookieName     string        `env:"WEB_COOKIE_NAME" envDefault:"pid"`
	CookieSecure   bool          `env:"WEB_COOKIE_SECURE" envDefault:"false"`
	SessionTTL     time.Duration `env:"WEB_SESSION_TTL" envDefault:"30m"`
	MaxSessions    int           `env:"WEB_MAX_SESSIONS" envDefault:"10000"`
	ServeContent   bool          `env:"WEB_SERVE_CONTENT" envDefault:"true"`
	DatastarScript string        `env:"WEB_DATASTAR_SCRIPT" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"`
	StylesheetURL  string        `env:"WEB_STYLESHEET" envDefault:"/assets/css/style.css"`
	// AssetsDir replaces the embedded /assets/ files when set.
	AssetsDir string `env:"WEB_ASSETS_DIR"`
}

func (c Config) cookieName() string {
	if c.CookieName == "" {
		return "pid"
	}
	return c.CookieName
}
