package commands

import (
	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/httpserver"
	"github.com/linoteia/portfolio/pkg/loader"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/redis"
	"github.com/linoteia/portfolio/pkg/theme"
	"github.com/linoteia/portfolio/pkg/web"
)

// appConfig gathers every package config read from the environment.
type appConfig struct {
	Log     logger.Config
	HTTP    httpserver.Config
	Web     web.Config
	Loader  loader.Config
	Theme   theme.Config
	Content content.Config
	Redis   redis.Config

	FlagsFile string `env:"FEATURE_FLAGS_FILE"`
}
