package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	selectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_loader_selects_total",
		Help: "Language selections by outcome.",
	}, []string{"status"})

	appliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_loader_applies_total",
		Help: "Content replacements by language.",
	}, []string{"lang"})

	staleDiscards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_loader_stale_discards_total",
		Help: "Scheduled applies dropped because a newer selection was issued.",
	})
)
