package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HintsServedTotal counts served hints by source:
	// "database", "cache", "gemini", "fallback".
	HintsServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codementor_hints_served_total",
		Help: "Total number of hints served, by source",
	}, []string{"source"})

	GenerationAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codementor_generation_attempts_total",
		Help: "Total number of Gemini generation attempts, by outcome",
	}, []string{"outcome"})

	HintValidationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codementor_hint_validation_failures_total",
		Help: "Total number of generated hints rejected by the validator",
	})

	HintCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codementor_hint_cache_hits_total",
		Help: "Total number of in-process hint cache hits",
	})

	HintCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codementor_hint_cache_misses_total",
		Help: "Total number of in-process hint cache misses",
	})
)
