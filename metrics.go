package geopage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sitesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geopage_sites_created_total",
		Help: "Total number of saved sites.",
	})

	sitesUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geopage_sites_updated_total",
		Help: "Total number of successful site edits.",
	})

	rendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geopage_renders_total",
			Help: "Total number of generated documents by kind (preview, download, raw, detail, api).",
		},
		[]string{"kind"},
	)

	guestbookEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geopage_guestbook_entries_total",
		Help: "Total number of accepted guestbook signatures.",
	})

	validationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geopage_validation_failures_total",
			Help: "Total number of rejected submissions by form.",
		},
		[]string{"form"},
	)

	rateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geopage_rate_limited_total",
			Help: "Total number of requests refused by a rate limiter.",
		},
		[]string{"action"},
	)
)
