package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	billsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bills_parsed_total",
		Help: "Number of bill documents successfully parsed.",
	})
	parseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bills_parse_failures_total",
		Help: "Number of bill documents whose text extraction failed.",
	})
	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bills_parse_duration_seconds",
		Help:    "Wall time for extract+assemble per document.",
		Buckets: prometheus.DefBuckets,
	})
)
