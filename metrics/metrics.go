// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelFormat = "format"
	LabelKey    = "key"
	LabelStatus = "status"
)

// Quote formats
const (
	FormatMessage = "message"
	FormatPDF     = "pdf"
	FormatHTML    = "html"
	FormatXLSX    = "xlsx"
)

var (
	QuotesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftquote_quotes_rendered_total",
			Help: "Total number of quotations rendered, by output format",
		},
		[]string{LabelFormat},
	)

	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftquote_store_writes_total",
			Help: "Total number of collection snapshots written to durable storage",
		},
		[]string{LabelKey},
	)

	StoreWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftquote_store_write_failures_total",
			Help: "Total number of failed collection write-backs",
		},
		[]string{LabelKey},
	)

	OrderAdvances = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftquote_order_status_advances_total",
			Help: "Total number of order status advances, by resulting status",
		},
		[]string{LabelStatus},
	)
)
