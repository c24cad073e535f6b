// Package metrics declares the Prometheus collectors used by gw2-api
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion metrics
var (
	ConversionUnknownTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConversionUnknownTotal,
			Help: HelpTextConversionUnknownTotal,
		},
		[]string{LabelKind},
	)

	ItemConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemConversionsTotal,
			Help: HelpTextItemConversionsTotal,
		},
		[]string{LabelType},
	)
)

// Upstream metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAPIRequestsTotal,
			Help: HelpTextAPIRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameAPIRequestDuration,
			Help:    HelpTextAPIRequestDuration,
			Buckets: APILatencyBuckets,
		},
		[]string{LabelEndpoint},
	)

	ItemCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemCacheTotal,
			Help: HelpTextItemCacheTotal,
		},
		[]string{LabelLayer, LabelResult},
	)
)

// HTTP server metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)
