package metrics

// Metric names
const (
	MetricNameConversionUnknownTotal = "gw2_item_conversion_unknown_total"
	MetricNameItemConversionsTotal   = "gw2_item_conversions_total"
	MetricNameAPIRequestsTotal       = "gw2_api_requests_total"
	MetricNameAPIRequestDuration     = "gw2_api_request_duration_seconds"
	MetricNameItemCacheTotal         = "gw2_item_cache_total"
	MetricNameHTTPRequestsTotal      = "http_requests_total"
	MetricNameHTTPRequestDuration    = "http_request_duration_seconds"
)

// Metric help text
const (
	HelpTextConversionUnknownTotal = "Wire literals the item converters did not recognize, by kind"
	HelpTextItemConversionsTotal   = "Items converted, by resulting variant"
	HelpTextAPIRequestsTotal       = "Requests sent to the GW2 API"
	HelpTextAPIRequestDuration     = "GW2 API request latency in seconds"
	HelpTextItemCacheTotal         = "Item cache lookups, by layer and result"
	HelpTextHTTPRequestsTotal      = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration    = "HTTP request latency in seconds"
)

// Label names
const (
	LabelKind     = "kind"
	LabelType     = "type"
	LabelEndpoint = "endpoint"
	LabelStatus   = "status"
	LabelLayer    = "layer"
	LabelResult   = "result"
	LabelMethod   = "method"
	LabelPath     = "path"
)

// Cache label values
const (
	CacheLayerMemory = "memory"
	CacheLayerRedis  = "redis"
	CacheResultHit   = "hit"
	CacheResultMiss  = "miss"
)

// APILatencyBuckets covers calls to a public API over the internet
var APILatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
