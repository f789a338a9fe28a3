package metrics

// Namespace prefixes every metric name
const Namespace = "lootledger"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameItemsSold              = "items_sold_total"
	MetricNameItemsBought            = "items_bought_total"
	MetricNameItemsGathered          = "items_gathered_total"
	MetricNameGatherPasses           = "gather_passes_total"
	MetricNameInventoryEntryRemovals = "inventory_entries_removed_total"
	MetricNameMoneyEarned            = "money_earned_total"
	MetricNameMoneySpent             = "money_spent_total"
	MetricNameTransactionsRejected   = "transactions_rejected_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal      = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration    = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight   = "Current number of HTTP requests being served"
	HelpTextEventsPublished        = "Total number of events observed on the bus"
	HelpTextItemsSold              = "Total quantity of items sold"
	HelpTextItemsBought            = "Total quantity of items bought"
	HelpTextItemsGathered          = "Total quantity of items gathered"
	HelpTextGatherPasses           = "Total gather passes by outcome"
	HelpTextInventoryEntryRemovals = "Total inventory entries removed by selling out"
	HelpTextMoneyEarned            = "Total money earned from selling items"
	HelpTextMoneySpent             = "Total money spent buying items"
	HelpTextTransactionsRejected   = "Total buy or sell commands rejected by validation"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelReason    = "reason"
)

// Gather outcomes
const (
	OutcomeCompleted = "completed"
)

// Fallback path label for requests that matched no route
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets are the request duration histogram buckets in seconds
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
