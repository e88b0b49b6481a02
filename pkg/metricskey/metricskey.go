package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsShortcutRequestsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_shortcut_requests_failed",
		Help:         "stats_shortcut_requests_failed provides total failed requests to Shortcut API",
		RequiredTags: []string{"operation"},
	}
)

// Perf
var (
	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}

	PerfShortcutRequest = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_shortcut_request",
		Help:         "perf_shortcut_request provides duration of request to Shortcut API",
		RequiredTags: []string{"operation"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfShortcutRequest,
	&PerfToolCall,
	&StatsShortcutRequestsFailed,
	&StatsToolCallsFailed,
	&StatsToolCallsSucceeded,
}
