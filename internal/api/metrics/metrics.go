// Package metrics defines and registers all custom Prometheus metrics for
// the micropost API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "micropost"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login-or-register attempts.
// Label:
//   - outcome: "created" (implicit signup), "authenticated", or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login-or-register attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Publish / fan-out metrics ─────────────────────────────────────────────────

// PostsPublishedTotal counts posts durably created in the post store.
var PostsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_published_total",
		Help:      "Total number of posts published.",
	},
)

// FanoutDeliveriesTotal counts individual follower timeline appends.
// Label:
//   - result: "ok" or "failed"
var FanoutDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_deliveries_total",
		Help:      "Total number of per-follower timeline deliveries, by result.",
	},
	[]string{"result"},
)

// FanoutBatchSize observes the follower count seen by each publish, i.e. the
// write amplification of the fan-out-on-write design.
var FanoutBatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fanout_batch_size",
		Help:      "Number of follower timelines written per published post.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 … 16384
	},
)

// ── Feed metrics ──────────────────────────────────────────────────────────────

// FeedAssemblyDuration measures how long a feed read takes end-to-end,
// including all post store lookups.
var FeedAssemblyDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_assembly_duration_seconds",
		Help:      "Duration of feed assembly from timeline read to formatted items.",
		Buckets:   prometheus.DefBuckets,
	},
)
