// Package metrics instruments the chain with Prometheus collectors, in
// the style DanDo385-go-edu/minis/50-mini-service-all-features wires
// prometheus/client_golang into its middleware stack. This is the
// adapted form of the teacher's per-mine neighbor-notification hooks:
// instead of broadcasting to peers (out of scope — Non-goal
// peer-to-peer networking), a successful mine publishes to these
// gauges/histograms for a local operator to scrape.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors bundles the node's Prometheus metrics.
type Collectors struct {
	ChainLength    prometheus.Gauge
	MempoolSize    prometheus.Gauge
	MiningDuration prometheus.Histogram
	PowIterations  prometheus.Histogram
}

// NewCollectors builds and registers the node's collectors against reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		ChainLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockchain_chain_length",
			Help: "Number of blocks currently in the chain.",
		}),
		MempoolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockchain_mempool_size",
			Help: "Number of pending transactions in the mempool.",
		}),
		MiningDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "blockchain_mining_duration_seconds",
			Help:    "Wall-clock time spent in a single Mine call.",
			Buckets: prometheus.DefBuckets,
		}),
		PowIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "blockchain_pow_iterations",
			Help:    "Nonce increments performed by a single Mine call's proof-of-work search.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	reg.MustRegister(c.ChainLength, c.MempoolSize, c.MiningDuration, c.PowIterations)
	return c
}

// Observe records the result of one Mine call. It matches the
// chain.MineObserver signature so it can be registered directly via
// chain.WithMineObserver.
func (c *Collectors) Observe(chainLength, mempoolSize, powIterations int, elapsed time.Duration) {
	c.ChainLength.Set(float64(chainLength))
	c.MempoolSize.Set(float64(mempoolSize))
	c.MiningDuration.Observe(elapsed.Seconds())
	c.PowIterations.Observe(float64(powIterations))
}
