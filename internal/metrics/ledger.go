// Package metrics exposes prometheus instrumentation for ledger operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "ticket_operations_total",
		Help:      "Count of ticket operations by kind and outcome.",
	}, []string{"operation", "status"})

	ticketOpsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "ticket_operation_duration_seconds",
		Help:      "Duration of ticket operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	mineTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "mine_total",
		Help:      "Count of mining attempts.",
	}, []string{"status"})

	mineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "mine_duration_seconds",
		Help:      "Duration of the proof-of-work search and append.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
	}, []string{"status"})

	mineBlockTransactions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "mine_block_transactions",
		Help:      "Number of transactions sealed per mined block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	chainHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "chain_height",
		Help:      "Current number of blocks in the chain, genesis included.",
	})

	pendingPoolSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ticketchain7000",
		Subsystem: "ledger",
		Name:      "pending_pool_size",
		Help:      "Number of transactions awaiting mining.",
	})
)

// Ledger tracks metrics for ticket ledger operations.
type Ledger struct{}

// NewLedger constructs a Ledger metrics recorder.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveIssue records a ticket issue. Issue has no failure mode.
func (m Ledger) ObserveIssue(started time.Time) {
	observeOp("issue", true, started)
}

// ObserveTransfer records a transfer attempt outcome and duration.
func (m Ledger) ObserveTransfer(ok bool, started time.Time) {
	observeOp("transfer", ok, started)
}

// ObserveRedeem records a redeem attempt outcome and duration.
func (m Ledger) ObserveRedeem(ok bool, started time.Time) {
	observeOp("redeem", ok, started)
}

// ObserveMine records a mining attempt outcome, duration, and block size.
func (m Ledger) ObserveMine(err error, transactions int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mineTotal.WithLabelValues(status).Inc()
	mineDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		mineBlockTransactions.Observe(float64(transactions))
	}
}

// SetChainHeight updates the chain height gauge.
func (m Ledger) SetChainHeight(length int) {
	chainHeight.Set(float64(length))
}

// SetPendingSize updates the pending pool gauge.
func (m Ledger) SetPendingSize(size int) {
	pendingPoolSize.Set(float64(size))
}

func observeOp(operation string, ok bool, started time.Time) {
	status := "success"
	if !ok {
		status = "rejected"
	}
	ticketOpsTotal.WithLabelValues(operation, status).Inc()
	ticketOpsDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
