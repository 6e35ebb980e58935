// Package metrics exposes prometheus collectors for the coin ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LedgerEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "greencoins_ledger_entries_total",
	Help: "Ledger entries written, by kind (earned/spent).",
}, []string{"kind"})

var CoinsMovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "greencoins_coins_moved_total",
	Help: "Absolute coin volume moved through the ledger, by kind.",
}, []string{"kind"})

var OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "greencoins_orders_created_total",
	Help: "Orders successfully fulfilled.",
})

var ReconciliationRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "greencoins_reconciliation_runs_total",
	Help: "Reconciliation passes executed.",
})

var ReconciliationRepairsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "greencoins_reconciliation_repairs_total",
	Help: "Missing ledger credits recreated by reconciliation.",
})

var ReconciliationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "greencoins_reconciliation_errors_total",
	Help: "Hard failures while repairing a missing ledger credit.",
})
