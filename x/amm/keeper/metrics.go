package keeper

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/coralswap/coral/x/amm/types"
)

// AMMMetrics holds all Prometheus metrics for the amm module
type AMMMetrics struct {
	// Swap metrics
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	LpShareSupply    *prometheus.GaugeVec

	// Pool metrics
	PoolsTotal   prometheus.Gauge
	PoolsCreated prometheus.Counter

	// Fee withdrawal metrics
	FeesWithdrawn *prometheus.CounterVec
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers amm metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "direction"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume by denom",
				},
				[]string{"pool_id", "denom"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "swap_fees_collected_total",
					Help:      "Total protocol fees accrued by denom",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited by denom",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn by denom",
				},
				[]string{"pool_id", "denom"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "pool_reserves",
					Help:      "Current tradable reserves by denom",
				},
				[]string{"pool_id", "denom"},
			),
			LpShareSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "lp_share_supply",
					Help:      "Current LP share supply including the withheld floor",
				},
				[]string{"pool_id"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "pools_total",
					Help:      "Number of registered pools",
				},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "pools_created_total",
					Help:      "Total number of pools created",
				},
			),
			FeesWithdrawn: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "amm",
					Name:      "fees_withdrawn_total",
					Help:      "Total protocol fees paid out by denom",
				},
				[]string{"pool_id", "denom"},
			),
		}
	})
	return ammMetrics
}

// GetAMMMetrics returns the singleton metrics instance
func GetAMMMetrics() *AMMMetrics {
	if ammMetrics == nil {
		return NewAMMMetrics()
	}
	return ammMetrics
}

// recordPoolGauges refreshes the per-pool reserve and supply gauges.
func (m *AMMMetrics) recordPoolGauges(baseDenom string, pool types.Pool) {
	id := fmt.Sprintf("%d", pool.Id)
	m.PoolReserves.WithLabelValues(id, baseDenom).Set(float64(pool.BaseReserve))
	m.PoolReserves.WithLabelValues(id, pool.PairedDenom).Set(float64(pool.PairedReserve))
	m.LpShareSupply.WithLabelValues(id).Set(float64(pool.LpSupply))
}
