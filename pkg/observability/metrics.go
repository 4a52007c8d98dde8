// Package observability carries the engine's metrics. There is no scrape
// surface in this module; callers that embed the engine register these
// collectors with whatever registry their process exposes.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts engine activity across all grids
type Metrics struct {
	MovesApplied prometheus.Counter
	TilesSpawned prometheus.Counter
	TilesMerged  prometheus.Counter
	GridsCreated prometheus.Counter
	GridsWon     prometheus.Counter
	GridsEnded   prometheus.Counter
}

// NewMetrics creates and registers the engine counters with the given
// registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MovesApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucidia_engine_moves_applied_total",
			Help: "Number of effective moves applied across all grids.",
		}),
		TilesSpawned: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucidia_engine_tiles_spawned_total",
			Help: "Number of tiles spawned, including learn placements.",
		}),
		TilesMerged: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucidia_engine_tiles_merged_total",
			Help: "Number of merges performed across all grids.",
		}),
		GridsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucidia_engine_grids_created_total",
			Help: "Number of grids created, including resets.",
		}),
		GridsWon: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucidia_engine_grids_won_total",
			Help: "Number of grids that reached the win tile.",
		}),
		GridsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucidia_engine_grids_ended_total",
			Help: "Number of grids that ran out of legal moves.",
		}),
	}
}
