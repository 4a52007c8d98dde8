package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"lucidia-engine/application/ports"
	"lucidia-engine/application/services"
	domainconfig "lucidia-engine/domain/config"
	"lucidia-engine/domain/naming"
	"lucidia-engine/infrastructure/config"
	"lucidia-engine/infrastructure/eventlog"
	"lucidia-engine/infrastructure/locking"
	"lucidia-engine/infrastructure/persistence/memory"
	"lucidia-engine/pkg/insight"
	"lucidia-engine/pkg/observability"
	"lucidia-engine/pkg/random"
)

// ProvideLogger creates the process logger from configuration.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	return cfg.NewLogger()
}

// ProvideGridConfig selects the grid rule set for the environment.
func ProvideGridConfig(cfg *config.Config) *domainconfig.GridConfig {
	return cfg.GridConfig()
}

// ProvideRandomSource builds the engine's random source, seeded from
// configuration when a fixed seed is set.
func ProvideRandomSource(cfg *config.Config) random.Source {
	if cfg.RandomSeed != 0 {
		return random.New(cfg.RandomSeed)
	}
	return random.NewTimeSeeded()
}

// ProvideGridStore creates the in-memory grid repository.
func ProvideGridStore(logger *zap.Logger) *memory.GridStore {
	return memory.NewGridStore(logger)
}

// ProvideKeyedLock creates the per-grid lock.
func ProvideKeyedLock() *locking.KeyedLock {
	return locking.NewKeyedLock()
}

// ProvideEventLog creates the in-memory event log.
func ProvideEventLog() *eventlog.MemoryLog {
	return eventlog.NewMemoryLog()
}

// ProvideConceptNamer creates the tile namer.
func ProvideConceptNamer(rng random.Source) *naming.ConceptNamer {
	return naming.NewConceptNamer(rng)
}

// ProvideInsightGenerator creates the default template-based insight
// generator.
func ProvideInsightGenerator(rng random.Source) *insight.TemplateGenerator {
	return insight.NewTemplateGenerator(rng)
}

// ProvideMetrics registers the engine counters with the default registry.
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.DefaultRegisterer)
}

// ProvideStatsService creates the stats aggregator.
func ProvideStatsService(store *memory.GridStore, locks *locking.KeyedLock, logger *zap.Logger) *services.StatsService {
	return services.NewStatsService(store, locks, logger)
}

// ProvideEngine wires the grid engine.
func ProvideEngine(
	store *memory.GridStore,
	locks *locking.KeyedLock,
	namer *naming.ConceptNamer,
	insights *insight.TemplateGenerator,
	log *eventlog.MemoryLog,
	stats *services.StatsService,
	gridCfg *domainconfig.GridConfig,
	rng random.Source,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.Engine {
	return services.NewEngine(store, locks, namer, insights, log, stats, gridCfg, rng, metrics, logger)
}

var _ ports.GridRepository = (*memory.GridStore)(nil)
var _ ports.GridLocker = (*locking.KeyedLock)(nil)
var _ ports.EventPublisher = (*eventlog.MemoryLog)(nil)
var _ ports.InsightGenerator = (*insight.TemplateGenerator)(nil)
