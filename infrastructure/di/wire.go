//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"lucidia-engine/application/services"
	"lucidia-engine/infrastructure/config"
	"lucidia-engine/infrastructure/eventlog"
	"lucidia-engine/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Engine   *services.Engine
	Stats    *services.StatsService
	EventLog *eventlog.MemoryLog
	Metrics  *observability.Metrics
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideGridConfig,
	ProvideRandomSource,
	ProvideGridStore,
	ProvideKeyedLock,
	ProvideEventLog,
	ProvideConceptNamer,
	ProvideInsightGenerator,
	ProvideMetrics,
	ProvideStatsService,
	ProvideEngine,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
