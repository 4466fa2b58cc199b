package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/loorthu/vexa/internal/config"
	"github.com/loorthu/vexa/internal/domain/dna"
	"github.com/loorthu/vexa/internal/infrastructure/dnaloader"
	"github.com/loorthu/vexa/internal/infrastructure/logger"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger builds the process logger from config
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
}

// ProvideLoader provides the production capability loader
func ProvideLoader() dnaloader.Loader {
	return dnaloader.NewPluginLoader()
}

// ProvideBinding runs the one-shot DNA backend capability binding. It runs
// during injector construction, before the integration facade exists, and
// never fails: an unbindable backend yields an unbound binding.
func ProvideBinding(cfg *config.Config, loader dnaloader.Loader, log zerolog.Logger) *dna.Binding {
	return dnaloader.Bind(cfg.DNABackendPath, loader, log)
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideLoader,
	ProvideBinding,
)
