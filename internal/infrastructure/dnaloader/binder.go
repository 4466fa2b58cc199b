package dnaloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/loorthu/vexa/internal/domain/dna"
	"github.com/loorthu/vexa/internal/infrastructure/metrics"
)

// Capability source and symbol names exposed by the DNA backend.
const (
	llmServiceObject = "llm_service.so"
	configObject     = "main.so"

	symModels  = "GetAvailableModelsEndpoint"
	symSummary = "LLMSummary"
	symConfig  = "GetConfig"
)

// BindError describes a failed resolution step. It never propagates past
// Bind; it exists so the diagnostic log and the tests can tell which step
// broke.
type BindError struct {
	Step string
	Name string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s (%s): %v", e.Step, e.Name, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Bind resolves the three DNA backend capabilities rooted at backendPath.
// It runs exactly once at process startup and never returns an error: any
// failure in either resolution step is logged and folded into an unbound
// binding. Binding is all-or-nothing; handles from a partially successful
// attempt are discarded.
func Bind(backendPath string, loader Loader, log zerolog.Logger) *dna.Binding {
	loader.AddSearchPath(backendPath)
	log.Info().Str("path", backendPath).Msg("binding DNA backend capabilities")

	binding, err := resolve(backendPath, loader, log)
	if err != nil {
		var step string
		if bindErr, ok := err.(*BindError); ok {
			step = bindErr.Step
		}
		log.Error().
			Err(err).
			Str("step", step).
			Str("error_type", fmt.Sprintf("%T", err)).
			Msg("failed to initialize DNA backend")
		metrics.RecordDNABind(false)
		return dna.Unbound()
	}

	log.Info().Msg("DNA backend initialization completed successfully")
	metrics.RecordDNABind(true)
	return binding
}

func resolve(backendPath string, loader Loader, log zerolog.Logger) (*dna.Binding, error) {
	// Step 1: the llm_service source carries the two async capabilities.
	syms, err := loader.Open(llmServiceObject)
	if err != nil {
		return nil, &BindError{Step: "llm_service", Name: llmServiceObject, Err: err}
	}

	models, err := lookupModels(syms, symModels)
	if err != nil {
		return nil, &BindError{Step: "llm_service", Name: symModels, Err: err}
	}
	summary, err := lookupSummary(syms, symSummary)
	if err != nil {
		return nil, &BindError{Step: "llm_service", Name: symSummary, Err: err}
	}
	log.Info().Msg("bound llm_service capabilities")

	// Step 2: the config unit is loaded by explicit path, never through
	// search-path resolution, because its name collides with a unit already
	// loaded into this process.
	configPath := filepath.Join(backendPath, configObject)
	if _, err := os.Stat(configPath); err != nil {
		return nil, &BindError{Step: "config", Name: configObject, Err: fmt.Errorf("config source not found at %s: %w", configPath, err)}
	}
	configSyms, err := loader.OpenPath(configPath)
	if err != nil {
		return nil, &BindError{Step: "config", Name: configObject, Err: err}
	}
	config, err := lookupConfig(configSyms, symConfig)
	if err != nil {
		return nil, &BindError{Step: "config", Name: symConfig, Err: err}
	}
	log.Info().Msg("bound config capability")

	return dna.Bound(models, summary, config), nil
}

// The lookup helpers accept every dynamic type the loader can hand back
// for a capability symbol. plugin.Lookup returns an exported function as
// its plain signature type and an exported variable as a pointer to it;
// the backend cannot name this module's defined func types, so asserting
// those alone would never match a real plugin symbol.

func lookupModels(syms Symbols, name string) (dna.ModelsFunc, error) {
	sym, err := syms.Lookup(name)
	if err != nil {
		return nil, err
	}
	switch fn := sym.(type) {
	case func(context.Context) (map[string]any, error):
		return dna.ModelsFunc(fn), nil
	case *func(context.Context) (map[string]any, error):
		return dna.ModelsFunc(*fn), nil
	case dna.ModelsFunc:
		return fn, nil
	}
	return nil, fmt.Errorf("symbol %s has unexpected type %T", name, sym)
}

func lookupSummary(syms Symbols, name string) (dna.SummaryFunc, error) {
	sym, err := syms.Lookup(name)
	if err != nil {
		return nil, err
	}
	switch fn := sym.(type) {
	case func(context.Context, map[string]any) (map[string]any, error):
		return dna.SummaryFunc(fn), nil
	case *func(context.Context, map[string]any) (map[string]any, error):
		return dna.SummaryFunc(*fn), nil
	case dna.SummaryFunc:
		return fn, nil
	}
	return nil, fmt.Errorf("symbol %s has unexpected type %T", name, sym)
}

func lookupConfig(syms Symbols, name string) (dna.ConfigFunc, error) {
	sym, err := syms.Lookup(name)
	if err != nil {
		return nil, err
	}
	switch fn := sym.(type) {
	case func() (any, error):
		return dna.ConfigFunc(fn), nil
	case *func() (any, error):
		return dna.ConfigFunc(*fn), nil
	case dna.ConfigFunc:
		return fn, nil
	}
	return nil, fmt.Errorf("symbol %s has unexpected type %T", name, sym)
}
