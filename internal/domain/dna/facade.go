package dna

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/loorthu/vexa/internal/infrastructure/metrics"
)

// Integration is the availability-aware facade over the DNA backend. Every
// operation routes to the bound capability when available and substitutes a
// fixed-shape fallback otherwise; no call ever surfaces an error to the
// gateway layer. The facade reads the binding but never mutates it.
type Integration struct {
	binding *Binding
	log     zerolog.Logger
}

// NewIntegration wraps a finalized binding. The binding must not change
// after construction; there is no re-binding or hot reload.
func NewIntegration(binding *Binding, log zerolog.Logger) *Integration {
	if binding.Available {
		log.Info().Msg("DNA direct integration initialized")
	} else {
		log.Warn().Msg("DNA backend not available, serving fallback responses")
	}
	return &Integration{binding: binding, log: log}
}

// Available reports whether the backend bound at startup.
func (i *Integration) Available() bool {
	return i.binding.Available
}

// AvailableModels lists the models the backend can serve. On any failure
// the fixed models shape is returned with the error text in place of data.
func (i *Integration) AvailableModels(ctx context.Context) map[string]any {
	if !i.binding.Available {
		metrics.RecordDNACall("models", metrics.OutcomeFallback)
		return modelsFallback(ErrBackendUnavailable)
	}

	result, err := guard("get_available_models", func() (map[string]any, error) {
		return i.binding.Models(ctx)
	})
	if err != nil {
		i.log.Error().Err(err).Msg("DNA backend get_available_models failed")
		metrics.RecordDNACall("models", metrics.OutcomeError)
		return modelsFallback(err.Error())
	}

	metrics.RecordDNACall("models", metrics.OutcomeOK)
	return result
}

// Summarize forwards an opaque request payload to the backend's summary
// capability. The payload is not inspected or reshaped on either branch.
func (i *Integration) Summarize(ctx context.Context, request map[string]any) map[string]any {
	if !i.binding.Available {
		metrics.RecordDNACall("summary", metrics.OutcomeFallback)
		return summaryFallback("none", ErrBackendUnavailable)
	}

	result, err := guard("llm_summary", func() (map[string]any, error) {
		return i.binding.Summary(ctx, request)
	})
	if err != nil {
		i.log.Error().Err(err).Msg("DNA backend llm_summary failed")
		metrics.RecordDNACall("summary", metrics.OutcomeError)
		return summaryFallback("error", err.Error())
	}

	metrics.RecordDNACall("summary", metrics.OutcomeOK)
	return result
}

// Config returns the backend configuration. The call is synchronous and has
// no cancellation; a slow backend blocks the caller. The capability's raw
// return value is normalized through the tagged payload union before it
// reaches the gateway layer.
func (i *Integration) Config() map[string]any {
	if !i.binding.Available {
		metrics.RecordDNACall("config", metrics.OutcomeFallback)
		return configFallback(ErrBackendUnavailable)
	}

	result, err := guard("get_config", func() (map[string]any, error) {
		raw, err := i.binding.Config()
		if err != nil {
			return nil, err
		}
		return classifyConfigPayload(raw).decode()
	})
	if err != nil {
		i.log.Error().Err(err).Msg("DNA backend get_config failed")
		metrics.RecordDNACall("config", metrics.OutcomeError)
		return configFallback(err.Error())
	}

	metrics.RecordDNACall("config", metrics.OutcomeOK)
	return result
}

// guard runs one capability call, converting a panic inside the backend
// into an ordinary error. The backend is independently developed code
// loaded into this process; it must not be able to crash the gateway.
func guard(operation string, fn func() (map[string]any, error)) (result map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%s panicked: %v", operation, r)
		}
	}()
	return fn()
}
