package dna

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func boundIntegration(models ModelsFunc, summary SummaryFunc, config ConfigFunc) *Integration {
	return NewIntegration(Bound(models, summary, config), testLogger())
}

func unboundIntegration() *Integration {
	return NewIntegration(Unbound(), testLogger())
}

func TestUnavailableModelsFallback(t *testing.T) {
	integration := unboundIntegration()

	expected := map[string]any{
		"available_models":       []string{},
		"enabled_providers":      []string{},
		"available_prompt_types": []string{"short"},
		"disable_llm":            true,
		"error":                  "DNA backend not available",
	}

	// Deterministic on every call.
	for i := 0; i < 3; i++ {
		require.Equal(t, expected, integration.AvailableModels(context.Background()))
	}
}

func TestUnavailableSummaryFallback(t *testing.T) {
	integration := unboundIntegration()

	result := integration.Summarize(context.Background(), map[string]any{"text": "hello"})
	require.Equal(t, map[string]any{
		"summary":     "Error: DNA backend not available",
		"provider":    "none",
		"model":       "none",
		"prompt_type": "short",
		"routed":      false,
		"error":       true,
	}, result)
}

func TestUnavailableConfigFallback(t *testing.T) {
	integration := unboundIntegration()

	require.Equal(t, map[string]any{
		"shotgrid_enabled":            false,
		"vexa_routing_enabled":        false,
		"llm_backend_routing_enabled": false,
		"integrated":                  true,
		"error":                       "DNA backend not available",
	}, integration.Config())
}

func TestModelsPassThrough(t *testing.T) {
	backendResult := map[string]any{
		"available_models":       []string{"gpt-4", "claude"},
		"enabled_providers":      []string{"openai", "anthropic"},
		"available_prompt_types": []string{"short", "long"},
		"disable_llm":            false,
	}
	integration := boundIntegration(
		func(ctx context.Context) (map[string]any, error) { return backendResult, nil },
		stubSummary(nil, nil),
		stubConfig(nil, nil),
	)

	require.Equal(t, backendResult, integration.AvailableModels(context.Background()))
}

func TestSummaryPassThroughKeepsPayload(t *testing.T) {
	var received map[string]any
	backendResult := map[string]any{"summary": "ok", "provider": "openai", "routed": true}
	integration := boundIntegration(
		stubModels(nil, nil),
		func(ctx context.Context, request map[string]any) (map[string]any, error) {
			received = request
			return backendResult, nil
		},
		stubConfig(nil, nil),
	)

	payload := map[string]any{"text": "summarize me", "prompt_type": "long"}
	result := integration.Summarize(context.Background(), payload)

	require.Equal(t, backendResult, result)
	assert.Equal(t, payload, received, "payload must be forwarded unmodified")
}

func TestModelsCallErrorUsesErrorText(t *testing.T) {
	integration := boundIntegration(
		stubModels(nil, errors.New("provider timeout")),
		stubSummary(nil, nil),
		stubConfig(nil, nil),
	)

	result := integration.AvailableModels(context.Background())
	assert.Equal(t, "provider timeout", result["error"])
	assert.Equal(t, true, result["disable_llm"])
	assert.Equal(t, []string{}, result["available_models"])
}

func TestSummaryCallErrorMarksProviderError(t *testing.T) {
	integration := boundIntegration(
		stubModels(nil, nil),
		stubSummary(nil, errors.New("model overloaded")),
		stubConfig(nil, nil),
	)

	result := integration.Summarize(context.Background(), map[string]any{})
	assert.Equal(t, "Error: model overloaded", result["summary"])
	assert.Equal(t, "error", result["provider"])
	assert.Equal(t, true, result["error"])
}

func TestPanickingCapabilityDoesNotEscape(t *testing.T) {
	integration := boundIntegration(
		func(ctx context.Context) (map[string]any, error) { panic("backend blew up") },
		func(ctx context.Context, request map[string]any) (map[string]any, error) { panic("boom") },
		func() (any, error) { panic("config boom") },
	)

	models := integration.AvailableModels(context.Background())
	assert.Contains(t, models["error"], "backend blew up")

	summary := integration.Summarize(context.Background(), nil)
	assert.Contains(t, summary["summary"], "boom")

	config := integration.Config()
	assert.Contains(t, config["error"], "config boom")
}

func TestConfigNormalizesContentBytes(t *testing.T) {
	integration := boundIntegration(
		stubModels(nil, nil),
		stubSummary(nil, nil),
		func() (any, error) {
			return contentResp{data: []byte(`{"shotgrid_enabled":true,"integrated":false}`)}, nil
		},
	)

	result := integration.Config()
	require.Equal(t, map[string]any{
		"shotgrid_enabled": true,
		"integrated":       false,
	}, result)
}

func TestConfigPlainMapPassThrough(t *testing.T) {
	plain := map[string]any{"vexa_routing_enabled": true, "integrated": true}
	integration := boundIntegration(
		stubModels(nil, nil),
		stubSummary(nil, nil),
		func() (any, error) { return plain, nil },
	)

	require.Equal(t, plain, integration.Config())
}

func TestConfigMalformedPayloadFallsBack(t *testing.T) {
	integration := boundIntegration(
		stubModels(nil, nil),
		stubSummary(nil, nil),
		func() (any, error) { return contentResp{data: []byte("not json")}, nil },
	)

	result := integration.Config()
	assert.Equal(t, false, result["shotgrid_enabled"])
	assert.Equal(t, true, result["integrated"])
	assert.Contains(t, result["error"], "decode config payload")
}

func TestResponseShapesIdenticalAcrossBranches(t *testing.T) {
	ok := boundIntegration(
		stubModels(map[string]any{
			"available_models":       []string{"m"},
			"enabled_providers":      []string{"p"},
			"available_prompt_types": []string{"short"},
			"disable_llm":            false,
			"error":                  "",
		}, nil),
		stubSummary(nil, nil),
		stubConfig(nil, nil),
	)
	failing := boundIntegration(stubModels(nil, errors.New("x")), stubSummary(nil, nil), stubConfig(nil, nil))
	unbound := unboundIntegration()

	keys := func(m map[string]any) map[string]bool {
		set := make(map[string]bool, len(m))
		for k := range m {
			set[k] = true
		}
		return set
	}

	ctx := context.Background()
	assert.Equal(t, keys(ok.AvailableModels(ctx)), keys(failing.AvailableModels(ctx)))
	assert.Equal(t, keys(failing.AvailableModels(ctx)), keys(unbound.AvailableModels(ctx)))
}

func TestBoundRequiresAllHandles(t *testing.T) {
	binding := Bound(stubModels(nil, nil), nil, stubConfig(nil, nil))
	if binding.Available {
		t.Fatal("binding with a nil handle must not be available")
	}
	if binding.Models != nil || binding.Summary != nil || binding.Config != nil {
		t.Fatal("degraded binding must not retain residual handles")
	}
}

func stubModels(result map[string]any, err error) ModelsFunc {
	return func(ctx context.Context) (map[string]any, error) { return result, err }
}

func stubSummary(result map[string]any, err error) SummaryFunc {
	return func(ctx context.Context, request map[string]any) (map[string]any, error) { return result, err }
}

func stubConfig(result any, err error) ConfigFunc {
	return func() (any, error) { return result, err }
}
