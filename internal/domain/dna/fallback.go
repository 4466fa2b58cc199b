package dna

// ErrBackendUnavailable is the fixed error string substituted when the DNA
// backend never bound. Callers treat it as part of the wire contract.
const ErrBackendUnavailable = "DNA backend not available"

// The fallback builders return a fresh map per call so a handler can never
// mutate a shared response. Key sets match the backend's real responses
// exactly; only the values differ.

func modelsFallback(errMsg string) map[string]any {
	return map[string]any{
		"available_models":       []string{},
		"enabled_providers":      []string{},
		"available_prompt_types": []string{"short"},
		"disable_llm":            true,
		"error":                  errMsg,
	}
}

func summaryFallback(provider, errMsg string) map[string]any {
	return map[string]any{
		"summary":     "Error: " + errMsg,
		"provider":    provider,
		"model":       "none",
		"prompt_type": "short",
		"routed":      false,
		"error":       true,
	}
}

func configFallback(errMsg string) map[string]any {
	return map[string]any{
		"shotgrid_enabled":            false,
		"vexa_routing_enabled":        false,
		"llm_backend_routing_enabled": false,
		"integrated":                  true,
		"error":                       errMsg,
	}
}
