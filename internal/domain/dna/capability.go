package dna

import "context"

// ModelsFunc lists the models the DNA backend can serve. Bound once at
// startup and called for every inbound models request.
type ModelsFunc func(ctx context.Context) (map[string]any, error)

// SummaryFunc generates a summary from an opaque request payload. The
// payload is passed through to the backend unmodified.
type SummaryFunc func(ctx context.Context, request map[string]any) (map[string]any, error)

// ConfigFunc returns the backend configuration. Unlike the other two
// capabilities it is synchronous and its result may be a structured
// HTTP-style response object rather than a plain map; the facade
// normalizes it through classifyConfigPayload before it reaches callers.
type ConfigFunc func() (any, error)

// Binding is the finalized availability state produced by the capability
// binder. It is created once during process startup and never mutated:
// Available is true iff all three capability handles are non-nil.
type Binding struct {
	Available bool
	Models    ModelsFunc
	Summary   SummaryFunc
	Config    ConfigFunc
}

// Bound builds a binding from resolved capabilities. If any handle is nil
// the binding degrades to unbound; there is no partial availability.
func Bound(models ModelsFunc, summary SummaryFunc, config ConfigFunc) *Binding {
	if models == nil || summary == nil || config == nil {
		return Unbound()
	}
	return &Binding{
		Available: true,
		Models:    models,
		Summary:   summary,
		Config:    config,
	}
}

// Unbound returns the binding used when capability resolution failed.
func Unbound() *Binding {
	return &Binding{}
}
