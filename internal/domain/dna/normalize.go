package dna

import (
	"encoding/json"
	"fmt"
)

// The config capability predates the gateway integration and still returns
// an HTTP-style response object in some backend builds. Instead of duck
// typing at every call site, the raw return value is classified exactly
// once at the invocation boundary into a tagged payload, then decoded.

// ContentResponse is a response object carrying its JSON body as raw bytes.
type ContentResponse interface {
	Content() []byte
}

// BodyResponse is the older response shape with a Body accessor.
type BodyResponse interface {
	Body() []byte
}

type payloadKind int

const (
	payloadContent payloadKind = iota
	payloadBody
	payloadValue
)

type configPayload struct {
	kind  payloadKind
	raw   []byte
	value any
}

// classifyConfigPayload tags the config capability's return value. The
// priority order is fixed: content bytes, then body bytes, then plain
// value. A type implementing both accessors is treated as content.
func classifyConfigPayload(v any) configPayload {
	switch resp := v.(type) {
	case ContentResponse:
		return configPayload{kind: payloadContent, raw: resp.Content()}
	case BodyResponse:
		return configPayload{kind: payloadBody, raw: resp.Body()}
	default:
		return configPayload{kind: payloadValue, value: v}
	}
}

func (p configPayload) decode() (map[string]any, error) {
	switch p.kind {
	case payloadContent, payloadBody:
		var out map[string]any
		if err := json.Unmarshal(p.raw, &out); err != nil {
			return nil, fmt.Errorf("decode config payload: %w", err)
		}
		return out, nil
	default:
		out, ok := p.value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected config payload type %T", p.value)
		}
		return out, nil
	}
}
