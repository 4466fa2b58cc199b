package dna

import (
	"testing"
)

type contentResp struct {
	data []byte
}

func (r contentResp) Content() []byte { return r.data }

type bodyResp struct {
	data []byte
}

func (r bodyResp) Body() []byte { return r.data }

// dualResp exposes both accessors; classification must pick content.
type dualResp struct {
	content []byte
	body    []byte
}

func (r dualResp) Content() []byte { return r.content }
func (r dualResp) Body() []byte    { return r.body }

func TestClassifyContentFirst(t *testing.T) {
	p := classifyConfigPayload(dualResp{
		content: []byte(`{"integrated":true}`),
		body:    []byte(`not even json`),
	})
	if p.kind != payloadContent {
		t.Fatalf("expected content classification, got %v", p.kind)
	}

	out, err := p.decode()
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if out["integrated"] != true {
		t.Fatalf("unexpected decoded payload: %+v", out)
	}
}

func TestClassifyBody(t *testing.T) {
	p := classifyConfigPayload(bodyResp{data: []byte(`{"shotgrid_enabled":false}`)})
	if p.kind != payloadBody {
		t.Fatalf("expected body classification, got %v", p.kind)
	}
	out, err := p.decode()
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if out["shotgrid_enabled"] != false {
		t.Fatalf("unexpected decoded payload: %+v", out)
	}
}

func TestClassifyPlainValue(t *testing.T) {
	value := map[string]any{"llm_backend_routing_enabled": true}
	p := classifyConfigPayload(value)
	if p.kind != payloadValue {
		t.Fatalf("expected value classification, got %v", p.kind)
	}
	out, err := p.decode()
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if out["llm_backend_routing_enabled"] != true {
		t.Fatalf("decoded payload must be the original value: %+v", out)
	}
}

func TestDecodeRejectsNonMapValue(t *testing.T) {
	if _, err := classifyConfigPayload("a string").decode(); err == nil {
		t.Fatal("expected error for non-map plain value")
	}
	if _, err := classifyConfigPayload(nil).decode(); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestDecodeRejectsMalformedBytes(t *testing.T) {
	if _, err := classifyConfigPayload(contentResp{data: []byte("{")}).decode(); err == nil {
		t.Fatal("expected error for malformed content bytes")
	}
}
