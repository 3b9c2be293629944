package parse

import (
	"errors"
	"testing"
)

func TestOpenRouter_ParseModels(t *testing.T) {
	p := &OpenRouter{}

	raw := []byte(`{"data": [
		{"id": "meta-llama/llama-3.1-8b:free", "name": "Llama 3.1 8B (free)",
		 "context_length": 131072, "pricing": {"prompt": "0", "completion": "0"}},
		{"id": "anthropic/claude-sonnet-4", "name": "Claude Sonnet 4"}
	]}`)

	models, err := p.ParseModels(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("len(models) = %d, want 2", len(models))
	}
	if models[0].Name != "Llama 3.1 8B (free)" {
		t.Fatalf("Name = %q, want the entry's own name", models[0].Name)
	}
	if !models[0].IsFree {
		t.Fatal("IsFree = false for :free ID")
	}
	if models[1].IsFree {
		t.Fatal("IsFree = true for paid ID")
	}
}

func TestOpenRouter_ParseModels_MissingField(t *testing.T) {
	p := &OpenRouter{}

	_, err := p.ParseModels([]byte(`{"data": [{"id": "m1"}]}`))
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingFieldError", err)
	}
	if missing.Field != "name" {
		t.Fatalf("Field = %q, want name", missing.Field)
	}

	_, err = p.ParseModels([]byte(`{"data": [{"name": "no id"}]}`))
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingFieldError", err)
	}
	if missing.Field != "id" {
		t.Fatalf("Field = %q, want id", missing.Field)
	}
}

func TestOpenRouter_ParseModels_WrongType(t *testing.T) {
	p := &OpenRouter{}

	_, err := p.ParseModels([]byte(`{"data": "oops"}`))
	var wrong *WrongTypeError
	if !errors.As(err, &wrong) {
		t.Fatalf("err = %v, want WrongTypeError", err)
	}

	// An explicit null is present-but-wrong-type, unlike a missing key.
	_, err = p.ParseModels([]byte(`{"data": null}`))
	if !errors.As(err, &wrong) {
		t.Fatalf("null data: err = %v, want WrongTypeError", err)
	}
}

func TestOpenRouter_ParseModels_MissingData(t *testing.T) {
	p := &OpenRouter{}

	models, err := p.ParseModels([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 0 {
		t.Fatalf("len(models) = %d, want 0", len(models))
	}
}

func TestOpenRouter_ParseCredits(t *testing.T) {
	p := &OpenRouter{}

	credits, err := p.ParseCredits([]byte(`{"data": {"total_credits": 25.0, "total_usage": 10.5}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credits.TotalCredits != 25.0 || credits.Usage != 10.5 || credits.Remaining != 14.5 {
		t.Fatalf("credits = %+v, want 25/10.5/14.5", credits)
	}
}

func TestOpenRouter_ParseCredits_MissingDataIsZero(t *testing.T) {
	p := &OpenRouter{}

	credits, err := p.ParseCredits([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credits == nil {
		t.Fatal("credits = nil, want zero-valued balance")
	}
	if credits.TotalCredits != 0 || credits.Usage != 0 || credits.Remaining != 0 {
		t.Fatalf("credits = %+v, want zeros", credits)
	}
}

func TestOpenRouter_ParseCredits_NegativeRemaining(t *testing.T) {
	p := &OpenRouter{}

	// Usage can exceed purchased credits; remaining stays negative.
	credits, err := p.ParseCredits([]byte(`{"data": {"total_credits": 5.0, "total_usage": 7.5}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credits.Remaining != -2.5 {
		t.Fatalf("Remaining = %v, want -2.5", credits.Remaining)
	}
}

func TestForType(t *testing.T) {
	if _, err := ForType("openai_compatible"); err != nil {
		t.Fatalf("openai_compatible: %v", err)
	}
	if _, err := ForType("openrouter"); err != nil {
		t.Fatalf("openrouter: %v", err)
	}
	if _, err := ForType("grpc"); err == nil {
		t.Fatal("expected error for unknown parser type")
	}
}
