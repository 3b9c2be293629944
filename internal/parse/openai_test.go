package parse

import (
	"testing"
)

func TestOpenAICompatible_ParseModels(t *testing.T) {
	p := NewOpenAICompatible("data", "")

	raw := []byte(`{"data": [
		{"id": "llama-3.1-70b-versatile", "name": "Llama 70B", "context_length": 131072,
		 "pricing": {"prompt": "0.59", "completion": "0.79"}},
		{"id": "whisper-large-v3"},
		{}
	]}`)

	models, err := p.ParseModels(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("len(models) = %d, want 3", len(models))
	}

	// Name mirrors the ID even when the entry carries its own name field.
	if models[0].Name != "llama-3.1-70b-versatile" {
		t.Fatalf("Name = %q, want ID", models[0].Name)
	}
	if models[0].ContextLength == nil || *models[0].ContextLength != 131072 {
		t.Fatalf("ContextLength = %v, want 131072", models[0].ContextLength)
	}
	if models[0].Pricing["prompt"] != "0.59" {
		t.Fatalf("Pricing[prompt] = %q, want 0.59", models[0].Pricing["prompt"])
	}

	if models[1].ContextLength != nil || models[1].Pricing != nil {
		t.Fatal("optional fields should stay nil when absent")
	}

	// id defaults to empty string, never an error
	if models[2].ID != "" {
		t.Fatalf("ID = %q, want empty", models[2].ID)
	}
}

func TestOpenAICompatible_ParseModels_Lenient(t *testing.T) {
	p := NewOpenAICompatible("data", "")

	tests := []struct {
		name string
		raw  string
	}{
		{"not a list", `{"data": "not_a_list"}`},
		{"null", `{"data": null}`},
		{"missing", `{}`},
		{"scalar", `{"data": 42}`},
		{"object", `{"data": {"id": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models, err := p.ParseModels([]byte(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(models) != 0 {
				t.Fatalf("len(models) = %d, want 0", len(models))
			}
		})
	}
}

func TestOpenAICompatible_CustomModelPath(t *testing.T) {
	p := NewOpenAICompatible("models", "")

	models, err := p.ParseModels([]byte(`{"models": [{"id": "m1"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 1 || models[0].ID != "m1" {
		t.Fatalf("models = %+v, want one entry m1", models)
	}
}

func TestOpenAICompatible_ParseCredits_AlwaysAbsent(t *testing.T) {
	p := NewOpenAICompatible("data", "credits")

	credits, err := p.ParseCredits([]byte(`{"credits": {"total_credits": 10.0}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credits != nil {
		t.Fatalf("credits = %+v, want nil", credits)
	}
}
