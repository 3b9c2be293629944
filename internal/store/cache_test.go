package store

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/llminfo/internal/llm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testModels() []llm.ModelInfo {
	ctx := 131072
	return []llm.ModelInfo{
		{
			ID:            "meta-llama/llama-3.1-8b:free",
			Name:          "Llama 3.1 8B",
			ContextLength: &ctx,
			Pricing:       map[string]string{"prompt": "0", "completion": "0"},
			IsFree:        true,
		},
		{ID: "gpt-4o", Name: "GPT-4o"},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := testModels()
	if err := c.Set("openrouter", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get("openrouter")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}
}

func TestCache_MissingFile(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := c.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("Get = %+v, want nil for absent cache", got)
	}
}

func TestCache_Expiry(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir, time.Hour, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Backdate the entry past the TTL.
	entry := Entry{
		CachedAt: time.Now().Add(-2 * time.Hour),
		Provider: "openrouter",
		Models:   testModels(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(c.Path("openrouter"), data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := c.Get("openrouter")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("Get = %+v, want nil for expired entry", got)
	}

	// Expiry is not deletion: the file stays on disk.
	if _, err := os.Stat(c.Path("openrouter")); err != nil {
		t.Fatalf("expired cache file removed: %v", err)
	}
}

func TestCache_CorruptFileIsAnError(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := os.WriteFile(c.Path("openrouter"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := c.Get("openrouter"); err == nil {
		t.Fatal("expected error for corrupt cache file")
	}
}

func TestCache_InvalidateIsIdempotent(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.Set("openrouter", testModels()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	c.Invalidate("openrouter")
	if _, err := os.Stat(c.Path("openrouter")); !os.IsNotExist(err) {
		t.Fatal("cache file should be gone after Invalidate")
	}

	// Second invalidation of an absent file is fine.
	c.Invalidate("openrouter")
}

func TestCache_SetOverwrites(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.Set("groq", testModels()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	replacement := []llm.ModelInfo{{ID: "only-one", Name: "only-one"}}
	if err := c.Set("groq", replacement); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get("groq")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 || got[0].ID != "only-one" {
		t.Fatalf("Get = %+v, want the replacement list", got)
	}
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	if _, err := New(dir, 0, quietLogger()); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("cache dir not created: %v", err)
	}
}
