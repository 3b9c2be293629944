package parse

import (
	"github.com/tidwall/gjson"

	"github.com/theirongolddev/llminfo/internal/llm"
)

// OpenAICompatible parses the envelope shared by OpenAI-style model APIs
// (Groq, Together, most gateways). It is deliberately lenient: when the
// configured model path is missing or holds anything other than an array,
// it reports zero models rather than an error.
type OpenAICompatible struct {
	modelPath  string
	creditPath string
}

// NewOpenAICompatible builds a parser reading models from the given
// top-level key. creditPath is accepted for forward compatibility but
// currently unused: no OpenAI-compatible provider exposes a stable
// credits envelope, so ParseCredits always reports no data.
func NewOpenAICompatible(modelPath, creditPath string) *OpenAICompatible {
	if modelPath == "" {
		modelPath = "data"
	}
	return &OpenAICompatible{modelPath: modelPath, creditPath: creditPath}
}

// ParseModels extracts models from the configured envelope key.
func (p *OpenAICompatible) ParseModels(raw []byte) ([]llm.ModelInfo, error) {
	data := gjson.GetBytes(raw, p.modelPath)
	if !data.IsArray() {
		return []llm.ModelInfo{}, nil
	}

	var models []llm.ModelInfo
	data.ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id").String()
		// Entries often carry their own display name, but OpenAI-style
		// catalogs are inconsistent about it; the ID is the stable label.
		models = append(models, llm.NewModelInfo(
			id,
			id,
			contextLength(entry),
			pricingMap(entry),
		))
		return true
	})
	return models, nil
}

// ParseCredits always reports no credit data. The creditPath setting is
// inert until some OpenAI-compatible provider actually ships a credits
// endpoint worth decoding.
func (p *OpenAICompatible) ParseCredits(raw []byte) (*llm.CreditInfo, error) {
	return nil, nil
}

// contextLength reads an optional numeric context_length field.
func contextLength(entry gjson.Result) *int {
	v := entry.Get("context_length")
	if !v.Exists() || v.Type != gjson.Number {
		return nil
	}
	n := int(v.Int())
	return &n
}

// pricingMap reads an optional pricing object of string values.
func pricingMap(entry gjson.Result) map[string]string {
	v := entry.Get("pricing")
	if !v.IsObject() {
		return nil
	}
	pricing := make(map[string]string)
	v.ForEach(func(key, val gjson.Result) bool {
		pricing[key.String()] = val.String()
		return true
	})
	return pricing
}
