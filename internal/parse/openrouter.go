package parse

import (
	"github.com/tidwall/gjson"

	"github.com/theirongolddev/llminfo/internal/llm"
)

// OpenRouter parses openrouter.ai envelopes. Unlike the OpenAI-compatible
// parser it is strict: model entries must carry both id and name, and a
// data field of the wrong type is an error instead of an empty result.
type OpenRouter struct{}

// ParseModels extracts models from the "data" array.
func (p *OpenRouter) ParseModels(raw []byte) ([]llm.ModelInfo, error) {
	data := gjson.GetBytes(raw, "data")
	if !data.Exists() {
		return []llm.ModelInfo{}, nil
	}
	if !data.IsArray() {
		return nil, &WrongTypeError{Field: "data", Want: "array"}
	}

	var models []llm.ModelInfo
	var entryErr error
	data.ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id")
		if !id.Exists() {
			entryErr = &MissingFieldError{Field: "id"}
			return false
		}
		name := entry.Get("name")
		if !name.Exists() {
			entryErr = &MissingFieldError{Field: "name"}
			return false
		}
		models = append(models, llm.NewModelInfo(
			id.String(),
			name.String(),
			contextLength(entry),
			pricingMap(entry),
		))
		return true
	})
	if entryErr != nil {
		return nil, entryErr
	}
	if models == nil {
		models = []llm.ModelInfo{}
	}
	return models, nil
}

// ParseCredits reads the credits envelope. A missing data object is treated
// as a zero balance. Remaining may go negative when usage exceeds credits;
// that mirrors what OpenRouter itself reports and is not clamped.
func (p *OpenRouter) ParseCredits(raw []byte) (*llm.CreditInfo, error) {
	data := gjson.GetBytes(raw, "data")

	totalCredits := data.Get("total_credits").Float()
	totalUsage := data.Get("total_usage").Float()

	return &llm.CreditInfo{
		TotalCredits: totalCredits,
		Usage:        totalUsage,
		Remaining:    totalCredits - totalUsage,
	}, nil
}
