package llm

import (
	"errors"
	"sort"
)

// ErrNoFreeModels indicates the input contained no free-tier models.
var ErrNoFreeModels = errors.New("llm: no free models available")

// minContextForCoding is the context window floor preferred for long code
// generation. Models at or below it are only considered when nothing larger
// is free.
const minContextForCoding = 32000

// SelectBestFreeModel picks the free model best suited for coding-agent use:
// prefer context windows above 32K tokens, then the lowest prompt price.
func SelectBestFreeModel(models []ModelInfo) (ModelInfo, error) {
	var free []ModelInfo
	for _, m := range models {
		if m.IsFree {
			free = append(free, m)
		}
	}
	if len(free) == 0 {
		return ModelInfo{}, ErrNoFreeModels
	}

	var candidates []ModelInfo
	for _, m := range free {
		if m.ContextLength != nil && *m.ContextLength > minContextForCoding {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = free
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PromptPrice() < candidates[j].PromptPrice()
	})

	return candidates[0], nil
}
