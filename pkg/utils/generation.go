package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"rihla/internal/models/response_models"
)

// GenerationClientInterface is the opaque text-generation capability. A
// transport-level failure surfaces as ErrGenerationUnavailable (the
// trigger for the recommender fallback); output that cannot be parsed as
// the day/slot mapping surfaces as ErrGenerationFormat.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (response_models.GeneratedPlan, error)
	GenerateSummary(ctx context.Context, matched response_models.GeneratedPlan) (string, error)
	Ping(ctx context.Context) error
}

// NewGenerationClient picks the provider from config, mirroring the
// embedding-client factory this grew out of.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

var dayLabelRe = regexp.MustCompile(`^Day (\d+)$`)

// DayNumber extracts N from a "Day N" label, 0 if the label is malformed.
func DayNumber(label string) int {
	matches := dayLabelRe.FindStringSubmatch(strings.TrimSpace(label))
	if len(matches) < 2 {
		return 0
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return n
}

// CleanJSONResponse strips markdown fences and whitespace the generator
// sometimes wraps around the payload despite the JSON-only instruction.
func CleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// ParseGeneratedPlan turns raw generator output into the typed day/slot
// mapping. Anything that does not unmarshal into the expected shape, or
// that contains no recognizable "Day N" key, is a format error.
func ParseGeneratedPlan(raw string) (response_models.GeneratedPlan, error) {
	cleaned := CleanJSONResponse(raw)

	var plan response_models.GeneratedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFormat, err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: empty plan", ErrGenerationFormat)
	}

	days := 0
	for label, slots := range plan {
		if DayNumber(label) == 0 {
			continue
		}
		days++
		for i := range slots {
			slots[i].Time = strings.ToLower(strings.TrimSpace(slots[i].Time))
		}
	}
	if days == 0 {
		return nil, fmt.Errorf("%w: no day labels found", ErrGenerationFormat)
	}
	return plan, nil
}
