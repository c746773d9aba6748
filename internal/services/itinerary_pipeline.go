package services

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
)

// PipelineOutcome is one of the two terminal states of the generation
// pipeline. There is no error outcome: anything that cannot be salvaged from
// the model's text degrades to the deterministic fallback document.
type PipelineOutcome int

const (
	OutcomeValidated PipelineOutcome = iota
	OutcomeFallback
)

func (o PipelineOutcome) String() string {
	if o == OutcomeValidated {
		return "model"
	}
	return "fallback"
}

// ItineraryEngine turns raw model text plus the trip request into a complete
// itinerary document. All methods are pure; the engine holds no state and is
// safe for concurrent use.
type ItineraryEngine struct{}

func NewItineraryEngine() *ItineraryEngine {
	return &ItineraryEngine{}
}

// BuildDocument runs the full pipeline:
// raw -> cleaned -> extracted -> parsed -> validated, falling back on the
// first stage that fails. The returned document always satisfies the schema
// regardless of outcome.
func (e *ItineraryEngine) BuildDocument(raw string, req request_models.TripRequest) (response_models.ItineraryDocument, PipelineOutcome) {
	cleaned := CleanModelResponse(raw)
	if cleaned == "" {
		log.Printf("no JSON object in model response, using fallback for %s", req.Destination)
		return e.FallbackDocument(req), OutcomeFallback
	}

	extracted, ok := ExtractBalancedObject(cleaned)
	if !ok {
		log.Printf("no balanced JSON object in model response, using fallback for %s", req.Destination)
		return e.FallbackDocument(req), OutcomeFallback
	}

	candidate, err := parseCandidate(extracted)
	if err != nil {
		log.Printf("model JSON unusable even after repair (%v), using fallback for %s", err, req.Destination)
		return e.FallbackDocument(req), OutcomeFallback
	}

	return e.repairDocument(candidate, req), OutcomeValidated
}

// CleanModelResponse strips markdown code fences and cuts the text down to
// the span between the first '{' and the last '}'. An empty result means the
// text contains no JSON object at all; that is a normal, handled case.
func CleanModelResponse(raw string) string {
	content := strings.ReplaceAll(raw, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	if start < 0 {
		return ""
	}
	content = content[start:]

	if end := strings.LastIndex(content, "}"); end >= 0 {
		content = content[:end+1]
	}

	return strings.TrimSpace(content)
}

// ExtractBalancedObject locates the first complete balanced {...} span using
// brace-depth counting. This survives trailing commentary the cleaner could
// not strip, and with nested objects is more robust than trusting first/last
// brace positions. Returns false when depth never returns to zero.
func ExtractBalancedObject(s string) (string, bool) {
	depth := 0
	start := -1

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// parseCandidate unmarshals the extracted span into a generic object. On a
// syntax error it makes one repair attempt before giving up; giving up sends
// the pipeline to fallback.
func parseCandidate(jsonText string) (map[string]interface{}, error) {
	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(jsonText), &candidate); err == nil {
		return candidate, nil
	}

	repaired, err := jsonrepair.JSONRepair(jsonText)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(repaired), &candidate); err != nil {
		return nil, err
	}
	log.Printf("model JSON recovered by repair pass")
	return candidate, nil
}
