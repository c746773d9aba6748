package utils

import "context"

// ItineraryModelClient is the external text-generation capability: given a
// prompt, return the model's raw text. The caller treats that text as
// untrusted; extraction and repair happen downstream.
type ItineraryModelClient interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}
