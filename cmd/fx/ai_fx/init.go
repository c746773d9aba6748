package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(provideItineraryModelClient)

// provideItineraryModelClient picks the generation backend from AI_PROVIDER.
// Groq is the default; Gemini is opt-in. A misconfigured Gemini client is
// fatal at startup rather than at the first request.
func provideItineraryModelClient() utils.ItineraryModelClient {
	switch os.Getenv("AI_PROVIDER") {
	case "gemini":
		client, err := utils.NewGeminiItineraryClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		return client
	default:
		return utils.NewGroqItineraryClient(os.Getenv("GROQ_API_KEY"), os.Getenv("GROQ_MODEL"))
	}
}
