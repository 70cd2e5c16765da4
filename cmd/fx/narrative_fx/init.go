package narrative_fx

import (
	"os"

	"go.uber.org/fx"

	"roadtrip/internal/services"
)

var Module = fx.Provide(
	provideNarrativeClient, provideNarrativeService)

func provideNarrativeClient() (services.NarrativeClientInterface, error) {
	provider := os.Getenv("LLM_PROVIDER")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return services.NewNarrativeClient(provider, apiKey, os.Getenv("LLM_MODEL"))
}

func provideNarrativeService(llm services.NarrativeClientInterface) services.NarrativeServiceInterface {
	return services.NewNarrativeService(llm)
}
