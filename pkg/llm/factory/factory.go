package factory

import (
	"context"
	"fmt"

	"career-roadmap-be/pkg/llm"
	"career-roadmap-be/pkg/llm/gemini"
	"career-roadmap-be/pkg/llm/openai"
)

func NewLLMProvider(ctx context.Context, providerType, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if modelName == "" {
			modelName = "gpt-4o-mini" // Default
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "gemini":
		if modelName == "" {
			modelName = "gemini-2.0-flash"
		}
		return gemini.NewGeminiProvider(ctx, apiKey, modelName)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
