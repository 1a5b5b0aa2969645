package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripgen/internal/config"
	"tripgen/internal/itinerary"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePromptService,
	ProvideItineraryCaller,
	ProvidePipeline)

// ProvideCompletionClient builds the configured model client. It returns a
// nil client when OPENAI_USE_GPT is false so every caller takes the
// deterministic path.
func ProvideCompletionClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (utils.CompletionClientInterface, error) {
	llm := cfg.LLM
	if !llm.Enabled {
		logger.Info("model calls disabled, using the deterministic itinerary generator")
		return nil, nil
	}

	logger.Info("initializing completion client",
		zap.String("provider", llm.Provider), zap.String("model", llm.Model))

	switch llm.Provider {
	case "openai":
		return utils.NewOpenAICompletionClient(llm.APIKey, llm.BaseURL, llm.Model), nil
	case "gemini":
		client, err := utils.NewGeminiCompletionClient(context.Background(), llm.APIKey, llm.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'openai' or 'gemini'", llm.Provider)
	}
}

func ProvidePromptService(cfg config.Config) services.PromptServiceInterface {
	return services.NewPromptService(cfg.LLM)
}

func ProvideItineraryCaller(
	client utils.CompletionClientInterface,
	prompts services.PromptServiceInterface,
	logger *zap.Logger,
	cfg config.Config,
) services.ItineraryCallerInterface {
	if client == nil {
		return nil
	}
	return services.NewItineraryCaller(client, prompts, logger, cfg.LLM)
}

func ProvidePipeline() *itinerary.Pipeline {
	return itinerary.NewPipeline()
}
