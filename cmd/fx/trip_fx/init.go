package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripgen/internal/config"
	"tripgen/internal/itinerary"
	"tripgen/internal/repositories"
	"tripgen/internal/services"
	mem "tripgen/pkg/memcache"
	"tripgen/pkg/utils"
)

var Module = fx.Provide(
	provideCountryImageRepo,
	provideImageSearch,
	provideHeroImageService,
	provideTravelInfoService,
	provideTripService,
	providePhotoAnalyzerService,
)

func provideCountryImageRepo(db *gorm.DB) repositories.CountryImageRepositoryInterface {
	return repositories.NewCountryImageRepository(db)
}

func provideImageSearch(cfg config.Config) utils.ImageSearchInterface {
	return utils.NewUnsplashClient(cfg.UnsplashAccessKey, "")
}

func provideHeroImageService(
	cache mem.StringStore,
	repo repositories.CountryImageRepositoryInterface,
	search utils.ImageSearchInterface,
	cfg config.Config,
	logger *zap.Logger,
) services.HeroImageServiceInterface {
	return services.NewHeroImageService(cache, repo, search, cfg.HeroImageTTL, logger)
}

func provideTravelInfoService(
	client utils.CompletionClientInterface,
	prompts services.PromptServiceInterface,
	cfg config.Config,
	logger *zap.Logger,
) services.TravelInfoServiceInterface {
	return services.NewTravelInfoService(client, prompts, cfg.LLM.Timeout, logger)
}

func provideTripService(
	caller services.ItineraryCallerInterface,
	pipeline *itinerary.Pipeline,
	heroImages services.HeroImageServiceInterface,
	cfg config.Config,
	logger *zap.Logger,
) services.TripServiceInterface {
	provider := cfg.LLM.Provider
	if !cfg.LLM.Enabled {
		provider = "none"
	}
	return services.NewTripService(caller, provider, pipeline, heroImages, logger)
}

func providePhotoAnalyzerService(
	client utils.CompletionClientInterface,
	prompts services.PromptServiceInterface,
	cfg config.Config,
	logger *zap.Logger,
) services.PhotoAnalyzerServiceInterface {
	return services.NewPhotoAnalyzerService(client, prompts, cfg.LLM.VisionModel, cfg.LLM.Timeout, logger)
}
