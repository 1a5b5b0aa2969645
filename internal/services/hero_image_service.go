package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripgen/internal/models/db_models"
	"tripgen/internal/repositories"
	mem "tripgen/pkg/memcache"
	"tripgen/pkg/utils"
)

type HeroImageServiceInterface interface {
	GetCountryHeroImage(ctx context.Context, country string) string
}

type HeroImageService struct {
	cache  mem.StringStore
	repo   repositories.CountryImageRepositoryInterface
	search utils.ImageSearchInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewHeroImageService(
	cache mem.StringStore,
	repo repositories.CountryImageRepositoryInterface,
	search utils.ImageSearchInterface,
	ttl time.Duration,
	logger *zap.Logger,
) HeroImageServiceInterface {
	return &HeroImageService{
		cache:  cache,
		repo:   repo,
		search: search,
		ttl:    ttl,
		logger: logger,
	}
}

// GetCountryHeroImage walks cache, store and image search in that order.
// It never fails: the last resort is a static image.
func (h *HeroImageService) GetCountryHeroImage(ctx context.Context, country string) string {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return utils.DefaultHeroImage
	}

	if url, ok := h.cache.Get(key); ok {
		return url
	}

	stored, err := h.repo.FindByCountry(ctx, key)
	switch {
	case err != nil && !errors.Is(err, utils.ErrStoreUnavailable):
		h.logger.Warn("country image lookup failed", zap.String("country", key), zap.Error(err))
	case stored != nil && stored.URL != "":
		h.cache.Set(key, stored.URL, h.ttl)
		return stored.URL
	}

	found, err := h.search.SearchCountryImage(ctx, country)
	if err != nil {
		h.logger.Debug("image search missed, using fallback image", zap.String("country", key), zap.Error(err))
		return utils.FallbackCountryImage(key)
	}

	err = h.repo.Save(ctx, db_models.CountryImage{
		Country:      key,
		URL:          found.URL,
		Photographer: found.Photographer,
		Source:       found.Source,
	})
	if err != nil && !errors.Is(err, utils.ErrStoreUnavailable) {
		h.logger.Warn("country image save failed", zap.String("country", key), zap.Error(err))
	}
	h.cache.Set(key, found.URL, h.ttl)
	return found.URL
}
