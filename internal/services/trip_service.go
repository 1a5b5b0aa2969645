package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"tripgen/internal/itinerary"
	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/pkg/utils"
)

const instrumentationName = "tripgen/internal/services"

// Fallback reasons reported in logs and the fallback counter.
const (
	reasonLLMDisabled       = "llm_disabled"
	reasonTimeout           = "timeout"
	reasonCallFailed        = "call_failed"
	reasonMalformedResponse = "malformed_response"
	reasonEmptyItinerary    = "empty_itinerary"
)

type TripServiceInterface interface {
	GenerateTripPlan(ctx context.Context, req request_models.TripGenerationRequest) (*response_models.TripPlan, error)
	SupportedLanguages() []response_models.LanguageResponse
	Health() response_models.HealthResponse
}

type TripService struct {
	caller     ItineraryCallerInterface // nil when the model is disabled
	provider   string
	pipeline   *itinerary.Pipeline
	heroImages HeroImageServiceInterface
	logger     *zap.Logger
	tracer     trace.Tracer
	generated  metric.Int64Counter
	fallbacks  metric.Int64Counter
	now        func() time.Time
}

func NewTripService(
	caller ItineraryCallerInterface,
	provider string,
	pipeline *itinerary.Pipeline,
	heroImages HeroImageServiceInterface,
	logger *zap.Logger,
) TripServiceInterface {
	meter := otel.Meter(instrumentationName)

	generated, err := meter.Int64Counter("trip.plans.generated",
		metric.WithDescription("Trip plans returned, by source"))
	if err != nil {
		logger.Warn("trip plan counter unavailable", zap.Error(err))
		generated = noop.Int64Counter{}
	}
	fallbacks, err := meter.Int64Counter("trip.plans.fallbacks",
		metric.WithDescription("Trip plans served by the deterministic generator, by reason"))
	if err != nil {
		logger.Warn("fallback counter unavailable", zap.Error(err))
		fallbacks = noop.Int64Counter{}
	}

	return &TripService{
		caller:     caller,
		provider:   provider,
		pipeline:   pipeline,
		heroImages: heroImages,
		logger:     logger,
		tracer:     otel.Tracer(instrumentationName),
		generated:  generated,
		fallbacks:  fallbacks,
		now:        time.Now,
	}
}

// GenerateTripPlan only fails on invalid input. Every model or parse
// failure is answered with the deterministic plan.
func (s *TripService) GenerateTripPlan(ctx context.Context, req request_models.TripGenerationRequest) (*response_models.TripPlan, error) {
	trip, err := itinerary.NewTrip(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	ctx, span := s.tracer.Start(ctx, "TripService.GenerateTripPlan", trace.WithAttributes(
		attribute.String("trip.country", trip.Country),
		attribute.Int("trip.cities", len(trip.Cities)),
		attribute.Int("trip.duration", trip.Duration()),
		attribute.String("trip.language", string(trip.Language)),
	))
	defer span.End()

	hero := s.heroImages.GetCountryHeroImage(ctx, trip.Country)

	if s.caller == nil {
		return s.fallback(ctx, span, trip, hero, reasonLLMDisabled, nil), nil
	}

	raw, err := s.caller.Generate(ctx, trip)
	if err != nil {
		reason := reasonCallFailed
		if errors.Is(err, utils.ErrLLMTimeout) {
			reason = reasonTimeout
		}
		return s.fallback(ctx, span, trip, hero, reason, err), nil
	}

	plan, err := s.pipeline.Normalize(trip, raw, hero)
	if err != nil {
		reason := reasonMalformedResponse
		if errors.Is(err, itinerary.ErrEmptyItinerary) {
			reason = reasonEmptyItinerary
		}
		return s.fallback(ctx, span, trip, hero, reason, err), nil
	}

	span.SetAttributes(attribute.String("trip.source", "ai"))
	s.generated.Add(ctx, 1, metric.WithAttributes(attribute.String("source", "ai")))
	s.logger.Info("trip plan generated",
		zap.String("trip_id", plan.ID),
		zap.Int("duration", plan.Duration),
		zap.Int("blocks", len(plan.Itinerary)))
	return plan, nil
}

func (s *TripService) fallback(ctx context.Context, span trace.Span, trip itinerary.Trip, hero, reason string, cause error) *response_models.TripPlan {
	fields := []zap.Field{zap.String("reason", reason), zap.String("country", trip.Country)}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
		span.RecordError(cause)
		span.SetStatus(codes.Error, reason)
	}
	s.logger.Warn("serving fallback itinerary", fields...)

	span.SetAttributes(attribute.String("trip.source", "fallback"), attribute.String("trip.fallback_reason", reason))
	s.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	s.generated.Add(ctx, 1, metric.WithAttributes(attribute.String("source", "fallback")))

	return s.pipeline.Fallback(trip, hero)
}

func (s *TripService) SupportedLanguages() []response_models.LanguageResponse {
	langs := itinerary.SupportedLanguages()
	out := make([]response_models.LanguageResponse, 0, len(langs))
	for _, l := range langs {
		out = append(out, response_models.LanguageResponse{Code: string(l), Name: itinerary.LanguageName(l)})
	}
	return out
}

func (s *TripService) Health() response_models.HealthResponse {
	return response_models.HealthResponse{
		Status:     "ok",
		LLMEnabled: s.caller != nil,
		Provider:   s.provider,
		Timestamp:  s.now().Unix(),
	}
}
