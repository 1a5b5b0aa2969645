package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripgen/internal/config"
	"tripgen/internal/itinerary"
	"tripgen/pkg/utils"
)

const (
	itineraryAttempts   = 2
	retryInterestsLimit = 5
)

// ItineraryCallerInterface returns the raw model text for a trip.
type ItineraryCallerInterface interface {
	Generate(ctx context.Context, trip itinerary.Trip) (string, error)
}

type ItineraryCaller struct {
	client  utils.CompletionClientInterface
	prompts PromptServiceInterface
	logger  *zap.Logger
	timeout time.Duration
	backoff time.Duration
}

func NewItineraryCaller(
	client utils.CompletionClientInterface,
	prompts PromptServiceInterface,
	logger *zap.Logger,
	cfg config.LLMConfig,
) ItineraryCallerInterface {
	return &ItineraryCaller{
		client:  client,
		prompts: prompts,
		logger:  logger,
		timeout: cfg.Timeout,
		backoff: cfg.RetryBackoff,
	}
}

// Generate tries the model twice. The second attempt sends at most five
// interests. A per-attempt deadline surfaces as utils.ErrLLMTimeout.
func (c *ItineraryCaller) Generate(ctx context.Context, trip itinerary.Trip) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= itineraryAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepContext(ctx, c.backoff*time.Duration(attempt-1)); err != nil {
				return "", errors.Join(lastErr, err)
			}
		}

		interests := trip.Interests
		if attempt > 1 && len(interests) > retryInterestsLimit {
			interests = interests[:retryInterestsLimit]
		}

		started := time.Now()
		text, err := c.attempt(ctx, c.prompts.ItineraryPrompt(trip, interests))
		fields := []zap.Field{
			zap.Int("attempt", attempt),
			zap.Int64("elapsed_ms", time.Since(started).Milliseconds()),
			zap.String("provider", c.client.Provider()),
			zap.String("model", c.client.Model()),
			zap.Int("interests", len(interests)),
		}
		if err == nil {
			c.logger.Info("itinerary completion received", append(fields, zap.Int("chars", len(text)))...)
			return text, nil
		}

		c.logger.Warn("itinerary completion failed", append(fields, zap.Error(err))...)
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *ItineraryCaller) attempt(ctx context.Context, req utils.CompletionRequest) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.client.Complete(attemptCtx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %v", utils.ErrLLMTimeout, c.timeout, err)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", utils.ErrEmptyCompletion
	}
	return text, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
