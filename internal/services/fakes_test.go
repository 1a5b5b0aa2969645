package services

import (
	"context"
	"sync"

	"tripgen/internal/itinerary"
	"tripgen/internal/models/db_models"
	"tripgen/pkg/utils"
)

// fakeCompletionClient replays one scripted reply per call.
type fakeCompletionClient struct {
	mu       sync.Mutex
	replies  []func(ctx context.Context) (string, error)
	requests []utils.CompletionRequest
}

func (f *fakeCompletionClient) Complete(ctx context.Context, req utils.CompletionRequest) (string, error) {
	f.mu.Lock()
	i := len(f.requests)
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if i >= len(f.replies) {
		return "", utils.ErrEmptyCompletion
	}
	return f.replies[i](ctx)
}

func (f *fakeCompletionClient) Provider() string { return "fake" }

func (f *fakeCompletionClient) Model() string { return "fake-model" }

func reply(text string, err error) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return text, err }
}

// blockUntilDone waits for the attempt deadline like a hung model call.
func blockUntilDone(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type fakeCaller struct {
	text string
	err  error
}

func (f fakeCaller) Generate(context.Context, itinerary.Trip) (string, error) {
	return f.text, f.err
}

type staticHeroImages string

func (s staticHeroImages) GetCountryHeroImage(context.Context, string) string { return string(s) }

type fakeImageRepo struct {
	stored  map[string]db_models.CountryImage
	findErr error
	saveErr error
	saved   []db_models.CountryImage
	finds   int
}

func (r *fakeImageRepo) FindByCountry(_ context.Context, country string) (*db_models.CountryImage, error) {
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	if img, ok := r.stored[country]; ok {
		return &img, nil
	}
	return nil, nil
}

func (r *fakeImageRepo) Save(_ context.Context, image db_models.CountryImage) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, image)
	return nil
}

type fakeImageSearch struct {
	image    utils.CountryImage
	err      error
	searches int
}

func (s *fakeImageSearch) SearchCountryImage(context.Context, string) (utils.CountryImage, error) {
	s.searches++
	return s.image, s.err
}
