package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
)

const isoDate = "2006-01-02"

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Trip is a validated generation request.
type Trip struct {
	Country   string
	Cities    []string
	Interests []string
	Start     time.Time
	End       time.Time
	Language  Language
}

// NewTrip validates a request and resolves its dates and language.
func NewTrip(req request_models.TripGenerationRequest) (Trip, error) {
	if !IsSupported(req.Language) {
		return Trip{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
	}
	start, end, err := TripWindow(req.StartDate, req.EndDate)
	if err != nil {
		return Trip{}, err
	}
	return Trip{
		Country:   strings.TrimSpace(req.Country),
		Cities:    req.Cities,
		Interests: req.Interests,
		Start:     start,
		End:       end,
		Language:  Language(req.Language),
	}, nil
}

// Duration is the authoritative trip length in days.
func (t Trip) Duration() int {
	return TripDuration(t.Start, t.End)
}

type Option func(*Pipeline)

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithIDGenerator overrides how trip ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(p *Pipeline) { p.newID = newID }
}

// Pipeline turns model output into a TripPlan. It holds no per-request
// state and is safe for concurrent use.
type Pipeline struct {
	now   func() time.Time
	newID func() string
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		now:   time.Now,
		newID: func() string { return "trip-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Normalize runs raw model text through extraction, normalization,
// merging, allocation and route synthesis. It returns
// ErrMalformedResponse or ErrEmptyItinerary when the text cannot yield a
// plan; callers fall back to Fallback in that case.
func (p *Pipeline) Normalize(trip Trip, raw, heroImage string) (*response_models.TripPlan, error) {
	obj, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	root := rawObject(obj)
	lang := trip.Language

	items, _ := root.array("itinerary")
	days := make([]response_models.DayPlan, 0, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			days = append(days, NormalizeDayPlan(m, i+1, lang))
		}
	}
	if countCityActivities(days) == 0 {
		return nil, ErrEmptyItinerary
	}

	routes := ExtractRouteMap(days)
	merged := MergeCityBlocks(days, lang)
	merged = EnsureAllCitiesIncluded(merged, trip.Cities, lang)
	placed := Allocate(Condense(merged), trip.Duration(), trip.Start, lang)

	title := root.text("title")
	if title == "" {
		title = lang.TripTitle(trip.Country)
	}
	return p.assemble(trip, title, SynthesizeRoutes(placed, lang, routes), heroImage), nil
}

// Fallback builds a complete plan without any model output. It goes
// through the same allocation and route stages as Normalize.
func (p *Pipeline) Fallback(trip Trip, heroImage string) *response_models.TripPlan {
	lang := trip.Language
	blocks := FallbackCityBlocks(trip.Cities, trip.Interests, trip.Duration(), lang)
	placed := Allocate(Condense(blocks), trip.Duration(), trip.Start, lang)
	return p.assemble(trip, lang.TripTitle(trip.Country), SynthesizeRoutes(placed, lang, nil), heroImage)
}

func (p *Pipeline) assemble(trip Trip, title string, itinerary []response_models.DayPlan, heroImage string) *response_models.TripPlan {
	cities := make([]string, 0, len(itinerary))
	for _, d := range itinerary {
		if !d.IsRoute {
			cities = append(cities, d.City)
		}
	}
	return &response_models.TripPlan{
		ID:          p.newID(),
		Title:       title,
		Cities:      cities,
		StartDate:   trip.Start.Format(isoDate),
		EndDate:     trip.End.Format(isoDate),
		Duration:    trip.Duration(),
		HeroImage:   heroImage,
		Itinerary:   itinerary,
		GeneratedAt: p.now().UTC(),
	}
}

func countCityActivities(days []response_models.DayPlan) int {
	n := 0
	for _, d := range days {
		if !d.IsRoute && cityKey(d.City) != "" {
			n += len(d.Activities)
		}
	}
	return n
}
