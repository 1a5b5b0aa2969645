package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type fakeTripService struct {
	plan *response_models.TripPlan
	err  error
	got  *request_models.TripGenerationRequest
}

func (f *fakeTripService) GenerateTripPlan(_ context.Context, req request_models.TripGenerationRequest) (*response_models.TripPlan, error) {
	f.got = &req
	return f.plan, f.err
}

func (f *fakeTripService) SupportedLanguages() []response_models.LanguageResponse {
	return []response_models.LanguageResponse{{Code: "en", Name: "English"}, {Code: "tr", Name: "Türkçe"}}
}

func (f *fakeTripService) Health() response_models.HealthResponse {
	return response_models.HealthResponse{Status: "ok", LLMEnabled: true, Provider: "openai", Timestamp: 1}
}

type fakeTravelInfoService struct {
	err error
}

func (f *fakeTravelInfoService) GetTravelInfo(_ context.Context, req request_models.TravelInfoRequest) (*response_models.TravelInfoResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.TravelInfoResponse{
		Country:     req.Country,
		Language:    req.Language,
		CountryInfo: response_models.TravelInfo{Overview: "Land of smiles", Currency: "THB"},
	}, nil
}

func newTestRouter(trips *fakeTripService, info *fakeTravelInfoService) *gin.Engine {
	ctrl := NewTripController(trips, info, zap.NewNop())
	r := gin.New()
	r.GET("/api/health", ctrl.HealthHandler)
	trip := r.Group("/api/trip")
	trip.POST("/generate-itinerary", ctrl.GenerateItineraryHandler)
	trip.POST("/travel-info", ctrl.TravelInfoHandler)
	trip.GET("/languages", ctrl.LanguagesHandler)
	return r
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v: %s", err, w.Body.String())
	}
	return w.Code, env
}

const validTripBody = `{"country": "Thailand", "cities": ["Bangkok", "Phuket"], "interests": ["food"],
  "startDate": "2025-03-01", "endDate": "2025-03-05", "language": "en"}`

func TestGenerateItineraryHandler(t *testing.T) {
	trips := &fakeTripService{plan: &response_models.TripPlan{ID: "gpt-1", Title: "Thailand Travel Plan", Duration: 5}}
	code, env := serve(t, newTestRouter(trips, &fakeTravelInfoService{}), http.MethodPost, "/api/trip/generate-itinerary", validTripBody)

	if code != http.StatusOK || env.Status != "success" {
		t.Fatalf("status = %d %q, message %q", code, env.Status, env.Message)
	}
	var plan response_models.TripPlan
	if err := json.Unmarshal(env.Data, &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.ID != "gpt-1" || plan.Duration != 5 {
		t.Errorf("plan = %+v", plan)
	}
	if trips.got == nil || len(trips.got.Cities) != 2 || trips.got.Language != "en" {
		t.Errorf("service got %+v", trips.got)
	}
}

func TestGenerateItineraryHandlerValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{"not json", `{`, "Invalid request body"},
		{"missing country", `{"cities": ["Rome"], "interests": ["art"], "startDate": "2025-03-01", "endDate": "2025-03-02", "language": "it"}`, "Country is required"},
		{"empty cities", `{"country": "Italy", "cities": [], "interests": ["art"], "startDate": "2025-03-01", "endDate": "2025-03-02", "language": "it"}`, "Cities must not be empty"},
		{"bad date", `{"country": "Italy", "cities": ["Rome"], "interests": ["art"], "startDate": "tomorrow", "endDate": "2025-03-02", "language": "it"}`, "StartDate must be a date"},
		{"bad language", `{"country": "Italy", "cities": ["Rome"], "interests": ["art"], "startDate": "2025-03-01", "endDate": "2025-03-02", "language": "de"}`, "Language must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := &fakeTripService{}
			code, env := serve(t, newTestRouter(trips, &fakeTravelInfoService{}), http.MethodPost, "/api/trip/generate-itinerary", tt.body)

			if code != http.StatusBadRequest || env.Status != "error" {
				t.Fatalf("status = %d %q", code, env.Status)
			}
			if !strings.Contains(env.Message, tt.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", env.Message, tt.wantMessage)
			}
			if trips.got != nil {
				t.Errorf("service called with invalid input")
			}
		})
	}
}

func TestGenerateItineraryHandlerServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid input", fmt.Errorf("%w: end date must be after start date", utils.ErrInvalidInput), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := &fakeTripService{err: tt.err}
			code, env := serve(t, newTestRouter(trips, &fakeTravelInfoService{}), http.MethodPost, "/api/trip/generate-itinerary", validTripBody)

			if code != tt.wantCode || env.Code != tt.wantCode {
				t.Errorf("status = %d / %d, want %d", code, env.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusInternalServerError && strings.Contains(env.Message, "boom") {
				t.Errorf("internal error leaked: %q", env.Message)
			}
		})
	}
}

func TestTravelInfoHandler(t *testing.T) {
	r := newTestRouter(&fakeTripService{}, &fakeTravelInfoService{})

	code, env := serve(t, r, http.MethodPost, "/api/trip/travel-info", `{"country": "Thailand", "language": "tr"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, message %q", code, env.Message)
	}
	var info response_models.TravelInfoResponse
	if err := json.Unmarshal(env.Data, &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Country != "Thailand" || info.CountryInfo.Currency != "THB" {
		t.Errorf("info = %+v", info)
	}

	if code, _ := serve(t, r, http.MethodPost, "/api/trip/travel-info", `{"language": "tr"}`); code != http.StatusBadRequest {
		t.Errorf("missing country status = %d, want 400", code)
	}
	if code, _ := serve(t, r, http.MethodPost, "/api/trip/travel-info", `{"country": "Peru"}`); code != http.StatusOK {
		t.Errorf("omitted language status = %d, want 200", code)
	}
}

func TestMetadataHandlers(t *testing.T) {
	r := newTestRouter(&fakeTripService{}, &fakeTravelInfoService{})

	code, env := serve(t, r, http.MethodGet, "/api/health", "")
	var health response_models.HealthResponse
	if err := json.Unmarshal(env.Data, &health); err != nil || code != http.StatusOK {
		t.Fatalf("health = %d %v", code, err)
	}
	if health.Status != "ok" || !health.LLMEnabled || health.Provider != "openai" {
		t.Errorf("health = %+v", health)
	}

	code, env = serve(t, r, http.MethodGet, "/api/trip/languages", "")
	var langs []response_models.LanguageResponse
	if err := json.Unmarshal(env.Data, &langs); err != nil || code != http.StatusOK {
		t.Fatalf("languages = %d %v", code, err)
	}
	if len(langs) != 2 || langs[0].Code != "en" {
		t.Errorf("languages = %+v", langs)
	}
}
