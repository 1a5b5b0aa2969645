package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"tripgen/internal/config"
	"tripgen/internal/models/request_models"
	"tripgen/pkg/utils"
)

func newTestTravelInfoService(client utils.CompletionClientInterface) TravelInfoServiceInterface {
	cfg := config.LLMConfig{MaxTokens: 800, Temperature: 0.4}
	return NewTravelInfoService(client, NewPromptService(cfg), time.Second, zap.NewNop())
}

func TestGetTravelInfoFromModel(t *testing.T) {
	client := &fakeCompletionClient{replies: []func(context.Context) (string, error){
		reply("```json\n"+`{"countryInfo": {
			"overview": "Italy blends art and food.",
			"topHighlights": ["Colosseum", "Uffizi", "Venice canals"],
			"currency": "Euro",
			"power": "Type L, 230V",
			"emergency": {"police": "113", "ambulance": "118"},
			"sim": "TIM, Vodafone eSIM",
			"bestSeasons": "April-June; September-October",
			"tipping": "Not expected",
			"safety": "Watch for pickpockets",
			"localEtiquette": "Dress modestly in churches"
		}}`+"\n```", nil),
	}}
	svc := newTestTravelInfoService(client)

	got, err := svc.GetTravelInfo(context.Background(), request_models.TravelInfoRequest{Country: "Italy", Language: "it"})
	if err != nil {
		t.Fatalf("GetTravelInfo() error: %v", err)
	}
	info := got.CountryInfo
	if got.Country != "Italy" || got.Language != "it" || info.Overview != "Italy blends art and food." {
		t.Errorf("GetTravelInfo() = %+v", got)
	}
	if !reflect.DeepEqual(info.BestSeasons, []string{"April-June", "September-October"}) {
		t.Errorf("BestSeasons = %v", info.BestSeasons)
	}
	if info.Emergency != "ambulance: 118, police: 113" {
		t.Errorf("Emergency = %q", info.Emergency)
	}
	if len(info.TopHighlights) != 3 || len(info.LocalEtiquette) != 1 {
		t.Errorf("lists = %v / %v", info.TopHighlights, info.LocalEtiquette)
	}
}

func TestGetTravelInfoFallback(t *testing.T) {
	tests := []struct {
		name   string
		client utils.CompletionClientInterface
	}{
		{"disabled", nil},
		{"call failed", &fakeCompletionClient{replies: []func(context.Context) (string, error){reply("", errors.New("boom"))}}},
		{"unreadable", &fakeCompletionClient{replies: []func(context.Context) (string, error){reply("no json here", nil)}}},
		{"no overview", &fakeCompletionClient{replies: []func(context.Context) (string, error){reply(`{"countryInfo": {"currency": "TRY"}}`, nil)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestTravelInfoService(tt.client).GetTravelInfo(context.Background(),
				request_models.TravelInfoRequest{Country: "Türkiye", Language: "tr"})
			if err != nil {
				t.Fatalf("GetTravelInfo() error: %v", err)
			}
			if got.CountryInfo.Overview != "Türkiye genel tanıtım." || got.Language != "tr" {
				t.Errorf("GetTravelInfo() = %+v", got)
			}
		})
	}
}

func TestGetTravelInfoRequiresCountry(t *testing.T) {
	_, err := newTestTravelInfoService(nil).GetTravelInfo(context.Background(), request_models.TravelInfoRequest{Country: " "})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("GetTravelInfo() error = %v, want ErrInvalidInput", err)
	}
}
