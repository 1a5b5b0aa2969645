package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripgen/internal/itinerary"
	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/pkg/utils"
)

type TravelInfoServiceInterface interface {
	GetTravelInfo(ctx context.Context, req request_models.TravelInfoRequest) (*response_models.TravelInfoResponse, error)
}

type TravelInfoService struct {
	client  utils.CompletionClientInterface // nil when the model is disabled
	prompts PromptServiceInterface
	timeout time.Duration
	logger  *zap.Logger
}

func NewTravelInfoService(
	client utils.CompletionClientInterface,
	prompts PromptServiceInterface,
	timeout time.Duration,
	logger *zap.Logger,
) TravelInfoServiceInterface {
	return &TravelInfoService{
		client:  client,
		prompts: prompts,
		timeout: timeout,
		logger:  logger,
	}
}

// GetTravelInfo asks the model once and falls back to a generic record.
func (s *TravelInfoService) GetTravelInfo(ctx context.Context, req request_models.TravelInfoRequest) (*response_models.TravelInfoResponse, error) {
	country := strings.TrimSpace(req.Country)
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", utils.ErrInvalidInput)
	}
	lang := itinerary.ParseLanguage(req.Language)

	resp := &response_models.TravelInfoResponse{
		Country:     country,
		Language:    string(lang),
		CountryInfo: fallbackTravelInfo(country, lang),
	}
	if s.client == nil {
		return resp, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(callCtx, s.prompts.TravelInfoPrompt(country, lang))
	if err != nil {
		s.logger.Warn("travel info completion failed, using fallback", zap.String("country", country), zap.Error(err))
		return resp, nil
	}

	obj, err := itinerary.Extract(text)
	if err != nil {
		s.logger.Warn("travel info response unreadable, using fallback", zap.String("country", country), zap.Error(err))
		return resp, nil
	}
	if inner, ok := obj["countryInfo"].(map[string]any); ok {
		obj = inner
	}

	info := decodeTravelInfo(obj)
	if info.Overview == "" {
		s.logger.Warn("travel info response has no overview, using fallback", zap.String("country", country))
		return resp, nil
	}
	resp.CountryInfo = info
	return resp, nil
}

func decodeTravelInfo(obj map[string]any) response_models.TravelInfo {
	return response_models.TravelInfo{
		Overview:       textField(obj, "overview"),
		TopHighlights:  listField(obj, "topHighlights"),
		Currency:       textField(obj, "currency"),
		Power:          textField(obj, "power"),
		Emergency:      textField(obj, "emergency"),
		Sim:            textField(obj, "sim"),
		BestSeasons:    listField(obj, "bestSeasons"),
		Tipping:        textField(obj, "tipping"),
		Safety:         textField(obj, "safety"),
		LocalEtiquette: listField(obj, "localEtiquette"),
	}
}

func textField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		return strings.Join(listValues(v), ", ")
	case map[string]any:
		// emergency numbers sometimes come back as {"police": "191", ...}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, v[k]))
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// listField accepts an array or a delimited string.
func listField(obj map[string]any, key string) []string {
	switch v := obj[key].(type) {
	case []any:
		return listValues(v)
	case string:
		fields := strings.FieldsFunc(v, func(r rune) bool { return r == ';' || r == '\n' || r == ',' })
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
		return out
	default:
		return []string{}
	}
}

func listValues(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func fallbackTravelInfo(country string, lang itinerary.Language) response_models.TravelInfo {
	if lang == itinerary.Turkish {
		return response_models.TravelInfo{
			Overview:       country + " genel tanıtım.",
			TopHighlights:  []string{"Öne çıkan 1", "Öne çıkan 2", "Öne çıkan 3"},
			Currency:       "Para birimi bilgisi",
			Power:          "Priz tipi ve voltaj",
			Emergency:      "Acil numaralar",
			Sim:            "SIM/eSIM seçenekleri",
			BestSeasons:    []string{"En iyi dönemler"},
			Tipping:        "Bahşiş kültürü",
			Safety:         "Güvenlik notları",
			LocalEtiquette: []string{"Yerel görgü kuralları"},
		}
	}
	return response_models.TravelInfo{
		Overview:       country + " general overview.",
		TopHighlights:  []string{"Highlight 1", "Highlight 2", "Highlight 3"},
		Currency:       "Currency info",
		Power:          "Plug types and voltage",
		Emergency:      "Emergency numbers",
		Sim:            "SIM/eSIM options",
		BestSeasons:    []string{"Best seasons"},
		Tipping:        "Tipping culture",
		Safety:         "Safety notes",
		LocalEtiquette: []string{"Local etiquette"},
	}
}
