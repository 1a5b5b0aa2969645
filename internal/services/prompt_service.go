package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"tripgen/internal/config"
	"tripgen/internal/itinerary"
	"tripgen/pkg/utils"
)

const (
	minItineraryTokens  = 600
	maxItineraryTokens  = 1200
	minTravelInfoTokens = 400
	maxTravelInfoTokens = 800
	maxTravelInfoTemp   = 0.8
	photoMaxTokens      = 2000
	photoTemperature    = 0.3
)

var tripPlanSchema = json.RawMessage(`{
  "type": "object",
  "additionalProperties": false,
  "required": ["title", "itinerary"],
  "properties": {
    "title": {"type": "string"},
    "itinerary": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["dayNumber", "city", "dateRange", "isRoute", "routeInfo", "activities"],
        "properties": {
          "dayNumber": {"type": "integer"},
          "city": {"type": "string"},
          "dateRange": {"type": "string"},
          "isRoute": {"type": "boolean"},
          "routeInfo": {
            "anyOf": [
              {"type": "null"},
              {
                "type": "object",
                "additionalProperties": false,
                "required": ["from", "to", "transportType", "duration", "fromTerminal", "toTerminal", "alternatives"],
                "properties": {
                  "from": {"type": "string"},
                  "to": {"type": "string"},
                  "transportType": {"type": "string", "enum": ["flight", "bus", "train", "car", "ferry"]},
                  "duration": {"type": "string"},
                  "fromTerminal": {"type": "string"},
                  "toTerminal": {"type": "string"},
                  "alternatives": {
                    "type": "array",
                    "items": {
                      "type": "object",
                      "additionalProperties": false,
                      "required": ["transportType", "duration"],
                      "properties": {
                        "transportType": {"type": "string", "enum": ["flight", "bus", "train", "car", "ferry"]},
                        "duration": {"type": "string"}
                      }
                    }
                  }
                }
              }
            ]
          },
          "activities": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["title", "duration", "icon", "type"],
              "properties": {
                "title": {"type": "string"},
                "duration": {"type": "string"},
                "icon": {"type": "string"},
                "type": {"type": "string", "enum": ["activity", "accommodation", "transport", "food"]}
              }
            }
          }
        }
      }
    }
  }
}`)

var travelInfoSchema = json.RawMessage(`{
  "type": "object",
  "additionalProperties": false,
  "required": ["countryInfo"],
  "properties": {
    "countryInfo": {
      "type": "object",
      "additionalProperties": false,
      "required": ["overview", "topHighlights", "currency", "power", "emergency", "sim", "bestSeasons", "tipping", "safety", "localEtiquette"],
      "properties": {
        "overview": {"type": "string"},
        "topHighlights": {"type": "array", "items": {"type": "string"}},
        "currency": {"type": "string"},
        "power": {"type": "string"},
        "emergency": {"type": "string"},
        "sim": {"type": "string"},
        "bestSeasons": {"type": "array", "items": {"type": "string"}},
        "tipping": {"type": "string"},
        "safety": {"type": "string"},
        "localEtiquette": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`)

const englishItinerarySystem = `You are an expert travel itinerary planner. Return ONLY valid JSON (no code fences, no prose).
- Response language: {language}
- Keep a reasonable pace: lighter on arrival days, fuller on whole days.
- The FIRST activity of each city block is "Arrival to <City> & Hotel Check-in" (type "transport", icon "airplane").
- Every activity has "title", "duration", "icon" (Ionicons name) and "type" (activity, accommodation, transport or food).
- "duration" is "Day X" where X is the GLOBAL trip day number (Day 1 is the first day of the trip).
- Put a route card between cities: {isRoute: true, routeInfo: {from, to, transportType, duration, fromTerminal, toTerminal, alternatives}}.
- Short routes (about 2-3h) use bus, train or car. Routes of 9h or more use flight with a bus alternative.
- Use concrete sights that fit the interests. NEVER name specific restaurants; use "<City> Street Food" or night markets instead.
- Use ONLY the given cities.`

const englishItineraryUser = `Generate a TripPlan JSON using:
- Country: {country}
- Cities: {cities}
- Interests: {interests}
- Start Date: {startDate}
- End Date: {endDate}
- TOTAL TRIP DAYS: {duration}

Create activities from Day 1 to Day {duration} only. Never create Day {duration_plus_1} or later.
Split the {duration} days across the cities in order, at least one day each.`

const turkishItinerarySystem = `Deneyimli bir seyahat planlama asistanısın. SADECE geçerli JSON döndür (kod bloğu/prose yok).
- Yanıt dili: Türkçe
- Mantıklı tempo uygula: varış günleri hafif, tam günler daha dolu.
- Her şehir bloğunun ilk aktivitesi "<Şehir>'e Varış & Otele Yerleşme" olmalı (type "transport", icon "airplane").
- Her aktivitede "title", "duration", "icon" (Ionicons adı) ve "type" (activity, accommodation, transport, food) bulunur.
- "duration" MUTLAKA "X. Gün" biçimindedir, X GLOBAL seyahat gün numarasıdır.
- Şehirler arasına rota kartı ekle: {isRoute: true, routeInfo: {from, to, transportType, duration, fromTerminal, toTerminal, alternatives}}.
- Kısa rotalar (≈2-3 saat) bus, train veya car kullanır. 9 saat ve üzeri rotalar flight ve bus alternatifi kullanır.
- İlgi alanlarına uygun somut yerler kullan. ÖZEL RESTORAN İSMİ VERME; "<Şehir> Sokak Lezzetleri" gibi genel ifadeler kullan.
- Yalnızca verilen şehirleri kullan.`

const turkishItineraryUser = `Aşağıdaki bilgilerle TripPlan JSON üret:
- Ülke: {country}
- Şehirler: {cities}
- İlgi alanları: {interests}
- Başlangıç Tarihi: {startDate}
- Bitiş Tarihi: {endDate}
- TOPLAM SEYAHAT GÜN SAYISI: {duration}

Sadece 1. Gün ile {duration}. Gün arasında aktivite oluştur. {duration_plus_1}. Gün veya sonrasını OLUŞTURMA.
{duration} günü şehirlere sırayla böl, her şehre en az bir gün ver.`

const travelInfoSystem = `You are an expert travel guide. Return ONLY valid JSON (no code fences, no prose).
- Response language: {language}
- This is NOT an itinerary; give a COUNTRY-LEVEL overview and practical travel information.
- Keep it concise and tourist focused.`

const travelInfoUser = `Country: {country}
Provide countryInfo with: overview (2-3 sentences), topHighlights (3-8 items), currency, power (plug types and voltage),
emergency (one string, e.g. "Police: 191, Ambulance: 1669"), sim, bestSeasons, tipping, safety, localEtiquette.`

const photoAnalysisSystem = `You are a travel expert and historical place recognition assistant.
Analyze the photo and identify it if it shows a famous landmark, historical site, tourist attraction or notable architecture.
- ONLY identify recognizable, famous, touristic or historical places.
- REJECT generic images such as ordinary streets, buildings or nature scenes.
- All text must be in {language}.
Return ONLY valid JSON (no code fences, no prose) in this format:
{
  "recognized": true,
  "place": {
    "name": "Place name",
    "localName": "Name in the local language (if different)",
    "location": {"city": "City", "country": "Country", "coordinates": {"latitude": 41.0, "longitude": 29.0}},
    "description": "2-3 sentence description",
    "detailedInfo": {
      "history": "Historical background",
      "architecture": "Architectural features",
      "culturalSignificance": "Cultural and historical significance",
      "bestTimeToVisit": "Best time to visit",
      "entryFee": "Entry fee (if applicable)",
      "openingHours": "Opening hours (if applicable)"
    },
    "rating": {"average": 4.5, "count": 2000},
    "userReviews": [{"author": "Example User", "rating": 5, "comment": "Amazing experience", "date": "2024-06-15"}],
    "categories": ["History", "Architecture"]
  }
}
If the place cannot be recognized return:
{"recognized": false, "message": "{notRecognized}"}`

var photoNotRecognized = map[itinerary.Language]string{
	itinerary.Turkish: "Bu görüntüde tanınabilir bir turistik yer veya tarihi eser bulunamadı.",
	itinerary.English: "No recognizable tourist attraction or historical site found in this image.",
	itinerary.Spanish: "No se encontró ningún lugar turístico o histórico reconocible en esta imagen.",
	itinerary.French:  "Aucun lieu touristique ou historique reconnaissable trouvé dans cette image.",
	itinerary.Italian: "Nessun luogo turistico o storico riconoscibile trovato in questa immagine.",
}

func notRecognizedMessage(lang itinerary.Language) string {
	if msg, ok := photoNotRecognized[lang]; ok {
		return msg
	}
	return photoNotRecognized[itinerary.English]
}

type PromptServiceInterface interface {
	ItineraryPrompt(trip itinerary.Trip, interests []string) utils.CompletionRequest
	TravelInfoPrompt(country string, lang itinerary.Language) utils.CompletionRequest
	PhotoAnalysisPrompt(imageBase64, mime string, lang itinerary.Language) utils.CompletionRequest
}

type PromptService struct {
	maxTokens   int
	temperature float32
	visionModel string
}

func NewPromptService(cfg config.LLMConfig) PromptServiceInterface {
	return &PromptService{
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		visionModel: cfg.VisionModel,
	}
}

// ItineraryPrompt renders the trip prompt. Turkish has its own template,
// every other language uses the English one with a response language line.
func (p *PromptService) ItineraryPrompt(trip itinerary.Trip, interests []string) utils.CompletionRequest {
	system, user := englishItinerarySystem, englishItineraryUser
	if trip.Language == itinerary.Turkish {
		system, user = turkishItinerarySystem, turkishItineraryUser
	}

	duration := trip.Duration()
	r := strings.NewReplacer(
		"{language}", itinerary.LanguageName(trip.Language),
		"{country}", trip.Country,
		"{cities}", strings.Join(trip.Cities, ", "),
		"{interests}", strings.Join(interests, ", "),
		"{startDate}", trip.Start.Format("2006-01-02"),
		"{endDate}", trip.End.Format("2006-01-02"),
		"{duration_plus_1}", strconv.Itoa(duration+1),
		"{duration}", strconv.Itoa(duration),
	)

	return utils.CompletionRequest{
		System:      r.Replace(system),
		User:        r.Replace(user),
		SchemaName:  "trip_plan",
		Schema:      tripPlanSchema,
		MaxTokens:   clamp(p.maxTokens, minItineraryTokens, maxItineraryTokens),
		Temperature: p.temperature,
	}
}

func (p *PromptService) TravelInfoPrompt(country string, lang itinerary.Language) utils.CompletionRequest {
	r := strings.NewReplacer(
		"{language}", itinerary.LanguageName(lang),
		"{country}", strings.TrimSpace(country),
	)

	return utils.CompletionRequest{
		System:      r.Replace(travelInfoSystem),
		User:        r.Replace(travelInfoUser),
		SchemaName:  "travel_info",
		Schema:      travelInfoSchema,
		MaxTokens:   clamp(p.maxTokens, minTravelInfoTokens, maxTravelInfoTokens),
		Temperature: min(p.temperature, maxTravelInfoTemp),
	}
}

// PhotoAnalysisPrompt asks the vision model for a place record. No schema
// is sent, so OpenAI runs it in json_object mode.
func (p *PromptService) PhotoAnalysisPrompt(imageBase64, mime string, lang itinerary.Language) utils.CompletionRequest {
	r := strings.NewReplacer(
		"{language}", itinerary.LanguageName(lang),
		"{notRecognized}", notRecognizedMessage(lang),
	)

	return utils.CompletionRequest{
		System:      r.Replace(photoAnalysisSystem),
		Model:       p.visionModel,
		ImageBase64: imageBase64,
		ImageMIME:   mime,
		MaxTokens:   photoMaxTokens,
		Temperature: photoTemperature,
	}
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
