package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripgen/internal/itinerary"
	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/pkg/utils"
)

const (
	photoCreditCost  = 15
	maxPhotoBytes    = 10 << 20
	maxPlaceReviews  = 3
	photoServiceName = "photo-analyzer"
	photoVersion     = "1.0.0"
)

var dataURLPrefix = regexp.MustCompile(`^data:(image/[A-Za-z0-9.+-]+);base64,`)

type PhotoAnalyzerServiceInterface interface {
	AnalyzePhoto(ctx context.Context, req request_models.PhotoAnalysisRequest) (*response_models.PhotoAnalysisResponse, error)
	Health() response_models.PhotoHealthResponse
}

type PhotoAnalyzerService struct {
	client      utils.CompletionClientInterface // nil when the model is disabled
	prompts     PromptServiceInterface
	visionModel string
	timeout     time.Duration
	logger      *zap.Logger
}

func NewPhotoAnalyzerService(
	client utils.CompletionClientInterface,
	prompts PromptServiceInterface,
	visionModel string,
	timeout time.Duration,
	logger *zap.Logger,
) PhotoAnalyzerServiceInterface {
	return &PhotoAnalyzerService{
		client:      client,
		prompts:     prompts,
		visionModel: visionModel,
		timeout:     timeout,
		logger:      logger,
	}
}

// AnalyzePhoto identifies the landmark in an image. Credits are charged
// only for recognized places.
func (s *PhotoAnalyzerService) AnalyzePhoto(ctx context.Context, req request_models.PhotoAnalysisRequest) (*response_models.PhotoAnalysisResponse, error) {
	image, mime, err := decodePhoto(req.ImageBase64)
	if err != nil {
		return nil, err
	}
	lang := itinerary.Turkish
	if strings.TrimSpace(req.Language) != "" {
		lang = itinerary.ParseLanguage(req.Language)
	}
	if s.client == nil {
		return nil, fmt.Errorf("%w: photo analysis needs a vision model", utils.ErrLLMUnavailable)
	}

	s.logger.Info("analyzing photo",
		zap.String("language", string(lang)),
		zap.String("mime", mime),
		zap.Int("approx_kb", len(image)*3/4/1024))

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(callCtx, s.prompts.PhotoAnalysisPrompt(image, mime, lang))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", utils.ErrLLMTimeout, err)
		}
		return nil, fmt.Errorf("photo analysis: %w", err)
	}

	obj, err := itinerary.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("photo analysis: %w", err)
	}

	resp := &response_models.PhotoAnalysisResponse{Language: string(lang)}
	place, _ := obj["place"].(map[string]any)
	if recognized, _ := obj["recognized"].(bool); recognized && place != nil {
		info := decodePlace(place)
		if info.Name != "" {
			resp.Recognized = true
			resp.Place = &info
			resp.CreditCost = photoCreditCost
			return resp, nil
		}
	}

	resp.Message = textField(obj, "message")
	if resp.Message == "" {
		resp.Message = notRecognizedMessage(lang)
	}
	return resp, nil
}

func (s *PhotoAnalyzerService) Health() response_models.PhotoHealthResponse {
	return response_models.PhotoHealthResponse{
		Service:   photoServiceName,
		Version:   photoVersion,
		Available: s.client != nil,
		Model:     s.visionModel,
		Timestamp: time.Now().UnixMilli(),
	}
}

// decodePhoto strips an optional data URL prefix and checks that the
// payload is base64 encoded image data. It returns the bare base64 text.
func decodePhoto(raw string) (string, string, error) {
	image := strings.Join(strings.Fields(raw), "")
	declared := ""
	if m := dataURLPrefix.FindStringSubmatch(image); m != nil {
		declared = m[1]
		image = image[len(m[0]):]
	}
	if image == "" {
		return "", "", fmt.Errorf("%w: image is required", utils.ErrInvalidInput)
	}
	if base64.StdEncoding.DecodedLen(len(image)) > maxPhotoBytes {
		return "", "", fmt.Errorf("%w: image is larger than %d MB", utils.ErrInvalidInput, maxPhotoBytes>>20)
	}

	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return "", "", fmt.Errorf("%w: image must be base64 encoded", utils.ErrInvalidInput)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", "", fmt.Errorf("%w: payload is not an image", utils.ErrInvalidInput)
	}
	if declared != "" {
		mime = declared
	}
	return image, mime, nil
}

func decodePlace(obj map[string]any) response_models.PlaceInfo {
	place := response_models.PlaceInfo{
		Name:        textField(obj, "name"),
		LocalName:   textField(obj, "localName"),
		Description: textField(obj, "description"),
		Categories:  listField(obj, "categories"),
		ImageURL:    textField(obj, "imageUrl"),
		UserReviews: []response_models.PlaceReview{},
	}

	if loc, ok := obj["location"].(map[string]any); ok {
		place.Location = response_models.PlaceLocation{
			City:    textField(loc, "city"),
			Country: textField(loc, "country"),
		}
		if c, ok := loc["coordinates"].(map[string]any); ok {
			lat, latOK := numberField(c, "latitude")
			lng, lngOK := numberField(c, "longitude")
			if latOK && lngOK {
				place.Location.Coordinates = &response_models.Coordinates{Latitude: lat, Longitude: lng}
			}
		}
	}

	if d, ok := obj["detailedInfo"].(map[string]any); ok {
		place.DetailedInfo = response_models.PlaceDetails{
			History:              textField(d, "history"),
			Architecture:         textField(d, "architecture"),
			CulturalSignificance: textField(d, "culturalSignificance"),
			BestTimeToVisit:      textField(d, "bestTimeToVisit"),
			EntryFee:             textField(d, "entryFee"),
			OpeningHours:         textField(d, "openingHours"),
		}
	}

	if r, ok := obj["rating"].(map[string]any); ok {
		avg, _ := numberField(r, "average")
		count, _ := numberField(r, "count")
		place.Rating = &response_models.PlaceRating{Average: clampRating(avg), Count: max(0, int(count))}
	}

	reviews, _ := obj["userReviews"].([]any)
	for _, item := range reviews {
		if len(place.UserReviews) == maxPlaceReviews {
			break
		}
		r, ok := item.(map[string]any)
		if !ok {
			continue
		}
		score, _ := numberField(r, "rating")
		review := response_models.PlaceReview{
			Author:  textField(r, "author"),
			Rating:  clampRating(score),
			Comment: textField(r, "comment"),
			Date:    textField(r, "date"),
		}
		if review.Comment != "" {
			place.UserReviews = append(place.UserReviews, review)
		}
	}
	return place
}

// numberField accepts JSON numbers and numeric strings.
func numberField(obj map[string]any, key string) (float64, bool) {
	switch v := obj[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func clampRating(r float64) float64 {
	return max(0, min(r, 5))
}
