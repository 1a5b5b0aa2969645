package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const unsplashBaseURL = "https://api.unsplash.com"

// DefaultHeroImage is used when no country specific image is known.
const DefaultHeroImage = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=1200"

var countryLandmarks = map[string]string{
	"turkey":         "cappadocia hot air balloons turkey",
	"türkiye":        "cappadocia hot air balloons turkey",
	"france":         "eiffel tower paris",
	"italy":          "colosseum rome",
	"spain":          "sagrada familia barcelona",
	"japan":          "mount fuji japan",
	"greece":         "santorini greece",
	"thailand":       "grand palace bangkok",
	"egypt":          "pyramids giza",
	"germany":        "brandenburg gate berlin",
	"united kingdom": "big ben london",
	"portugal":       "lisbon portugal",
	"vietnam":        "halong bay vietnam",
	"peru":           "machu picchu peru",
}

var countryFallbackImages = map[string]string{
	"turkey":   "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?w=1200",
	"türkiye":  "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?w=1200",
	"italy":    "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=1200",
	"france":   "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=1200",
	"spain":    "https://images.unsplash.com/photo-1543783207-ec64e4d95325?w=1200",
	"japan":    "https://images.unsplash.com/photo-1490806843957-31f4c9a91c65?w=1200",
	"greece":   "https://images.unsplash.com/photo-1533105079780-92b9be482077?w=1200",
	"thailand": "https://images.unsplash.com/photo-1528181304800-259b08848526?w=1200",
	"vietnam":  "https://images.unsplash.com/photo-1528127269322-539801943592?w=1200",
}

type CountryImage struct {
	URL          string
	Photographer string
	Source       string
}

type ImageSearchInterface interface {
	SearchCountryImage(ctx context.Context, country string) (CountryImage, error)
}

type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewUnsplashClient(accessKey, baseURL string) *UnsplashClient {
	if baseURL == "" {
		baseURL = unsplashBaseURL
	}
	return &UnsplashClient{
		accessKey:  accessKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// SearchCountryImage looks up one landscape photo of the country's best known landmark.
func (u *UnsplashClient) SearchCountryImage(ctx context.Context, country string) (CountryImage, error) {
	if u.accessKey == "" {
		return CountryImage{}, fmt.Errorf("%w: unsplash access key not configured", ErrImageNotFound)
	}

	q := url.Values{}
	q.Set("query", CountrySearchQuery(country))
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")
	q.Set("order_by", "relevant")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return CountryImage{}, err
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return CountryImage{}, fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CountryImage{}, fmt.Errorf("unsplash search: unexpected status %d", resp.StatusCode)
	}

	var body unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return CountryImage{}, fmt.Errorf("unsplash search: decode: %w", err)
	}
	if len(body.Results) == 0 || body.Results[0].URLs.Regular == "" {
		return CountryImage{}, ErrImageNotFound
	}

	photo := body.Results[0]
	return CountryImage{URL: photo.URLs.Regular, Photographer: photo.User.Name, Source: "Unsplash"}, nil
}

func CountrySearchQuery(country string) string {
	if q, ok := countryLandmarks[strings.ToLower(strings.TrimSpace(country))]; ok {
		return q
	}
	return strings.TrimSpace(country) + " landmark travel"
}

// FallbackCountryImage never fails; unknown countries get DefaultHeroImage.
func FallbackCountryImage(country string) string {
	if u, ok := countryFallbackImages[strings.ToLower(strings.TrimSpace(country))]; ok {
		return u
	}
	return DefaultHeroImage
}
