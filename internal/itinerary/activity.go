package itinerary

import (
	"fmt"
	"regexp"
	"strings"

	"tripgen/internal/models/response_models"
)

const (
	iconWalk       = "walk"
	iconRestaurant = "restaurant"
	iconAirplane   = "airplane"
)

var (
	placeholderTitle = regexp.MustCompile(`(?i)^(activity|aktivite|to do|thing to do|things to do|todo)$`)

	restaurantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(dinner|lunch|breakfast|brunch)\s+(at|@)\s+\S`),
		regexp.MustCompile(`@\s*[A-Z][A-Za-z0-9'’&.\-]+`),
		regexp.MustCompile(`(?i)(^|[^\p{L}])(restaurant|bistro|brasserie|trattoria|ristorante|osteria|steakhouse|eatery|kitchen|cafe|café|bar|pub|bakery|patisserie)([^\p{L}]|$)`),
		regexp.MustCompile(`(?i)\bmichelin\b`),
	}

	arrivalVocabulary = regexp.MustCompile(`(?i)arrival|varış|check-?in`)
)

var activityTypes = map[string]bool{
	response_models.ActivityTypeActivity:      true,
	response_models.ActivityTypeAccommodation: true,
	response_models.ActivityTypeTransport:     true,
	response_models.ActivityTypeFood:          true,
}

// NormalizeActivity turns one raw activity into a valid Activity. It never
// fails: missing or disallowed fields are replaced by generated values.
func NormalizeActivity(raw map[string]any, dayNumber, index int, city string, lang Language) response_models.Activity {
	r := rawObject(raw)
	p := lang.profile()

	id := r.text("id")
	if id == "" {
		id = fmt.Sprintf("gpt-%d-%d", dayNumber, index+1)
	}

	title := r.text("title")
	if title == "" {
		title = r.text("activity")
	}
	if title == "" || placeholderTitle.MatchString(title) {
		title = p.genericPool[index%len(p.genericPool)](city)
	}

	duration := r.text("duration")

	if IsRestaurantName(title) {
		return response_models.Activity{
			ID:       id,
			Title:    p.streetFood(city),
			Duration: duration,
			Icon:     iconRestaurant,
			Type:     response_models.ActivityTypeFood,
		}
	}

	icon := r.text("icon")
	if icon == "" {
		icon = iconWalk
	}

	kind := strings.ToLower(r.text("type"))
	if !activityTypes[kind] {
		kind = response_models.ActivityTypeActivity
	}

	return response_models.Activity{
		ID:       id,
		Title:    title,
		Duration: duration,
		Icon:     icon,
		Type:     kind,
	}
}

// IsRestaurantName reports whether a title names a specific eatery.
func IsRestaurantName(title string) bool {
	for _, re := range restaurantPatterns {
		if re.MatchString(title) {
			return true
		}
	}
	return false
}

func isArrival(a response_models.Activity) bool {
	return a.Type == response_models.ActivityTypeTransport || arrivalVocabulary.MatchString(a.Title)
}

func arrivalActivity(city, duration string, lang Language) response_models.Activity {
	return response_models.Activity{
		ID:       "arr-" + cityKey(city),
		Title:    lang.profile().arrival(city),
		Duration: duration,
		Icon:     iconAirplane,
		Type:     response_models.ActivityTypeTransport,
	}
}
