package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	ErrMalformedResponse = errors.New("malformed model response")
	ErrEmptyItinerary    = errors.New("model response has no usable itinerary")
)

var (
	openingFence = regexp.MustCompile("^```[A-Za-z]*\\s*")
	closingFence = regexp.MustCompile("\\s*```$")
)

// alternateItineraryKeys are top-level keys models use instead of
// "itinerary" when they still return an array of day objects.
var alternateItineraryKeys = []string{"days", "dayPlans", "plan", "cities", "trip", "schedule"}

// Extract isolates the JSON payload in a model response and decodes it.
// It either returns a full object or ErrMalformedResponse, never a
// partially parsed tree.
func Extract(text string) (map[string]any, error) {
	cleaned := stripFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	if strings.HasPrefix(cleaned, "[") {
		if days, err := decodeRepaired(cleaned, parseDays); err == nil {
			return map[string]any{"itinerary": days}, nil
		}
	}

	candidate := OutermostObject(cleaned)
	if candidate == "" {
		candidate = cleaned
	}

	obj, err := decodeRepaired(candidate, parseObject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return unwrapItinerary(obj), nil
}

func stripFences(text string) string {
	s := strings.TrimSpace(text)
	s = openingFence.ReplaceAllString(s, "")
	s = closingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// decodeRepaired runs decode on s, then on RepairJSON(s), then on the
// jsonrepair output, returning the first success.
func decodeRepaired[T any](s string, decode func(string) (T, error)) (T, error) {
	v, err := decode(s)
	if err == nil {
		return v, nil
	}
	if v, err = decode(RepairJSON(s)); err == nil {
		return v, nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(s)
	if repairErr != nil {
		return v, repairErr
	}
	return decode(repaired)
}

// parseDays accepts a top-level array holding at least one object.
func parseDays(s string) ([]any, error) {
	var days []any
	if err := json.Unmarshal([]byte(s), &days); err != nil {
		return nil, err
	}
	for _, d := range days {
		if _, ok := d.(map[string]any); ok {
			return days, nil
		}
	}
	return nil, errors.New("top-level array holds no day objects")
}

func parseObject(s string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("top-level value is not an object")
	}
	return obj, nil
}

// OutermostObject returns the first balanced {...} span of s. Braces
// inside double- or single-quoted strings are ignored. It returns "" when no
// balanced object exists.
func OutermostObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	var quote byte
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			quote = ch
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func unwrapItinerary(obj map[string]any) map[string]any {
	root := rawObject(obj)
	if _, ok := root.array("itinerary"); ok {
		return obj
	}

	if inner, ok := root.object("tripPlan"); ok {
		merged := make(map[string]any, len(inner)+len(obj))
		for k, v := range obj {
			if k != "tripPlan" {
				merged[k] = v
			}
		}
		for k, v := range inner {
			merged[k] = v
		}
		return unwrapItinerary(merged)
	}

	for _, key := range alternateItineraryKeys {
		if days, ok := root.objectArray(key); ok {
			obj["itinerary"] = days
			if key == "cities" {
				delete(obj, "cities")
			}
			return obj
		}
	}
	return obj
}
