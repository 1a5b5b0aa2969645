package itinerary

import (
	"strings"

	"tripgen/internal/models/response_models"
)

// MergeCityBlocks folds adjacent blocks of the same city into one,
// deduplicates activities and makes sure every city block opens with an
// arrival. Route blocks pass through untouched. Running it on its own
// output is a no-op.
func MergeCityBlocks(days []response_models.DayPlan, lang Language) []response_models.DayPlan {
	merged := make([]response_models.DayPlan, 0, len(days))
	for _, day := range days {
		if day.IsRoute {
			merged = append(merged, day)
			continue
		}

		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if !last.IsRoute && cityKey(last.City) == cityKey(day.City) {
				last.Activities = dedupeActivities(append(last.Activities, day.Activities...))
				if last.DateRange == "" {
					last.DateRange = day.DateRange
				}
				continue
			}
		}

		day.Activities = ensureArrival(day.City, dedupeActivities(day.Activities), lang)
		merged = append(merged, day)
	}
	return merged
}

// EnsureAllCitiesIncluded appends a single-day block, holding only an
// arrival, for each requested city missing from blocks.
func EnsureAllCitiesIncluded(blocks []response_models.DayPlan, cities []string, lang Language) []response_models.DayPlan {
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if !b.IsRoute {
			seen[cityKey(b.City)] = true
		}
	}

	for _, city := range cities {
		key := cityKey(city)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		name := strings.TrimSpace(city)
		blocks = append(blocks, response_models.DayPlan{
			DayNumber:  1,
			City:       name,
			Activities: ensureArrival(name, nil, lang),
		})
	}
	return blocks
}

// Condense collapses non-adjacent city blocks that share a city into the
// first occurrence and drops route blocks and blocks without a city. The
// generated arrival of a later occurrence is not carried over.
func Condense(blocks []response_models.DayPlan) []response_models.DayPlan {
	index := make(map[string]int, len(blocks))
	out := make([]response_models.DayPlan, 0, len(blocks))
	for _, b := range blocks {
		key := cityKey(b.City)
		if b.IsRoute || key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			for _, a := range b.Activities {
				if a.ID != "arr-"+key {
					out[i].Activities = append(out[i].Activities, a)
				}
			}
			out[i].Activities = dedupeActivities(out[i].Activities)
			continue
		}
		b.City = strings.TrimSpace(b.City)
		b.Activities = append([]response_models.Activity(nil), b.Activities...)
		index[key] = len(out)
		out = append(out, b)
	}
	return out
}

// dedupeActivities drops activities whose lowercased (title, duration)
// pair already appeared, and activities with an empty title.
func dedupeActivities(activities []response_models.Activity) []response_models.Activity {
	seen := make(map[string]bool, len(activities))
	out := make([]response_models.Activity, 0, len(activities))
	for _, a := range activities {
		title := strings.ToLower(strings.TrimSpace(a.Title))
		if title == "" {
			continue
		}
		key := title + "|" + strings.ToLower(strings.TrimSpace(a.Duration))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

func ensureArrival(city string, activities []response_models.Activity, lang Language) []response_models.Activity {
	for _, a := range activities {
		if isArrival(a) {
			return activities
		}
	}

	duration := lang.DayLabel(1)
	if len(activities) > 0 && activities[0].Duration != "" {
		duration = activities[0].Duration
	}
	out := make([]response_models.Activity, 0, len(activities)+1)
	out = append(out, arrivalActivity(city, duration, lang))
	return append(out, activities...)
}
