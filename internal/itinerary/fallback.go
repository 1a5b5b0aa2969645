package itinerary

import (
	"fmt"
	"sort"
	"strings"

	"tripgen/internal/models/response_models"
)

type pointOfInterest struct {
	title string
	icon  string
	kind  string
	tags  []string
}

func poi(title, icon, kind string, tags ...string) pointOfInterest {
	return pointOfInterest{title: title, icon: icon, kind: kind, tags: tags}
}

const (
	typeActivity = response_models.ActivityTypeActivity
	typeFood     = response_models.ActivityTypeFood
)

// pointsOfInterest is the static table the offline generator draws from.
var pointsOfInterest = map[string][]pointOfInterest{
	"bangkok": {
		poi("Grand Palace & Wat Phra Kaew", "business", typeActivity, "culture", "history"),
		poi("Wat Pho Reclining Buddha", "library", typeActivity, "culture", "history"),
		poi("Wat Arun at Sunset", "camera", typeActivity, "culture", "photography"),
		poi("Chatuchak Weekend Market", "storefront", typeActivity, "shopping", "food"),
		poi("Chao Phraya River Boat Ride", "boat", typeActivity, "nature", "relax"),
		poi("Yaowarat Chinatown Street Food Walk", iconRestaurant, typeFood, "food", "nightlife"),
		poi("Lumpini Park Morning Walk", iconWalk, typeActivity, "nature", "relax"),
	},
	"chiang mai": {
		poi("Doi Suthep Temple", "business", typeActivity, "culture", "nature"),
		poi("Old City Temples Walk", iconWalk, typeActivity, "culture", "history"),
		poi("Sunday Walking Street Market", "storefront", typeActivity, "shopping", "food"),
		poi("Elephant Nature Park", "paw", typeActivity, "nature", "adventure"),
		poi("Nimmanhaemin Coffee Crawl", iconRestaurant, typeFood, "food", "relax"),
	},
	"phuket": {
		poi("Patong Beach", "sunny", typeActivity, "beach", "relax"),
		poi("Phi Phi Islands Boat Trip", "boat", typeActivity, "beach", "adventure"),
		poi("Big Buddha Viewpoint", "camera", typeActivity, "culture", "photography"),
		poi("Old Phuket Town Walk", iconWalk, typeActivity, "culture", "history"),
		poi("Promthep Cape Sunset", "camera", typeActivity, "nature", "photography"),
		poi("Kata Noi Beach Swim", "sunny", typeActivity, "beach", "relax"),
		poi("Phuket Weekend Night Market", iconRestaurant, typeFood, "food", "shopping"),
	},
	"koh samui": {
		poi("Chaweng Beach", "sunny", typeActivity, "beach", "relax"),
		poi("Ang Thong Marine Park Tour", "boat", typeActivity, "nature", "adventure"),
		poi("Big Buddha Temple Samui", "business", typeActivity, "culture"),
		poi("Fisherman's Village Night Market", "storefront", typeFood, "food", "shopping"),
	},
	"ayutthaya": {
		poi("Ayutthaya Historical Park", "business", typeActivity, "history", "culture"),
		poi("Wat Mahathat Buddha Head", "camera", typeActivity, "history", "photography"),
	},
	"pattaya": {
		poi("Sanctuary of Truth", "business", typeActivity, "culture", "history"),
		poi("Coral Island Day Trip", "boat", typeActivity, "beach", "adventure"),
		poi("Pattaya Floating Market", "storefront", typeActivity, "shopping", "food"),
		poi("Walking Street Evening Stroll", iconWalk, typeActivity, "nightlife"),
	},
	"istanbul": {
		poi("Hagia Sophia", "business", typeActivity, "history", "culture"),
		poi("Topkapı Palace", "business", typeActivity, "history", "culture"),
		poi("Grand Bazaar", "storefront", typeActivity, "shopping"),
		poi("Bosphorus Ferry Ride", "boat", typeActivity, "nature", "relax"),
		poi("Kadıköy Street Food Walk", iconRestaurant, typeFood, "food"),
		poi("Galata Tower View", "camera", typeActivity, "photography"),
	},
	"cappadocia": {
		poi("Hot Air Balloon Sunrise", "airplane", typeActivity, "adventure", "photography"),
		poi("Göreme Open Air Museum", "business", typeActivity, "history", "culture"),
		poi("Red Valley Hike", iconWalk, typeActivity, "nature", "adventure"),
		poi("Derinkuyu Underground City", "library", typeActivity, "history"),
	},
	"rome": {
		poi("Colosseum & Roman Forum", "business", typeActivity, "history", "culture"),
		poi("Vatican Museums", "library", typeActivity, "art", "culture"),
		poi("Trevi Fountain Evening Walk", iconWalk, typeActivity, "photography"),
		poi("Trastevere Food Walk", iconRestaurant, typeFood, "food", "nightlife"),
	},
	"florence": {
		poi("Uffizi Gallery", "library", typeActivity, "art", "culture"),
		poi("Duomo Dome Climb", "business", typeActivity, "history", "photography"),
		poi("Piazzale Michelangelo Sunset", "camera", typeActivity, "photography"),
		poi("Mercato Centrale Tasting", iconRestaurant, typeFood, "food"),
	},
	"paris": {
		poi("Eiffel Tower", "business", typeActivity, "photography", "culture"),
		poi("Louvre Museum", "library", typeActivity, "art", "culture"),
		poi("Montmartre Walk", iconWalk, typeActivity, "art", "history"),
		poi("Seine River Cruise", "boat", typeActivity, "relax"),
	},
}

// interestScore counts how many of the traveller's interests a POI covers.
func interestScore(p pointOfInterest, interests map[string]bool) int {
	score := 0
	for _, t := range p.tags {
		if interests[t] {
			score++
		}
	}
	return score
}

func rankedPointsOfInterest(city string, interests []string) []pointOfInterest {
	source := pointsOfInterest[cityKey(city)]
	ranked := append([]pointOfInterest(nil), source...)

	wanted := make(map[string]bool, len(interests))
	for _, i := range interests {
		wanted[strings.ToLower(strings.TrimSpace(i))] = true
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return interestScore(ranked[a], wanted) > interestScore(ranked[b], wanted)
	})
	return ranked
}

// FallbackCityBlocks builds one unallocated city block per distinct
// requested city from the static POI table. Cities without table entries
// get only an arrival; allocation pads them with generic sightseeing.
func FallbackCityBlocks(cities, interests []string, totalDays int, lang Language) []response_models.DayPlan {
	var unique []string
	seen := make(map[string]bool, len(cities))
	for _, c := range cities {
		key := cityKey(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, strings.TrimSpace(c))
	}

	shares := CityDayShares(len(unique), totalDays)
	blocks := make([]response_models.DayPlan, 0, len(unique))
	for i, city := range unique {
		ranked := rankedPointsOfInterest(city, interests)
		take := min(len(ranked), max(2, 3*shares[i]))

		slug := citySlug(city)
		activities := make([]response_models.Activity, 0, take+1)
		arrival := arrivalActivity(city, lang.DayLabel(1), lang)
		arrival.ID = "act-" + slug + "-arrive"
		activities = append(activities, arrival)
		for k, p := range ranked[:take] {
			activities = append(activities, response_models.Activity{
				ID:    fmt.Sprintf("act-%s-%d", slug, k+1),
				Title: p.title,
				Icon:  p.icon,
				Type:  p.kind,
			})
		}

		blocks = append(blocks, response_models.DayPlan{
			DayNumber:  1,
			City:       city,
			Activities: activities,
		})
	}
	return blocks
}
