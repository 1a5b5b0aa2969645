package itinerary

import (
	"regexp"
	"strconv"
	"strings"

	"tripgen/internal/models/response_models"
)

const shortFlightDuration = "≈1–2h"

// Routes at or under shortHopHours never fly as the primary mode; routes
// at or over longHaulHours always offer a flight.
const (
	shortHopHours = 3.0
	longHaulHours = 6.0
)

type knownRoute struct {
	a, b         string
	duration     string
	mode         string
	preferFlight bool
}

// knownRoutes are ground travel estimates for common city pairs. Lookups
// are symmetric.
var knownRoutes = []knownRoute{
	{"bangkok", "pattaya", "2–3h", response_models.TransportBus, false},
	{"bangkok", "phuket", "10–12h", response_models.TransportFlight, true},
	{"bangkok", "chiang mai", "9–10h", response_models.TransportFlight, true},
	{"pattaya", "phuket", "14–16h", response_models.TransportFlight, true},
	{"bangkok", "ayutthaya", "1–2h", response_models.TransportTrain, false},
	{"chiang mai", "chiang rai", "3–4h", response_models.TransportBus, false},
	{"phuket", "koh samui", "6–8h", response_models.TransportFerry, false},
	{"istanbul", "ankara", "4–5h", response_models.TransportTrain, false},
	{"istanbul", "izmir", "6–8h", response_models.TransportBus, false},
	{"istanbul", "cappadocia", "10–12h", response_models.TransportFlight, true},
	{"istanbul", "antalya", "10–12h", response_models.TransportFlight, true},
	{"rome", "florence", "1h 30m", response_models.TransportTrain, false},
	{"florence", "venice", "2h 15m", response_models.TransportTrain, false},
	{"rome", "naples", "1h 10m", response_models.TransportTrain, false},
	{"paris", "lyon", "2h", response_models.TransportTrain, false},
	{"madrid", "barcelona", "2h 30m", response_models.TransportTrain, false},
}

type terminal struct {
	city string
	name string
}

var (
	airports = []terminal{
		{"bangkok", "Suvarnabhumi Airport (BKK)"},
		{"pattaya", "U-Tapao–Rayong–Pattaya Intl (UTP)"},
		{"phuket", "Phuket International Airport (HKT)"},
		{"chiang mai", "Chiang Mai International Airport (CNX)"},
		{"koh samui", "Samui International Airport (USM)"},
		{"istanbul", "Istanbul Airport (IST)"},
		{"cappadocia", "Nevşehir Kapadokya Airport (NAV)"},
		{"antalya", "Antalya Airport (AYT)"},
		{"izmir", "Izmir Adnan Menderes Airport (ADB)"},
	}
	busTerminals = []terminal{
		{"bangkok", "Bangkok (Ekkamai) Bus Terminal"},
		{"pattaya", "Pattaya Bus Terminal"},
		{"phuket", "Phuket Bus Terminal 2"},
		{"chiang mai", "Chiang Mai Arcade Bus Terminal"},
		{"istanbul", "Istanbul Esenler Bus Terminal"},
		{"izmir", "Izmir Otogar"},
	}
	trainStations = []terminal{
		{"bangkok", "Krung Thep Aphiwat Central Terminal"},
		{"ayutthaya", "Ayutthaya Railway Station"},
		{"istanbul", "Istanbul Söğütlüçeşme Station"},
		{"ankara", "Ankara YHT Station"},
		{"rome", "Roma Termini"},
		{"florence", "Firenze Santa Maria Novella"},
		{"venice", "Venezia Santa Lucia"},
		{"naples", "Napoli Centrale"},
		{"paris", "Paris Gare de Lyon"},
		{"lyon", "Lyon Part-Dieu"},
		{"madrid", "Madrid Atocha"},
		{"barcelona", "Barcelona Sants"},
	}
)

var (
	rangeHours   = regexp.MustCompile(`(\d+(?:\.\d+)?)[-–](\d+(?:\.\d+)?)(?:h|saat)`)
	hoursMinutes = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:h|saat)(?:(\d+)(?:m|dk|dakika))?`)
	minutesOnly  = regexp.MustCompile(`(\d+)(?:m|min|dk|dakika)`)
)

func lookupRoute(from, to string) (knownRoute, bool) {
	a, b := cityKey(from), cityKey(to)
	for _, r := range knownRoutes {
		if (r.a == a && r.b == b) || (r.a == b && r.b == a) {
			return r, true
		}
	}
	return knownRoute{}, false
}

// EstimateDuration returns the ground travel estimate for a known pair, or "".
func EstimateDuration(from, to string) string {
	if r, ok := lookupRoute(from, to); ok {
		return r.duration
	}
	return ""
}

// EstimatePrimaryTransport returns the preferred mode for a pair,
// defaulting to bus.
func EstimatePrimaryTransport(from, to string) string {
	if r, ok := lookupRoute(from, to); ok {
		return r.mode
	}
	return response_models.TransportBus
}

// groundHours is the tabled ground travel time for a pair, or 0 when unknown.
func groundHours(from, to string) float64 {
	r, ok := lookupRoute(from, to)
	if !ok {
		return 0
	}
	h, _ := ParseDurationHours(r.duration)
	return h
}

func prefersFlight(from, to string) bool {
	r, ok := lookupRoute(from, to)
	return ok && r.preferFlight
}

func findTerminal(table []terminal, city string) string {
	key := cityKey(city)
	if key == "" {
		return ""
	}
	for _, t := range table {
		if strings.Contains(key, t.city) {
			return t.name
		}
	}
	return ""
}

func terminalsFor(mode, from, to string) (string, string) {
	var table []terminal
	switch mode {
	case response_models.TransportFlight:
		table = airports
	case response_models.TransportBus:
		table = busTerminals
	case response_models.TransportTrain:
		table = trainStations
	default:
		return "", ""
	}
	return findTerminal(table, from), findTerminal(table, to)
}

// ParseDurationHours reads free-text durations such as "2–3h", "1h 30m",
// "≈1.5h" or "10 saat". ok is false when nothing recognizable is found.
func ParseDurationHours(s string) (hours float64, ok bool) {
	d := strings.ToLower(s)
	d = strings.Join(strings.Fields(d), "")
	d = strings.NewReplacer("~", "", "≈", "", "hours", "h", "hour", "h", "hrs", "h", "hr", "h").Replace(d)
	if d == "" {
		return 0, false
	}

	if m := rangeHours.FindStringSubmatch(d); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return (lo + hi) / 2, true
	}
	if m := hoursMinutes.FindStringSubmatch(d); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		if m[2] != "" {
			mins, _ := strconv.Atoi(m[2])
			h += float64(mins) / 60
		}
		return h, true
	}
	if m := minutesOnly.FindStringSubmatch(d); m != nil {
		mins, _ := strconv.Atoi(m[1])
		return float64(mins) / 60, true
	}
	return 0, false
}

// EnrichRouteInfo fills missing mode, duration and terminal names from
// the lookup tables and then applies the duration policy: short hops do
// not fly, long hauls always offer a flight.
func EnrichRouteInfo(info response_models.RouteInfo) response_models.RouteInfo {
	if info.TransportType == "" {
		info.TransportType = EstimatePrimaryTransport(info.From, info.To)
	}
	if info.Duration == "" {
		info.Duration = EstimateDuration(info.From, info.To)
	}
	info = applyDurationPolicy(info)
	fillTerminals(&info)
	return info
}

func fillTerminals(info *response_models.RouteInfo) {
	from, to := terminalsFor(info.TransportType, info.From, info.To)
	if info.FromTerminal == "" {
		info.FromTerminal = from
	}
	if info.ToTerminal == "" {
		info.ToTerminal = to
	}
	for i := range info.Alternatives {
		alt := &info.Alternatives[i]
		from, to := terminalsFor(alt.TransportType, info.From, info.To)
		if alt.FromTerminal == "" {
			alt.FromTerminal = from
		}
		if alt.ToTerminal == "" {
			alt.ToTerminal = to
		}
	}
}

func hasFlightAlternative(info response_models.RouteInfo) bool {
	for _, alt := range info.Alternatives {
		if alt.TransportType == response_models.TransportFlight {
			return true
		}
	}
	return false
}

func hasGroundAlternative(info response_models.RouteInfo) bool {
	for _, alt := range info.Alternatives {
		if alt.TransportType != response_models.TransportFlight {
			return true
		}
	}
	return false
}

func applyDurationPolicy(info response_models.RouteInfo) response_models.RouteInfo {
	hours, ok := ParseDurationHours(info.Duration)
	if !ok {
		return info
	}
	isFlight := info.TransportType == response_models.TransportFlight

	switch {
	case hours <= shortHopHours && isFlight:
		if groundHours(info.From, info.To) > shortHopHours {
			return info
		}
		return demoteFlight(info)

	case hours >= longHaulHours && isFlight:
		if !strings.Contains(strings.ToLower(info.Duration), "h") {
			return info
		}
		if !hasGroundAlternative(info) {
			info.Alternatives = append(info.Alternatives, response_models.RouteOption{
				TransportType: response_models.TransportBus,
				Duration:      info.Duration,
			})
		}
		info.Duration = shortFlightDuration
		return info

	case hours >= longHaulHours && prefersFlight(info.From, info.To):
		ground := response_models.RouteOption{
			TransportType: info.TransportType,
			Duration:      info.Duration,
			Cost:          info.Cost,
		}
		alternatives := []response_models.RouteOption{ground}
		for _, alt := range info.Alternatives {
			if alt.TransportType != response_models.TransportFlight {
				alternatives = append(alternatives, alt)
			}
		}
		info.TransportType = response_models.TransportFlight
		info.Duration = shortFlightDuration
		info.Cost = ""
		info.FromTerminal, info.ToTerminal = "", ""
		info.Alternatives = alternatives
		return info

	case hours >= longHaulHours && !hasFlightAlternative(info):
		info.Alternatives = append(info.Alternatives, response_models.RouteOption{
			TransportType: response_models.TransportFlight,
			Duration:      shortFlightDuration,
		})
		return info
	}
	return info
}

// demoteFlight swaps a flight primary for the first ground alternative,
// or bus when none exists, and keeps the flight as an alternative.
func demoteFlight(info response_models.RouteInfo) response_models.RouteInfo {
	flight := response_models.RouteOption{
		TransportType: response_models.TransportFlight,
		Duration:      info.Duration,
		Cost:          info.Cost,
		FromTerminal:  info.FromTerminal,
		ToTerminal:    info.ToTerminal,
	}

	primary := response_models.TransportBus
	rest := make([]response_models.RouteOption, 0, len(info.Alternatives)+1)
	promoted := false
	for _, alt := range info.Alternatives {
		if !promoted && alt.TransportType != response_models.TransportFlight {
			primary = alt.TransportType
			if alt.Duration != "" {
				info.Duration = alt.Duration
			}
			promoted = true
			continue
		}
		if alt.TransportType != response_models.TransportFlight {
			rest = append(rest, alt)
		}
	}

	info.TransportType = primary
	info.Cost = ""
	info.FromTerminal, info.ToTerminal = "", ""
	info.Alternatives = append(rest, flight)
	return info
}

type routeKey struct {
	from, to string
}

func keyFor(from, to string) routeKey {
	return routeKey{cityKey(from), cityKey(to)}
}

// ExtractRouteMap indexes the route blocks the model supplied by their
// lowercased (from, to) pair.
func ExtractRouteMap(days []response_models.DayPlan) map[routeKey]response_models.RouteInfo {
	routes := make(map[routeKey]response_models.RouteInfo)
	for _, d := range days {
		if !d.IsRoute || d.RouteInfo == nil {
			continue
		}
		info := *d.RouteInfo
		if info.To == "" {
			info.To = d.City
		}
		if info.From == "" || info.To == "" {
			continue
		}
		routes[keyFor(info.From, info.To)] = info
	}
	return routes
}

// SynthesizeRoutes interleaves a route block between every pair of
// consecutive city blocks in different cities. Each route takes the
// destination block's day number.
func SynthesizeRoutes(blocks []response_models.DayPlan, lang Language, known map[routeKey]response_models.RouteInfo) []response_models.DayPlan {
	out := make([]response_models.DayPlan, 0, 2*len(blocks))
	for i, block := range blocks {
		out = append(out, block)
		if i+1 >= len(blocks) {
			break
		}
		next := blocks[i+1]
		if cityKey(next.City) == cityKey(block.City) {
			continue
		}

		info, ok := known[keyFor(block.City, next.City)]
		if !ok {
			info = response_models.RouteInfo{
				TransportType: EstimatePrimaryTransport(block.City, next.City),
				Duration:      EstimateDuration(block.City, next.City),
			}
		}
		info.From, info.To = block.City, next.City
		info.Alternatives = append([]response_models.RouteOption(nil), info.Alternatives...)
		enriched := EnrichRouteInfo(info)

		out = append(out, response_models.DayPlan{
			DayNumber:  next.DayNumber,
			City:       next.City,
			DateRange:  "",
			Activities: []response_models.Activity{},
			IsRoute:    true,
			RouteInfo:  &enriched,
		})
	}
	return out
}
