package itinerary

import (
	"strings"

	"tripgen/internal/models/response_models"
)

var transportTypes = map[string]bool{
	response_models.TransportFlight: true,
	response_models.TransportBus:    true,
	response_models.TransportTrain:  true,
	response_models.TransportCar:    true,
	response_models.TransportFerry:  true,
}

func validTransport(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if transportTypes[t] {
		return t
	}
	return response_models.TransportBus
}

// NormalizeDayPlan turns one raw itinerary entry into a DayPlan. Route
// blocks come back with no activities; city blocks keep every raw
// activity, normalized.
func NormalizeDayPlan(raw map[string]any, fallbackDayNumber int, lang Language) response_models.DayPlan {
	r := rawObject(raw)

	dayNumber, ok := r.positiveInt("dayNumber")
	if !ok {
		dayNumber = fallbackDayNumber
	}

	var route *response_models.RouteInfo
	if obj, ok := r.object("routeInfo"); ok {
		route = normalizeRouteInfo(obj)
	}

	city := r.text("city")
	if city == "" {
		city = r.text("name")
	}
	if city == "" && route != nil {
		city = route.To
	}

	day := response_models.DayPlan{
		DayNumber:  dayNumber,
		City:       city,
		DateRange:  r.text("dateRange"),
		Activities: []response_models.Activity{},
	}

	if r.isTrue("isRoute") {
		day.IsRoute = true
		day.DateRange = ""
		if route == nil {
			route = &response_models.RouteInfo{To: city, TransportType: response_models.TransportBus}
		}
		day.RouteInfo = route
		return day
	}

	rawActivities, _ := r.array("activities")
	for i, item := range rawActivities {
		day.Activities = append(day.Activities, NormalizeActivity(asObject(item), dayNumber, i, city, lang))
	}
	return day
}

func normalizeRouteInfo(r rawObject) *response_models.RouteInfo {
	info := &response_models.RouteInfo{
		From:          r.text("from"),
		To:            r.text("to"),
		TransportType: validTransport(r.text("transportType")),
		Duration:      r.text("duration"),
		Cost:          r.text("cost"),
		FromTerminal:  r.text("fromTerminal"),
		ToTerminal:    r.text("toTerminal"),
	}

	alternatives, _ := r.array("alternatives")
	for _, item := range alternatives {
		alt := asObject(item)
		info.Alternatives = append(info.Alternatives, response_models.RouteOption{
			TransportType: validTransport(alt.text("transportType")),
			Duration:      alt.text("duration"),
			Cost:          alt.text("cost"),
			FromTerminal:  alt.text("fromTerminal"),
			ToTerminal:    alt.text("toTerminal"),
		})
	}
	return info
}
