package response_models

import "time"

type TripPlan struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Cities      []string  `json:"cities"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Duration    int       `json:"duration"`
	HeroImage   string    `json:"heroImage"`
	Itinerary   []DayPlan `json:"itinerary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// DayPlan is either a city block or, when IsRoute is set, a route block
// whose City is the destination and whose Activities are always empty.
type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	City       string     `json:"city"`
	DateRange  string     `json:"dateRange"`
	Activities []Activity `json:"activities"`
	IsRoute    bool       `json:"isRoute,omitempty"`
	RouteInfo  *RouteInfo `json:"routeInfo,omitempty"`
}

type Activity struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Icon     string `json:"icon"`
	Type     string `json:"type"`
}

type RouteInfo struct {
	From          string        `json:"from"`
	To            string        `json:"to"`
	TransportType string        `json:"transportType"`
	Duration      string        `json:"duration"`
	Cost          string        `json:"cost,omitempty"`
	FromTerminal  string        `json:"fromTerminal,omitempty"`
	ToTerminal    string        `json:"toTerminal,omitempty"`
	Alternatives  []RouteOption `json:"alternatives,omitempty"`
}

// RouteOption is a partial RouteInfo offered next to the primary mode.
type RouteOption struct {
	TransportType string `json:"transportType"`
	Duration      string `json:"duration,omitempty"`
	Cost          string `json:"cost,omitempty"`
	FromTerminal  string `json:"fromTerminal,omitempty"`
	ToTerminal    string `json:"toTerminal,omitempty"`
}

const (
	ActivityTypeActivity      = "activity"
	ActivityTypeAccommodation = "accommodation"
	ActivityTypeTransport     = "transport"
	ActivityTypeFood          = "food"
)

const (
	TransportFlight = "flight"
	TransportBus    = "bus"
	TransportTrain  = "train"
	TransportCar    = "car"
	TransportFerry  = "ferry"
)
