package response_models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PlaceLocation struct {
	City        string       `json:"city,omitempty"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type PlaceDetails struct {
	History              string `json:"history,omitempty"`
	Architecture         string `json:"architecture,omitempty"`
	CulturalSignificance string `json:"culturalSignificance,omitempty"`
	BestTimeToVisit      string `json:"bestTimeToVisit,omitempty"`
	EntryFee             string `json:"entryFee,omitempty"`
	OpeningHours         string `json:"openingHours,omitempty"`
}

type PlaceRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type PlaceReview struct {
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date,omitempty"`
}

type PlaceInfo struct {
	Name         string        `json:"name"`
	LocalName    string        `json:"localName,omitempty"`
	Location     PlaceLocation `json:"location"`
	Description  string        `json:"description"`
	DetailedInfo PlaceDetails  `json:"detailedInfo"`
	Rating       *PlaceRating  `json:"rating,omitempty"`
	UserReviews  []PlaceReview `json:"userReviews"`
	Categories   []string      `json:"categories"`
	ImageURL     string        `json:"imageUrl,omitempty"`
}

type PhotoAnalysisResponse struct {
	Recognized bool       `json:"recognized"`
	Message    string     `json:"message,omitempty"`
	Place      *PlaceInfo `json:"data,omitempty"`
	Language   string     `json:"language"`
	CreditCost int        `json:"creditCost"`
}

type PhotoHealthResponse struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Available bool   `json:"available"`
	Model     string `json:"model,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
