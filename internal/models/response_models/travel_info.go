package response_models

type TravelInfoResponse struct {
	Country     string     `json:"country"`
	Language    string     `json:"language"`
	CountryInfo TravelInfo `json:"countryInfo"`
}

type TravelInfo struct {
	Overview       string   `json:"overview"`
	TopHighlights  []string `json:"topHighlights"`
	Currency       string   `json:"currency"`
	Power          string   `json:"power"`
	Emergency      string   `json:"emergency"`
	Sim            string   `json:"sim"`
	BestSeasons    []string `json:"bestSeasons"`
	Tipping        string   `json:"tipping"`
	Safety         string   `json:"safety"`
	LocalEtiquette []string `json:"localEtiquette"`
}

type LanguageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	LLMEnabled bool   `json:"llmEnabled"`
	Provider   string `json:"provider"`
	Timestamp  int64  `json:"timestamp"`
}
