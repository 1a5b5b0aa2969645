package request_models

type TripGenerationRequest struct {
	Country   string   `json:"country" binding:"required"`
	Cities    []string `json:"cities" binding:"required,min=1,dive,required"`
	Interests []string `json:"interests" binding:"required,min=1,dive,required"`
	StartDate string   `json:"startDate" binding:"required,isodate"`
	EndDate   string   `json:"endDate" binding:"required,isodate"`
	Language  string   `json:"language" binding:"required,tripLanguage"`
}

type TravelInfoRequest struct {
	Country  string `json:"country" binding:"required"`
	Language string `json:"language" binding:"omitempty,tripLanguage"`
}

type PhotoAnalysisRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	Language    string `json:"language" binding:"omitempty,tripLanguage"`
}
