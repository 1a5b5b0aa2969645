package db_models

// CountryImage caches the hero image chosen for a country.
type CountryImage struct {
	BaseModel
	Country      string `gorm:"uniqueIndex;not null"` // lowercased
	URL          string `gorm:"not null"`
	Photographer string
	Source       string
}
