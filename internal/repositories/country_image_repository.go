package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripgen/internal/models/db_models"
	"tripgen/pkg/utils"
)

type CountryImageRepositoryInterface interface {
	FindByCountry(ctx context.Context, country string) (*db_models.CountryImage, error)
	Save(ctx context.Context, image db_models.CountryImage) error
}

// NewCountryImageRepository accepts a nil db; every call then reports ErrStoreUnavailable.
func NewCountryImageRepository(db *gorm.DB) CountryImageRepositoryInterface {
	return &CountryImageRepository{db: db}
}

type CountryImageRepository struct {
	db *gorm.DB
}

func (r *CountryImageRepository) FindByCountry(ctx context.Context, country string) (*db_models.CountryImage, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var image db_models.CountryImage
	err := r.db.WithContext(ctx).Where("country = ?", countryKey(country)).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	return &image, nil
}

func (r *CountryImageRepository) Save(ctx context.Context, image db_models.CountryImage) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}
	image.Country = countryKey(image.Country)

	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "country"}},
			DoUpdates: clause.AssignmentColumns([]string{"url", "photographer", "source", "updated_at"}),
		}).Create(&image).Error
		if err != nil {
			return errors.Join(utils.ErrDatabaseError, err)
		}

		return nil
	})
}

func countryKey(country string) string {
	return strings.ToLower(strings.TrimSpace(country))
}
