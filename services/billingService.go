package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
)

// BillingService manages the operator-facing rate settings. Order totals do not use them.
type BillingService interface {
	Get(ctx context.Context) (*models.BillingSettings, error)
	Update(ctx context.Context, input dtos.BillingInput) (*models.BillingSettings, error)
}

type billingService struct {
	db       *gorm.DB
	defaults config.BillingDefaults
}

func NewBillingService(db *gorm.DB, defaults config.BillingDefaults) BillingService {
	return &billingService{db: db, defaults: defaults}
}

func (s *billingService) Get(ctx context.Context) (*models.BillingSettings, error) {
	var settings models.BillingSettings
	err := s.db.WithContext(ctx).Order("id").First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.BillingSettings{
		RestaurantName:    s.defaults.RestaurantName,
		Currency:          s.defaults.Currency,
		GSTRate:           s.defaults.GSTRate,
		ServiceChargeRate: s.defaults.ServiceChargeRate,
	}
	if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *billingService) Update(ctx context.Context, input dtos.BillingInput) (*models.BillingSettings, error) {
	if strings.TrimSpace(input.RestaurantName) == "" || strings.TrimSpace(input.Currency) == "" {
		return nil, invalid("restaurant_name and currency are required")
	}
	if input.GSTRate < 0 || input.GSTRate > 100 || input.ServiceChargeRate < 0 || input.ServiceChargeRate > 100 {
		return nil, invalid("rates must be between 0 and 100")
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.RestaurantName = strings.TrimSpace(input.RestaurantName)
	settings.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	settings.GSTRate = input.GSTRate
	settings.ServiceChargeRate = input.ServiceChargeRate

	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
