package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
	"resto-api/utils"
)

type FeedbackService interface {
	Create(ctx context.Context, input dtos.FeedbackInput) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
	Delete(ctx context.Context, id uint) error
}

type feedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) FeedbackService {
	return &feedbackService{db: db}
}

func (s *feedbackService) Create(ctx context.Context, input dtos.FeedbackInput) (*models.Feedback, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, invalid("customer_name is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, invalid("rating must be between 1 and 5")
	}

	fb := models.Feedback{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Email:        utils.NilIfBlank(input.Email),
		Rating:       input.Rating,
		Comment:      utils.NilIfBlank(input.Comment),
	}
	if err := s.db.WithContext(ctx).Create(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	var list []models.Feedback
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *feedbackService) Delete(ctx context.Context, id uint) error {
	var fb models.Feedback
	if err := s.db.WithContext(ctx).First(&fb, id).Error; err != nil {
		return notFound(err, "feedback", id)
	}
	return s.db.WithContext(ctx).Delete(&fb).Error
}
