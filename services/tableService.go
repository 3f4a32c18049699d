package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
)

type TableService interface {
	List(ctx context.Context) ([]models.Table, error)
	Get(ctx context.Context, id uint) (*models.Table, error)
	Create(ctx context.Context, input dtos.TableInput) (*models.Table, error)
	Update(ctx context.Context, id uint, input dtos.TableInput) (*models.Table, error)
	UpdateStatus(ctx context.Context, id uint, status models.TableStatus) (*models.Table, error)
	Delete(ctx context.Context, id uint) error
}

type tableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) TableService {
	return &tableService{db: db}
}

func (s *tableService) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.WithContext(ctx).Order("table_number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *tableService) Get(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, notFound(err, "table", id)
	}
	return &table, nil
}

func (s *tableService) Create(ctx context.Context, input dtos.TableInput) (*models.Table, error) {
	status, err := tableStatusOrDefault(input.Status)
	if err != nil {
		return nil, err
	}
	if input.TableNumber <= 0 || input.Capacity <= 0 {
		return nil, invalid("table_number and capacity must be positive")
	}
	if err := s.ensureNumberFree(ctx, input.TableNumber, 0); err != nil {
		return nil, err
	}

	table := models.Table{
		TableNumber: input.TableNumber,
		Capacity:    input.Capacity,
		FloorX:      input.FloorX,
		FloorY:      input.FloorY,
		Status:      status,
	}
	if err := s.db.WithContext(ctx).Create(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *tableService) Update(ctx context.Context, id uint, input dtos.TableInput) (*models.Table, error) {
	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.TableNumber <= 0 || input.Capacity <= 0 {
		return nil, invalid("table_number and capacity must be positive")
	}
	if err := s.ensureNumberFree(ctx, input.TableNumber, id); err != nil {
		return nil, err
	}

	table.TableNumber = input.TableNumber
	table.Capacity = input.Capacity
	table.FloorX = input.FloorX
	table.FloorY = input.FloorY
	if input.Status != "" {
		status := models.TableStatus(input.Status)
		if !status.Valid() {
			return nil, invalid("unknown table status %q", input.Status)
		}
		table.Status = status
	}

	if err := s.db.WithContext(ctx).Save(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateStatus writes the new status as given; no transition rules apply.
func (s *tableService) UpdateStatus(ctx context.Context, id uint, status models.TableStatus) (*models.Table, error) {
	if !status.Valid() {
		return nil, invalid("unknown table status %q", status)
	}
	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(table).Update("status", status).Error; err != nil {
		return nil, err
	}
	table.Status = status
	return table, nil
}

func (s *tableService) Delete(ctx context.Context, id uint) error {
	table, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(table).Error
}

func (s *tableService) ensureNumberFree(ctx context.Context, number int, exceptID uint) error {
	var existing models.Table
	err := s.db.WithContext(ctx).Where("table_number = ? AND id <> ?", number, exceptID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: table number %d", ErrDuplicate, number)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func tableStatusOrDefault(s string) (models.TableStatus, error) {
	if s == "" {
		return models.TableAvailable, nil
	}
	status := models.TableStatus(s)
	if !status.Valid() {
		return "", invalid("unknown table status %q", s)
	}
	return status, nil
}
