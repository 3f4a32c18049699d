package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
	"resto-api/utils"
	"resto-api/utils/pagination"
)

type MenuPage struct {
	Data []models.MenuItem `json:"data"`
	Meta pagination.Meta   `json:"meta"`
}

type MenuService interface {
	List(ctx context.Context, filter dtos.MenuFilter) (*MenuPage, error)
	ListAvailable(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id uint) (*models.MenuItem, error)
	Create(ctx context.Context, input dtos.MenuItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id uint, input dtos.MenuItemInput) (*models.MenuItem, error)
	Delete(ctx context.Context, id uint) error
}

type menuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) List(ctx context.Context, filter dtos.MenuFilter) (*MenuPage, error) {
	p := pagination.New(filter.Page, filter.PageSize)

	query := s.db.WithContext(ctx).Model(&models.MenuItem{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}
	for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(filter.Name))) {
		query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.MenuItem
	if err := query.Order("category, name").Offset(p.Offset).Limit(p.PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &MenuPage{Data: items, Meta: pagination.BuildMeta(p.Page, p.PageSize, total)}, nil
}

// ListAvailable returns what the landing page shows.
func (s *menuService) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Where("is_available = ?", true).Order("category, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, "menu item", id)
	}
	return &item, nil
}

func (s *menuService) Create(ctx context.Context, input dtos.MenuItemInput) (*models.MenuItem, error) {
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, input.Name, 0); err != nil {
		return nil, err
	}

	item := models.MenuItem{IsAvailable: true}
	applyMenuInput(&item, input)
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *menuService) Update(ctx context.Context, id uint, input dtos.MenuItemInput) (*models.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, input.Name, id); err != nil {
		return nil, err
	}

	applyMenuInput(item, input)
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(item).Error
}

func (s *menuService) ensureNameFree(ctx context.Context, name string, exceptID uint) error {
	var existing models.MenuItem
	err := s.db.WithContext(ctx).Where("name = ? AND id <> ?", strings.TrimSpace(name), exceptID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: menu item named %q", ErrDuplicate, name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func validateMenuInput(input dtos.MenuItemInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" {
		return invalid("name and category are required")
	}
	if input.Price < 0 {
		return invalid("price cannot be negative")
	}
	return nil
}

func applyMenuInput(item *models.MenuItem, input dtos.MenuItemInput) {
	item.Name = strings.TrimSpace(input.Name)
	item.Description = utils.NilIfBlank(input.Description)
	item.Category = strings.TrimSpace(input.Category)
	item.Price = input.Price
	item.ImageURL = utils.NilIfBlank(input.ImageURL)
	item.PreparationTime = input.PreparationTime
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
}
