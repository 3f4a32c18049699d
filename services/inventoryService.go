package services

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
	"resto-api/utils"
)

type InventoryService interface {
	List(ctx context.Context, filter dtos.InventoryFilter) ([]models.InventoryItem, error)
	Get(ctx context.Context, id uint) (*models.InventoryItem, error)
	Create(ctx context.Context, input dtos.InventoryInput) (*models.InventoryItem, error)
	Update(ctx context.Context, id uint, input dtos.InventoryInput) (*models.InventoryItem, error)
	UpdateStock(ctx context.Context, id uint, newStock int) (*models.InventoryItem, error)
	Delete(ctx context.Context, id uint) error
}

type inventoryService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewInventoryService(db *gorm.DB) InventoryService {
	return &inventoryService{db: db, now: time.Now}
}

func (s *inventoryService) List(ctx context.Context, filter dtos.InventoryFilter) ([]models.InventoryItem, error) {
	query := s.db.WithContext(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var items []models.InventoryItem
	if err := query.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *inventoryService) Get(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, "inventory item", id)
	}
	return &item, nil
}

func (s *inventoryService) Create(ctx context.Context, input dtos.InventoryInput) (*models.InventoryItem, error) {
	if err := validateInventoryInput(input); err != nil {
		return nil, err
	}
	var item models.InventoryItem
	applyInventoryInput(&item, input)
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *inventoryService) Update(ctx context.Context, id uint, input dtos.InventoryInput) (*models.InventoryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInventoryInput(input); err != nil {
		return nil, err
	}
	applyInventoryInput(item, input)
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateStock sets the stock level, reclassifies the item and stamps last_restocked.
// Concurrent updates are last-write-wins.
func (s *inventoryService) UpdateStock(ctx context.Context, id uint, newStock int) (*models.InventoryItem, error) {
	if newStock < 0 {
		return nil, invalid("stock cannot be negative")
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := item.CurrentStock
	now := s.now()
	status := models.StockStatus(newStock, item.MinimumStock)
	if err := s.db.WithContext(ctx).Model(item).Updates(map[string]any{
		"current_stock":  newStock,
		"status":         status,
		"last_restocked": now,
	}).Error; err != nil {
		return nil, err
	}
	item.CurrentStock = newStock
	item.Status = status
	item.LastRestocked = &now

	log.WithFields(log.Fields{
		"item_id": item.ID,
		"from":    previous,
		"to":      newStock,
		"status":  status,
	}).Info("stock updated")
	return item, nil
}

func (s *inventoryService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(item).Error
}

func validateInventoryInput(input dtos.InventoryInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "", strings.TrimSpace(input.Category) == "", strings.TrimSpace(input.Unit) == "":
		return invalid("name, category and unit are required")
	case input.CurrentStock < 0 || input.MinimumStock < 0:
		return invalid("stock levels cannot be negative")
	case input.PurchaseCost < 0:
		return invalid("purchase_cost cannot be negative")
	}
	return nil
}

func applyInventoryInput(item *models.InventoryItem, input dtos.InventoryInput) {
	item.Name = strings.TrimSpace(input.Name)
	item.Category = strings.TrimSpace(input.Category)
	item.CurrentStock = input.CurrentStock
	item.MinimumStock = input.MinimumStock
	item.Status = models.StockStatus(input.CurrentStock, input.MinimumStock)
	item.SupplierName = utils.NilIfBlank(input.SupplierName)
	item.SupplierContact = utils.NilIfBlank(input.SupplierContact)
	item.PurchaseCost = input.PurchaseCost
	item.Unit = strings.TrimSpace(input.Unit)
}
