package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
	"resto-api/utils"
	"resto-api/utils/pagination"
)

const (
	salesSheet = "Sales"
	itemsSheet = "Items"
)

type SalesPage struct {
	Data []models.SalesRecord `json:"data"`
	Meta pagination.Meta      `json:"meta"`
}

type SalesService interface {
	List(ctx context.Context, filter dtos.SalesFilter) (*SalesPage, error)
	Get(ctx context.Context, id uint) (*models.SalesRecord, error)
	Export(ctx context.Context, filter dtos.SalesFilter) ([]byte, error)
}

type salesService struct {
	db *gorm.DB
}

func NewSalesService(db *gorm.DB) SalesService {
	return &salesService{db: db}
}

func (s *salesService) filtered(ctx context.Context, filter dtos.SalesFilter) (*gorm.DB, error) {
	query := s.db.WithContext(ctx).Model(&models.SalesRecord{})
	if filter.Date != "" {
		start, err := time.ParseInLocation(dtos.DateLayout, filter.Date, time.Local)
		if err != nil {
			return nil, invalid("date must be YYYY-MM-DD")
		}
		query = query.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}
	return query, nil
}

func (s *salesService) List(ctx context.Context, filter dtos.SalesFilter) (*SalesPage, error) {
	query, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	p := pagination.New(filter.Page, filter.PageSize)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var records []models.SalesRecord
	if err := query.Order("created_at DESC").Offset(p.Offset).Limit(p.PageSize).Find(&records).Error; err != nil {
		return nil, err
	}
	return &SalesPage{Data: records, Meta: pagination.BuildMeta(p.Page, p.PageSize, total)}, nil
}

func (s *salesService) Get(ctx context.Context, id uint) (*models.SalesRecord, error) {
	var record models.SalesRecord
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, notFound(err, "sales record", id)
	}
	return &record, nil
}

// Export renders the filtered sales as an XLSX workbook with a summary sheet and a
// sheet of line items.
func (s *salesService) Export(ctx context.Context, filter dtos.SalesFilter) ([]byte, error) {
	query, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	var records []models.SalesRecord
	if err := query.Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, salesSheet, 1, []any{"id", "order_id", "created_at", "payment_method", "customer_name", "customer_phone", "items", "total_amount"}); err != nil {
		return nil, err
	}
	if err := writeRow(f, itemsSheet, 1, []any{"order_id", "name", "quantity", "unit_price", "amount"}); err != nil {
		return nil, err
	}

	itemRow := 2
	for i, r := range records {
		row := []any{
			r.ID,
			r.OrderID,
			r.CreatedAt.Format(time.DateTime),
			r.PaymentMethod,
			utils.GetStringValue(r.CustomerName),
			utils.GetStringValue(r.CustomerPhone),
			len(r.Items),
			r.TotalAmount,
		}
		if err := writeRow(f, salesSheet, i+2, row); err != nil {
			return nil, err
		}
		for _, it := range r.Items {
			line := []any{r.OrderID, it.Name, it.Quantity, it.UnitPrice, it.UnitPrice * float64(it.Quantity)}
			if err := writeRow(f, itemsSheet, itemRow, line); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
