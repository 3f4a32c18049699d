package services

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
)

const (
	topItemsLimit    = 5
	topItemsLookback = 30 // days
)

type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Dashboard struct {
	TodayRevenue         float64                      `json:"today_revenue"`
	TodayOrders          int64                        `json:"today_orders"`
	LowStock             int64                        `json:"low_stock"`
	OutOfStock           int64                        `json:"out_of_stock"`
	Tables               map[models.TableStatus]int64 `json:"tables"`
	UpcomingReservations int64                        `json:"upcoming_reservations"`
	TopSellingItems      []TopItem                    `json:"top_selling_items"`
}

type ForecastItem struct {
	Name             string  `json:"name"`
	SoldInWindow     int     `json:"sold_in_window"`
	ExpectedDailyQty float64 `json:"expected_daily_quantity"`
}

type Forecast struct {
	WindowDays int            `json:"window_days"`
	Items      []ForecastItem `json:"items"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*Dashboard, error)
	Forecast(ctx context.Context, days int) (*Forecast, error)
}

type dashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardService(db *gorm.DB) DashboardService {
	return &dashboardService{db: db, now: time.Now}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *dashboardService) Summary(ctx context.Context) (*Dashboard, error) {
	db := s.db.WithContext(ctx)
	now := s.now()
	today := startOfDay(now)

	out := &Dashboard{Tables: map[models.TableStatus]int64{
		models.TableAvailable: 0,
		models.TableOccupied:  0,
		models.TableReserved:  0,
	}}

	var todaySales []models.SalesRecord
	if err := db.Where("created_at >= ? AND created_at < ?", today, today.AddDate(0, 0, 1)).
		Find(&todaySales).Error; err != nil {
		return nil, err
	}
	for _, sale := range todaySales {
		out.TodayRevenue += sale.TotalAmount
	}
	out.TodayOrders = int64(len(todaySales))

	if err := db.Model(&models.InventoryItem{}).Where("status = ?", models.LowStock).Count(&out.LowStock).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.InventoryItem{}).Where("status = ?", models.OutOfStock).Count(&out.OutOfStock).Error; err != nil {
		return nil, err
	}

	var tableCounts []struct {
		Status models.TableStatus
		Count  int64
	}
	if err := db.Model(&models.Table{}).Select("status, COUNT(*) as count").Group("status").Scan(&tableCounts).Error; err != nil {
		return nil, err
	}
	for _, tc := range tableCounts {
		out.Tables[tc.Status] = tc.Count
	}

	if err := db.Model(&models.Reservation{}).
		Where("reservation_date >= ? AND status IN ?", today.Format(dtos.DateLayout),
			[]models.ReservationStatus{models.ReservationPending, models.ReservationConfirmed}).
		Count(&out.UpcomingReservations).Error; err != nil {
		return nil, err
	}

	var recent []models.SalesRecord
	if err := db.Where("created_at >= ?", today.AddDate(0, 0, -topItemsLookback)).Find(&recent).Error; err != nil {
		return nil, err
	}
	out.TopSellingItems = topItems(recent, topItemsLimit)

	return out, nil
}

// Forecast projects each item's daily demand as its average daily quantity over the window.
func (s *dashboardService) Forecast(ctx context.Context, days int) (*Forecast, error) {
	if days <= 0 {
		days = 7
	}
	// today counts as one of the window's days
	since := startOfDay(s.now()).AddDate(0, 0, -(days - 1))

	var sales []models.SalesRecord
	if err := s.db.WithContext(ctx).Where("created_at >= ?", since).Find(&sales).Error; err != nil {
		return nil, err
	}

	ranked := topItems(sales, 0)
	items := make([]ForecastItem, 0, len(ranked))
	for _, t := range ranked {
		items = append(items, ForecastItem{
			Name:             t.Name,
			SoldInWindow:     t.Quantity,
			ExpectedDailyQty: float64(t.Quantity) / float64(days),
		})
	}
	return &Forecast{WindowDays: days, Items: items}, nil
}

// topItems aggregates sale line items by name, highest quantity first. limit <= 0 keeps all.
func topItems(sales []models.SalesRecord, limit int) []TopItem {
	agg := map[string]*TopItem{}
	for _, sale := range sales {
		for _, it := range sale.Items {
			t, ok := agg[it.Name]
			if !ok {
				t = &TopItem{Name: it.Name}
				agg[it.Name] = t
			}
			t.Quantity += it.Quantity
			t.Revenue += it.UnitPrice * float64(it.Quantity)
		}
	}

	out := make([]TopItem, 0, len(agg))
	for _, t := range agg {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
