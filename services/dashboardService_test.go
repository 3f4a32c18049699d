package services

import (
	"context"
	"math"
	"testing"
	"time"

	"resto-api/models"
)

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local)

	mustCreate(t, db, &models.SalesRecord{OrderID: "t1", PaymentMethod: "cash", TotalAmount: 100, CreatedAt: now.Add(-2 * time.Hour),
		Items: []models.SaleLineItem{{Name: "Naan", Quantity: 3, UnitPrice: 20}}})
	mustCreate(t, db, &models.SalesRecord{OrderID: "t2", PaymentMethod: "card", TotalAmount: 50.5, CreatedAt: now.Add(-time.Hour),
		Items: []models.SaleLineItem{{Name: "Chai", Quantity: 1, UnitPrice: 30}}})
	mustCreate(t, db, &models.SalesRecord{OrderID: "y1", PaymentMethod: "cash", TotalAmount: 999, CreatedAt: now.AddDate(0, 0, -1),
		Items: []models.SaleLineItem{{Name: "Chai", Quantity: 4, UnitPrice: 30}}})

	for _, it := range []models.InventoryItem{
		{Name: "a", Category: "c", Unit: "kg", Status: models.LowStock},
		{Name: "b", Category: "c", Unit: "kg", Status: models.OutOfStock},
		{Name: "d", Category: "c", Unit: "kg", Status: models.OutOfStock},
		{Name: "e", Category: "c", Unit: "kg", Status: models.InStock},
	} {
		mustCreate(t, db, &it)
	}

	t1 := models.Table{TableNumber: 1, Capacity: 2, Status: models.TableReserved}
	mustCreate(t, db, &t1)
	mustCreate(t, db, &models.Table{TableNumber: 2, Capacity: 2, Status: models.TableOccupied})
	mustCreate(t, db, &models.Table{TableNumber: 3, Capacity: 2, Status: models.TableOccupied})

	for _, r := range []struct {
		date   string
		status models.ReservationStatus
	}{
		{"2024-03-10", models.ReservationPending},
		{"2024-03-12", models.ReservationConfirmed},
		{"2024-03-12", models.ReservationCancelled},
		{"2024-03-09", models.ReservationPending},
	} {
		mustCreate(t, db, &models.Reservation{TableID: t1.ID, CustomerName: "x", CustomerPhone: "1", NumberOfGuests: 2,
			ReservationDate: r.date, ReservationTime: "19:00", PaymentStatus: models.PaymentPending, Status: r.status})
	}

	svc := &dashboardService{db: db, now: func() time.Time { return now }}
	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if math.Abs(got.TodayRevenue-150.5) > 1e-9 || got.TodayOrders != 2 {
		t.Errorf("today = %v/%d, want 150.5/2", got.TodayRevenue, got.TodayOrders)
	}
	if got.LowStock != 1 || got.OutOfStock != 2 {
		t.Errorf("stock = %d low, %d out", got.LowStock, got.OutOfStock)
	}
	if got.Tables[models.TableOccupied] != 2 || got.Tables[models.TableReserved] != 1 || got.Tables[models.TableAvailable] != 0 {
		t.Errorf("tables = %v", got.Tables)
	}
	if got.UpcomingReservations != 2 {
		t.Errorf("upcoming = %d, want 2", got.UpcomingReservations)
	}
	if len(got.TopSellingItems) != 2 || got.TopSellingItems[0].Name != "Chai" || got.TopSellingItems[0].Quantity != 5 {
		t.Errorf("top items = %+v", got.TopSellingItems)
	}
}

func TestForecastAveragesOverWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local)
	mustCreate(t, db, &models.SalesRecord{OrderID: "1", PaymentMethod: "cash", CreatedAt: now.AddDate(0, 0, -1),
		Items: []models.SaleLineItem{{Name: "Naan", Quantity: 10, UnitPrice: 20}}})
	mustCreate(t, db, &models.SalesRecord{OrderID: "2", PaymentMethod: "cash", CreatedAt: now.AddDate(0, 0, -3),
		Items: []models.SaleLineItem{{Name: "Naan", Quantity: 4, UnitPrice: 20}, {Name: "Dal", Quantity: 7, UnitPrice: 150}}})
	// seven calendar days back is outside a seven day window that includes today
	mustCreate(t, db, &models.SalesRecord{OrderID: "edge", PaymentMethod: "cash", CreatedAt: startOfDay(now).AddDate(0, 0, -7).Add(time.Hour),
		Items: []models.SaleLineItem{{Name: "Naan", Quantity: 7, UnitPrice: 20}}})
	mustCreate(t, db, &models.SalesRecord{OrderID: "today", PaymentMethod: "cash", CreatedAt: startOfDay(now).Add(time.Hour),
		Items: []models.SaleLineItem{{Name: "Dal", Quantity: 7, UnitPrice: 150}}})
	mustCreate(t, db, &models.SalesRecord{OrderID: "old", PaymentMethod: "cash", CreatedAt: now.AddDate(0, 0, -30),
		Items: []models.SaleLineItem{{Name: "Naan", Quantity: 100, UnitPrice: 20}}})

	svc := &dashboardService{db: db, now: func() time.Time { return now }}
	got, err := svc.Forecast(context.Background(), 0)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if got.WindowDays != 7 || len(got.Items) != 2 {
		t.Fatalf("Forecast() = %+v", got)
	}
	if got.Items[0].Name != "Dal" || got.Items[0].SoldInWindow != 14 || got.Items[0].ExpectedDailyQty != 2 {
		t.Errorf("first item = %+v", got.Items[0])
	}
	if got.Items[1].Name != "Naan" || got.Items[1].SoldInWindow != 14 || got.Items[1].ExpectedDailyQty != 2 {
		t.Errorf("second item = %+v", got.Items[1])
	}
}
