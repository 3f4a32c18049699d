package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto-api/events"
	"resto-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) models.Table {
	t.Helper()
	var table models.Table
	if err := db.First(&table, id).Error; err != nil {
		t.Fatalf("reload table %d: %v", id, err)
	}
	return table
}

// fakeEvents records published order events.
type fakeEvents struct {
	mu      sync.Mutex
	tickets []events.KitchenTicket
	sales   []events.SaleEvent
}

func (f *fakeEvents) KitchenTicket(_ context.Context, t events.KitchenTicket) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets = append(f.tickets, t)
}

func (f *fakeEvents) SaleCompleted(_ context.Context, e events.SaleEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sales = append(f.sales, e)
}

// fakeNotifier hands every message to a channel.
type fakeNotifier struct {
	enabled bool
	sent    chan string
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) Send(_ context.Context, phone, message string) error {
	f.sent <- phone + "|" + message
	return nil
}
