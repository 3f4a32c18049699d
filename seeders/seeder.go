package seeders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"resto-api/cart"
	"resto-api/models"
)

func ptrString(s string) *string {
	return &s
}

func ptrInt(i int) *int {
	return &i
}

// Seed fills an empty database with a demo floor plan, menu, pantry and a week of sales.
// Existing rows are matched by their natural key and left alone.
func Seed(db *gorm.DB) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Tables
	for i := 1; i <= 8; i++ {
		capacity := 2
		if i%3 == 0 {
			capacity = 6
		} else if i%2 == 0 {
			capacity = 4
		}
		table := models.Table{
			TableNumber: i,
			Capacity:    capacity,
			FloorX:      float64((i - 1) % 4 * 120),
			FloorY:      float64((i - 1) / 4 * 140),
			Status:      models.TableAvailable,
		}
		if err := db.Where(models.Table{TableNumber: i}).FirstOrCreate(&table).Error; err != nil {
			return fmt.Errorf("seed table %d: %w", i, err)
		}
	}

	// Menu
	menu := []models.MenuItem{
		{Name: "Paneer Tikka", Description: ptrString("Chargrilled cottage cheese, mint chutney"), Category: "starters", Price: 260, PreparationTime: ptrInt(15)},
		{Name: "Hara Bhara Kebab", Description: ptrString("Spinach and pea patties"), Category: "starters", Price: 220, PreparationTime: ptrInt(12)},
		{Name: "Dal Makhani", Description: ptrString("Slow cooked black lentils"), Category: "mains", Price: 280, PreparationTime: ptrInt(10)},
		{Name: "Butter Chicken", Description: ptrString("Tandoori chicken in tomato gravy"), Category: "mains", Price: 360, PreparationTime: ptrInt(18)},
		{Name: "Veg Biryani", Description: ptrString("Basmati rice, vegetables, saffron"), Category: "mains", Price: 300, PreparationTime: ptrInt(20)},
		{Name: "Butter Naan", Category: "breads", Price: 60, PreparationTime: ptrInt(5)},
		{Name: "Tandoori Roti", Category: "breads", Price: 40, PreparationTime: ptrInt(5)},
		{Name: "Gulab Jamun", Description: ptrString("Two pieces, warm"), Category: "desserts", Price: 120, PreparationTime: ptrInt(3)},
		{Name: "Masala Chai", Category: "beverages", Price: 50, PreparationTime: ptrInt(5)},
		{Name: "Sweet Lassi", Category: "beverages", Price: 90, PreparationTime: ptrInt(4)},
	}
	for i := range menu {
		menu[i].IsAvailable = true
		if err := db.Where(models.MenuItem{Name: menu[i].Name}).FirstOrCreate(&menu[i]).Error; err != nil {
			return fmt.Errorf("seed menu item %q: %w", menu[i].Name, err)
		}
	}

	// Inventory
	pantry := []models.InventoryItem{
		{Name: "Basmati Rice", Category: "grains", CurrentStock: 40, MinimumStock: 10, SupplierName: ptrString("Agro Traders"), PurchaseCost: 95, Unit: "kg"},
		{Name: "Paneer", Category: "dairy", CurrentStock: 4, MinimumStock: 5, SupplierName: ptrString("Fresh Dairy Co"), PurchaseCost: 320, Unit: "kg"},
		{Name: "Chicken", Category: "meat", CurrentStock: 12, MinimumStock: 8, PurchaseCost: 240, Unit: "kg"},
		{Name: "Butter", Category: "dairy", CurrentStock: 0, MinimumStock: 3, SupplierName: ptrString("Fresh Dairy Co"), PurchaseCost: 480, Unit: "kg"},
		{Name: "Wheat Flour", Category: "grains", CurrentStock: 25, MinimumStock: 10, PurchaseCost: 38, Unit: "kg"},
		{Name: "Tea Leaves", Category: "beverages", CurrentStock: 3, MinimumStock: 2, PurchaseCost: 550, Unit: "kg"},
	}
	for i := range pantry {
		pantry[i].Status = models.StockStatus(pantry[i].CurrentStock, pantry[i].MinimumStock)
		if err := db.Where(models.InventoryItem{Name: pantry[i].Name}).FirstOrCreate(&pantry[i]).Error; err != nil {
			return fmt.Errorf("seed inventory item %q: %w", pantry[i].Name, err)
		}
	}

	// Sales, only into an empty ledger
	var existing int64
	if err := db.Model(&models.SalesRecord{}).Count(&existing).Error; err != nil {
		return err
	}
	created := 0
	if existing == 0 {
		methods := []string{"cash", "card", "upi"}
		now := time.Now()
		for day := 6; day >= 0; day-- {
			orders := 3 + rng.Intn(4)
			for n := 0; n < orders; n++ {
				c := cart.New()
				lines := 1 + rng.Intn(3)
				for k := 0; k < lines; k++ {
					item := menu[rng.Intn(len(menu))]
					c.AddItem(item)
					c.UpdateQuantity(item.ID, rng.Intn(2))
				}
				sale := models.SalesRecord{
					OrderID:       uuid.NewString(),
					Items:         c.SaleItems(),
					TotalAmount:   c.Totals().Total,
					PaymentMethod: methods[rng.Intn(len(methods))],
					CreatedAt:     now.AddDate(0, 0, -day).Add(-time.Duration(rng.Intn(180)) * time.Minute),
				}
				if err := db.Create(&sale).Error; err != nil {
					return fmt.Errorf("seed sale: %w", err)
				}
				created++
			}
		}
	}

	log.WithFields(log.Fields{
		"tables":    8,
		"menu":      len(menu),
		"inventory": len(pantry),
		"sales":     created,
	}).Info("seeding finished")
	return nil
}
