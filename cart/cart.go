// Package cart holds the staff order-entry cart and its derived totals.
package cart

import "resto-api/models"

// Rates applied by the cart. The billing settings table is not read here.
const (
	TaxRate           = 0.05
	ServiceChargeRate = 0.10
)

type Line struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (l Line) Amount() float64 {
	return l.Price * float64(l.Quantity)
}

type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total"`
}

// Cart keeps lines in insertion order. The zero value is an empty cart.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem inserts the item with quantity 1, or bumps the existing line by one.
func (c *Cart) AddItem(item models.MenuItem) {
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
}

// UpdateQuantity adjusts a line by delta and drops it once the quantity is no longer positive.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id uint, delta int) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.lines[i].Quantity += delta
	if c.lines[i].Quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) RemoveItem(id uint) {
	if i := c.index(id); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(id uint) (Line, bool) {
	if i := c.index(id); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Amount()
	}
	return sum
}

func (c *Cart) Totals() Totals {
	subtotal := c.Subtotal()
	tax := subtotal * TaxRate
	service := subtotal * ServiceChargeRate
	return Totals{
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceCharge: service,
		Total:         subtotal + tax + service,
	}
}

// SaleItems converts the lines into the snapshot stored on a sales record.
func (c *Cart) SaleItems() []models.SaleLineItem {
	items := make([]models.SaleLineItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.SaleLineItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
		})
	}
	return items
}

func (c *Cart) index(id uint) int {
	for i, l := range c.lines {
		if l.MenuItemID == id {
			return i
		}
	}
	return -1
}
