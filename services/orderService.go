package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"resto-api/cart"
	"resto-api/dtos"
	"resto-api/events"
	"resto-api/models"
	"resto-api/utils"
)

var paymentMethods = map[string]bool{"cash": true, "card": true, "upi": true}

// OrderEvents receives the side effects of a placed order.
type OrderEvents interface {
	KitchenTicket(ctx context.Context, t events.KitchenTicket)
	SaleCompleted(ctx context.Context, e events.SaleEvent)
}

type Quote struct {
	Lines  []cart.Line `json:"lines"`
	Totals cart.Totals `json:"totals"`
}

type PlaceOrderResult struct {
	Sale   models.SalesRecord `json:"sale"`
	Lines  []cart.Line        `json:"lines"`
	Totals cart.Totals        `json:"totals"`
	Table  *models.Table      `json:"table,omitempty"`
}

type OrderService interface {
	Quote(ctx context.Context, lines []dtos.OrderLineInput) (*Quote, error)
	Place(ctx context.Context, req dtos.PlaceOrderRequest) (*PlaceOrderResult, error)
}

type orderService struct {
	db     *gorm.DB
	events OrderEvents
	newID  func() string
}

func NewOrderService(db *gorm.DB, ev OrderEvents) OrderService {
	return &orderService{db: db, events: ev, newID: uuid.NewString}
}

func (s *orderService) Quote(ctx context.Context, lines []dtos.OrderLineInput) (*Quote, error) {
	c, err := s.buildCart(ctx, lines)
	if err != nil {
		return nil, err
	}
	return &Quote{Lines: c.Lines(), Totals: c.Totals()}, nil
}

// Place records one sale for the cart and marks the selected table occupied, in one
// transaction. Inventory is not decremented and repeated submissions are not deduplicated.
func (s *orderService) Place(ctx context.Context, req dtos.PlaceOrderRequest) (*PlaceOrderResult, error) {
	if req.TableID == nil || *req.TableID == 0 {
		return nil, invalid("a table must be selected")
	}
	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		method = "cash"
	}
	if !paymentMethods[method] {
		return nil, invalid("unknown payment method %q", req.PaymentMethod)
	}

	c, err := s.buildCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	totals := c.Totals()

	result := &PlaceOrderResult{Lines: c.Lines(), Totals: totals}
	sale := models.SalesRecord{
		OrderID:       s.newID(),
		Items:         c.SaleItems(),
		TotalAmount:   totals.Total,
		PaymentMethod: method,
		CustomerName:  utils.NilIfBlank(req.CustomerName),
		CustomerPhone: utils.NilIfBlank(req.CustomerPhone),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, *req.TableID).Error; err != nil {
			return notFound(err, "table", *req.TableID)
		}
		if err := tx.Model(&table).Update("status", models.TableOccupied).Error; err != nil {
			return err
		}
		table.Status = models.TableOccupied
		result.Table = &table
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	result.Sale = sale
	c.Clear()

	log.WithFields(log.Fields{
		"order_id": sale.OrderID,
		"total":    sale.TotalAmount,
		"lines":    len(sale.Items),
	}).Info("order placed")

	s.publish(ctx, result)
	return result, nil
}

func (s *orderService) publish(ctx context.Context, result *PlaceOrderResult) {
	if s.events == nil {
		return
	}
	ticket := events.KitchenTicket{
		OrderID:   result.Sale.OrderID,
		CreatedAt: result.Sale.CreatedAt,
	}
	if result.Table != nil {
		n := result.Table.TableNumber
		ticket.TableNumber = &n
	}
	for _, l := range result.Lines {
		ticket.Items = append(ticket.Items, events.TicketItem{Name: l.Name, Quantity: l.Quantity})
	}
	s.events.KitchenTicket(ctx, ticket)

	s.events.SaleCompleted(ctx, events.SaleEvent{
		OrderID:       result.Sale.OrderID,
		TotalAmount:   result.Sale.TotalAmount,
		PaymentMethod: result.Sale.PaymentMethod,
		ItemCount:     len(result.Lines),
		CreatedAt:     result.Sale.CreatedAt,
	})
}

func (s *orderService) buildCart(ctx context.Context, lines []dtos.OrderLineInput) (*cart.Cart, error) {
	if len(lines) == 0 {
		return nil, invalid("no items provided")
	}

	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, invalid("invalid quantity for menu item %d", l.MenuItemID)
		}
		ids = append(ids, l.MenuItemID)
	}

	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	c := cart.New()
	for _, l := range lines {
		item, ok := byID[l.MenuItemID]
		if !ok {
			return nil, notFound(gorm.ErrRecordNotFound, "menu item", l.MenuItemID)
		}
		if !item.IsAvailable {
			return nil, invalid("menu item %q is not available", item.Name)
		}
		c.AddItem(item)
		c.UpdateQuantity(item.ID, l.Quantity-1)
	}
	return c, nil
}
