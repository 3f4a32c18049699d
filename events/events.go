// Package events publishes order side effects to the kitchen queue and the sales stream.
package events

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"resto-api/config"
)

type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
	Close() error
}

type TicketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// KitchenTicket is the KOT sent to the kitchen when an order is placed.
type KitchenTicket struct {
	OrderID     string       `json:"order_id"`
	TableNumber *int         `json:"table_number,omitempty"`
	Items       []TicketItem `json:"items"`
	CreatedAt   time.Time    `json:"created_at"`
}

type SaleEvent struct {
	OrderID       string    `json:"order_id"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

const publishTimeout = 3 * time.Second

// Bus fans order events out to the configured publishers. Delivery is best effort.
type Bus struct {
	Kitchen Publisher
	Sales   Publisher
}

func NewBus(cfg *config.Config) *Bus {
	bus := &Bus{Kitchen: Nop{}, Sales: Nop{}}

	if cfg.Rabbit.URL != "" {
		p, err := NewRabbitPublisher(cfg.Rabbit)
		if err != nil {
			log.WithError(err).Warn("rabbitmq unavailable, kitchen tickets disabled")
		} else {
			bus.Kitchen = p
		}
	}
	if len(cfg.Kafka.Brokers) > 0 {
		bus.Sales = NewKafkaPublisher(cfg.Kafka)
	}
	return bus
}

func (b *Bus) KitchenTicket(ctx context.Context, t KitchenTicket) {
	b.publish(ctx, b.Kitchen, "kitchen.ticket", t.OrderID, t)
}

func (b *Bus) SaleCompleted(ctx context.Context, e SaleEvent) {
	b.publish(ctx, b.Sales, "sale.completed", e.OrderID, e)
}

func (b *Bus) publish(ctx context.Context, p Publisher, kind, key string, payload any) {
	if b == nil || p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, key, payload); err != nil {
		log.WithError(err).WithFields(log.Fields{"event": kind, "key": key}).Error("publish failed")
		return
	}
	log.WithFields(log.Fields{"event": kind, "key": key}).Debug("event published")
}

func (b *Bus) Close() {
	if b == nil {
		return
	}
	for _, p := range []Publisher{b.Kitchen, b.Sales} {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil {
			log.WithError(err).Warn("closing publisher")
		}
	}
}

type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
