package queue

import (
	"context"

	"bistro-pos-service/internal/models"
)

// OrderCompletedEvent is the payload published on routing key
// "order.completed" once a completion has been persisted.
type OrderCompletedEvent struct {
	OrderID       string  `json:"orderId"`
	TableID       string  `json:"tableId"`
	TotalPrice    float64 `json:"totalPrice"`
	PaymentMethod string  `json:"paymentMethod"`
	CashierID     string  `json:"cashierId"`
	CompletedAt   string  `json:"completedAt"`
}

// PublishOrderCompleted is a no-op when no queue is configured.
func PublishOrderCompleted(ctx context.Context, c *Client, order models.Order) error {
	if c == nil {
		return nil
	}
	return c.PublishJSON(ctx, EventsExchange, "order.completed", OrderCompletedEvent{
		OrderID:       order.ID,
		TableID:       order.TableID,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		CashierID:     order.CashierID,
		CompletedAt:   order.CompletedAt,
	})
}
