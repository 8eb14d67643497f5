package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

const (
	OrderPlacedEventName    = "OrderPlaced"
	OrderPlacedEventVersion = 1
	orderPlacedSchema       = "contracts/events/storefront/OrderPlaced.v1.payload.schema.json"
)

type OrderPlacedItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderPlacedPayload struct {
	OrderID       int64             `json:"orderId"`
	SessionID     string            `json:"sessionId"`
	CustomerEmail string            `json:"customerEmail"`
	Items         []OrderPlacedItem `json:"items"`
	TotalAmount   float64           `json:"totalAmount"`
	Status        string            `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}

type OrderPlacedEnvelope = EventEnvelope[OrderPlacedPayload]

// BuildOrderPlacedEnvelope wraps o for publishing. The session id is the
// partition key, so sequences are ordered per visitor.
func BuildOrderPlacedEnvelope(o *order.Order, seq int64, producer string, meta EventMeta, now time.Time) OrderPlacedEnvelope {
	if meta.CorrelationID == "" {
		meta.CorrelationID = uuid.NewString()
	}

	items := make([]OrderPlacedItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderPlacedItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price.InexactFloat64(),
		})
	}

	ts := o.CreatedAt.Time
	if ts.IsZero() {
		ts = now
	}

	return OrderPlacedEnvelope{
		EventName:     OrderPlacedEventName,
		EventVersion:  OrderPlacedEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
		Producer:      producer,
		PartitionKey:  meta.PartitionKey,
		Sequence:      &seq,
		OccurredAt:    now.UTC(),
		Schema:        orderPlacedSchema,
		Payload: OrderPlacedPayload{
			OrderID:       o.ID,
			SessionID:     meta.PartitionKey,
			CustomerEmail: o.CustomerEmail,
			Items:         items,
			TotalAmount:   o.TotalAmount.InexactFloat64(),
			Status:        string(o.Status),
			Timestamp:     ts.UTC(),
		},
	}
}
