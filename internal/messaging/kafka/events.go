package kafka

import "time"

// EventType определяет тип события жизненного цикла заказа.
type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
	EventTypeOrderUpdated EventType = "order.updated"
	EventTypeOrderDeleted EventType = "order.deleted"
)

// TopicOrderEvents — топик событий заказов. Ключ сообщения — order_id,
// чтобы события одного заказа попадали в одну партицию.
const TopicOrderEvents = "orders.order.events"

// OrderEvent представляет публикуемое событие заказа. Позиции и цены в
// событие намеренно не включаются: расчётное представление вычисляется
// из каталога на момент чтения, а не на момент события.
type OrderEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent создаёт событие заказа с текущей меткой времени.
func NewOrderEvent(eventType EventType, orderID string, itemCount int) *OrderEvent {
	return &OrderEvent{
		EventType: eventType,
		OrderID:   orderID,
		ItemCount: itemCount,
		Timestamp: time.Now().UTC(),
	}
}
