package mq

// OrderPlacedEvent is the payload published to Kafka when a checkout
// completes, carrying a snapshot of the purchased lines.
type OrderPlacedEvent struct {
	OrderId   string      `json:"order_id"`
	SessionId string      `json:"session_id"`
	Lines     []OrderLine `json:"lines"`
	Total     float64     `json:"total"`
	PlacedAt  int64       `json:"placed_at"`
}

// OrderLine is one purchased line inside an OrderPlacedEvent.
type OrderLine struct {
	ItemId   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}
