package mq

import (
	"context"
	"encoding/json"
	"time"

	"ElectroMart/app/api/storefront/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishOrderPlaced sends the order-placed event to Kafka. Publishing is a
// no-op when no broker or topic is configured.
func PublishOrderPlaced(sc *svc.ServiceContext, evt OrderPlacedEvent) error {
	if len(sc.Config.KafkaConf.Broker) == 0 || sc.Config.KafkaConf.OrderTopic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(sc.Config.KafkaConf.Broker...),
		Topic:        sc.Config.KafkaConf.OrderTopic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	defer w.Close()
	msg := kafka.Message{Key: []byte(evt.SessionId), Value: body}
	return w.WriteMessages(context.Background(), msg)
}
