package events

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange        = "ecommerce.events"
	OrderPlacedRoutingKey = "storefront.order.placed.v1"
	storefrontServiceName = "storefront-go"
	defaultPublishTimeout = 3 * time.Second
	defaultDialTimeout    = 10 * time.Second
)

// Dial opens the broker connection used by the publisher.
func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Dial:       amqp.DefaultDial(defaultDialTimeout),
		Properties: amqp.Table{"connection_name": storefrontServiceName},
	})
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return conn, nil
}

func declareEventsExchange(ch channel) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}
