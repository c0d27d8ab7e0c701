package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// EventHandler 消费端回调
type EventHandler func(ctx context.Context, event *EngagementEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler EventHandler
}

func NewConsumer(rabbitmqURL string, handler EventHandler) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &Consumer{conn: conn, channel: ch, handler: handler}, nil
}

// Start 启动消费循环 阻塞直到ctx取消或通道关闭
func (c *Consumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		EngagementEventQueue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			var event EngagementEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				logrus.Errorf("failed to unmarshal engagement event: %v", err)
				d.Nack(false, false)
				continue
			}
			if err := c.handler(ctx, &event); err != nil {
				logrus.Errorf("failed to handle engagement event %s: %v", event.EventID, err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
