package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}
	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		EngagementEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare engagement event exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		EngagementEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare engagement event queue: %w", err)
	}

	err = p.channel.QueueBind(
		EngagementEventQueue,
		"",
		EngagementEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind engagement event queue: %w", err)
	}
	return nil
}

// PublishEngagementEvent 发布互动事件 失败只记录日志不影响写路径
func (p *Producer) PublishEngagementEvent(ctx context.Context, event *EngagementEvent) {
	if p == nil || p.channel == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("failed to marshal engagement event: %v", err)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(publishCtx,
		EngagementEventExchange,
		"",    // routing key
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		logrus.Errorf("failed to publish engagement event %s: %v", event.EventID, err)
	}
}

// 进程级默认生产者 未初始化时发布为空操作
var defaultProducer *Producer

func InitProducer(rabbitmqURL string) error {
	p, err := NewProducer(rabbitmqURL)
	if err != nil {
		return err
	}
	defaultProducer = p
	return nil
}

// Publish 通过默认生产者发布互动事件
func Publish(ctx context.Context, event *EngagementEvent) {
	defaultProducer.PublishEngagementEvent(ctx, event)
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
