package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ecommerce/internal/domain/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ecommerce.purchase"
	ExchangeType = "topic"
)

// SetupConn は接続とexchange宣言をまとめて行う。
func SetupConn(url string) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	// コンテナ起動直後のための簡易リトライ
	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}

type AMQPPublisher struct {
	ch *amqp.Channel
}

// DI
func NewAMQPPublisher(ch *amqp.Channel) *AMQPPublisher {
	return &AMQPPublisher{ch: ch}
}

// PublishStatusChanged はステータス遷移イベントをtopic exchangeへ流す。
// Routing Key: purchase.status.<to> (例 purchase.status.shipping)
func (p *AMQPPublisher) PublishStatusChanged(ctx context.Context, ev model.PurchaseStatusChangedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	routingKey := fmt.Sprintf("purchase.status.%s", strings.ToLower(ev.To.String()))

	return p.ch.PublishWithContext(ctx,
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// NoopPublisher はAMQP未設定時の置き換え。
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(ctx context.Context, ev model.PurchaseStatusChangedEvent) error {
	return nil
}
