package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/table-booking/constant"
	"github.com/rabbitmq/amqp091-go"
)

// ReservationCreatedMessage is published after a reservation is stored.
type ReservationCreatedMessage struct {
	ReservationID string `json:"reservationId"`
	TableNumber   int    `json:"tableNumber"`
	Date          string `json:"date"`
	SlotTimeStart string `json:"slotTimeStart"`
	SlotTimeEnd   string `json:"slotTimeEnd"`
	CreatedBy     string `json:"createdBy"`
	CreatedAt     string `json:"createdAt"`
}

type ReservationPublisher interface {
	PublishReservationCreated(ctx context.Context, msg ReservationCreatedMessage) error
}

// Channel is the subset of *amqp091.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

var _ Channel = (*amqp091.Channel)(nil)

type Publisher struct {
	conn    *amqp091.Connection
	channel Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Declare the topic exchange; consumers bind their own queues
	err = channel.ExchangeDeclare(
		constant.ReservationExchange, // name
		amqp091.ExchangeTopic,        // type
		true,                         // durable
		false,                        // auto-delete
		false,                        // internal
		false,                        // no-wait
		nil,                          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// NewPublisherWithChannel wraps an already declared channel.
func NewPublisherWithChannel(channel Channel) *Publisher {
	return &Publisher{channel: channel}
}

func (p *Publisher) PublishReservationCreated(ctx context.Context, msg ReservationCreatedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		constant.ReservationExchange,          // exchange
		constant.ReservationCreatedRoutingKey, // routing key
		false,                                 // mandatory
		false,                                 // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.ReservationID,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
