package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AttemptSentPayload é o evento "tentativa de outreach enviada" que vai
// para o exchange. O serviço de tracking usa isso para armar o pixel e
// os links rastreados do email.
type AttemptSentPayload struct {
	StatID        string `json:"stat_id"`
	PersonID      string `json:"person_id"`
	CompanyID     string `json:"company_id"`
	AttemptNumber int    `json:"attempt_number"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	SentDate      string `json:"sent_date"`
}

// EngagementPayload é o evento de engajamento que os callbacks de
// tracking publicam na fila q.engagements.
type EngagementPayload struct {
	PersonID   string `json:"person_id"`
	StatID     string `json:"stat_id,omitempty"`
	Type       string `json:"type"` // open, click, resume_open, reply
	OccurredAt string `json:"occurred_at,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishAttemptSent(ctx context.Context, payload AttemptSentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		SentRoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
