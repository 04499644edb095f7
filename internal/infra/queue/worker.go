package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EngagementRecorder aplica um evento de engajamento nos registros.
// Implementado pelo RecordEngagementUseCase; a interface fica aqui para
// o worker não depender do pacote usecase.
type EngagementRecorder interface {
	Record(ctx context.Context, personID, statID, eventType string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Recorder EngagementRecorder
}

func NewWorker(ch *amqp.Channel, recorder EngagementRecorder) *Worker {
	return &Worker{
		Channel:  ch,
		Recorder: recorder,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload EngagementPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Evento %s para pessoa %s", payload.Type, payload.PersonID)

			if err := w.Recorder.Record(context.Background(), payload.PersonID, payload.StatID, payload.Type); err != nil {
				log.Printf("❌ [WORKER] Erro ao aplicar evento: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
