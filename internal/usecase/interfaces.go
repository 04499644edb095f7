package usecase

import (
	"context"

	"github.com/xavierca1/outreach-tracker/internal/infra/queue"
)

// EmailService envia o email de outreach de verdade (SMTP).
type EmailService interface {
	SendOutreach(to, name, company, subject string, attempt int) error
}

// QueueProducerInterface publica o evento de tentativa enviada para o
// pipeline de tracking.
type QueueProducerInterface interface {
	PublishAttemptSent(ctx context.Context, payload queue.AttemptSentPayload) error
}

// DateScheduler gera as três datas de envio de um contato.
type DateScheduler interface {
	NextDates() [3]string
}
