package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"intake/config"
	"intake/infras/kafka"
	"intake/infras/otel"
	"intake/internal/domains/demorequest/model/dto"
	"intake/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher emits demo-request lifecycle events for downstream consumers
// (CRM sync, staff notifications).
type Publisher interface {
	DemoRequestCreated(ctx context.Context, request dto.DemoRequestResponse) error
	DemoRequestUpdated(ctx context.Context, request dto.DemoRequestResponse) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) DemoRequestCreated(ctx context.Context, request dto.DemoRequestResponse) error {
	return p.publish(ctx, p.cfg.Kafka.Topics.DemoRequestCreated, request)
}

func (p *publisherImpl) DemoRequestUpdated(ctx context.Context, request dto.DemoRequestResponse) error {
	return p.publish(ctx, p.cfg.Kafka.Topics.DemoRequestUpdated, request)
}

func (p *publisherImpl) publish(ctx context.Context, topic string, request dto.DemoRequestResponse) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("topic", topic)

	message := kafka.Message{
		Key:   request.ID,
		Value: request,
	}

	if err = p.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("id", request.ID).Msg("failed to publish demo request event")

		return fmt.Errorf("failed to publish demo request event: %w", err)
	}

	return nil
}
