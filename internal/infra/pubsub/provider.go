package pubsub

import (
	"context"
	"log/slog"

	"cheeserater/config"
	"cheeserater/internal/domain/constants"
	"cheeserater/internal/domain/service"
	"cheeserater/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops every event.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChangeEvent(ctx context.Context, event *service.ChangeEvent) error {
	p.logger.DebugContext(ctx, "Change event dropped, publishing disabled",
		slog.String("document", event.Document),
		slog.String("action", event.Action),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func provider(cfg *config.PubSubConfig) string {
	if cfg == nil || cfg.Provider == "" {
		return constants.PubSubProviderNoop
	}

	return cfg.Provider
}

func validate(cfg *config.PubSubConfig) error {
	switch provider(cfg) {
	case constants.PubSubProviderNoop:
		return nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes
// it when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if err := validate(cfg); err != nil {
		return nil, err
	}

	name := provider(cfg)
	logger := params.Logger.With(slog.String("pubsub_provider", name))

	var publisher service.EventPublisher
	switch name {
	case constants.PubSubProviderLocal:
		logger.Info("Publishing change events over local HTTP push", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		logger.Info("Publishing change events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)
		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		logger.Info("Change event publishing disabled")

		return &noopPublisher{logger: logger}, nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing change event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the change event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
