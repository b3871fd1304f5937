package impl

import (
	"context"
	"log/slog"

	deliverycontext "cheeserater/internal/delivery/context"
	"cheeserater/internal/domain/service"
	"cheeserater/internal/util"
)

// changeNotifier publishes change events. Publishing is advisory: failures
// are logged and never reach the caller.
type changeNotifier struct {
	publisher service.EventPublisher
	clock     util.Clock
	logger    *slog.Logger
}

func (n changeNotifier) notify(ctx context.Context, document, action, subjectID, userID string) {
	event := &service.ChangeEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		Document:   document,
		Action:     action,
		SubjectID:  subjectID,
		UserID:     userID,
		OccurredAt: n.clock.NowMillis(),
	}

	if err := n.publisher.PublishChangeEvent(ctx, event); err != nil {
		deliverycontext.LoggerOr(ctx, n.logger).WarnContext(ctx, "Failed to publish change event",
			slog.String("document", document),
			slog.String("action", action),
			slog.String("subject_id", subjectID),
			slog.Any("error", err),
		)
	}
}
