package event

import (
	"context"
	"time"
)

// Publisher delivers a stored event to subscribers outside this service.
type Publisher interface {
	Publish(ctx context.Context, event *EventDTO) error
}

type Queue interface {
	Start(ctx context.Context, publisher Publisher, batchSize int, pollInterval time.Duration)
	Stop()
	GetUnpublishedEvents(ctx context.Context, limit int) ([]*EventDTO, error)
	MarkEventsPublished(ctx context.Context, eventIds []string) error
	ReleaseEvents(ctx context.Context, eventIds []string) error
}
