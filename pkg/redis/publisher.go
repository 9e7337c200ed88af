package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"orgusers-api/internal/event"
)

const organizationEventsChannelPrefix = "organization-events:"

// OrganizationEventsChannel returns the channel events of one organization are published to.
func OrganizationEventsChannel(organizationId string) string {
	return organizationEventsChannelPrefix + organizationId
}

// EventPublisher publishes audit events as JSON on per-organization channels.
type EventPublisher struct {
	client *Client
}

func NewEventPublisher(client *Client) *EventPublisher {
	return &EventPublisher{client: client}
}

func (p *EventPublisher) Publish(ctx context.Context, e *event.EventDTO) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, OrganizationEventsChannel(e.OrganizationId), body).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}
