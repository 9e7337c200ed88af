package event

import "context"

type Repository interface {
	CreateEvents(ctx context.Context, events []*EventDTO) error
}
