package redis

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Subscriber struct {
	client *Client
}

func NewSubscriber(client *Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe calls handler for every message on channel until ctx is done. It
// returns once the subscription is confirmed, or with the error that prevented it.
func (s *Subscriber) Subscribe(ctx context.Context, channel string, handler func(ctx context.Context, payload []byte)) error {
	pubsub := s.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe: %w", err)
	}

	zap.L().Info("redis subscription started", zap.String("channel", channel))

	ch := pubsub.Channel()
	go func() {
		defer func() {
			_ = pubsub.Close()
			zap.L().Info("redis subscription stopped", zap.String("channel", channel))
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler(ctx, []byte(msg.Payload))
			}
		}
	}()

	return nil
}
