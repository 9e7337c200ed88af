package organizationuser

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

const DeprovisionChannel = "directory-sync:deprovision"

type MessageSubscriber interface {
	Subscribe(ctx context.Context, channel string, handler func(ctx context.Context, payload []byte)) error
}

// DirectorySync removes members that the identity directory deprovisioned.
// Removals run as the scim system user.
type DirectorySync struct {
	service    Service
	subscriber MessageSubscriber
}

func NewDirectorySync(service Service, subscriber MessageSubscriber) *DirectorySync {
	return &DirectorySync{
		service:    service,
		subscriber: subscriber,
	}
}

// Start subscribes to deprovision messages until ctx is done.
func (d *DirectorySync) Start(ctx context.Context) error {
	return d.subscriber.Subscribe(ctx, DeprovisionChannel, d.Handle)
}

func (d *DirectorySync) Handle(ctx context.Context, payload []byte) {
	var msg deprovisionMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		zap.L().Error("failed to decode deprovision message", zap.Error(err))
		return
	}

	if msg.OrganizationId == "" || msg.UserId == "" {
		zap.L().Warn("ignoring incomplete deprovision message",
			zap.String("organizationId", msg.OrganizationId),
			zap.String("userId", msg.UserId))
		return
	}

	actor := SystemActor{System: EventSystemUserScim}
	if err := d.service.RemoveOrganizationUserByUserId(ctx, msg.OrganizationId, msg.UserId, actor); err != nil {
		zap.L().Error("failed to deprovision organization user",
			zap.Error(err),
			zap.String("organizationId", msg.OrganizationId),
			zap.String("userId", msg.UserId))
		return
	}

	zap.L().Info("organization user deprovisioned",
		zap.String("organizationId", msg.OrganizationId),
		zap.String("userId", msg.UserId))
}
