package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orgusers-api/internal/organizationuser"
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) LogOrganizationUserEvent(
	ctx context.Context,
	organizationUser *organizationuser.OrganizationUserDTO,
	eventType organizationuser.EventType,
	actor organizationuser.Actor,
) error {
	return s.LogOrganizationUserEvents(ctx, []*organizationuser.OrganizationUserDTO{organizationUser}, eventType, actor)
}

func (s *Service) LogOrganizationUserEvents(
	ctx context.Context,
	organizationUsers []*organizationuser.OrganizationUserDTO,
	eventType organizationuser.EventType,
	actor organizationuser.Actor,
) error {
	if len(organizationUsers) == 0 {
		return nil
	}

	actingUserId, systemUser := actorColumns(actor)
	now := time.Now().UTC()

	events := make([]*EventDTO, 0, len(organizationUsers))
	for _, organizationUser := range organizationUsers {
		events = append(events, &EventDTO{
			Id:                 uuid.NewString(),
			Type:               eventType,
			OrganizationId:     organizationUser.OrganizationId,
			OrganizationUserId: organizationUser.Id,
			ActingUserId:       actingUserId,
			SystemUser:         systemUser,
			CreatedAt:          now,
		})
	}

	if err := s.repository.CreateEvents(ctx, events); err != nil {
		return err
	}

	zap.L().Debug("organization user events stored",
		zap.String("type", string(eventType)),
		zap.Int("count", len(events)))

	return nil
}

func actorColumns(actor organizationuser.Actor) (actingUserId *string, systemUser *string) {
	switch a := actor.(type) {
	case organizationuser.UserActor:
		userId := a.UserId
		return &userId, nil
	case organizationuser.SystemActor:
		system := string(a.System)
		return nil, &system
	default:
		return nil, nil
	}
}
