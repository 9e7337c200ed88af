package organizationuser

import (
	"context"
)

type Repository interface {
	GetById(ctx context.Context, id string) (*OrganizationUserDTO, error)
	GetByOrganizationAndUser(ctx context.Context, organizationId, userId string) (*OrganizationUserDTO, error)
	GetMany(ctx context.Context, ids []string) ([]*OrganizationUserDTO, error)
	GetManyByOrganizationAndRole(ctx context.Context, organizationId string, role Role) ([]*OrganizationUserDTO, error)
	GetMemberRole(ctx context.Context, organizationId, userId string) (Role, error)
	HasConfirmedProviderUsers(ctx context.Context, organizationId string) (bool, error)
	Delete(ctx context.Context, organizationUser *OrganizationUserDTO) error
	DeleteMany(ctx context.Context, ids []string) ([]string, error)
}

// AuthorizationContext answers role questions about the acting user.
type AuthorizationContext interface {
	IsOrganizationOwner(ctx context.Context, organizationId, userId string) (bool, error)
	IsOrganizationAdmin(ctx context.Context, organizationId, userId string) (bool, error)
}

type EventService interface {
	LogOrganizationUserEvent(ctx context.Context, organizationUser *OrganizationUserDTO, eventType EventType, actor Actor) error
	LogOrganizationUserEvents(ctx context.Context, organizationUsers []*OrganizationUserDTO, eventType EventType, actor Actor) error
}
