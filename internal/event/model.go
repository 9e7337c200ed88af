package event

import (
	"time"

	"orgusers-api/internal/organizationuser"
)

type EventDTO struct {
	Id                 string                     `json:"id" db:"id"`
	Type               organizationuser.EventType `json:"type" db:"type"`
	OrganizationId     string                     `json:"organizationId" db:"organization_id"`
	OrganizationUserId string                     `json:"organizationUserId" db:"organization_user_id"`
	ActingUserId       *string                    `json:"actingUserId,omitempty" db:"acting_user_id"`
	SystemUser         *string                    `json:"systemUser,omitempty" db:"system_user"`
	CreatedAt          time.Time                  `json:"createdAt" db:"created_at"`
	PublishedAt        *time.Time                 `json:"publishedAt,omitempty" db:"published_at"`
}
