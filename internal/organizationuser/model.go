package organizationuser

import (
	"time"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleCustom Role = "custom"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

type Status string

const (
	StatusRevoked   Status = "revoked"
	StatusInvited   Status = "invited"
	StatusAccepted  Status = "accepted"
	StatusConfirmed Status = "confirmed"
)

type OrganizationUserDTO struct {
	Id             string    `json:"id" db:"id"`
	OrganizationId string    `json:"organization_id" db:"organization_id"`
	UserId         *string   `json:"user_id" db:"user_id"`
	Email          string    `json:"email" db:"email"`
	Role           Role      `json:"role" db:"role"`
	Status         Status    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// IsUser reports whether the membership belongs to userId. Pending invites belong to no one.
func (m *OrganizationUserDTO) IsUser(userId string) bool {
	return m.UserId != nil && *m.UserId == userId
}

type EventSystemUser string

const (
	EventSystemUserScim               EventSystemUser = "scim"
	EventSystemUserDomainVerification EventSystemUser = "domain_verification"
	EventSystemUserPublicApi          EventSystemUser = "public_api"
)

// Actor identifies who requested a removal. A nil Actor means the caller acts
// on behalf of no particular user.
type Actor interface {
	actor()
}

type UserActor struct {
	UserId string
}

func (UserActor) actor() {}

// SystemActor is used by automated flows. It skips the self-removal and
// owner-peer checks, never the confirmed owner check.
type SystemActor struct {
	System EventSystemUser
}

func (SystemActor) actor() {}

type EventType string

const (
	EventTypeOrganizationUserRemoved EventType = "OrganizationUser_Removed"
)

// RemovalResult is the outcome of one id in a batch removal. An empty Error means the
// membership was removed.
type RemovalResult struct {
	OrganizationUserId string `json:"id"`
	Error              string `json:"error,omitempty"`
}

func (r RemovalResult) Succeeded() bool {
	return r.Error == ""
}

type deprovisionMessage struct {
	OrganizationId string `json:"organizationId"`
	UserId         string `json:"userId"`
}
