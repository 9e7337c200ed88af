package organizationuser

import (
	"context"
	"errors"

	"orgusers-api/internal/organizationuser"
	"orgusers-api/pkg/authorization"
)

type memberRoleGetter interface {
	GetMemberRole(ctx context.Context, organizationId, userId string) (organizationuser.Role, error)
}

// RoleCheckerAdapter exposes an organization user repository as an
// authorization.MemberRoleChecker.
type RoleCheckerAdapter struct {
	repo memberRoleGetter
}

func NewRoleCheckerAdapter(repo memberRoleGetter) *RoleCheckerAdapter {
	return &RoleCheckerAdapter{repo: repo}
}

func (a *RoleCheckerAdapter) GetMemberRole(ctx context.Context, organizationId, userId string) (string, error) {
	role, err := a.repo.GetMemberRole(ctx, organizationId, userId)
	if err != nil {
		if errors.Is(err, organizationuser.ErrOrganizationUserNotFound) {
			return "", authorization.ErrMemberNotFound
		}
		return "", err
	}

	return string(role), nil
}
