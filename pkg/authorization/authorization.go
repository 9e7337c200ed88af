package authorization

import (
	"context"
	"errors"

	"connectrpc.com/connect"
)

const (
	MemberRoleUser   = "user"
	MemberRoleCustom = "custom"
	MemberRoleAdmin  = "admin"
	MemberRoleOwner  = "owner"
)

var (
	ErrMemberNotFound = connect.NewError(connect.CodeNotFound, errors.New("member not found"))
)

type MemberRoleChecker interface {
	GetMemberRole(ctx context.Context, organizationId, userId string) (string, error)
}

// CurrentContext answers role questions for the acting user. Users without a
// membership in the organization hold no role.
type CurrentContext struct {
	checker MemberRoleChecker
}

func NewCurrentContext(checker MemberRoleChecker) *CurrentContext {
	return &CurrentContext{checker: checker}
}

func (c *CurrentContext) IsOrganizationOwner(ctx context.Context, organizationId, userId string) (bool, error) {
	role, err := c.memberRole(ctx, organizationId, userId)
	if err != nil {
		return false, err
	}

	return role == MemberRoleOwner, nil
}

// IsOrganizationAdmin is true for admins and owners.
func (c *CurrentContext) IsOrganizationAdmin(ctx context.Context, organizationId, userId string) (bool, error) {
	role, err := c.memberRole(ctx, organizationId, userId)
	if err != nil {
		return false, err
	}

	return role == MemberRoleAdmin || role == MemberRoleOwner, nil
}

func (c *CurrentContext) memberRole(ctx context.Context, organizationId, userId string) (string, error) {
	if userId == "" {
		return "", nil
	}

	role, err := c.checker.GetMemberRole(ctx, organizationId, userId)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return "", nil
		}
		return "", err
	}

	return role, nil
}
