package organizationuser

import (
	"context"
)

type HasConfirmedOwnersExceptQuery interface {
	// HasConfirmedOwnersExcept reports whether the organization keeps a confirmed
	// owner once the memberships in excludedIds are gone. With includeProvider,
	// confirmed provider users managing the organization count as owners.
	HasConfirmedOwnersExcept(ctx context.Context, organizationId string, excludedIds []string, includeProvider bool) (bool, error)
}

type hasConfirmedOwnersExceptQuery struct {
	repository Repository
}

func NewHasConfirmedOwnersExceptQuery(repository Repository) HasConfirmedOwnersExceptQuery {
	return &hasConfirmedOwnersExceptQuery{repository: repository}
}

func (q *hasConfirmedOwnersExceptQuery) HasConfirmedOwnersExcept(
	ctx context.Context,
	organizationId string,
	excludedIds []string,
	includeProvider bool,
) (bool, error) {
	owners, err := q.repository.GetManyByOrganizationAndRole(ctx, organizationId, RoleOwner)
	if err != nil {
		return false, err
	}

	excluded := make(map[string]struct{}, len(excludedIds))
	for _, id := range excludedIds {
		excluded[id] = struct{}{}
	}

	for _, owner := range owners {
		if owner.Status != StatusConfirmed {
			continue
		}
		if _, ok := excluded[owner.Id]; ok {
			continue
		}
		return true, nil
	}

	if !includeProvider {
		return false, nil
	}

	return q.repository.HasConfirmedProviderUsers(ctx, organizationId)
}
