package organizationuser

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	RemoveOrganizationUser(
		ctx context.Context,
		organizationId string,
		organizationUserId string,
		actor Actor,
	) error
	RemoveOrganizationUserByUserId(
		ctx context.Context,
		organizationId string,
		userId string,
		actor Actor,
	) error
	RemoveOrganizationUsers(
		ctx context.Context,
		organizationId string,
		organizationUserIds []string,
		actor Actor,
	) ([]RemovalResult, error)
}

type service struct {
	repository    Repository
	authorization AuthorizationContext
	ownersQuery   HasConfirmedOwnersExceptQuery
	eventService  EventService
}

func NewService(
	repository Repository,
	authorization AuthorizationContext,
	ownersQuery HasConfirmedOwnersExceptQuery,
	eventService EventService,
) Service {
	return &service{
		repository:    repository,
		authorization: authorization,
		ownersQuery:   ownersQuery,
		eventService:  eventService,
	}
}

func (s *service) RemoveOrganizationUser(
	ctx context.Context,
	organizationId string,
	organizationUserId string,
	actor Actor,
) error {
	organizationUser, err := s.repository.GetById(ctx, organizationUserId)
	if err != nil {
		return err
	}

	if organizationUser.OrganizationId != organizationId {
		return ErrUserNotFound
	}

	return s.removeOne(ctx, organizationUser, actor)
}

func (s *service) RemoveOrganizationUserByUserId(
	ctx context.Context,
	organizationId string,
	userId string,
	actor Actor,
) error {
	organizationUser, err := s.repository.GetByOrganizationAndUser(ctx, organizationId, userId)
	if err != nil {
		return err
	}

	if organizationUser.OrganizationId != organizationId {
		return ErrUserNotFound
	}

	return s.removeOne(ctx, organizationUser, actor)
}

func (s *service) removeOne(ctx context.Context, organizationUser *OrganizationUserDTO, actor Actor) error {
	switch a := actor.(type) {
	case UserActor:
		if organizationUser.IsUser(a.UserId) {
			return ErrCannotRemoveYourself
		}

		if organizationUser.Role == RoleOwner {
			isOwner, err := s.authorization.IsOrganizationOwner(ctx, organizationUser.OrganizationId, a.UserId)
			if err != nil {
				return err
			}
			if !isOwner {
				return ErrOnlyOwnersCanDeleteOwner
			}
		}
	case SystemActor, nil:
	}

	if organizationUser.Role == RoleOwner {
		hasOtherOwners, err := s.ownersQuery.HasConfirmedOwnersExcept(
			ctx,
			organizationUser.OrganizationId,
			[]string{organizationUser.Id},
			true,
		)
		if err != nil {
			return err
		}
		if !hasOtherOwners {
			return ErrNoConfirmedOwner
		}
	}

	if err := s.repository.Delete(ctx, organizationUser); err != nil {
		return err
	}

	if err := s.eventService.LogOrganizationUserEvent(ctx, organizationUser, EventTypeOrganizationUserRemoved, actor); err != nil {
		zap.L().Error("failed to log organization user removal event",
			zap.Error(err),
			zap.String("organizationId", organizationUser.OrganizationId),
			zap.String("organizationUserId", organizationUser.Id),
		)
	}

	zap.L().Info("organization user removed",
		zap.String("organizationId", organizationUser.OrganizationId),
		zap.String("organizationUserId", organizationUser.Id),
		zap.Stringer("actor", actorField{actor}),
	)

	return nil
}

func (s *service) RemoveOrganizationUsers(
	ctx context.Context,
	organizationId string,
	organizationUserIds []string,
	actor Actor,
) ([]RemovalResult, error) {
	requestedIds := uniqueIds(organizationUserIds)
	if len(requestedIds) == 0 {
		return []RemovalResult{}, nil
	}

	found, err := s.repository.GetMany(ctx, requestedIds)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]*OrganizationUserDTO, len(found))
	var candidateOwnerIds []string
	for _, organizationUser := range found {
		if organizationUser.OrganizationId != organizationId {
			continue
		}
		if _, seen := candidates[organizationUser.Id]; seen {
			continue
		}
		candidates[organizationUser.Id] = organizationUser
		if organizationUser.Role == RoleOwner {
			candidateOwnerIds = append(candidateOwnerIds, organizationUser.Id)
		}
	}

	if len(candidateOwnerIds) > 0 {
		if err := s.ensureOwnersRemain(ctx, organizationId, candidateOwnerIds); err != nil {
			return nil, err
		}
	}

	actorIsOwner := false
	userActor, isUserActor := actor.(UserActor)
	if isUserActor && len(candidateOwnerIds) > 0 {
		actorIsOwner, err = s.authorization.IsOrganizationOwner(ctx, organizationId, userActor.UserId)
		if err != nil {
			return nil, err
		}
	}

	results := make([]RemovalResult, 0, len(requestedIds))
	var removable []*OrganizationUserDTO
	removableAt := make(map[string]int, len(requestedIds))
	for _, id := range requestedIds {
		organizationUser, ok := candidates[id]
		if !ok {
			results = append(results, RemovalResult{OrganizationUserId: id, Error: errorMessage(ErrUsersInvalid)})
			continue
		}

		if isUserActor {
			if organizationUser.IsUser(userActor.UserId) {
				results = append(results, RemovalResult{OrganizationUserId: id, Error: errorMessage(ErrCannotRemoveYourself)})
				continue
			}
			if organizationUser.Role == RoleOwner && !actorIsOwner {
				results = append(results, RemovalResult{OrganizationUserId: id, Error: errorMessage(ErrOnlyOwnersCanDeleteOwner)})
				continue
			}
		}

		removableAt[id] = len(results)
		results = append(results, RemovalResult{OrganizationUserId: id})
		removable = append(removable, organizationUser)
	}

	if len(removable) == 0 {
		return results, nil
	}

	removableIds := make([]string, len(removable))
	for i, organizationUser := range removable {
		removableIds[i] = organizationUser.Id
	}

	deletedIds, err := s.repository.DeleteMany(ctx, removableIds)
	if err != nil {
		return nil, err
	}

	// Members deleted concurrently between the read and the delete are reported
	// as invalid and get no removal event.
	removable = markUndeleted(results, removable, removableAt, deletedIds)
	if len(removable) == 0 {
		return results, nil
	}

	if err := s.eventService.LogOrganizationUserEvents(ctx, removable, EventTypeOrganizationUserRemoved, actor); err != nil {
		zap.L().Error("failed to log organization user removal events",
			zap.Error(err),
			zap.String("organizationId", organizationId),
			zap.Int("count", len(removable)),
		)
	}

	zap.L().Info("organization users removed",
		zap.String("organizationId", organizationId),
		zap.Int("requested", len(requestedIds)),
		zap.Int("removed", len(removable)),
		zap.Stringer("actor", actorField{actor}),
	)

	return results, nil
}

func markUndeleted(results []RemovalResult, removable []*OrganizationUserDTO, removableAt map[string]int, deletedIds []string) []*OrganizationUserDTO {
	deleted := make(map[string]struct{}, len(deletedIds))
	for _, id := range deletedIds {
		deleted[id] = struct{}{}
	}

	kept := removable[:0]
	for _, organizationUser := range removable {
		if _, ok := deleted[organizationUser.Id]; ok {
			kept = append(kept, organizationUser)
			continue
		}
		results[removableAt[organizationUser.Id]].Error = errorMessage(ErrUsersInvalid)
	}

	return kept
}

// ensureOwnersRemain fails the whole batch when removing every candidate owner at
// once would leave the organization without a confirmed owner.
func (s *service) ensureOwnersRemain(ctx context.Context, organizationId string, candidateOwnerIds []string) error {
	owners, err := s.repository.GetManyByOrganizationAndRole(ctx, organizationId, RoleOwner)
	if err != nil {
		return err
	}

	candidateSet := make(map[string]struct{}, len(candidateOwnerIds))
	for _, id := range candidateOwnerIds {
		candidateSet[id] = struct{}{}
	}

	removesAllOwners := true
	for _, owner := range owners {
		if _, ok := candidateSet[owner.Id]; !ok {
			removesAllOwners = false
			break
		}
	}
	if removesAllOwners {
		return ErrNoConfirmedOwner
	}

	hasOtherOwners, err := s.ownersQuery.HasConfirmedOwnersExcept(ctx, organizationId, candidateOwnerIds, true)
	if err != nil {
		return err
	}
	if !hasOtherOwners {
		return ErrNoConfirmedOwner
	}

	return nil
}

func uniqueIds(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

type actorField struct {
	actor Actor
}

func (f actorField) String() string {
	switch a := f.actor.(type) {
	case UserActor:
		return "user:" + a.UserId
	case SystemActor:
		return "system:" + string(a.System)
	default:
		return "none"
	}
}
