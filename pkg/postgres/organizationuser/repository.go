package organizationuser

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"orgusers-api/internal/organizationuser"
)

var (
	ErrFailedAcquireConnection = connect.NewError(connect.CodeInternal, errors.New("failed to acquire connection"))
)

const selectOrganizationUsers = `SELECT id, organization_id, user_id, email, role, status, created_at
			FROM organization_users`

type OrganizationUserRepository struct {
	connectionPool *pgxpool.Pool
	tracer         trace.Tracer
}

func NewOrganizationUserRepository(connectionPool *pgxpool.Pool, tracer trace.Tracer) *OrganizationUserRepository {
	return &OrganizationUserRepository{
		connectionPool: connectionPool,
		tracer:         tracer,
	}
}

func querySingleRow[T any](ctx context.Context, conn *pgxpool.Conn, span trace.Span, sql string, args []any, notFoundErr error) (*T, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to execute query"))
	}
	defer rows.Close()

	result, err := pgx.CollectOneRow[T](rows, pgx.RowToStructByName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErr
		}
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to collect row"))
	}

	return &result, nil
}

func queryRows(ctx context.Context, conn *pgxpool.Conn, span trace.Span, sql string, args ...any) ([]*organizationuser.OrganizationUserDTO, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to query organization users"))
	}
	defer rows.Close()

	organizationUsers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[organizationuser.OrganizationUserDTO])
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to collect organization user rows"))
	}

	return organizationUsers, nil
}

func (r *OrganizationUserRepository) GetById(ctx context.Context, id string) (*organizationuser.OrganizationUserDTO, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "GetById", trace.WithAttributes(attribute.KeyValue{
		Key:   "organizationUserId",
		Value: attribute.StringValue(id),
	}))
	defer span.End()

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return nil, ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := selectOrganizationUsers + ` WHERE id = $1`
	return querySingleRow[organizationuser.OrganizationUserDTO](ctx, connection, span, sql, []any{id}, organizationuser.ErrOrganizationUserNotFound)
}

func (r *OrganizationUserRepository) GetByOrganizationAndUser(ctx context.Context, organizationId, userId string) (*organizationuser.OrganizationUserDTO, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "GetByOrganizationAndUser", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "organizationId",
			Value: attribute.StringValue(organizationId),
		},
		attribute.KeyValue{
			Key:   "userId",
			Value: attribute.StringValue(userId),
		},
	))
	defer span.End()

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return nil, ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := selectOrganizationUsers + ` WHERE organization_id = $1 AND user_id = $2`
	return querySingleRow[organizationuser.OrganizationUserDTO](ctx, connection, span, sql, []any{organizationId, userId}, organizationuser.ErrOrganizationUserNotFound)
}

func (r *OrganizationUserRepository) GetMany(ctx context.Context, ids []string) ([]*organizationuser.OrganizationUserDTO, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "GetMany", trace.WithAttributes(attribute.KeyValue{
		Key:   "count",
		Value: attribute.IntValue(len(ids)),
	}))
	defer span.End()

	if len(ids) == 0 {
		return []*organizationuser.OrganizationUserDTO{}, nil
	}

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return nil, ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := selectOrganizationUsers + ` WHERE id = ANY($1)`
	return queryRows(ctx, connection, span, sql, ids)
}

func (r *OrganizationUserRepository) GetManyByOrganizationAndRole(
	ctx context.Context,
	organizationId string,
	role organizationuser.Role,
) ([]*organizationuser.OrganizationUserDTO, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "GetManyByOrganizationAndRole", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "organizationId",
			Value: attribute.StringValue(organizationId),
		},
		attribute.KeyValue{
			Key:   "role",
			Value: attribute.StringValue(string(role)),
		},
	))
	defer span.End()

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return nil, ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := selectOrganizationUsers + ` WHERE organization_id = $1 AND role = $2 ORDER BY created_at ASC`
	return queryRows(ctx, connection, span, sql, organizationId, string(role))
}

// GetMemberRole returns the role of a confirmed member. Revoked, invited and
// accepted memberships grant no role and are reported as not found.
func (r *OrganizationUserRepository) GetMemberRole(ctx context.Context, organizationId, userId string) (organizationuser.Role, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "GetMemberRole", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "organizationId",
			Value: attribute.StringValue(organizationId),
		},
		attribute.KeyValue{
			Key:   "userId",
			Value: attribute.StringValue(userId),
		},
	))
	defer span.End()

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return "", ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := `SELECT role FROM organization_users
			WHERE organization_id = $1 AND user_id = $2 AND status = 'confirmed'`

	var role organizationuser.Role
	err = connection.QueryRow(ctx, sql, organizationId, userId).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", organizationuser.ErrOrganizationUserNotFound
		}
		span.RecordError(err)
		return "", connect.NewError(connect.CodeInternal, errors.New("failed to query member role"))
	}

	return role, nil
}

func (r *OrganizationUserRepository) HasConfirmedProviderUsers(ctx context.Context, organizationId string) (bool, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "HasConfirmedProviderUsers", trace.WithAttributes(attribute.KeyValue{
		Key:   "organizationId",
		Value: attribute.StringValue(organizationId),
	}))
	defer span.End()

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return false, ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := `SELECT EXISTS (
				SELECT 1
				FROM provider_users pu
				JOIN provider_organizations po ON po.provider_id = pu.provider_id
				WHERE po.organization_id = $1 AND pu.status = 'confirmed'
			)`

	var exists bool
	if err := connection.QueryRow(ctx, sql, organizationId).Scan(&exists); err != nil {
		span.RecordError(err)
		return false, connect.NewError(connect.CodeInternal, errors.New("failed to query provider users"))
	}

	return exists, nil
}

func (r *OrganizationUserRepository) Delete(ctx context.Context, organizationUser *organizationuser.OrganizationUserDTO) error {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "Delete", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "organizationId",
			Value: attribute.StringValue(organizationUser.OrganizationId),
		},
		attribute.KeyValue{
			Key:   "organizationUserId",
			Value: attribute.StringValue(organizationUser.Id),
		},
	))
	defer span.End()

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := `DELETE FROM organization_users WHERE id = @Id AND organization_id = @OrganizationId`
	sqlArgs := pgx.NamedArgs{
		"Id":             organizationUser.Id,
		"OrganizationId": organizationUser.OrganizationId,
	}

	result, err := connection.Exec(ctx, sql, sqlArgs)
	if err != nil {
		span.RecordError(err)
		return connect.NewError(connect.CodeInternal, errors.New("failed to delete organization user"))
	}

	if result.RowsAffected() == 0 {
		return organizationuser.ErrOrganizationUserNotFound
	}

	return nil
}

// DeleteMany removes every listed membership in one statement and returns the ids
// that were actually deleted. Ids that no longer exist are left out of the result.
func (r *OrganizationUserRepository) DeleteMany(ctx context.Context, ids []string) ([]string, error) {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "DeleteMany", trace.WithAttributes(attribute.KeyValue{
		Key:   "count",
		Value: attribute.IntValue(len(ids)),
	}))
	defer span.End()

	if len(ids) == 0 {
		return []string{}, nil
	}

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return nil, ErrFailedAcquireConnection
	}
	defer connection.Release()

	rows, err := connection.Query(ctx, `DELETE FROM organization_users WHERE id = ANY($1) RETURNING id`, ids)
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to delete organization users"))
	}
	defer rows.Close()

	deletedIds, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to delete organization users"))
	}

	return deletedIds, nil
}
