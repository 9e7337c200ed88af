package event

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"orgusers-api/internal/event"
)

var (
	ErrFailedAcquireConnection = connect.NewError(connect.CodeInternal, errors.New("failed to acquire connection"))
)

type EventRepository struct {
	connectionPool *pgxpool.Pool
	tracer         trace.Tracer
}

func NewEventRepository(connectionPool *pgxpool.Pool, tracer trace.Tracer) *EventRepository {
	return &EventRepository{
		connectionPool: connectionPool,
		tracer:         tracer,
	}
}

func (r *EventRepository) CreateEvents(ctx context.Context, events []*event.EventDTO) error {
	var span trace.Span
	ctx, span = r.tracer.Start(ctx, "CreateEvents", trace.WithAttributes(attribute.KeyValue{
		Key:   "count",
		Value: attribute.IntValue(len(events)),
	}))
	defer span.End()

	if len(events) == 0 {
		return nil
	}

	connection, err := r.connectionPool.Acquire(ctx)
	if err != nil {
		return ErrFailedAcquireConnection
	}
	defer connection.Release()

	tx, err := connection.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		return connect.NewError(connect.CodeInternal, errors.New("failed to begin transaction"))
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	sql := `INSERT INTO events (id, type, organization_id, organization_user_id, acting_user_id, system_user, created_at)
			VALUES (@Id, @Type, @OrganizationId, @OrganizationUserId, @ActingUserId, @SystemUser, @CreatedAt)`

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(sql, pgx.NamedArgs{
			"Id":                 e.Id,
			"Type":               string(e.Type),
			"OrganizationId":     e.OrganizationId,
			"OrganizationUserId": e.OrganizationUserId,
			"ActingUserId":       e.ActingUserId,
			"SystemUser":         e.SystemUser,
			"CreatedAt":          e.CreatedAt,
		})
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < len(events); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			span.RecordError(err)
			return connect.NewError(connect.CodeInternal, fmt.Errorf("failed to insert event %d", i))
		}
	}

	if err := results.Close(); err != nil {
		span.RecordError(err)
		return connect.NewError(connect.CodeInternal, errors.New("failed to close event batch results"))
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		return connect.NewError(connect.CodeInternal, errors.New("failed to commit transaction"))
	}
	committed = true

	return nil
}
