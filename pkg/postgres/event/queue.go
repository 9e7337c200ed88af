package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"orgusers-api/internal/event"
)

// claimLease bounds how long a claimed event stays hidden from other processors.
// A processor that dies mid-batch leaves its events to be picked up after it.
const claimLease = 5 * time.Minute

// OutboxQueue publishes stored events that have not been published yet.
type OutboxQueue struct {
	connectionPool *pgxpool.Pool
	tracer         trace.Tracer
	stopChan       chan struct{}
	stopOnce       sync.Once
	processorWg    sync.WaitGroup
}

func NewOutboxQueue(connectionPool *pgxpool.Pool, tracer trace.Tracer) *OutboxQueue {
	return &OutboxQueue{
		connectionPool: connectionPool,
		tracer:         tracer,
		stopChan:       make(chan struct{}),
	}
}

func (q *OutboxQueue) Start(ctx context.Context, publisher event.Publisher, batchSize int, pollInterval time.Duration) {
	q.processorWg.Add(1)
	go func() {
		defer q.processorWg.Done()
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		zap.L().Info("event outbox processor started",
			zap.Int("batchSize", batchSize),
			zap.Duration("pollInterval", pollInterval))

		for {
			select {
			case <-q.stopChan:
				zap.L().Info("event outbox processor stopping")
				return
			case <-ctx.Done():
				zap.L().Info("event outbox processor context done")
				return
			case <-ticker.C:
				q.publishEvents(ctx, publisher, batchSize)
			}
		}
	}()
}

func (q *OutboxQueue) Stop() {
	q.stopOnce.Do(func() {
		close(q.stopChan)
		q.processorWg.Wait()
		zap.L().Info("event outbox processor stopped")
	})
}

func (q *OutboxQueue) publishEvents(ctx context.Context, publisher event.Publisher, batchSize int) {
	events, err := q.GetUnpublishedEvents(ctx, batchSize)
	if err != nil {
		zap.L().Error("failed to get unpublished events", zap.Error(err))
		return
	}

	if len(events) == 0 {
		return
	}

	published := make([]string, 0, len(events))
	var failed []string
	for _, e := range events {
		if err := publisher.Publish(ctx, e); err != nil {
			zap.L().Error("failed to publish event",
				zap.Error(err),
				zap.String("eventId", e.Id),
				zap.String("organizationId", e.OrganizationId))
			failed = append(failed, e.Id)
			continue
		}
		published = append(published, e.Id)
	}

	if err := q.ReleaseEvents(ctx, failed); err != nil {
		zap.L().Error("failed to release events", zap.Error(err), zap.Int("count", len(failed)))
	}

	if len(published) == 0 {
		return
	}

	if err := q.MarkEventsPublished(ctx, published); err != nil {
		zap.L().Error("failed to mark events published", zap.Error(err), zap.Int("count", len(published)))
		return
	}

	zap.L().Info("events published", zap.Int("count", len(published)))
}

// GetUnpublishedEvents claims up to limit unpublished events for claimLease. Rows
// claimed by another processor are skipped, so concurrent callers get disjoint batches.
func (q *OutboxQueue) GetUnpublishedEvents(ctx context.Context, limit int) ([]*event.EventDTO, error) {
	var span trace.Span
	ctx, span = q.tracer.Start(ctx, "GetUnpublishedEvents", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "limit",
			Value: attribute.IntValue(limit),
		},
	))
	defer span.End()

	connection, err := q.connectionPool.Acquire(ctx)
	if err != nil {
		return nil, ErrFailedAcquireConnection
	}
	defer connection.Release()

	tx, err := connection.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to begin transaction"))
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	sql := `WITH claimed AS (
				UPDATE events
				SET claimed_until = NOW() + make_interval(secs => @LeaseSeconds)
				WHERE id IN (
					SELECT id FROM events
					WHERE published_at IS NULL AND (claimed_until IS NULL OR claimed_until < NOW())
					ORDER BY created_at ASC
					LIMIT @Limit
					FOR UPDATE SKIP LOCKED
				)
				RETURNING id, type, organization_id, organization_user_id, acting_user_id, system_user, created_at, published_at
			)
			SELECT * FROM claimed ORDER BY created_at ASC`
	sqlArgs := pgx.NamedArgs{
		"LeaseSeconds": claimLease.Seconds(),
		"Limit":        limit,
	}

	rows, err := tx.Query(ctx, sql, sqlArgs)
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to claim unpublished events"))
	}
	defer rows.Close()

	events, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[event.EventDTO])
	if err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to collect event rows"))
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to commit transaction"))
	}
	committed = true

	return events, nil
}

// ReleaseEvents drops the claim on events that could not be published so the next
// poll picks them up again.
func (q *OutboxQueue) ReleaseEvents(ctx context.Context, eventIds []string) error {
	var span trace.Span
	ctx, span = q.tracer.Start(ctx, "ReleaseEvents", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "count",
			Value: attribute.IntValue(len(eventIds)),
		},
	))
	defer span.End()

	if len(eventIds) == 0 {
		return nil
	}

	connection, err := q.connectionPool.Acquire(ctx)
	if err != nil {
		return ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := `UPDATE events SET claimed_until = NULL WHERE id = ANY($1) AND published_at IS NULL`
	if _, err := connection.Exec(ctx, sql, eventIds); err != nil {
		span.RecordError(err)
		return connect.NewError(connect.CodeInternal, errors.New("failed to release events"))
	}

	return nil
}

func (q *OutboxQueue) MarkEventsPublished(ctx context.Context, eventIds []string) error {
	var span trace.Span
	ctx, span = q.tracer.Start(ctx, "MarkEventsPublished", trace.WithAttributes(
		attribute.KeyValue{
			Key:   "count",
			Value: attribute.IntValue(len(eventIds)),
		},
	))
	defer span.End()

	if len(eventIds) == 0 {
		return nil
	}

	connection, err := q.connectionPool.Acquire(ctx)
	if err != nil {
		return ErrFailedAcquireConnection
	}
	defer connection.Release()

	sql := `UPDATE events SET published_at = @PublishedAt WHERE id = ANY(@Ids) AND published_at IS NULL`
	sqlArgs := pgx.NamedArgs{
		"Ids":         eventIds,
		"PublishedAt": time.Now().UTC(),
	}

	if _, err := connection.Exec(ctx, sql, sqlArgs); err != nil {
		span.RecordError(err)
		return connect.NewError(connect.CodeInternal, errors.New("failed to mark events published"))
	}

	return nil
}
