package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/draftea/vehicle-sales-system/shared/events"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var _ events.EventLog = (*PostgresEventLog)(nil)

// PostgresEventLog implements events.EventLog using PostgreSQL. It is an
// append-only audit trail of the saga notifications emitted for each
// transaction.
type PostgresEventLog struct {
	db *sqlx.DB
}

// NewPostgresEventLog creates a new PostgresEventLog
func NewPostgresEventLog(db *sqlx.DB) *PostgresEventLog {
	return &PostgresEventLog{db: db}
}

// postgresEvent represents an event in the database
type postgresEvent struct {
	ID            string    `db:"id"`
	AggregateID   string    `db:"aggregate_id"`
	Topic         string    `db:"topic"`
	Version       string    `db:"version"`
	Data          []byte    `db:"data"`
	Metadata      []byte    `db:"metadata"`
	Timestamp     time.Time `db:"timestamp"`
	CorrelationID string    `db:"correlation_id"`
}

// Append stores events in append order
func (l *PostgresEventLog) Append(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO saga_events (
			id, aggregate_id, topic, version, data, metadata, timestamp, correlation_id
		) VALUES (
			:id, :aggregate_id, :topic, :version, :data, :metadata, :timestamp, :correlation_id
		)`

	for _, event := range evts {
		pgEvent, err := l.toPostgres(event)
		if err != nil {
			return err
		}

		if _, err := tx.NamedExecContext(ctx, query, pgEvent); err != nil {
			return errors.Wrap(err, "failed to insert event")
		}
	}

	return tx.Commit()
}

// ListByAggregate returns all events recorded for an aggregate, oldest first
func (l *PostgresEventLog) ListByAggregate(ctx context.Context, aggregateID models.ID) ([]*events.Event, error) {
	query := `
		SELECT id, aggregate_id, topic, version, data, metadata, timestamp, correlation_id
		FROM saga_events
		WHERE aggregate_id = $1
		ORDER BY timestamp ASC`

	var pgEvents []postgresEvent
	if err := l.db.SelectContext(ctx, &pgEvents, query, aggregateID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to select events")
	}

	evts := make([]*events.Event, len(pgEvents))
	for i := range pgEvents {
		event, err := l.toDomain(&pgEvents[i])
		if err != nil {
			return nil, err
		}
		evts[i] = event
	}

	return evts, nil
}

func (l *PostgresEventLog) toPostgres(event *events.Event) (*postgresEvent, error) {
	data, err := event.MarshalPayload()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event data")
	}

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event metadata")
	}

	return &postgresEvent{
		ID:            event.ID.String(),
		AggregateID:   event.AggregateID.String(),
		Topic:         string(event.Topic),
		Version:       event.Version,
		Data:          data,
		Metadata:      metadata,
		Timestamp:     event.Timestamp,
		CorrelationID: event.CorrelationID.String(),
	}, nil
}

func (l *PostgresEventLog) toDomain(pgEvent *postgresEvent) (*events.Event, error) {
	var metadata events.Metadata
	if err := json.Unmarshal(pgEvent.Metadata, &metadata); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal event metadata")
	}

	return &events.Event{
		ID:            models.ID(pgEvent.ID),
		AggregateID:   models.ID(pgEvent.AggregateID),
		Topic:         events.Topic(pgEvent.Topic),
		Version:       pgEvent.Version,
		Data:          json.RawMessage(pgEvent.Data),
		Metadata:      metadata,
		Timestamp:     pgEvent.Timestamp,
		CorrelationID: models.ID(pgEvent.CorrelationID),
	}, nil
}
