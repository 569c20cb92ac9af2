package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"CustomerOutputs/internal/domain"
	"CustomerOutputs/internal/ports"
)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// PostgresRepository persists rendered customer outputs into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.OutputRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOutputs upserts every output of the batch, keyed by request id.
func (r *PostgresRepository) SaveOutputs(ctx context.Context, outputs []domain.CustomerOutput) error {
	if r.db == nil || len(outputs) == 0 {
		return nil
	}

	for _, output := range outputs {
		query := r.builder.
			Insert("customer_outputs").
			Columns("request_id", "request_date", "customer_response", "internal_status").
			Values(output.RequestID, output.RequestDate, output.CustomerResponse, output.InternalStatus).
			Suffix(`ON CONFLICT (request_id) DO UPDATE
                    SET request_date = EXCLUDED.request_date,
                        customer_response = EXCLUDED.customer_response,
                        internal_status = EXCLUDED.internal_status,
                        updated_at = NOW()`)

		if _, err := query.RunWith(r.db).ExecContext(ctx); err != nil {
			return fmt.Errorf("upsert request %s: %w", output.RequestID, err)
		}
	}

	return nil
}
