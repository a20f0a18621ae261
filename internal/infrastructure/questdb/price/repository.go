package price

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/interval"
	"github.com/muhammadchandra19/mock-market-data/pkg/questdb"
)

// partitionBy maps a collection granularity to a QuestDB partition unit.
var partitionBy = map[string]string{
	interval.Interval1s.Granularity: "HOUR",
	interval.Interval1m.Granularity: "DAY",
	interval.Interval1h.Granularity: "MONTH",
}

// Repository represents the QuestDB repository for price records.
type Repository struct {
	client questdb.QuestDBClient
}

// Ensure Repository implements v1.PriceRepository interface
var _ v1.PriceRepository = (*Repository)(nil)

// NewRepository creates a new price repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// EnsureCollection creates a designated-timestamp table partitioned by the spec granularity.
func (r *Repository) EnsureCollection(ctx context.Context, spec v1.CollectionSpec) error {
	err := r.client.Exec(ctx, createTableQuery(spec))
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return errors.ErrCollectionExists
	}
	if err != nil {
		return wrapError("failed to create table "+spec.Name, err)
	}
	return nil
}

// InsertBatch copies records into the table in one request.
func (r *Repository) InsertBatch(ctx context.Context, collection string, records []*v1.Record) error {
	if len(records) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{collection},
		v1.Columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			return records[i].Values(), nil
		}),
	)
	if err != nil {
		return wrapError("failed to copy price batch", err)
	}
	return nil
}

// GetCloseWindow returns {timestamp, close} for rows in the window, oldest first.
func (r *Repository) GetCloseWindow(ctx context.Context, filter v1.WindowFilter) ([]*v1.ClosePoint, error) {
	query := fmt.Sprintf("SELECT timestamp, close FROM %s WHERE 1=1", pgx.Identifier{filter.Collection}.Sanitize())
	args := []any{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, filter.From.UTC())
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", argIndex)
		args = append(args, filter.To.UTC())
	}

	query += " ORDER BY timestamp ASC"

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("failed to query close window", err)
	}
	defer rows.Close()

	points := []*v1.ClosePoint{}
	for rows.Next() {
		point := &v1.ClosePoint{}
		if err := rows.Scan(&point.Timestamp, &point.Close); err != nil {
			return nil, wrapError("failed to scan close point", err)
		}
		point.Timestamp = point.Timestamp.UTC()
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("failed to iterate close window", err)
	}
	return points, nil
}

// DropCollection drops the table if present.
func (r *Repository) DropCollection(ctx context.Context, collection string) error {
	if err := r.client.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{collection}.Sanitize()); err != nil {
		return wrapError("failed to drop table "+collection, err)
	}
	return nil
}

func createTableQuery(spec v1.CollectionSpec) string {
	partition, ok := partitionBy[spec.Granularity]
	if !ok {
		partition = "DAY"
	}

	return fmt.Sprintf(`CREATE TABLE %s (
	%s TIMESTAMP,
	%s SYMBOL,
	base_asset SYMBOL,
	quote_asset SYMBOL,
	open DOUBLE,
	high DOUBLE,
	low DOUBLE,
	close DOUBLE,
	volume_quote DOUBLE,
	volume_base DOUBLE,
	trade_count LONG
) TIMESTAMP(%s) PARTITION BY %s`,
		pgx.Identifier{spec.Name}.Sanitize(),
		spec.TimeField,
		spec.MetaField,
		spec.TimeField,
		partition,
	)
}

func wrapError(message string, err error) error {
	var netErr net.Error
	if pgconn.Timeout(err) || errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return errors.NewConnectivityFault(message, err)
	}
	return errors.NewUnclassifiedFault(message, err)
}
