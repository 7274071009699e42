package history

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fightcast/predictor-api/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PgLoader is the subset of pgxpool.Pool used to install and load the history table.
type PgLoader interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// tableColumns lists fight_history columns in insert order.
func tableColumns() []string {
	return append([]string{"row_id"}, requiredColumns()...)
}

// rowValues flattens a bout into tableColumns order. rowID is 1-based file order.
func rowValues(rowID int, b *models.Bout) []any {
	vals := []any{uint64(rowID), b.RedFighter, b.BlueFighter, b.WeightClass}
	for _, s := range []models.CornerStats{b.Red, b.Blue} {
		vals = append(vals,
			s.Strikes, s.Takedowns, s.Knockdowns,
			s.CareerFights, s.CareerWins, s.CareerLosses, s.CareerWinRate,
			s.CareerStrikes, s.CareerTakedowns, s.CareerKnockdowns)
	}
	return vals
}

// InstallPostgres creates the history table and its lookup indexes.
func InstallPostgres(ctx context.Context, db PgLoader) error {
	ddl, err := migrations.ReadFile("migrations/postgres.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, string(ddl)); err != nil {
		return fmt.Errorf("install postgres schema: %w", err)
	}
	return nil
}

// ImportPostgres replaces the table contents with bouts in one transaction, so a failed
// copy leaves the previous rows in place.
func ImportPostgres(ctx context.Context, db PgLoader, bouts []models.Bout) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE "+historyTable); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", historyTable, err)
	}
	rows := make([][]any, len(bouts))
	for i := range bouts {
		vals := rowValues(i+1, &bouts[i])
		vals[0] = int64(i + 1)
		rows[i] = vals
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{historyTable}, tableColumns(), pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", historyTable, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

// InstallClickHouse creates the history table, one statement at a time.
func InstallClickHouse(ctx context.Context, conn driver.Conn) error {
	ddl, err := migrations.ReadFile("migrations/clickhouse.sql")
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(ddl), ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("install clickhouse schema: %w", err)
		}
	}
	return nil
}

// ImportClickHouse replaces the table contents with bouts in a single batch.
func ImportClickHouse(ctx context.Context, conn driver.Conn, bouts []models.Bout) (int, error) {
	if err := conn.Exec(ctx, "TRUNCATE TABLE "+historyTable); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", historyTable, err)
	}
	batch, err := conn.PrepareBatch(ctx, "INSERT INTO "+historyTable+" ("+strings.Join(tableColumns(), ", ")+")")
	if err != nil {
		return 0, fmt.Errorf("prepare batch: %w", err)
	}
	for i := range bouts {
		if err := batch.Append(rowValues(i+1, &bouts[i])...); err != nil {
			batch.Abort()
			return 0, fmt.Errorf("append row %d: %w", i+1, err)
		}
	}
	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("send batch: %w", err)
	}
	return len(bouts), nil
}
