package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fightcast/predictor-api/internal/models"
)

// PgPool is the subset of pgxpool.Pool used by PostgresStore.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore reads the fight_history table from PostgreSQL.
type PostgresStore struct {
	pool PgPool
	mode MatchMode
}

func NewPostgresStore(pool PgPool, mode MatchMode) *PostgresStore {
	return &PostgresStore{pool: pool, mode: mode}
}

func (s *PostgresStore) Latest(ctx context.Context, name string, corner models.Corner) (*models.Snapshot, error) {
	sql, args := latestQuery(postgresDialect, s.mode, name, corner)
	snap, err := scanSnapshot(s.pool.QueryRow(ctx, sql, args...), corner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest %s snapshot: %w", corner, err)
	}
	return snap, nil
}

func (s *PostgresStore) WeightClasses(ctx context.Context, name string) ([]string, error) {
	sql, args := fighterClassesQuery(postgresDialect, s.mode, name)
	classes, err := s.strings(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fighter weight classes: %w", err)
	}
	return cleanClasses(classes), nil
}

func (s *PostgresStore) Fighters(ctx context.Context, weightClass string) ([]string, error) {
	sql, args := fightersQuery(postgresDialect, weightClass)
	names, err := s.strings(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list fighters: %w", err)
	}
	return cleanNames(names), nil
}

func (s *PostgresStore) AllWeightClasses(ctx context.Context) ([]string, error) {
	classes, err := s.strings(ctx, allClassesQuery)
	if err != nil {
		return nil, fmt.Errorf("list weight classes: %w", err)
	}
	return cleanClasses(classes), nil
}

func (s *PostgresStore) Appearances(ctx context.Context, name string) (int, int, error) {
	sql, args := appearancesQuery(postgresDialect, s.mode, name)
	var red, blue int64
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&red, &blue); err != nil {
		return 0, 0, fmt.Errorf("count appearances: %w", err)
	}
	return int(red), int(blue), nil
}

func (s *PostgresStore) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	var total int64
	if err := s.pool.QueryRow(ctx, totalFightsQuery).Scan(&total); err != nil {
		return nil, fmt.Errorf("count fights: %w", err)
	}
	fighters, err := s.Fighters(ctx, "")
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, distributionQuery)
	if err != nil {
		return nil, fmt.Errorf("weight class distribution: %w", err)
	}
	defer rows.Close()
	dist := make(map[string]int)
	for rows.Next() {
		var wc *string
		var n int64
		if err := rows.Scan(&wc, &n); err != nil {
			return nil, err
		}
		if wc != nil {
			dist[*wc] += int(n)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summarize(int(total), fighters, dist), nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// strings collects a single nullable text column.
func (s *PostgresStore) strings(ctx context.Context, sql string, args ...any) ([]string, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v *string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, *v)
		}
	}
	return out, rows.Err()
}
