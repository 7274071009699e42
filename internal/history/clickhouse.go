package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/fightcast/predictor-api/internal/models"
)

// ClickHouseStore reads the fight_history table from ClickHouse. Text columns are
// non-nullable String; missing values are stored as ''.
type ClickHouseStore struct {
	conn driver.Conn
	mode MatchMode
}

func NewClickHouseStore(conn driver.Conn, mode MatchMode) *ClickHouseStore {
	return &ClickHouseStore{conn: conn, mode: mode}
}

func (s *ClickHouseStore) Latest(ctx context.Context, name string, corner models.Corner) (*models.Snapshot, error) {
	query, args := latestQuery(clickhouseDialect, s.mode, name, corner)
	snap, err := scanSnapshot(s.conn.QueryRow(ctx, query, args...), corner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest %s snapshot: %w", corner, err)
	}
	return snap, nil
}

func (s *ClickHouseStore) WeightClasses(ctx context.Context, name string) ([]string, error) {
	query, args := fighterClassesQuery(clickhouseDialect, s.mode, name)
	classes, err := s.strings(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fighter weight classes: %w", err)
	}
	return cleanClasses(classes), nil
}

func (s *ClickHouseStore) Fighters(ctx context.Context, weightClass string) ([]string, error) {
	query, args := fightersQuery(clickhouseDialect, weightClass)
	names, err := s.strings(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fighters: %w", err)
	}
	return cleanNames(names), nil
}

func (s *ClickHouseStore) AllWeightClasses(ctx context.Context) ([]string, error) {
	classes, err := s.strings(ctx, allClassesQuery)
	if err != nil {
		return nil, fmt.Errorf("list weight classes: %w", err)
	}
	return cleanClasses(classes), nil
}

func (s *ClickHouseStore) Appearances(ctx context.Context, name string) (int, int, error) {
	query, args := appearancesQuery(clickhouseDialect, s.mode, name)
	var red, blue uint64
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&red, &blue); err != nil {
		return 0, 0, fmt.Errorf("count appearances: %w", err)
	}
	return int(red), int(blue), nil
}

func (s *ClickHouseStore) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	var total uint64
	if err := s.conn.QueryRow(ctx, totalFightsQuery).Scan(&total); err != nil {
		return nil, fmt.Errorf("count fights: %w", err)
	}
	fighters, err := s.Fighters(ctx, "")
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(ctx, distributionQuery)
	if err != nil {
		return nil, fmt.Errorf("weight class distribution: %w", err)
	}
	defer rows.Close()
	dist := make(map[string]int)
	for rows.Next() {
		var wc string
		var n uint64
		if err := rows.Scan(&wc, &n); err != nil {
			return nil, err
		}
		dist[wc] += int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summarize(int(total), fighters, dist), nil
}

func (s *ClickHouseStore) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *ClickHouseStore) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
