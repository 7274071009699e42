package history

import (
	"fmt"
	"strings"

	"github.com/fightcast/predictor-api/internal/models"
)

// historyTable is the table both SQL backends read. Expected columns match the CSV header
// plus a monotonically increasing row_id giving chronological order.
const historyTable = "fight_history"

// dialect holds the syntax differences between the SQL backends.
type dialect struct {
	placeholder func(n int) string
	countIf     func(cond string) string
}

var postgresDialect = dialect{
	placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	countIf:     func(cond string) string { return "count(*) FILTER (WHERE " + cond + ")" },
}

var clickhouseDialect = dialect{
	placeholder: func(int) string { return "?" },
	countIf:     func(cond string) string { return "countIf(" + cond + ")" },
}

// queryBuilder accumulates positional args alongside their placeholders.
type queryBuilder struct {
	d    dialect
	mode MatchMode
	args []any
}

func (q *queryBuilder) arg(v any) string {
	q.args = append(q.args, v)
	return q.d.placeholder(len(q.args))
}

func (q *queryBuilder) nameMatch(col, name string) string {
	if q.mode == MatchExact {
		return col + " = " + q.arg(name)
	}
	return "lower(" + col + ") = " + q.arg(strings.ToLower(name))
}

func fighterColumn(c models.Corner) string { return string(c) + "_fighter" }

// snapshotColumns selects a corner's snapshot. weight_class may be NULL in Postgres.
func snapshotColumns(c models.Corner) string {
	cols := []string{fighterColumn(c), "coalesce(weight_class, '')"}
	for _, s := range statColumns {
		cols = append(cols, string(c)+"_"+s)
	}
	return strings.Join(cols, ", ")
}

func latestQuery(d dialect, mode MatchMode, name string, c models.Corner) (string, []any) {
	q := &queryBuilder{d: d, mode: mode}
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY row_id DESC LIMIT 1",
		snapshotColumns(c), historyTable, q.nameMatch(fighterColumn(c), name))
	return sql, q.args
}

func fighterClassesQuery(d dialect, mode MatchMode, name string) (string, []any) {
	q := &queryBuilder{d: d, mode: mode}
	sql := fmt.Sprintf("SELECT DISTINCT weight_class FROM %s WHERE %s OR %s", historyTable,
		q.nameMatch(fighterColumn(models.CornerRed), name),
		q.nameMatch(fighterColumn(models.CornerBlue), name))
	return sql, q.args
}

func fightersQuery(d dialect, weightClass string) (string, []any) {
	q := &queryBuilder{d: d}
	if !filterClass(weightClass) {
		return fmt.Sprintf("SELECT r_fighter FROM %[1]s UNION DISTINCT SELECT b_fighter FROM %[1]s", historyTable), nil
	}
	sql := fmt.Sprintf("SELECT r_fighter FROM %[1]s WHERE weight_class = %[2]s UNION DISTINCT SELECT b_fighter FROM %[1]s WHERE weight_class = %[3]s",
		historyTable, q.arg(weightClass), q.arg(weightClass))
	return sql, q.args
}

func appearancesQuery(d dialect, mode MatchMode, name string) (string, []any) {
	q := &queryBuilder{d: d, mode: mode}
	sql := fmt.Sprintf("SELECT %s, %s FROM %s",
		d.countIf(q.nameMatch(fighterColumn(models.CornerRed), name)),
		d.countIf(q.nameMatch(fighterColumn(models.CornerBlue), name)),
		historyTable)
	return sql, q.args
}

const (
	allClassesQuery   = "SELECT DISTINCT weight_class FROM " + historyTable
	distributionQuery = "SELECT weight_class, count(*) FROM " + historyTable + " GROUP BY weight_class"
	totalFightsQuery  = "SELECT count(*) FROM " + historyTable
)

// rowScanner is satisfied by both pgx.Row and clickhouse driver.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner, c models.Corner) (*models.Snapshot, error) {
	s := &models.Snapshot{Corner: c}
	st := &s.CornerStats
	err := row.Scan(&s.Name, &s.WeightClass,
		&st.Strikes, &st.Takedowns, &st.Knockdowns,
		&st.CareerFights, &st.CareerWins, &st.CareerLosses, &st.CareerWinRate,
		&st.CareerStrikes, &st.CareerTakedowns, &st.CareerKnockdowns)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func summarize(total int, fighters []string, dist map[string]int) *models.DatasetSummary {
	for wc := range dist {
		if IsSentinel(wc) {
			delete(dist, wc)
		}
	}
	return &models.DatasetSummary{
		TotalFights:             total,
		TotalFighters:           len(fighters),
		WeightClasses:           len(dist),
		WeightClassDistribution: dist,
	}
}
