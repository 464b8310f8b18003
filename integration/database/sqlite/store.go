package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
)

// Store provides table-oriented convenience operations on top of a SQLite
// connection. Column values are bound as parameters; table and column names
// are interpolated and must come from trusted code.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateTable creates a table when it does not exist yet. Each entry of
// columns is a full column definition, e.g. "id INTEGER PRIMARY KEY".
func (s *Store) CreateTable(ctx context.Context, table string, columns []string) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(table), strings.Join(columns, ", "))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// Insert adds one row per map, with keys naming columns. All rows must share
// the column set of the first row; missing keys insert NULL.
func (s *Store) Insert(ctx context.Context, table string, rows []map[string]any) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	columns := sortedKeys(rows[0])
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}
	rowTemplate := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", quoteIdent(table), strings.Join(quoted, ", "))

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(rowTemplate)
		for _, col := range columns {
			args = append(args, row[col])
		}
	}

	if _, err := s.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// Update sets the given column values on every row matching the filter.
// An empty filter updates all rows. It returns the number of affected rows.
func (s *Store) Update(ctx context.Context, table string, set, filter map[string]any) (int64, error) {
	if len(set) == 0 {
		return 0, ErrNoColumns
	}

	assignments := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+len(filter))
	for _, col := range sortedKeys(set) {
		assignments = append(assignments, quoteIdent(col)+" = ?")
		args = append(args, set[col])
	}

	query := fmt.Sprintf("UPDATE %s SET %s", quoteIdent(table), strings.Join(assignments, ", "))
	if clause, filterArgs := whereClause(filter); clause != "" {
		query += clause
		args = append(args, filterArgs...)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", table, err)
	}
	return res.RowsAffected()
}

// Select returns the rows matching the filter as column-keyed maps, one per
// row. An empty filter returns the whole table.
func (s *Store) Select(ctx context.Context, table string, filter map[string]any) ([]map[string]any, error) {
	query := fmt.Sprintf("SELECT * FROM %s", quoteIdent(table))
	clause, args := whereClause(filter)
	query += clause

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Delete removes the rows matching the filter and returns the number of
// deleted rows. An empty filter clears the table.
func (s *Store) Delete(ctx context.Context, table string, filter map[string]any) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s", quoteIdent(table))
	clause, args := whereClause(filter)
	query += clause

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return res.RowsAffected()
}

func whereClause(filter map[string]any) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	conditions := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for _, col := range sortedKeys(filter) {
		conditions = append(conditions, quoteIdent(col)+" = ?")
		args = append(args, filter[col])
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
