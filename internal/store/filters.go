package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/query"
)

// Filter is a stored, named filter expression.
type Filter struct {
	ID          string
	Name        string
	Expression  string // canonical text
	Fingerprint string
	CreatedAt   time.Time
}

// ErrFilterNotFound is returned when no filter exists under the given name.
var ErrFilterNotFound = errors.New("filter not found")

// SaveFilter stores expr under a unique name.
//
// The expression is canonicalized and fingerprinted before writing; what the
// caller originally typed is not retained. Saving a second filter with the
// same name fails with the underlying UNIQUE constraint error.
func (s *Store) SaveFilter(ctx context.Context, name string, expr *ast.Expression) (Filter, error) {
	if name == "" {
		return Filter{}, fmt.Errorf("save filter: name is required")
	}

	f := Filter{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        name,
		Expression:  query.Compose(expr),
		Fingerprint: query.Fingerprint(expr),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filters (id, name, expression, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		f.ID,
		f.Name,
		f.Expression,
		f.Fingerprint,
		f.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Filter{}, fmt.Errorf("save filter %q: %w", name, err)
	}

	return f, nil
}

// GetFilter loads a filter by name and re-parses its canonical text.
func (s *Store) GetFilter(ctx context.Context, name string) (Filter, *ast.Expression, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, expression, fingerprint, created_at
		FROM filters WHERE name = ?
	`, name)

	f, err := scanFilter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Filter{}, nil, fmt.Errorf("get filter %q: %w", name, ErrFilterNotFound)
		}
		return Filter{}, nil, fmt.Errorf("get filter %q: %w", name, err)
	}

	// Stored text is canonical output of a prior parse; a failure here means
	// the database was edited by hand.
	expr, err := query.Parse(f.Expression)
	if err != nil {
		return Filter{}, nil, fmt.Errorf("get filter %q: stored expression is invalid: %w", name, err)
	}

	return f, expr, nil
}

// ListFilters returns all stored filters ordered by name.
func (s *Store) ListFilters(ctx context.Context) ([]Filter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, expression, fingerprint, created_at
		FROM filters ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	defer rows.Close()

	var filters []Filter
	for rows.Next() {
		f, err := scanFilter(rows)
		if err != nil {
			return nil, fmt.Errorf("list filters: %w", err)
		}
		filters = append(filters, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	return filters, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFilter(row scanner) (Filter, error) {
	var f Filter
	var createdAt string
	if err := row.Scan(&f.ID, &f.Name, &f.Expression, &f.Fingerprint, &createdAt); err != nil {
		return Filter{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Filter{}, fmt.Errorf("parse created_at: %w", err)
	}
	f.CreatedAt = t
	return f, nil
}
