package store

import (
	"context"
	"fmt"

	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/querysql"
)

// Sample is one row of the samples table.
type Sample struct {
	ID       int64
	SampleID string
	GroupID  string
}

// InsertSample adds a sample record and returns its row id.
func (s *Store) InsertSample(ctx context.Context, sampleID, groupID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO samples (sample_id, group_id) VALUES (?, ?)
	`, sampleID, groupID)
	if err != nil {
		return 0, fmt.Errorf("insert sample: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert sample: %w", err)
	}
	return id, nil
}

// SelectSamples returns the samples matching a filter expression.
//
// The expression is compiled through querysql into a parameterized WHERE
// criterion against the given field-to-column mapping. Results are always
// ordered by row id for deterministic output.
func (s *Store) SelectSamples(ctx context.Context, expr *ast.Expression, columns map[string]string) ([]Sample, error) {
	criterion, err := querysql.Compile(expr, columns)
	if err != nil {
		return nil, err
	}

	sqlText := fmt.Sprintf(
		"SELECT id, sample_id, group_id FROM samples WHERE %s ORDER BY id ASC",
		criterion.SQL,
	)

	rows, err := s.db.QueryContext(ctx, sqlText, criterion.Params...)
	if err != nil {
		return nil, fmt.Errorf("select samples: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var sm Sample
		if err := rows.Scan(&sm.ID, &sm.SampleID, &sm.GroupID); err != nil {
			return nil, fmt.Errorf("select samples: %w", err)
		}
		samples = append(samples, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select samples: %w", err)
	}
	return samples, nil
}
