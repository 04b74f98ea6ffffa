package repository

import (
	"context"
	"database/sql"
	"errors"
)

// StatementRepo handles statements.
type StatementRepo struct {
	db *sql.DB
}

func NewStatementRepo(db *sql.DB) *StatementRepo { return &StatementRepo{db: db} }

func (r *StatementRepo) Insert(ctx context.Context, tx *sql.Tx, s Statement) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO statements(id, name, path, format, source_hash, imported_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, s.ID, s.Name, s.Path, s.Format, s.SourceHash)
	return err
}

// ExistsByHash reports whether a statement with the given source hash was
// already imported.
func (r *StatementRepo) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM statements WHERE source_hash = ?`, hash).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListSummaries returns all statements with transaction rollups, newest
// import first.
func (r *StatementRepo) ListSummaries(ctx context.Context) ([]StatementSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT s.id, s.name, s.path, s.format, s.source_hash, s.imported_at,
	       COUNT(t.id), COALESCE(SUM(t.amount), 0)
	FROM statements s
	LEFT JOIN transactions t ON t.statement_id = s.id
	GROUP BY s.id
	ORDER BY s.imported_at DESC, s.name;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StatementSummary
	for rows.Next() {
		var s StatementSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Path, &s.Format, &s.SourceHash,
			&s.ImportedAt, &s.TxCount, &s.NetCents); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StatementRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM statements WHERE id = ?`, id)
	return err
}
