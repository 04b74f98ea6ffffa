package repository

import (
	"context"
	"database/sql"
	"time"
)

// TransactionRepo handles statement lines.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

func (r *TransactionRepo) Insert(ctx context.Context, tx *sql.Tx, t Transaction) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO transactions(id, statement_id, date, description, merchant, amount, created_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, t.ID, t.StatementID, t.Date, t.Description, t.Merchant, t.AmountCents)
	return err
}

func (r *TransactionRepo) ListByStatement(ctx context.Context, statementID string) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, statement_id, date, description, merchant, amount
	FROM transactions WHERE statement_id = ? ORDER BY date, id;
	`, statementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.StatementID, &t.Date, &t.Description, &t.Merchant, &t.AmountCents); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DistinctMerchants returns the known merchant names for normalisation.
func (r *TransactionRepo) DistinctMerchants(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT DISTINCT merchant FROM transactions WHERE merchant IS NOT NULL ORDER BY merchant;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MonthlyNet aggregates net movement per calendar month across all
// statements, oldest first, for the dashboard chart.
func (r *TransactionRepo) MonthlyNet(ctx context.Context) ([]MonthlyNet, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT strftime('%Y-%m', date) AS month, SUM(amount)
	FROM transactions GROUP BY month ORDER BY month;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlyNet
	for rows.Next() {
		var month string
		var net int64
		if err := rows.Scan(&month, &net); err != nil {
			return nil, err
		}
		t, err := time.Parse("2006-01", month)
		if err != nil {
			continue
		}
		out = append(out, MonthlyNet{Month: t, NetCents: net})
	}
	return out, rows.Err()
}
