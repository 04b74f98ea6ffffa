package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bswizard/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return db
}

func insertStatement(t *testing.T, db *sql.DB, repo *StatementRepo, s Statement) Statement {
	t.Helper()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	require.NoError(t, database.WithTx(db, func(tx *sql.Tx) error {
		return repo.Insert(context.Background(), tx, s)
	}))
	return s
}

func TestStatementRepoDedupeByHash(t *testing.T) {
	db := newTestDB(t)
	repo := NewStatementRepo(db)
	insertStatement(t, db, repo, Statement{Name: "a.csv", Path: "/x/a.csv", Format: "generic", SourceHash: "h1"})

	exists, err := repo.ExistsByHash(context.Background(), "h1")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByHash(context.Background(), "h2")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestStatementDeleteCascadesToTransactions(t *testing.T) {
	db := newTestDB(t)
	stmts := NewStatementRepo(db)
	txs := NewTransactionRepo(db)
	ctx := context.Background()

	s := insertStatement(t, db, stmts, Statement{Name: "a.csv", Path: "/x/a.csv", Format: "generic", SourceHash: "h1"})
	require.NoError(t, database.WithTx(db, func(tx *sql.Tx) error {
		return txs.Insert(ctx, tx, Transaction{
			ID:          uuid.NewString(),
			StatementID: s.ID,
			Date:        time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "COFFEE",
			AmountCents: -450,
		})
	}))

	require.NoError(t, stmts.Delete(ctx, s.ID))
	rows, err := txs.ListByStatement(ctx, s.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestMonthlyNetAggregatesAcrossStatements(t *testing.T) {
	db := newTestDB(t)
	stmts := NewStatementRepo(db)
	txs := NewTransactionRepo(db)
	ctx := context.Background()

	a := insertStatement(t, db, stmts, Statement{Name: "a.csv", Path: "/x/a.csv", Format: "generic", SourceHash: "h1"})
	b := insertStatement(t, db, stmts, Statement{Name: "b.csv", Path: "/x/b.csv", Format: "generic", SourceHash: "h2"})

	add := func(stmtID string, day time.Time, cents int64) {
		require.NoError(t, database.WithTx(db, func(tx *sql.Tx) error {
			return txs.Insert(ctx, tx, Transaction{
				ID:          uuid.NewString(),
				StatementID: stmtID,
				Date:        day,
				Description: "X",
				AmountCents: cents,
			})
		}))
	}
	add(a.ID, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), -1000)
	add(b.ID, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), 400)
	add(b.ID, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 250)

	months, err := txs.MonthlyNet(ctx)
	require.NoError(t, err)
	require.Len(t, months, 2)
	require.Equal(t, int64(-600), months[0].NetCents)
	require.Equal(t, time.January, months[0].Month.Month())
	require.Equal(t, int64(250), months[1].NetCents)
}

func TestListSummariesRollsUpCounts(t *testing.T) {
	db := newTestDB(t)
	stmts := NewStatementRepo(db)
	txs := NewTransactionRepo(db)
	ctx := context.Background()

	s := insertStatement(t, db, stmts, Statement{Name: "a.csv", Path: "/x/a.csv", Format: "generic", SourceHash: "h1"})
	insertStatement(t, db, stmts, Statement{Name: "empty.csv", Path: "/x/e.csv", Format: "generic", SourceHash: "h2"})

	require.NoError(t, database.WithTx(db, func(tx *sql.Tx) error {
		for _, cents := range []int64{-100, -250} {
			if err := txs.Insert(ctx, tx, Transaction{
				ID:          uuid.NewString(),
				StatementID: s.ID,
				Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Description: "X",
				AmountCents: cents,
			}); err != nil {
				return err
			}
		}
		return nil
	}))

	out, err := stmts.ListSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	byName := map[string]StatementSummary{}
	for _, s := range out {
		byName[s.Name] = s
	}
	require.Equal(t, 2, byName["a.csv"].TxCount)
	require.Equal(t, int64(-350), byName["a.csv"].NetCents)
	require.Equal(t, 0, byName["empty.csv"].TxCount)
}

func TestDistinctMerchants(t *testing.T) {
	db := newTestDB(t)
	stmts := NewStatementRepo(db)
	txs := NewTransactionRepo(db)
	ctx := context.Background()

	s := insertStatement(t, db, stmts, Statement{Name: "a.csv", Path: "/x/a.csv", Format: "generic", SourceHash: "h1"})
	coffee := "COFFEE SHOP"
	require.NoError(t, database.WithTx(db, func(tx *sql.Tx) error {
		if err := txs.Insert(ctx, tx, Transaction{
			ID: uuid.NewString(), StatementID: s.ID,
			Date: time.Now().UTC(), Description: "COFFEE SHOP 123", Merchant: &coffee, AmountCents: -1,
		}); err != nil {
			return err
		}
		return txs.Insert(ctx, tx, Transaction{
			ID: uuid.NewString(), StatementID: s.ID,
			Date: time.Now().UTC(), Description: "no merchant", AmountCents: -1,
		})
	}))

	merchants, err := txs.DistinctMerchants(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"COFFEE SHOP"}, merchants)
}
