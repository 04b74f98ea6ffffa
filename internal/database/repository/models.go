package repository

import "time"

// Statement is one imported statement file.
type Statement struct {
	ID         string
	Name       string
	Path       string
	Format     string
	SourceHash string
	ImportedAt time.Time
}

// StatementSummary is a Statement with its transaction rollup, for listing.
type StatementSummary struct {
	Statement
	TxCount  int
	NetCents int64
}

// Transaction is one statement line.
type Transaction struct {
	ID          string
	StatementID string
	Date        time.Time
	Description string
	Merchant    *string
	AmountCents int64
}

// MonthlyNet is the net movement for one calendar month.
type MonthlyNet struct {
	Month    time.Time
	NetCents int64
}
