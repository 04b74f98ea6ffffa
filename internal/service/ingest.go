package service

import (
	"bufio"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"bswizard/internal/database"
	"bswizard/internal/database/repository"
)

// InvalidStatementError reports a file the model refuses to import:
// unreadable, duplicate, wrong shape. Navigation surfaces it on the status
// bar and carries on.
type InvalidStatementError struct {
	Path   string
	Reason string
}

func (e *InvalidStatementError) Error() string {
	return fmt.Sprintf("invalid statement %s: %s", filepath.Base(e.Path), e.Reason)
}

func invalid(path, format string, args ...any) *InvalidStatementError {
	return &InvalidStatementError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Service is the statement model behind the wizard's AddStatement call.
type Service struct {
	DB           *sql.DB
	Statements   *repository.StatementRepo
	Transactions *repository.TransactionRepo
	Profiles     []FormatProfile
	Timezone     *time.Location
}

// AddStatement imports the statement file at path: dedupe by content hash,
// pick a format profile by filename prefix, parse every line, normalise
// merchant names against what the database already knows, and store the
// statement with its transactions in one database transaction.
func (s *Service) AddStatement(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return invalid(path, "open: %v", err)
	}
	defer f.Close()

	hash, err := hashFile(f)
	if err != nil {
		return invalid(path, "hash: %v", err)
	}
	exists, err := s.Statements.ExistsByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("dedupe lookup: %w", err)
	}
	if exists {
		return invalid(path, "already imported")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}

	profile := DetectProfile(s.Profiles, path)
	lines, err := s.parse(f, path, profile)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return invalid(path, "no transactions found")
	}

	known, err := s.Transactions.DistinctMerchants(ctx)
	if err != nil {
		return fmt.Errorf("merchants: %w", err)
	}

	stmt := repository.Statement{
		ID:         uuid.NewString(),
		Name:       filepath.Base(path),
		Path:       path,
		Format:     profile.Name,
		SourceHash: hash,
	}
	return database.WithTx(s.DB, func(tx *sql.Tx) error {
		if err := s.Statements.Insert(ctx, tx, stmt); err != nil {
			return fmt.Errorf("insert statement: %w", err)
		}
		for _, ln := range lines {
			merchant := NormalizeMerchant(ln.description, known)
			t := repository.Transaction{
				ID:          uuid.NewString(),
				StatementID: stmt.ID,
				Date:        ln.date,
				Description: ln.description,
				Merchant:    merchant,
				AmountCents: ln.amountCents,
			}
			if err := s.Transactions.Insert(ctx, tx, t); err != nil {
				return fmt.Errorf("insert transaction: %w", err)
			}
			if merchant != nil {
				known = appendUnique(known, *merchant)
			}
		}
		return nil
	})
}

type parsedLine struct {
	date        time.Time
	description string
	amountCents int64
}

func (s *Service) parse(r io.Reader, path string, p FormatProfile) ([]parsedLine, error) {
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	if d := []rune(p.Delimiter); len(d) == 1 {
		csvr.Comma = d[0]
	}

	need := max(p.DateCol, max(p.AmountCol, p.DescCol)) + 1
	tz := s.Timezone
	if tz == nil {
		tz = time.Local
	}

	var out []parsedLine
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, invalid(path, "line %d: %v", line, err)
		}
		if line == 1 && p.HasHeader {
			continue
		}
		if len(rec) < need {
			return nil, invalid(path, "line %d: expected %d columns, got %d", line, need, len(rec))
		}
		date, err := time.ParseInLocation(p.DateFormat, strings.TrimSpace(rec[p.DateCol]), tz)
		if err != nil {
			return nil, invalid(path, "line %d date: %v", line, err)
		}
		amountCents, err := dollarsToCents(rec[p.AmountCol])
		if err != nil {
			return nil, invalid(path, "line %d amount: %v", line, err)
		}
		out = append(out, parsedLine{
			date:        date.UTC(),
			description: strings.TrimSpace(rec[p.DescCol]),
			amountCents: amountCents,
		})
	}
	return out, nil
}

// NormalizeMerchant maps a raw description onto a known merchant name when
// the edit distance is small relative to the length, so "AMAZON MKTP" and
// "AMAZON MKTPL" land on one merchant. Returns nil when nothing is close.
func NormalizeMerchant(description string, known []string) *string {
	desc := strings.ToUpper(strings.TrimSpace(description))
	if desc == "" {
		return nil
	}
	for _, k := range known {
		ku := strings.ToUpper(k)
		if ku == desc {
			return &k
		}
		dist := levenshtein.ComputeDistance(desc, ku)
		longest := float64(len(desc))
		if len(ku) > len(desc) {
			longest = float64(len(ku))
		}
		if longest > 0 && float64(dist)/longest < 0.2 {
			return &k
		}
	}
	cleaned := strings.Join(strings.Fields(desc), " ")
	return &cleaned
}

func appendUnique(known []string, m string) []string {
	for _, k := range known {
		if strings.EqualFold(k, m) {
			return known
		}
	}
	return append(known, m)
}

func dollarsToCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f * 100)), nil
}

func hashFile(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
