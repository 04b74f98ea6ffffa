package core

import (
	"strings"
	"testing"
	"time"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1234, "$12.34"},
		{-1234, "-$12.34"},
		{100000, "$1000.00"},
	}
	for _, c := range cases {
		if got := FormatCents(c.cents); got != c.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestMainViewEmptyStatePromptsForF2(t *testing.T) {
	v := NewMainView()
	out := v.View(80, 24)
	if !strings.Contains(out, "F2") {
		t.Fatalf("empty main view should point at the statements menu")
	}
}

func TestMainViewListsStatements(t *testing.T) {
	v := NewMainView()
	v.SetData([]StatementRow{
		{Name: "anz-jan.csv", ImportedOn: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), TxCount: 12, NetCents: -45210},
	}, nil)
	out := v.View(100, 30)
	if !strings.Contains(out, "anz-jan.csv") {
		t.Fatalf("statement name missing from view")
	}
	if !strings.Contains(out, "-$452.10") {
		t.Fatalf("net amount missing from view")
	}
}
