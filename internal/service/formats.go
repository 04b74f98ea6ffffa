package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FormatProfile describes one bank's CSV layout. Profiles live in a
// formats.toml file; the profile for a browsed file is picked by filename
// prefix, falling back to the generic layout.
type FormatProfile struct {
	Name         string
	ImportPrefix string `toml:"import_prefix"`
	HasHeader    bool   `toml:"has_header"`
	Delimiter    string `toml:"delimiter"`
	DateFormat   string `toml:"date_format"`
	DateCol      int    `toml:"date_col"`
	AmountCol    int    `toml:"amount_col"`
	DescCol      int    `toml:"desc_col"`
}

type formatsFile struct {
	Version int                      `toml:"version"`
	Format  map[string]FormatProfile `toml:"format"`
}

// GenericProfile parses "date, amount, description" with an ISO date, the
// format the wizard's own exports use.
func GenericProfile() FormatProfile {
	return FormatProfile{
		Name:       "generic",
		Delimiter:  ",",
		DateFormat: "2006-01-02",
		DateCol:    0,
		AmountCol:  1,
		DescCol:    2,
	}
}

// LoadFormats reads profiles from path. A missing file is not an error: the
// generic profile alone applies.
func LoadFormats(path string) ([]FormatProfile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read formats: %w", err)
	}
	var f formatsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse formats: %w", err)
	}
	out := make([]FormatProfile, 0, len(f.Format))
	for name, p := range f.Format {
		p.Name = name
		if p.Delimiter == "" {
			p.Delimiter = ","
		}
		if p.DateFormat == "" {
			p.DateFormat = "2006-01-02"
		}
		out = append(out, p)
	}
	return out, nil
}

// DetectProfile picks the profile whose import prefix matches the file
// name, preferring the longest match; the generic profile when none does.
func DetectProfile(profiles []FormatProfile, path string) FormatProfile {
	base := strings.ToLower(filepath.Base(path))
	best := GenericProfile()
	bestLen := 0
	for _, p := range profiles {
		prefix := strings.ToLower(strings.TrimSpace(p.ImportPrefix))
		if prefix == "" || !strings.HasPrefix(base, prefix) {
			continue
		}
		if len(prefix) > bestLen {
			best = p
			bestLen = len(prefix)
		}
	}
	return best
}
