// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVHeader is the single column name of keyword exports.
const CSVHeader = "Keywords"

// CSVFilename returns "<seed>-<service>-keywords.csv" with path separators
// in seed replaced so the name stays inside the output directory.
func CSVFilename(seed, service string) string {
	r := strings.NewReplacer("/", "_", `\`, "_", string(os.PathSeparator), "_")
	return r.Replace(strings.TrimSpace(seed)) + "-" + service + "-keywords.csv"
}

// WriteCSV writes a header row and one row per keyword.
func WriteCSV(w io.Writer, keywords []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{CSVHeader}); err != nil {
		return err
	}
	for _, kw := range keywords {
		if err := cw.Write([]string{kw}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes keywords to dir/CSVFilename(seed, service) and returns
// the path.
func ExportCSV(dir, seed, service string, keywords []string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, CSVFilename(seed, service))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating CSV: %w", err)
	}
	if err := WriteCSV(f, keywords); err != nil {
		f.Close()
		return "", fmt.Errorf("writing CSV: %w", err)
	}
	return path, f.Close()
}

// ReadKeywords reads keywords from a CSV export. When the first row has a
// "Keywords" column (any case) that column is used; otherwise the first
// field of every row is a keyword, which also covers plain one-per-line
// lists. Blank entries are skipped.
func ReadKeywords(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing keywords: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("no keywords found")
	}

	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), CSVHeader) {
			col = i
			break
		}
	}
	if col >= 0 {
		rows = rows[1:]
	} else {
		col = 0
	}

	var out []string
	for _, row := range rows {
		if col < len(row) {
			if kw := strings.TrimSpace(row[col]); kw != "" {
				out = append(out, kw)
			}
		}
	}
	return out, nil
}
