// Package csv implements the column-mapping CSV reader for Trackman files.
// It streams rows through encoding/csv, validates that the mandatory
// external headers are present, renames recognized headers to canonical
// column names, and drops unknown columns. All cell values stay untyped
// strings; coercion happens in a later stage.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"pitchstats/internal/schema"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Row is one data row keyed by canonical column name. Only columns present
// in the mapping table appear; values may be empty strings.
type Row map[string]string

// MissingColumnsError reports mandatory external headers absent from the
// file. The whole batch fails before any row is read.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// DuplicateColumnError reports an external header appearing more than once.
// Silently overwriting one of the duplicates would corrupt the mapping, so
// the file is rejected.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column header %q", e.Column)
}

// Options configures the parser. All fields are optional.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune
}

// Parser reads and canonicalizes Trackman CSV input. Safe to reuse across
// inputs; not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse consumes the whole input and returns canonicalized rows. It fails
// with MissingColumnsError or DuplicateColumnError on header problems, and
// with the underlying csv error on malformed row structure. Unknown columns
// are discarded; row order is preserved.
func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// index of each canonical column in the raw row
	idx := make(map[string]int, len(header))
	present := make(map[string]bool, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if present[name] {
			return nil, &DuplicateColumnError{Column: name}
		}
		present[name] = true
		if canon, ok := schema.ColumnMap[name]; ok {
			idx[canon] = i
		}
	}

	var missing []string
	for _, req := range schema.Required {
		if !present[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		row := make(Row, len(idx))
		for canon, i := range idx {
			if i < len(rec) {
				row[canon] = rec[i]
			}
		}
		rows = append(rows, row)
	}
}
