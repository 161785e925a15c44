// Package transform turns parsed string rows into typed pitch records.
//
// Coercion is deliberately forgiving: a value that does not parse under
// its declared type becomes a null, never an error. Vendor exports mix
// "", "Undefined" and malformed numerics freely, and a single bad cell
// must not sink an otherwise good file.
package transform

import (
	"strconv"
	"strings"
	"time"

	"pitchstats/internal/parser/csv"
	"pitchstats/internal/schema"
)

// Coerce converts a canonical row into a typed Pitch. Missing cells,
// empty strings and unparseable values all land as nil fields.
func Coerce(row csv.Row) *schema.Pitch {
	p := &schema.Pitch{}
	for col, raw := range row {
		setField(p, col, raw)
	}
	return p
}

func setField(p *schema.Pitch, col, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	switch dst := p.Field(col).(type) {
	case **int64:
		// Integer columns arrive as "3" or "3.7" depending on the
		// export; parse as float and truncate toward zero.
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return
		}
		v := int64(f)
		*dst = &v
	case **float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return
		}
		*dst = &f
	case **time.Time:
		t, err := time.Parse(schema.DateLayout, raw)
		if err != nil {
			return
		}
		*dst = &t
	case **string:
		s := raw
		*dst = &s
	}
}
