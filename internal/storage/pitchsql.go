package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pitchstats/internal/schema"
)

// pitchColumns is the full insert/select column list: the batch
// reference followed by every canonical column in schema order.
func pitchColumns() []string {
	cols := make([]string, 0, len(schema.Columns)+1)
	cols = append(cols, "batch_id")
	return append(cols, schema.Columns...)
}

// PitchInsertSQL builds the single-row INSERT statement backends
// prepare once per chunk transaction.
func PitchInsertSQL(d Dialect) string {
	cols := pitchColumns()
	quoted := make([]string, len(cols))
	ph := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
		ph[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		"pitches", strings.Join(quoted, ", "), strings.Join(ph, ", "))
}

// PitchSelectSQL builds the SELECT list used by ListPitches, without a
// WHERE clause.
func PitchSelectSQL() string {
	cols := pitchColumns()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("SELECT %s FROM %q", strings.Join(quoted, ", "), "pitches")
}

// PitchArgs flattens a pitch into insert values aligned with
// pitchColumns. Nil fields become SQL NULLs. Dialects with TextDates
// get dates formatted as strings.
func PitchArgs(d Dialect, p *schema.Pitch) []any {
	args := make([]any, 0, len(schema.Columns)+1)
	args = append(args, p.BatchID)
	for _, col := range schema.Columns {
		switch v := p.Field(col).(type) {
		case **int64:
			if *v == nil {
				args = append(args, nil)
			} else {
				args = append(args, **v)
			}
		case **float64:
			if *v == nil {
				args = append(args, nil)
			} else {
				args = append(args, **v)
			}
		case **time.Time:
			switch {
			case *v == nil:
				args = append(args, nil)
			case d.TextDates:
				args = append(args, (*v).Format(schema.DateLayout))
			default:
				args = append(args, **v)
			}
		case **string:
			if *v == nil {
				args = append(args, nil)
			} else {
				args = append(args, **v)
			}
		}
	}
	return args
}

// PitchScanDests builds scan destinations for one row of PitchSelectSQL
// output. database/sql and pgx both turn a NULL into a nil pointer when
// the destination is a pointer to pointer, so most fields scan straight
// into the struct. Text-date dialects scan dates through string holders;
// the returned finish func parses them into the struct and must be
// called after Scan.
func PitchScanDests(d Dialect, p *schema.Pitch) (dests []any, finish func() error) {
	dests = make([]any, 0, len(schema.Columns)+1)
	dests = append(dests, &p.BatchID)

	type dateHold struct {
		raw sql.NullString
		dst **time.Time
		col string
	}
	var holds []*dateHold

	for _, col := range schema.Columns {
		f := p.Field(col)
		if dst, ok := f.(**time.Time); ok && d.TextDates {
			h := &dateHold{dst: dst, col: col}
			holds = append(holds, h)
			dests = append(dests, &h.raw)
			continue
		}
		dests = append(dests, f)
	}

	finish = func() error {
		for _, h := range holds {
			if !h.raw.Valid || h.raw.String == "" {
				continue
			}
			t, err := time.Parse(schema.DateLayout, h.raw.String)
			if err != nil {
				return fmt.Errorf("storage: column %s: %w", h.col, err)
			}
			*h.dst = &t
		}
		return nil
	}
	return dests, finish
}

// ListPitchesSQL appends filter conditions to the base select and
// returns the statement plus its ordered arguments.
func ListPitchesSQL(d Dialect, f Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(expr string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(expr, d.Placeholder(len(args))))
	}
	if f.GameID != nil {
		add(`"game_id" = %s`, *f.GameID)
	}
	if f.PitcherTeam != nil {
		add(`"pitcher_team" = %s`, *f.PitcherTeam)
	}
	if f.BatterTeam != nil {
		add(`"batter_team" = %s`, *f.BatterTeam)
	}
	if f.DateFrom != nil {
		add(`"date" >= %s`, dateArg(d, *f.DateFrom))
	}
	if f.DateTo != nil {
		add(`"date" <= %s`, dateArg(d, *f.DateTo))
	}
	q := PitchSelectSQL()
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	return q, args
}

func dateArg(d Dialect, t time.Time) any {
	if d.TextDates {
		return t.Format(schema.DateLayout)
	}
	return t
}
