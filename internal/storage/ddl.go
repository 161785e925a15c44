package storage

import (
	"fmt"
	"strings"

	"pitchstats/internal/schema"
)

// Dialect captures the few SQL differences between backends: value
// placeholders, column types, and whether dates travel as TEXT.
type Dialect struct {
	Name        string
	Placeholder func(i int) string // 1-based argument position
	TextDates   bool               // store dates as "2006-01-02" strings
	intType     string
	floatType   string
	dateType    string
	boolType    string
	timeType    string
}

var (
	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: func(int) string { return "?" },
		TextDates:   true,
		intType:     "INTEGER",
		floatType:   "REAL",
		dateType:    "TEXT",
		boolType:    "INTEGER",
		timeType:    "TEXT",
	}
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
		intType:     "BIGINT",
		floatType:   "DOUBLE PRECISION",
		dateType:    "DATE",
		boolType:    "BOOLEAN",
		timeType:    "TIMESTAMPTZ",
	}
)

func (d Dialect) fieldType(t schema.FieldType) string {
	switch t {
	case schema.Int:
		return d.intType
	case schema.Float:
		return d.floatType
	case schema.Date:
		return d.dateType
	default:
		return "TEXT"
	}
}

// ColumnDef is a minimal description of a DB column.
type ColumnDef struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
	Default    string // raw SQL default
}

// TableDef describes a table to create.
type TableDef struct {
	Name    string
	Columns []ColumnDef
}

// CreateTableSQL emits CREATE TABLE IF NOT EXISTS for the table.
func CreateTableSQL(t TableDef) string {
	cols := make([]string, 0, len(t.Columns)+1)
	var pks []string
	for _, c := range t.Columns {
		def := fmt.Sprintf("%q %s", c.Name, c.SQLType)
		if c.Default != "" {
			def += " DEFAULT " + c.Default
		}
		if !c.Nullable {
			def += " NOT NULL"
		}
		cols = append(cols, def)
		if c.PrimaryKey {
			pks = append(pks, fmt.Sprintf("%q", c.Name))
		}
	}
	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ",")))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (\n  %s\n);",
		t.Name, strings.Join(cols, ",\n  "))
}

// PitchTable builds the pitches table for a dialect: the batch
// reference, then every canonical column in schema order. The pitch
// uid keys the table, which is what makes duplicate rows cheap to
// detect across imports.
func PitchTable(d Dialect) TableDef {
	cols := make([]ColumnDef, 0, len(schema.Columns)+1)
	cols = append(cols, ColumnDef{Name: "batch_id", SQLType: "TEXT"})
	for _, name := range schema.Columns {
		cols = append(cols, ColumnDef{
			Name:       name,
			SQLType:    d.fieldType(schema.TypeOf(name)),
			Nullable:   name != "pitch_uid",
			PrimaryKey: name == "pitch_uid",
		})
	}
	return TableDef{Name: "pitches", Columns: cols}
}

// BatchTable builds the import_batches table.
func BatchTable(d Dialect) TableDef {
	return TableDef{Name: "import_batches", Columns: []ColumnDef{
		{Name: "id", SQLType: "TEXT", PrimaryKey: true},
		{Name: "filename", SQLType: "TEXT"},
		{Name: "content_hash", SQLType: "TEXT"},
		{Name: "game_id", SQLType: "TEXT", Nullable: true},
		{Name: "status", SQLType: "TEXT"},
		{Name: "error", SQLType: "TEXT", Nullable: true},
		{Name: "duplicate_of", SQLType: "TEXT", Nullable: true},
		{Name: "rows_total", SQLType: d.intType, Default: "0"},
		{Name: "rows_imported", SQLType: d.intType, Default: "0"},
		{Name: "rows_skipped", SQLType: d.intType, Default: "0"},
		{Name: "rows_errored", SQLType: d.intType, Default: "0"},
		{Name: "started_at", SQLType: d.timeType},
		{Name: "finished_at", SQLType: d.timeType, Nullable: true},
	}}
}

// PlayerTable builds the players table.
func PlayerTable(d Dialect) TableDef {
	return TableDef{Name: "players", Columns: []ColumnDef{
		{Name: "id", SQLType: d.intType, PrimaryKey: true},
		{Name: "name", SQLType: "TEXT"},
		{Name: "team", SQLType: "TEXT", Nullable: true},
		{Name: "throws", SQLType: "TEXT", Nullable: true},
	}}
}

// GameTable builds the games table.
func GameTable(d Dialect) TableDef {
	return TableDef{Name: "games", Columns: []ColumnDef{
		{Name: "id", SQLType: "TEXT", PrimaryKey: true},
		{Name: "game_uid", SQLType: "TEXT", Nullable: true},
		{Name: "date", SQLType: d.dateType, Nullable: true},
		{Name: "level", SQLType: "TEXT", Nullable: true},
		{Name: "league", SQLType: "TEXT", Nullable: true},
		{Name: "home_team", SQLType: "TEXT", Nullable: true},
		{Name: "away_team", SQLType: "TEXT", Nullable: true},
		{Name: "stadium", SQLType: "TEXT", Nullable: true},
		{Name: "is_verified", SQLType: d.boolType, Default: "TRUE"},
		{Name: "total_pitches", SQLType: d.intType, Default: "0"},
	}}
}

// Tables lists every table in creation order.
func Tables(d Dialect) []TableDef {
	return []TableDef{BatchTable(d), PlayerTable(d), GameTable(d), PitchTable(d)}
}
