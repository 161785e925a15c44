package storage

import (
	"strings"
	"testing"
	"time"

	"pitchstats/internal/schema"
)

func TestPitchTableCoversEveryColumn(t *testing.T) {
	def := PitchTable(SQLite)
	if got, want := len(def.Columns), len(schema.Columns)+1; got != want {
		t.Fatalf("pitch table has %d columns, want %d", got, want)
	}
	sql := CreateTableSQL(def)
	if !strings.Contains(sql, `PRIMARY KEY ("pitch_uid")`) {
		t.Error("pitch_uid should key the table")
	}
	if !strings.Contains(sql, `"rel_speed" REAL`) {
		t.Errorf("rel_speed type wrong in:\n%s", sql)
	}
	pg := CreateTableSQL(PitchTable(Postgres))
	if !strings.Contains(pg, `"rel_speed" DOUBLE PRECISION`) {
		t.Error("postgres float type wrong")
	}
	if !strings.Contains(pg, `"date" DATE`) {
		t.Error("postgres date type wrong")
	}
}

func TestPitchInsertSQLPlaceholders(t *testing.T) {
	n := len(schema.Columns) + 1
	sq := PitchInsertSQL(SQLite)
	if got := strings.Count(sq, "?"); got != n {
		t.Errorf("sqlite insert has %d placeholders, want %d", got, n)
	}
	pg := PitchInsertSQL(Postgres)
	if !strings.Contains(pg, "$1") || !strings.Contains(pg, "$167") {
		t.Errorf("postgres insert placeholders malformed:\n%s", pg)
	}
}

func TestPitchArgsAlignWithColumns(t *testing.T) {
	speed := 94.3
	uid := "uid-1"
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	p := &schema.Pitch{BatchID: "b1", PitchUID: &uid, RelSpeed: &speed, Date: &day}

	args := PitchArgs(SQLite, p)
	if len(args) != len(schema.Columns)+1 {
		t.Fatalf("got %d args, want %d", len(args), len(schema.Columns)+1)
	}
	if args[0] != "b1" {
		t.Errorf("args[0] = %v, want batch id", args[0])
	}
	byCol := map[string]any{}
	for i, c := range schema.Columns {
		byCol[c] = args[i+1]
	}
	if byCol["rel_speed"] != 94.3 {
		t.Errorf("rel_speed arg = %v", byCol["rel_speed"])
	}
	if byCol["pitch_uid"] != "uid-1" {
		t.Errorf("pitch_uid arg = %v", byCol["pitch_uid"])
	}
	if byCol["date"] != "2026-04-01" {
		t.Errorf("sqlite date arg = %v, want text", byCol["date"])
	}
	if byCol["balls"] != nil {
		t.Errorf("unset field should be nil, got %v", byCol["balls"])
	}

	pgArgs := PitchArgs(Postgres, p)
	for i, c := range schema.Columns {
		if c == "date" {
			if _, ok := pgArgs[i+1].(time.Time); !ok {
				t.Errorf("postgres date arg = %T, want time.Time", pgArgs[i+1])
			}
		}
	}
}

func TestListPitchesSQLFilters(t *testing.T) {
	game := "G-1"
	team := "MEX"
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	q, args := ListPitchesSQL(SQLite, Filter{GameID: &game, PitcherTeam: &team, DateFrom: &from})
	if !strings.Contains(q, `"game_id" = ?`) ||
		!strings.Contains(q, `"pitcher_team" = ?`) ||
		!strings.Contains(q, `"date" >= ?`) {
		t.Fatalf("unexpected query: %s", q)
	}
	if len(args) != 3 {
		t.Fatalf("got %d args, want 3", len(args))
	}
	if args[2] != "2026-04-01" {
		t.Errorf("sqlite date filter arg = %v", args[2])
	}

	q, _ = ListPitchesSQL(Postgres, Filter{BatterTeam: &team})
	if !strings.Contains(q, `"batter_team" = $1`) {
		t.Fatalf("unexpected postgres query: %s", q)
	}
	q, args = ListPitchesSQL(SQLite, Filter{})
	if strings.Contains(q, "WHERE") || len(args) != 0 {
		t.Error("empty filter should add no WHERE clause")
	}
}
