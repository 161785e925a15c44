// Package schema defines the canonical column contract for Trackman pitch
// CSV files: the external->canonical name map, the per-column type table,
// the set of columns a file must carry, and the typed Pitch record every
// imported row is materialized into.
//
// The map and type table are part of the contract with upstream data
// producers; MappingVersion must be bumped on any change.
package schema

// MappingVersion identifies the column mapping/type table revision.
const MappingVersion = 1

// DateLayout is the only calendar-date format accepted from source files.
const DateLayout = "2006-01-02"

// FieldType classifies a canonical column for coercion and DDL generation.
type FieldType int

const (
	String FieldType = iota
	Int
	Float
	Date
)

// ColumnMap maps each external CSV header to its canonical column name.
// Headers not present here are dropped by the column mapper.
var ColumnMap = map[string]string{
	// Game context
	"PitchNo":    "pitch_no",
	"Date":       "date",
	"Time":       "time",
	"PAofInning": "pa_of_inning",
	"PitchofPA":  "pitch_of_pa",

	// Pitcher info
	"Pitcher":       "pitcher",
	"PitcherId":     "pitcher_id",
	"PitcherThrows": "pitcher_throws",
	"PitcherTeam":   "pitcher_team",

	// Batter info
	"Batter":     "batter",
	"BatterId":   "batter_id",
	"BatterSide": "batter_side",
	"BatterTeam": "batter_team",

	// Situation
	"PitcherSet": "pitcher_set",
	"Inning":     "inning",
	"Top/Bottom": "top_bottom",
	"Outs":       "outs",
	"Balls":      "balls",
	"Strikes":    "strikes",

	// Pitch classification
	"TaggedPitchType": "tagged_pitch_type",
	"AutoPitchType":   "auto_pitch_type",
	"PitchCall":       "pitch_call",
	"KorBB":           "k_or_bb",
	"TaggedHitType":   "tagged_hit_type",

	// Play result
	"PlayResult": "play_result",
	"OutsOnPlay": "outs_on_play",
	"RunsScored": "runs_scored",
	"Notes":      "notes",

	// Pitch release / movement
	"RelSpeed":         "rel_speed",
	"VertRelAngle":     "vert_rel_angle",
	"HorzRelAngle":     "horz_rel_angle",
	"SpinRate":         "spin_rate",
	"SpinAxis":         "spin_axis",
	"Tilt":             "tilt",
	"RelHeight":        "rel_height",
	"RelSide":          "rel_side",
	"Extension":        "extension",
	"VertBreak":        "vert_break",
	"InducedVertBreak": "induced_vert_break",
	"HorzBreak":        "horz_break",

	// Plate location
	"PlateLocHeight": "plate_loc_height",
	"PlateLocSide":   "plate_loc_side",
	"ZoneSpeed":      "zone_speed",
	"VertApprAngle":  "vert_appr_angle",
	"HorzApprAngle":  "horz_appr_angle",
	"ZoneTime":       "zone_time",

	// Hit data
	"ExitSpeed":           "exit_speed",
	"Angle":               "angle",
	"Direction":           "direction",
	"HitSpinRate":         "hit_spin_rate",
	"PositionAt110X":      "position_at_110_x",
	"PositionAt110Y":      "position_at_110_y",
	"PositionAt110Z":      "position_at_110_z",
	"Distance":            "distance",
	"LastTrackedDistance": "last_tracked_distance",
	"Bearing":             "bearing",
	"HangTime":            "hang_time",

	// PFX / initial conditions
	"pfxx": "pfx_x",
	"pfxz": "pfx_z",
	"x0":   "x0",
	"y0":   "y0",
	"z0":   "z0",
	"vx0":  "vx0",
	"vy0":  "vy0",
	"vz0":  "vz0",
	"ax0":  "ax0",
	"ay0":  "ay0",
	"az0":  "az0",

	// Game metadata
	"HomeTeam": "home_team",
	"AwayTeam": "away_team",
	"Stadium":  "stadium",
	"Level":    "level",
	"League":   "league",
	"GameID":   "game_id",
	"PitchUID": "pitch_uid",

	// Advanced pitch metrics
	"EffectiveVelo":    "effective_velo",
	"MaxHeight":        "max_height",
	"MeasuredDuration": "measured_duration",
	"SpeedDrop":        "speed_drop",

	// Last measured positions
	"PitchLastMeasuredX": "pitch_last_measured_x",
	"PitchLastMeasuredY": "pitch_last_measured_y",
	"PitchLastMeasuredZ": "pitch_last_measured_z",

	// Contact position
	"ContactPositionX": "contact_position_x",
	"ContactPositionY": "contact_position_y",
	"ContactPositionZ": "contact_position_z",

	// UID / timestamps
	"GameUID":       "game_uid",
	"UTCDate":       "utc_date",
	"UTCTime":       "utc_time",
	"LocalDateTime": "local_date_time",
	"UTCDateTime":   "utc_date_time",

	// Auto classification
	"AutoHitType": "auto_hit_type",
	"System":      "system",

	// Foreign IDs
	"HomeTeamForeignID": "home_team_foreign_id",
	"AwayTeamForeignID": "away_team_foreign_id",
	"GameForeignID":     "game_foreign_id",

	// Catcher info
	"Catcher":       "catcher",
	"CatcherId":     "catcher_id",
	"CatcherThrows": "catcher_throws",
	"CatcherTeam":   "catcher_team",

	// Play ID
	"PlayID": "play_id",

	// Pitch trajectory coefficients
	"PitchTrajectoryXc0": "pitch_trajectory_xc0",
	"PitchTrajectoryXc1": "pitch_trajectory_xc1",
	"PitchTrajectoryXc2": "pitch_trajectory_xc2",
	"PitchTrajectoryYc0": "pitch_trajectory_yc0",
	"PitchTrajectoryYc1": "pitch_trajectory_yc1",
	"PitchTrajectoryYc2": "pitch_trajectory_yc2",
	"PitchTrajectoryZc0": "pitch_trajectory_zc0",
	"PitchTrajectoryZc1": "pitch_trajectory_zc1",
	"PitchTrajectoryZc2": "pitch_trajectory_zc2",

	// Hit spin axis
	"HitSpinAxis": "hit_spin_axis",

	// Hit trajectory X coefficients
	"HitTrajectoryXc0": "hit_trajectory_xc0",
	"HitTrajectoryXc1": "hit_trajectory_xc1",
	"HitTrajectoryXc2": "hit_trajectory_xc2",
	"HitTrajectoryXc3": "hit_trajectory_xc3",
	"HitTrajectoryXc4": "hit_trajectory_xc4",
	"HitTrajectoryXc5": "hit_trajectory_xc5",
	"HitTrajectoryXc6": "hit_trajectory_xc6",
	"HitTrajectoryXc7": "hit_trajectory_xc7",
	"HitTrajectoryXc8": "hit_trajectory_xc8",

	// Hit trajectory Y coefficients
	"HitTrajectoryYc0": "hit_trajectory_yc0",
	"HitTrajectoryYc1": "hit_trajectory_yc1",
	"HitTrajectoryYc2": "hit_trajectory_yc2",
	"HitTrajectoryYc3": "hit_trajectory_yc3",
	"HitTrajectoryYc4": "hit_trajectory_yc4",
	"HitTrajectoryYc5": "hit_trajectory_yc5",
	"HitTrajectoryYc6": "hit_trajectory_yc6",
	"HitTrajectoryYc7": "hit_trajectory_yc7",
	"HitTrajectoryYc8": "hit_trajectory_yc8",

	// Hit trajectory Z coefficients
	"HitTrajectoryZc0": "hit_trajectory_zc0",
	"HitTrajectoryZc1": "hit_trajectory_zc1",
	"HitTrajectoryZc2": "hit_trajectory_zc2",
	"HitTrajectoryZc3": "hit_trajectory_zc3",
	"HitTrajectoryZc4": "hit_trajectory_zc4",
	"HitTrajectoryZc5": "hit_trajectory_zc5",
	"HitTrajectoryZc6": "hit_trajectory_zc6",
	"HitTrajectoryZc7": "hit_trajectory_zc7",
	"HitTrajectoryZc8": "hit_trajectory_zc8",

	// Catcher throw / pop time
	"ThrowSpeed":   "throw_speed",
	"PopTime":      "pop_time",
	"ExchangeTime": "exchange_time",
	"TimeToBase":   "time_to_base",

	// Catcher catch position
	"CatchPositionX": "catch_position_x",
	"CatchPositionY": "catch_position_y",
	"CatchPositionZ": "catch_position_z",

	// Throw position
	"ThrowPositionX": "throw_position_x",
	"ThrowPositionY": "throw_position_y",
	"ThrowPositionZ": "throw_position_z",

	// Base position
	"BasePositionX": "base_position_x",
	"BasePositionY": "base_position_y",
	"BasePositionZ": "base_position_z",

	// Throw trajectory coefficients
	"ThrowTrajectoryXc0": "throw_trajectory_xc0",
	"ThrowTrajectoryXc1": "throw_trajectory_xc1",
	"ThrowTrajectoryXc2": "throw_trajectory_xc2",
	"ThrowTrajectoryYc0": "throw_trajectory_yc0",
	"ThrowTrajectoryYc1": "throw_trajectory_yc1",
	"ThrowTrajectoryYc2": "throw_trajectory_yc2",
	"ThrowTrajectoryZc0": "throw_trajectory_zc0",
	"ThrowTrajectoryZc1": "throw_trajectory_zc1",
	"ThrowTrajectoryZc2": "throw_trajectory_zc2",

	// Confidence scores
	"PitchReleaseConfidence":         "pitch_release_confidence",
	"PitchLocationConfidence":        "pitch_location_confidence",
	"PitchMovementConfidence":        "pitch_movement_confidence",
	"HitLaunchConfidence":            "hit_launch_confidence",
	"HitLandingConfidence":           "hit_landing_confidence",
	"CatcherThrowCatchConfidence":    "catcher_throw_catch_confidence",
	"CatcherThrowReleaseConfidence":  "catcher_throw_release_confidence",
	"CatcherThrowLocationConfidence": "catcher_throw_location_confidence",
}

// Required lists the external headers a file must carry; a file missing any
// of them is rejected before a single row is processed.
var Required = []string{
	"PitchNo",
	"Date",
	"Pitcher",
	"PitcherId",
	"PitcherThrows",
	"PitcherTeam",
	"Batter",
	"BatterId",
	"BatterSide",
	"BatterTeam",
	"Inning",
	"Top/Bottom",
	"Outs",
	"Balls",
	"Strikes",
	"PitchCall",
	"GameID",
	"PitchUID",
	"HomeTeam",
	"AwayTeam",
}

// Types assigns each canonical column its coercion type. Canonical columns
// absent from this map default to String.
var Types = map[string]FieldType{
	// Integer columns
	"pitch_no":             Int,
	"pa_of_inning":         Int,
	"pitch_of_pa":          Int,
	"pitcher_id":           Int,
	"batter_id":            Int,
	"inning":               Int,
	"outs":                 Int,
	"balls":                Int,
	"strikes":              Int,
	"outs_on_play":         Int,
	"runs_scored":          Int,
	"catcher_id":           Int,
	"home_team_foreign_id": Int,
	"away_team_foreign_id": Int,

	// Date columns
	"date":     Date,
	"utc_date": Date,

	// Float columns
	"rel_speed":          Float,
	"vert_rel_angle":     Float,
	"horz_rel_angle":     Float,
	"spin_rate":          Float,
	"spin_axis":          Float,
	"rel_height":         Float,
	"rel_side":           Float,
	"extension":          Float,
	"vert_break":         Float,
	"induced_vert_break": Float,
	"horz_break":         Float,

	"plate_loc_height": Float,
	"plate_loc_side":   Float,
	"zone_speed":       Float,
	"vert_appr_angle":  Float,
	"horz_appr_angle":  Float,
	"zone_time":        Float,

	"exit_speed":            Float,
	"angle":                 Float,
	"direction":             Float,
	"hit_spin_rate":         Float,
	"position_at_110_x":     Float,
	"position_at_110_y":     Float,
	"position_at_110_z":     Float,
	"distance":              Float,
	"last_tracked_distance": Float,
	"bearing":               Float,
	"hang_time":             Float,

	"pfx_x": Float,
	"pfx_z": Float,
	"x0":    Float,
	"y0":    Float,
	"z0":    Float,
	"vx0":   Float,
	"vy0":   Float,
	"vz0":   Float,
	"ax0":   Float,
	"ay0":   Float,
	"az0":   Float,

	"effective_velo":    Float,
	"max_height":        Float,
	"measured_duration": Float,
	"speed_drop":        Float,

	"pitch_last_measured_x": Float,
	"pitch_last_measured_y": Float,
	"pitch_last_measured_z": Float,

	"contact_position_x": Float,
	"contact_position_y": Float,
	"contact_position_z": Float,

	"pitch_trajectory_xc0": Float,
	"pitch_trajectory_xc1": Float,
	"pitch_trajectory_xc2": Float,
	"pitch_trajectory_yc0": Float,
	"pitch_trajectory_yc1": Float,
	"pitch_trajectory_yc2": Float,
	"pitch_trajectory_zc0": Float,
	"pitch_trajectory_zc1": Float,
	"pitch_trajectory_zc2": Float,

	"hit_spin_axis": Float,

	"hit_trajectory_xc0": Float,
	"hit_trajectory_xc1": Float,
	"hit_trajectory_xc2": Float,
	"hit_trajectory_xc3": Float,
	"hit_trajectory_xc4": Float,
	"hit_trajectory_xc5": Float,
	"hit_trajectory_xc6": Float,
	"hit_trajectory_xc7": Float,
	"hit_trajectory_xc8": Float,

	"hit_trajectory_yc0": Float,
	"hit_trajectory_yc1": Float,
	"hit_trajectory_yc2": Float,
	"hit_trajectory_yc3": Float,
	"hit_trajectory_yc4": Float,
	"hit_trajectory_yc5": Float,
	"hit_trajectory_yc6": Float,
	"hit_trajectory_yc7": Float,
	"hit_trajectory_yc8": Float,

	"hit_trajectory_zc0": Float,
	"hit_trajectory_zc1": Float,
	"hit_trajectory_zc2": Float,
	"hit_trajectory_zc3": Float,
	"hit_trajectory_zc4": Float,
	"hit_trajectory_zc5": Float,
	"hit_trajectory_zc6": Float,
	"hit_trajectory_zc7": Float,
	"hit_trajectory_zc8": Float,

	"throw_speed":   Float,
	"pop_time":      Float,
	"exchange_time": Float,
	"time_to_base":  Float,

	"catch_position_x": Float,
	"catch_position_y": Float,
	"catch_position_z": Float,

	"throw_position_x": Float,
	"throw_position_y": Float,
	"throw_position_z": Float,

	"base_position_x": Float,
	"base_position_y": Float,
	"base_position_z": Float,

	"throw_trajectory_xc0": Float,
	"throw_trajectory_xc1": Float,
	"throw_trajectory_xc2": Float,
	"throw_trajectory_yc0": Float,
	"throw_trajectory_yc1": Float,
	"throw_trajectory_yc2": Float,
	"throw_trajectory_zc0": Float,
	"throw_trajectory_zc1": Float,
	"throw_trajectory_zc2": Float,

	"pitch_release_confidence":          Float,
	"pitch_location_confidence":         Float,
	"pitch_movement_confidence":         Float,
	"hit_launch_confidence":             Float,
	"hit_landing_confidence":            Float,
	"catcher_throw_catch_confidence":    Float,
	"catcher_throw_release_confidence":  Float,
	"catcher_throw_location_confidence": Float,

	// String columns (everything else defaults to String; listed for the
	// contract's completeness)
	"time":              String,
	"pitcher":           String,
	"pitcher_throws":    String,
	"pitcher_team":      String,
	"batter":            String,
	"batter_side":       String,
	"batter_team":       String,
	"pitcher_set":       String,
	"top_bottom":        String,
	"tagged_pitch_type": String,
	"auto_pitch_type":   String,
	"pitch_call":        String,
	"k_or_bb":           String,
	"tagged_hit_type":   String,
	"play_result":       String,
	"notes":             String,
	"tilt":              String,
	"home_team":         String,
	"away_team":         String,
	"stadium":           String,
	"level":             String,
	"league":            String,
	"game_id":           String,
	"pitch_uid":         String,
	"game_uid":          String,
	"utc_time":          String,
	"local_date_time":   String,
	"utc_date_time":     String,
	"auto_hit_type":     String,
	"system":            String,
	"game_foreign_id":   String,
	"catcher":           String,
	"catcher_throws":    String,
	"catcher_team":      String,
	"play_id":           String,
}

// TypeOf returns the coercion type for a canonical column.
func TypeOf(col string) FieldType {
	if t, ok := Types[col]; ok {
		return t
	}
	return String
}
