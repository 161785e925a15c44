package schema

import "time"

// Pitch is the typed record for one pitched ball. Every canonical column is
// a named pointer field; nil means the source value was absent or failed
// coercion. Rows are immutable once written.
type Pitch struct {
	// Import metadata
	BatchID string

	// Game context
	PitchNo    *int64
	Date       *time.Time
	Time       *string
	PAofInning *int64
	PitchofPA  *int64

	// Pitcher info
	Pitcher       *string
	PitcherID     *int64
	PitcherThrows *string
	PitcherTeam   *string

	// Batter info
	Batter     *string
	BatterID   *int64
	BatterSide *string
	BatterTeam *string

	// Situation
	PitcherSet *string
	Inning     *int64
	TopBottom  *string
	Outs       *int64
	Balls      *int64
	Strikes    *int64

	// Pitch classification
	TaggedPitchType *string
	AutoPitchType   *string
	PitchCall       *string
	KorBB           *string
	TaggedHitType   *string

	// Play result
	PlayResult *string
	OutsOnPlay *int64
	RunsScored *int64
	Notes      *string

	// Pitch release / movement
	RelSpeed         *float64
	VertRelAngle     *float64
	HorzRelAngle     *float64
	SpinRate         *float64
	SpinAxis         *float64
	Tilt             *string
	RelHeight        *float64
	RelSide          *float64
	Extension        *float64
	VertBreak        *float64
	InducedVertBreak *float64
	HorzBreak        *float64

	// Plate location
	PlateLocHeight *float64
	PlateLocSide   *float64
	ZoneSpeed      *float64
	VertApprAngle  *float64
	HorzApprAngle  *float64
	ZoneTime       *float64

	// Hit data
	ExitSpeed           *float64
	Angle               *float64
	Direction           *float64
	HitSpinRate         *float64
	PositionAt110X      *float64
	PositionAt110Y      *float64
	PositionAt110Z      *float64
	Distance            *float64
	LastTrackedDistance *float64
	Bearing             *float64
	HangTime            *float64

	// PFX / initial conditions
	PfxX *float64
	PfxZ *float64
	X0   *float64
	Y0   *float64
	Z0   *float64
	Vx0  *float64
	Vy0  *float64
	Vz0  *float64
	Ax0  *float64
	Ay0  *float64
	Az0  *float64

	// Game metadata
	HomeTeam *string
	AwayTeam *string
	Stadium  *string
	Level    *string
	League   *string
	GameID   *string
	PitchUID *string

	// Advanced pitch metrics
	EffectiveVelo    *float64
	MaxHeight        *float64
	MeasuredDuration *float64
	SpeedDrop        *float64

	// Last measured positions
	PitchLastMeasuredX *float64
	PitchLastMeasuredY *float64
	PitchLastMeasuredZ *float64

	// Contact position
	ContactPositionX *float64
	ContactPositionY *float64
	ContactPositionZ *float64

	// UID / timestamps
	GameUID       *string
	UTCDate       *time.Time
	UTCTime       *string
	LocalDateTime *string
	UTCDateTime   *string

	// Auto classification
	AutoHitType *string
	System      *string

	// Foreign IDs
	HomeTeamForeignID *int64
	AwayTeamForeignID *int64
	GameForeignID     *string

	// Catcher info
	Catcher       *string
	CatcherID     *int64
	CatcherThrows *string
	CatcherTeam   *string

	// Play ID
	PlayID *string

	// Pitch trajectory coefficients
	PitchTrajectoryXc0 *float64
	PitchTrajectoryXc1 *float64
	PitchTrajectoryXc2 *float64
	PitchTrajectoryYc0 *float64
	PitchTrajectoryYc1 *float64
	PitchTrajectoryYc2 *float64
	PitchTrajectoryZc0 *float64
	PitchTrajectoryZc1 *float64
	PitchTrajectoryZc2 *float64

	// Hit spin axis
	HitSpinAxis *float64

	// Hit trajectory coefficients
	HitTrajectoryXc0 *float64
	HitTrajectoryXc1 *float64
	HitTrajectoryXc2 *float64
	HitTrajectoryXc3 *float64
	HitTrajectoryXc4 *float64
	HitTrajectoryXc5 *float64
	HitTrajectoryXc6 *float64
	HitTrajectoryXc7 *float64
	HitTrajectoryXc8 *float64

	HitTrajectoryYc0 *float64
	HitTrajectoryYc1 *float64
	HitTrajectoryYc2 *float64
	HitTrajectoryYc3 *float64
	HitTrajectoryYc4 *float64
	HitTrajectoryYc5 *float64
	HitTrajectoryYc6 *float64
	HitTrajectoryYc7 *float64
	HitTrajectoryYc8 *float64

	HitTrajectoryZc0 *float64
	HitTrajectoryZc1 *float64
	HitTrajectoryZc2 *float64
	HitTrajectoryZc3 *float64
	HitTrajectoryZc4 *float64
	HitTrajectoryZc5 *float64
	HitTrajectoryZc6 *float64
	HitTrajectoryZc7 *float64
	HitTrajectoryZc8 *float64

	// Catcher throw / pop time
	ThrowSpeed   *float64
	PopTime      *float64
	ExchangeTime *float64
	TimeToBase   *float64

	// Catcher catch position
	CatchPositionX *float64
	CatchPositionY *float64
	CatchPositionZ *float64

	// Throw position
	ThrowPositionX *float64
	ThrowPositionY *float64
	ThrowPositionZ *float64

	// Base position
	BasePositionX *float64
	BasePositionY *float64
	BasePositionZ *float64

	// Throw trajectory coefficients
	ThrowTrajectoryXc0 *float64
	ThrowTrajectoryXc1 *float64
	ThrowTrajectoryXc2 *float64
	ThrowTrajectoryYc0 *float64
	ThrowTrajectoryYc1 *float64
	ThrowTrajectoryYc2 *float64
	ThrowTrajectoryZc0 *float64
	ThrowTrajectoryZc1 *float64
	ThrowTrajectoryZc2 *float64

	// Confidence scores
	PitchReleaseConfidence         *float64
	PitchLocationConfidence        *float64
	PitchMovementConfidence        *float64
	HitLaunchConfidence            *float64
	HitLandingConfidence           *float64
	CatcherThrowCatchConfidence    *float64
	CatcherThrowReleaseConfidence  *float64
	CatcherThrowLocationConfidence *float64
}

// Columns lists every canonical column in stable declaration order. Storage
// backends use this ordering for INSERT/SELECT column lists.
var Columns = []string{
	"pitch_no", "date", "time", "pa_of_inning", "pitch_of_pa",
	"pitcher", "pitcher_id", "pitcher_throws", "pitcher_team",
	"batter", "batter_id", "batter_side", "batter_team",
	"pitcher_set", "inning", "top_bottom", "outs", "balls", "strikes",
	"tagged_pitch_type", "auto_pitch_type", "pitch_call", "k_or_bb", "tagged_hit_type",
	"play_result", "outs_on_play", "runs_scored", "notes",
	"rel_speed", "vert_rel_angle", "horz_rel_angle", "spin_rate", "spin_axis",
	"tilt", "rel_height", "rel_side", "extension", "vert_break",
	"induced_vert_break", "horz_break",
	"plate_loc_height", "plate_loc_side", "zone_speed", "vert_appr_angle",
	"horz_appr_angle", "zone_time",
	"exit_speed", "angle", "direction", "hit_spin_rate",
	"position_at_110_x", "position_at_110_y", "position_at_110_z",
	"distance", "last_tracked_distance", "bearing", "hang_time",
	"pfx_x", "pfx_z", "x0", "y0", "z0", "vx0", "vy0", "vz0", "ax0", "ay0", "az0",
	"home_team", "away_team", "stadium", "level", "league", "game_id", "pitch_uid",
	"effective_velo", "max_height", "measured_duration", "speed_drop",
	"pitch_last_measured_x", "pitch_last_measured_y", "pitch_last_measured_z",
	"contact_position_x", "contact_position_y", "contact_position_z",
	"game_uid", "utc_date", "utc_time", "local_date_time", "utc_date_time",
	"auto_hit_type", "system",
	"home_team_foreign_id", "away_team_foreign_id", "game_foreign_id",
	"catcher", "catcher_id", "catcher_throws", "catcher_team",
	"play_id",
	"pitch_trajectory_xc0", "pitch_trajectory_xc1", "pitch_trajectory_xc2",
	"pitch_trajectory_yc0", "pitch_trajectory_yc1", "pitch_trajectory_yc2",
	"pitch_trajectory_zc0", "pitch_trajectory_zc1", "pitch_trajectory_zc2",
	"hit_spin_axis",
	"hit_trajectory_xc0", "hit_trajectory_xc1", "hit_trajectory_xc2",
	"hit_trajectory_xc3", "hit_trajectory_xc4", "hit_trajectory_xc5",
	"hit_trajectory_xc6", "hit_trajectory_xc7", "hit_trajectory_xc8",
	"hit_trajectory_yc0", "hit_trajectory_yc1", "hit_trajectory_yc2",
	"hit_trajectory_yc3", "hit_trajectory_yc4", "hit_trajectory_yc5",
	"hit_trajectory_yc6", "hit_trajectory_yc7", "hit_trajectory_yc8",
	"hit_trajectory_zc0", "hit_trajectory_zc1", "hit_trajectory_zc2",
	"hit_trajectory_zc3", "hit_trajectory_zc4", "hit_trajectory_zc5",
	"hit_trajectory_zc6", "hit_trajectory_zc7", "hit_trajectory_zc8",
	"throw_speed", "pop_time", "exchange_time", "time_to_base",
	"catch_position_x", "catch_position_y", "catch_position_z",
	"throw_position_x", "throw_position_y", "throw_position_z",
	"base_position_x", "base_position_y", "base_position_z",
	"throw_trajectory_xc0", "throw_trajectory_xc1", "throw_trajectory_xc2",
	"throw_trajectory_yc0", "throw_trajectory_yc1", "throw_trajectory_yc2",
	"throw_trajectory_zc0", "throw_trajectory_zc1", "throw_trajectory_zc2",
	"pitch_release_confidence", "pitch_location_confidence",
	"pitch_movement_confidence", "hit_launch_confidence",
	"hit_landing_confidence", "catcher_throw_catch_confidence",
	"catcher_throw_release_confidence", "catcher_throw_location_confidence",
}

// Field returns a pointer to the struct field backing the canonical column:
// **int64, **float64, **time.Time, or **string depending on the column's
// declared type. It returns nil for unknown columns. Coercion and storage
// both go through this single mapping, so the struct and the column tables
// cannot drift apart silently.
func (p *Pitch) Field(col string) any {
	switch col {
	case "pitch_no":
		return &p.PitchNo
	case "date":
		return &p.Date
	case "time":
		return &p.Time
	case "pa_of_inning":
		return &p.PAofInning
	case "pitch_of_pa":
		return &p.PitchofPA
	case "pitcher":
		return &p.Pitcher
	case "pitcher_id":
		return &p.PitcherID
	case "pitcher_throws":
		return &p.PitcherThrows
	case "pitcher_team":
		return &p.PitcherTeam
	case "batter":
		return &p.Batter
	case "batter_id":
		return &p.BatterID
	case "batter_side":
		return &p.BatterSide
	case "batter_team":
		return &p.BatterTeam
	case "pitcher_set":
		return &p.PitcherSet
	case "inning":
		return &p.Inning
	case "top_bottom":
		return &p.TopBottom
	case "outs":
		return &p.Outs
	case "balls":
		return &p.Balls
	case "strikes":
		return &p.Strikes
	case "tagged_pitch_type":
		return &p.TaggedPitchType
	case "auto_pitch_type":
		return &p.AutoPitchType
	case "pitch_call":
		return &p.PitchCall
	case "k_or_bb":
		return &p.KorBB
	case "tagged_hit_type":
		return &p.TaggedHitType
	case "play_result":
		return &p.PlayResult
	case "outs_on_play":
		return &p.OutsOnPlay
	case "runs_scored":
		return &p.RunsScored
	case "notes":
		return &p.Notes
	case "rel_speed":
		return &p.RelSpeed
	case "vert_rel_angle":
		return &p.VertRelAngle
	case "horz_rel_angle":
		return &p.HorzRelAngle
	case "spin_rate":
		return &p.SpinRate
	case "spin_axis":
		return &p.SpinAxis
	case "tilt":
		return &p.Tilt
	case "rel_height":
		return &p.RelHeight
	case "rel_side":
		return &p.RelSide
	case "extension":
		return &p.Extension
	case "vert_break":
		return &p.VertBreak
	case "induced_vert_break":
		return &p.InducedVertBreak
	case "horz_break":
		return &p.HorzBreak
	case "plate_loc_height":
		return &p.PlateLocHeight
	case "plate_loc_side":
		return &p.PlateLocSide
	case "zone_speed":
		return &p.ZoneSpeed
	case "vert_appr_angle":
		return &p.VertApprAngle
	case "horz_appr_angle":
		return &p.HorzApprAngle
	case "zone_time":
		return &p.ZoneTime
	case "exit_speed":
		return &p.ExitSpeed
	case "angle":
		return &p.Angle
	case "direction":
		return &p.Direction
	case "hit_spin_rate":
		return &p.HitSpinRate
	case "position_at_110_x":
		return &p.PositionAt110X
	case "position_at_110_y":
		return &p.PositionAt110Y
	case "position_at_110_z":
		return &p.PositionAt110Z
	case "distance":
		return &p.Distance
	case "last_tracked_distance":
		return &p.LastTrackedDistance
	case "bearing":
		return &p.Bearing
	case "hang_time":
		return &p.HangTime
	case "pfx_x":
		return &p.PfxX
	case "pfx_z":
		return &p.PfxZ
	case "x0":
		return &p.X0
	case "y0":
		return &p.Y0
	case "z0":
		return &p.Z0
	case "vx0":
		return &p.Vx0
	case "vy0":
		return &p.Vy0
	case "vz0":
		return &p.Vz0
	case "ax0":
		return &p.Ax0
	case "ay0":
		return &p.Ay0
	case "az0":
		return &p.Az0
	case "home_team":
		return &p.HomeTeam
	case "away_team":
		return &p.AwayTeam
	case "stadium":
		return &p.Stadium
	case "level":
		return &p.Level
	case "league":
		return &p.League
	case "game_id":
		return &p.GameID
	case "pitch_uid":
		return &p.PitchUID
	case "effective_velo":
		return &p.EffectiveVelo
	case "max_height":
		return &p.MaxHeight
	case "measured_duration":
		return &p.MeasuredDuration
	case "speed_drop":
		return &p.SpeedDrop
	case "pitch_last_measured_x":
		return &p.PitchLastMeasuredX
	case "pitch_last_measured_y":
		return &p.PitchLastMeasuredY
	case "pitch_last_measured_z":
		return &p.PitchLastMeasuredZ
	case "contact_position_x":
		return &p.ContactPositionX
	case "contact_position_y":
		return &p.ContactPositionY
	case "contact_position_z":
		return &p.ContactPositionZ
	case "game_uid":
		return &p.GameUID
	case "utc_date":
		return &p.UTCDate
	case "utc_time":
		return &p.UTCTime
	case "local_date_time":
		return &p.LocalDateTime
	case "utc_date_time":
		return &p.UTCDateTime
	case "auto_hit_type":
		return &p.AutoHitType
	case "system":
		return &p.System
	case "home_team_foreign_id":
		return &p.HomeTeamForeignID
	case "away_team_foreign_id":
		return &p.AwayTeamForeignID
	case "game_foreign_id":
		return &p.GameForeignID
	case "catcher":
		return &p.Catcher
	case "catcher_id":
		return &p.CatcherID
	case "catcher_throws":
		return &p.CatcherThrows
	case "catcher_team":
		return &p.CatcherTeam
	case "play_id":
		return &p.PlayID
	case "pitch_trajectory_xc0":
		return &p.PitchTrajectoryXc0
	case "pitch_trajectory_xc1":
		return &p.PitchTrajectoryXc1
	case "pitch_trajectory_xc2":
		return &p.PitchTrajectoryXc2
	case "pitch_trajectory_yc0":
		return &p.PitchTrajectoryYc0
	case "pitch_trajectory_yc1":
		return &p.PitchTrajectoryYc1
	case "pitch_trajectory_yc2":
		return &p.PitchTrajectoryYc2
	case "pitch_trajectory_zc0":
		return &p.PitchTrajectoryZc0
	case "pitch_trajectory_zc1":
		return &p.PitchTrajectoryZc1
	case "pitch_trajectory_zc2":
		return &p.PitchTrajectoryZc2
	case "hit_spin_axis":
		return &p.HitSpinAxis
	case "hit_trajectory_xc0":
		return &p.HitTrajectoryXc0
	case "hit_trajectory_xc1":
		return &p.HitTrajectoryXc1
	case "hit_trajectory_xc2":
		return &p.HitTrajectoryXc2
	case "hit_trajectory_xc3":
		return &p.HitTrajectoryXc3
	case "hit_trajectory_xc4":
		return &p.HitTrajectoryXc4
	case "hit_trajectory_xc5":
		return &p.HitTrajectoryXc5
	case "hit_trajectory_xc6":
		return &p.HitTrajectoryXc6
	case "hit_trajectory_xc7":
		return &p.HitTrajectoryXc7
	case "hit_trajectory_xc8":
		return &p.HitTrajectoryXc8
	case "hit_trajectory_yc0":
		return &p.HitTrajectoryYc0
	case "hit_trajectory_yc1":
		return &p.HitTrajectoryYc1
	case "hit_trajectory_yc2":
		return &p.HitTrajectoryYc2
	case "hit_trajectory_yc3":
		return &p.HitTrajectoryYc3
	case "hit_trajectory_yc4":
		return &p.HitTrajectoryYc4
	case "hit_trajectory_yc5":
		return &p.HitTrajectoryYc5
	case "hit_trajectory_yc6":
		return &p.HitTrajectoryYc6
	case "hit_trajectory_yc7":
		return &p.HitTrajectoryYc7
	case "hit_trajectory_yc8":
		return &p.HitTrajectoryYc8
	case "hit_trajectory_zc0":
		return &p.HitTrajectoryZc0
	case "hit_trajectory_zc1":
		return &p.HitTrajectoryZc1
	case "hit_trajectory_zc2":
		return &p.HitTrajectoryZc2
	case "hit_trajectory_zc3":
		return &p.HitTrajectoryZc3
	case "hit_trajectory_zc4":
		return &p.HitTrajectoryZc4
	case "hit_trajectory_zc5":
		return &p.HitTrajectoryZc5
	case "hit_trajectory_zc6":
		return &p.HitTrajectoryZc6
	case "hit_trajectory_zc7":
		return &p.HitTrajectoryZc7
	case "hit_trajectory_zc8":
		return &p.HitTrajectoryZc8
	case "throw_speed":
		return &p.ThrowSpeed
	case "pop_time":
		return &p.PopTime
	case "exchange_time":
		return &p.ExchangeTime
	case "time_to_base":
		return &p.TimeToBase
	case "catch_position_x":
		return &p.CatchPositionX
	case "catch_position_y":
		return &p.CatchPositionY
	case "catch_position_z":
		return &p.CatchPositionZ
	case "throw_position_x":
		return &p.ThrowPositionX
	case "throw_position_y":
		return &p.ThrowPositionY
	case "throw_position_z":
		return &p.ThrowPositionZ
	case "base_position_x":
		return &p.BasePositionX
	case "base_position_y":
		return &p.BasePositionY
	case "base_position_z":
		return &p.BasePositionZ
	case "throw_trajectory_xc0":
		return &p.ThrowTrajectoryXc0
	case "throw_trajectory_xc1":
		return &p.ThrowTrajectoryXc1
	case "throw_trajectory_xc2":
		return &p.ThrowTrajectoryXc2
	case "throw_trajectory_yc0":
		return &p.ThrowTrajectoryYc0
	case "throw_trajectory_yc1":
		return &p.ThrowTrajectoryYc1
	case "throw_trajectory_yc2":
		return &p.ThrowTrajectoryYc2
	case "throw_trajectory_zc0":
		return &p.ThrowTrajectoryZc0
	case "throw_trajectory_zc1":
		return &p.ThrowTrajectoryZc1
	case "throw_trajectory_zc2":
		return &p.ThrowTrajectoryZc2
	case "pitch_release_confidence":
		return &p.PitchReleaseConfidence
	case "pitch_location_confidence":
		return &p.PitchLocationConfidence
	case "pitch_movement_confidence":
		return &p.PitchMovementConfidence
	case "hit_launch_confidence":
		return &p.HitLaunchConfidence
	case "hit_landing_confidence":
		return &p.HitLandingConfidence
	case "catcher_throw_catch_confidence":
		return &p.CatcherThrowCatchConfidence
	case "catcher_throw_release_confidence":
		return &p.CatcherThrowReleaseConfidence
	case "catcher_throw_location_confidence":
		return &p.CatcherThrowLocationConfidence
	}
	return nil
}
