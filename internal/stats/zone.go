package stats

// Strike zone boundaries in feet, from the catcher's perspective.
const (
	ZoneLeft   = -0.83 // 10 inches from center
	ZoneRight  = 0.83
	ZoneBottom = 1.5
	ZoneTop    = 3.5
)

// InZone reports whether a pitch location falls inside the strike
// zone. Unknown when either coordinate is missing.
func InZone(side, height *float64) *bool {
	if side == nil || height == nil {
		return nil
	}
	in := ZoneLeft <= *side && *side <= ZoneRight &&
		ZoneBottom <= *height && *height <= ZoneTop
	return &in
}

var swingCalls = map[string]bool{
	"StrikeSwinging":       true,
	"FoulBall":             true,
	"FoulBallNotFieldable": true,
	"FoulBallFieldable":    true,
	"InPlay":               true,
	"FoulTip":              true,
}

var foulCalls = map[string]bool{
	"FoulBall":             true,
	"FoulBallNotFieldable": true,
	"FoulBallFieldable":    true,
	"FoulTip":              true,
}

// IsSwing reports whether the pitch call represents a swing.
func IsSwing(call *string) bool {
	return call != nil && swingCalls[*call]
}

// IsWhiff reports a swing and miss.
func IsWhiff(call *string) bool {
	return call != nil && *call == "StrikeSwinging"
}

// IsCalledStrike reports a called strike.
func IsCalledStrike(call *string) bool {
	return call != nil && *call == "StrikeCalled"
}

// IsCSW reports a called strike or a whiff.
func IsCSW(call *string) bool {
	return call != nil && (*call == "StrikeCalled" || *call == "StrikeSwinging")
}

// IsFoul reports any foul-ball variant.
func IsFoul(call *string) bool {
	return call != nil && foulCalls[*call]
}

// IsBallInPlay reports whether the ball was put in play.
func IsBallInPlay(call *string) bool {
	return call != nil && *call == "InPlay"
}

var pitchTypeGroups = map[string][]string{
	"Fastball": {"Four-Seam", "Fastball", "Sinker", "Two-Seam", "Cutter"},
	"Breaking": {"Slider", "Curveball", "Sweeper", "Slurve", "Knuckle Curve"},
	"Offspeed": {"Changeup", "Splitter", "Knuckleball"},
}

var pitchTypeToGroup = func() map[string]string {
	m := map[string]string{}
	for group, types := range pitchTypeGroups {
		for _, t := range types {
			m[t] = group
		}
	}
	return m
}()

// PitchGroup returns the coarse family (Fastball/Breaking/Offspeed) of
// a pitch type, or "Unknown".
func PitchGroup(pitchType string) string {
	if g, ok := pitchTypeToGroup[pitchType]; ok {
		return g
	}
	return "Unknown"
}
