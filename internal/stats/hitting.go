package stats

import (
	"context"

	"pitchstats/internal/identity"
	"pitchstats/internal/schema"
)

// HitterLine is one hitter leaderboard row. Only hitters with at least
// one plate appearance are reported.
type HitterLine struct {
	BatterID   *int64   `json:"batter_id"`
	Name       string   `json:"name"`
	Bats       *string  `json:"bats"`
	Team       *string  `json:"team"`
	Games      int64    `json:"g"`
	PA         int64    `json:"pa"`
	AB         int64    `json:"ab"`
	Hits       int64    `json:"h"`
	Singles    int64    `json:"1b"`
	Doubles    int64    `json:"2b"`
	Triples    int64    `json:"3b"`
	HomeRuns   int64    `json:"hr"`
	Walks      int64    `json:"bb"`
	Strikeouts int64    `json:"k"`
	AVG        *float64 `json:"avg"`
	OBP        *float64 `json:"obp"`
	SLG        *float64 `json:"slg"`
	OPS        *float64 `json:"ops"`
	ISO        *float64 `json:"iso"`
	KPct       *float64 `json:"k_pct"`
	BBPct      *float64 `json:"bb_pct"`
	HardHitPct *float64 `json:"hard_hit_pct"`
	ContactPct *float64 `json:"contact_pct"`
	AvgEV      *float64 `json:"avg_ev"`
	MaxEV      *float64 `json:"max_ev"`
	AvgLA      *float64 `json:"avg_la"`
}

type hitterAgg struct {
	id   *int64
	name *string
	bats *string
	team *string

	games strSet

	pa, bb, hbp, sf               int64
	singles, doubles, triples, hr int64
	k, hardHits, bip              int64
	swings, whiffs                int64

	ev    meanAcc
	maxEV extremeAcc
	la    meanAcc
}

// isPlateAppearance reports a completed batting turn: any defined play
// result, or a strikeout/walk decision.
func isPlateAppearance(p *schema.Pitch) bool {
	if p.PlayResult != nil && *p.PlayResult != "Undefined" {
		return true
	}
	return p.KorBB != nil && *p.KorBB != "Undefined"
}

// HitterLeaderboard aggregates one line per effective batter key,
// dropping hitters without a plate appearance.
func (e *Engine) HitterLeaderboard(ctx context.Context, f Filters) ([]HitterLine, error) {
	pitches, err := e.listFor(ctx, f.batterFilter())
	if err != nil {
		return nil, err
	}

	groups := map[identity.Key]*hitterAgg{}
	var order []identity.Key
	for _, p := range pitches {
		key := identity.PersonKey(p.BatterID, p.Batter)
		if key.Zero() {
			continue
		}
		agg, ok := groups[key]
		if !ok {
			agg = &hitterAgg{games: strSet{}}
			groups[key] = agg
			order = append(order, key)
		}
		agg.observe(p)
	}

	out := make([]HitterLine, 0, len(order))
	for _, key := range order {
		agg := groups[key]
		if agg.pa < 1 {
			continue
		}
		out = append(out, agg.line(key))
	}
	return out, nil
}

func (a *hitterAgg) observe(p *schema.Pitch) {
	if p.BatterID != nil {
		a.id = p.BatterID
	}
	if p.Batter != nil {
		a.name = p.Batter
	}
	if p.BatterSide != nil {
		a.bats = p.BatterSide
	}
	if p.BatterTeam != nil {
		a.team = p.BatterTeam
	}

	a.games.add(p.GameID)
	if isPlateAppearance(p) {
		a.pa++
	}
	if p.KorBB != nil {
		switch *p.KorBB {
		case "Walk":
			a.bb++
		case "Strikeout":
			a.k++
		}
	}
	if p.PlayResult != nil {
		switch *p.PlayResult {
		case "HitByPitch":
			a.hbp++
		case "Sacrifice":
			a.sf++
		case "Single":
			a.singles++
		case "Double":
			a.doubles++
		case "Triple":
			a.triples++
		case "HomeRun":
			a.hr++
		}
	}
	if p.ExitSpeed != nil && *p.ExitSpeed >= 95 {
		a.hardHits++
	}
	if IsBallInPlay(p.PitchCall) {
		a.bip++
	}
	if IsSwing(p.PitchCall) {
		a.swings++
	}
	if IsWhiff(p.PitchCall) {
		a.whiffs++
	}
	a.ev.add(p.ExitSpeed)
	a.maxEV.addMax(p.ExitSpeed)
	a.la.add(p.Angle)
}

func (a *hitterAgg) line(key identity.Key) HitterLine {
	ab := a.pa - a.bb - a.hbp - a.sf
	h := a.singles + a.doubles + a.triples + a.hr
	tb := a.singles + 2*a.doubles + 3*a.triples + 4*a.hr

	avg := BattingAverage(h, ab)
	obp := OBP(h, a.bb, a.hbp, ab, a.sf)
	slg := SLG(tb, ab)

	return HitterLine{
		BatterID:   a.id,
		Name:       key.Label(a.name),
		Bats:       a.bats,
		Team:       a.team,
		Games:      int64(len(a.games)),
		PA:         a.pa,
		AB:         ab,
		Hits:       h,
		Singles:    a.singles,
		Doubles:    a.doubles,
		Triples:    a.triples,
		HomeRuns:   a.hr,
		Walks:      a.bb,
		Strikeouts: a.k,
		AVG:        avg,
		OBP:        obp,
		SLG:        slg,
		OPS:        OPS(obp, slg),
		ISO:        ISO(slg, avg),
		KPct:       Pct(float64(a.k), float64(a.pa), 1),
		BBPct:      Pct(float64(a.bb), float64(a.pa), 1),
		HardHitPct: HardHitPct(a.hardHits, a.bip),
		ContactPct: ContactPct(a.swings, a.whiffs),
		AvgEV:      a.ev.mean(1),
		MaxEV:      a.maxEV.value(1),
		AvgLA:      a.la.mean(1),
	}
}

// SplitLine is the batting line against one pitcher hand. Nil when the
// batter had no plate appearance against that hand.
type SplitLine struct {
	PA         int64    `json:"pa"`
	AB         int64    `json:"ab"`
	Hits       int64    `json:"h"`
	HomeRuns   int64    `json:"hr"`
	Walks      int64    `json:"bb"`
	Strikeouts int64    `json:"k"`
	AVG        *float64 `json:"avg"`
	OBP        *float64 `json:"obp"`
	SLG        *float64 `json:"slg"`
	OPS        *float64 `json:"ops"`
	AvgEV      *float64 `json:"avg_ev"`
}

// Splits carries a batter's lines against left- and right-handed
// pitching.
type Splits struct {
	VsLHP *SplitLine `json:"vs_lhp"`
	VsRHP *SplitLine `json:"vs_rhp"`
}

// BatterSplits computes one batter's line against each pitcher hand.
func (e *Engine) BatterSplits(ctx context.Context, batter identity.Key, f Filters) (*Splits, error) {
	pitches, err := e.listFor(ctx, f.playerFilter())
	if err != nil {
		return nil, err
	}

	split := func(hand string) *SplitLine {
		agg := &hitterAgg{games: strSet{}}
		for _, p := range pitches {
			if !matchesBatter(batter, p) {
				continue
			}
			if p.PitcherThrows == nil || *p.PitcherThrows != hand {
				continue
			}
			agg.observe(p)
		}
		if agg.pa == 0 {
			return nil
		}
		l := agg.line(batter)
		return &SplitLine{
			PA:         l.PA,
			AB:         l.AB,
			Hits:       l.Hits,
			HomeRuns:   l.HomeRuns,
			Walks:      l.Walks,
			Strikeouts: l.Strikeouts,
			AVG:        l.AVG,
			OBP:        l.OBP,
			SLG:        l.SLG,
			OPS:        l.OPS,
			AvgEV:      l.AvgEV,
		}
	}
	return &Splits{VsLHP: split("Left"), VsRHP: split("Right")}, nil
}

// ContactPoint is one batted ball with measured exit velocity and
// launch angle, for contact-quality charts.
type ContactPoint struct {
	ExitSpeed   float64 `json:"exit_speed"`
	LaunchAngle float64 `json:"launch_angle"`
	Result      *string `json:"result"`
	HitType     *string `json:"hit_type"`
}

// BatterContactQuality lists the batter's measured batted balls.
func (e *Engine) BatterContactQuality(ctx context.Context, batter identity.Key, f Filters) ([]ContactPoint, error) {
	pitches, err := e.listFor(ctx, f.playerFilter())
	if err != nil {
		return nil, err
	}

	var out []ContactPoint
	for _, p := range pitches {
		if !matchesBatter(batter, p) {
			continue
		}
		if p.ExitSpeed == nil || p.Angle == nil {
			continue
		}
		out = append(out, ContactPoint{
			ExitSpeed:   *p.ExitSpeed,
			LaunchAngle: *p.Angle,
			Result:      p.PlayResult,
			HitType:     p.TaggedHitType,
		})
	}
	return out, nil
}
