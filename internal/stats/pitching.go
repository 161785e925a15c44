package stats

import (
	"context"
	"fmt"
	"sort"

	"pitchstats/internal/identity"
	"pitchstats/internal/schema"
)

// PitcherLine is one pitcher leaderboard row. Rate fields are nil when
// the denominator had no observations. Row order is unspecified;
// callers sort.
type PitcherLine struct {
	PitcherID    *int64   `json:"pitcher_id"`
	Name         string   `json:"name"`
	Throws       *string  `json:"throws"`
	Team         *string  `json:"team"`
	Games        int64    `json:"g"`
	BattersFaced int64    `json:"bf"`
	Pitches      int64    `json:"p"`
	Strikeouts   int64    `json:"k"`
	Walks        int64    `json:"bb"`
	HomeRuns     int64    `json:"hr"`
	KPct         *float64 `json:"k_pct"`
	BBPct        *float64 `json:"bb_pct"`
	CSWPct       *float64 `json:"csw_pct"`
	InZonePct    *float64 `json:"in_zone_pct"`
	WhiffPct     *float64 `json:"whiff_pct"`
	StrikePct    *float64 `json:"strike_pct"`
	GBPct        *float64 `json:"gb_pct"`
	FBPct        *float64 `json:"fb_pct"`
	AvgVelo      *float64 `json:"avg_velo"`
	MaxVelo      *float64 `json:"max_velo"`
	AvgSpin      *float64 `json:"avg_spin"`
}

type pitcherAgg struct {
	id     *int64
	name   *string
	throws *string
	team   *string

	games strSet
	pas   intSet

	pitches, k, bb, bip            int64
	calledStrikes, swingingStrikes int64
	fouls, swings, inZone, withLoc int64
	groundBalls, flyBalls          int64
	lineDrives, homeRuns           int64

	velo meanAcc
	max  extremeAcc
	spin meanAcc
}

// PitcherLeaderboard aggregates one line per effective pitcher key.
func (e *Engine) PitcherLeaderboard(ctx context.Context, f Filters) ([]PitcherLine, error) {
	pitches, err := e.listFor(ctx, f.pitcherFilter())
	if err != nil {
		return nil, err
	}

	groups := map[identity.Key]*pitcherAgg{}
	var order []identity.Key
	for _, p := range pitches {
		key := identity.PersonKey(p.PitcherID, p.Pitcher)
		if key.Zero() {
			continue
		}
		agg, ok := groups[key]
		if !ok {
			agg = &pitcherAgg{games: strSet{}, pas: intSet{}}
			groups[key] = agg
			order = append(order, key)
		}
		agg.observe(p)
	}

	out := make([]PitcherLine, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key].line(key))
	}
	return out, nil
}

func (a *pitcherAgg) observe(p *schema.Pitch) {
	if p.PitcherID != nil {
		a.id = p.PitcherID
	}
	if p.Pitcher != nil {
		a.name = p.Pitcher
	}
	if p.PitcherThrows != nil {
		a.throws = p.PitcherThrows
	}
	if p.PitcherTeam != nil {
		a.team = p.PitcherTeam
	}

	a.games.add(p.GameID)
	a.pas.add(p.PAofInning)
	a.pitches++

	if p.KorBB != nil {
		switch *p.KorBB {
		case "Strikeout":
			a.k++
		case "Walk":
			a.bb++
		}
	}
	if IsBallInPlay(p.PitchCall) {
		a.bip++
	}
	if IsCalledStrike(p.PitchCall) {
		a.calledStrikes++
	}
	if IsWhiff(p.PitchCall) {
		a.swingingStrikes++
	}
	if IsFoul(p.PitchCall) {
		a.fouls++
	}
	if IsSwing(p.PitchCall) {
		a.swings++
	}
	if in := InZone(p.PlateLocSide, p.PlateLocHeight); in != nil {
		a.withLoc++
		if *in {
			a.inZone++
		}
	}
	if p.TaggedHitType != nil {
		switch *p.TaggedHitType {
		case "GroundBall":
			a.groundBalls++
		case "FlyBall":
			a.flyBalls++
		case "LineDrive":
			a.lineDrives++
		}
	}
	if p.PlayResult != nil && *p.PlayResult == "HomeRun" {
		a.homeRuns++
	}

	a.velo.add(p.RelSpeed)
	a.max.addMax(p.RelSpeed)
	a.spin.add(p.SpinRate)
}

func (a *pitcherAgg) line(key identity.Key) PitcherLine {
	total := float64(a.pitches)
	csw := a.calledStrikes + a.swingingStrikes
	return PitcherLine{
		PitcherID:    a.id,
		Name:         key.Label(a.name),
		Throws:       a.throws,
		Team:         a.team,
		Games:        int64(len(a.games)),
		BattersFaced: int64(len(a.pas)),
		Pitches:      a.pitches,
		Strikeouts:   a.k,
		Walks:        a.bb,
		HomeRuns:     a.homeRuns,
		KPct:         Pct(float64(a.k), total, 1),
		BBPct:        Pct(float64(a.bb), total, 1),
		CSWPct:       Pct(float64(csw), total, 1),
		InZonePct:    Pct(float64(a.inZone), float64(a.withLoc), 1),
		WhiffPct:     Pct(float64(a.swingingStrikes), float64(a.swings), 1),
		StrikePct:    Pct(float64(csw+a.fouls+a.bip), total, 1),
		GBPct:        Pct(float64(a.groundBalls), float64(a.bip), 1),
		FBPct:        Pct(float64(a.flyBalls), float64(a.bip), 1),
		AvgVelo:      a.velo.mean(1),
		MaxVelo:      a.max.value(1),
		AvgSpin:      a.spin.mean(0),
	}
}

// ArsenalRow is one pitch type of a pitcher's repertoire.
type ArsenalRow struct {
	PitchType string   `json:"pitch_type"`
	Group     string   `json:"group"`
	Count     int64    `json:"count"`
	UsagePct  *float64 `json:"pct"`
	AvgVelo   *float64 `json:"avg_velo"`
	VeloRange *string  `json:"velo_range"`
	AvgSpin   *float64 `json:"avg_spin"`
	AvgIVB    *float64 `json:"avg_ivb"`
	AvgHB     *float64 `json:"avg_hb"`
	Extension *float64 `json:"extension"`
	RelHeight *float64 `json:"rel_height"`
	InZonePct *float64 `json:"in_zone_pct"`
	WhiffPct  *float64 `json:"whiff_pct"`
	CSWPct    *float64 `json:"csw_pct"`
	AvgEV     *float64 `json:"avg_ev"`
}

type arsenalAgg struct {
	count            int64
	velo, spin       meanAcc
	minVelo, maxVelo extremeAcc
	ivb, hb          meanAcc
	ext, relH        meanAcc
	inZone, withLoc  int64
	swings, whiffs   int64
	csw, bip         int64
	evOnBIP          meanAcc
}

// PitcherArsenal breaks one pitcher's pitches down by effective pitch
// type, ordered by descending count.
func (e *Engine) PitcherArsenal(ctx context.Context, pitcher identity.Key, f Filters) ([]ArsenalRow, error) {
	pitches, err := e.listFor(ctx, f.playerFilter())
	if err != nil {
		return nil, err
	}

	groups := map[string]*arsenalAgg{}
	var total int64
	for _, p := range pitches {
		if !matchesPitcher(pitcher, p) {
			continue
		}
		ept := identity.EffectivePitchType(p.TaggedPitchType, p.AutoPitchType)
		if ept == nil {
			continue
		}
		agg, ok := groups[*ept]
		if !ok {
			agg = &arsenalAgg{}
			groups[*ept] = agg
		}
		agg.observe(p)
		total++
	}

	out := make([]ArsenalRow, 0, len(groups))
	for pt, agg := range groups {
		out = append(out, agg.row(pt, total))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].PitchType < out[j].PitchType
	})
	return out, nil
}

func (a *arsenalAgg) observe(p *schema.Pitch) {
	a.count++
	a.velo.add(p.RelSpeed)
	a.minVelo.addMin(p.RelSpeed)
	a.maxVelo.addMax(p.RelSpeed)
	a.spin.add(p.SpinRate)
	a.ivb.add(p.InducedVertBreak)
	a.hb.add(p.HorzBreak)
	a.ext.add(p.Extension)
	a.relH.add(p.RelHeight)
	if in := InZone(p.PlateLocSide, p.PlateLocHeight); in != nil {
		a.withLoc++
		if *in {
			a.inZone++
		}
	}
	if IsSwing(p.PitchCall) {
		a.swings++
	}
	if IsWhiff(p.PitchCall) {
		a.whiffs++
	}
	if IsCSW(p.PitchCall) {
		a.csw++
	}
	if IsBallInPlay(p.PitchCall) {
		a.bip++
		a.evOnBIP.add(p.ExitSpeed)
	}
}

func (a *arsenalAgg) row(pitchType string, total int64) ArsenalRow {
	var veloRange *string
	if lo, hi := a.minVelo.value(0), a.maxVelo.value(0); lo != nil && hi != nil {
		s := fmt.Sprintf("%.0f-%.0f", *lo, *hi)
		veloRange = &s
	}
	return ArsenalRow{
		PitchType: pitchType,
		Group:     PitchGroup(pitchType),
		Count:     a.count,
		UsagePct:  Pct(float64(a.count), float64(total), 1),
		AvgVelo:   a.velo.mean(1),
		VeloRange: veloRange,
		AvgSpin:   a.spin.mean(0),
		AvgIVB:    a.ivb.mean(1),
		AvgHB:     a.hb.mean(1),
		Extension: a.ext.mean(1),
		RelHeight: a.relH.mean(1),
		InZonePct: Pct(float64(a.inZone), float64(a.withLoc), 1),
		WhiffPct:  Pct(float64(a.whiffs), float64(a.swings), 1),
		CSWPct:    Pct(float64(a.csw), float64(a.count), 1),
		AvgEV:     a.evOnBIP.mean(1),
	}
}

// UsageRow is one pitch type's share against one batter hand.
type UsageRow struct {
	PitchType string   `json:"pitch_type"`
	Count     int64    `json:"count"`
	UsagePct  *float64 `json:"pct"`
}

// Usage groups pitch-type usage per batter hand, descending count
// within each hand.
type Usage struct {
	VsLeft  []UsageRow `json:"Left"`
	VsRight []UsageRow `json:"Right"`
}

// PitcherUsageByHand splits a pitcher's pitch-type usage by the
// batter's side of the plate.
func (e *Engine) PitcherUsageByHand(ctx context.Context, pitcher identity.Key, f Filters) (*Usage, error) {
	pitches, err := e.listFor(ctx, f.playerFilter())
	if err != nil {
		return nil, err
	}

	counts := map[string]map[string]int64{"Left": {}, "Right": {}}
	totals := map[string]int64{}
	for _, p := range pitches {
		if !matchesPitcher(pitcher, p) || p.BatterSide == nil {
			continue
		}
		side, ok := counts[*p.BatterSide]
		if !ok {
			continue
		}
		ept := identity.EffectivePitchType(p.TaggedPitchType, p.AutoPitchType)
		if ept == nil {
			continue
		}
		side[*ept]++
		totals[*p.BatterSide]++
	}

	build := func(hand string) []UsageRow {
		rows := make([]UsageRow, 0, len(counts[hand]))
		for pt, n := range counts[hand] {
			rows = append(rows, UsageRow{
				PitchType: pt,
				Count:     n,
				UsagePct:  Pct(float64(n), float64(totals[hand]), 1),
			})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].PitchType < rows[j].PitchType
		})
		return rows
	}
	return &Usage{VsLeft: build("Left"), VsRight: build("Right")}, nil
}
