// Package stats turns stored pitch events into derived performance
// statistics: leaderboards, splits, arsenals and usage breakdowns.
//
// Every rate helper returns nil, never zero, when its denominator is
// non-positive. A zero would read as a measured rate with no
// observations behind it.
package stats

import "math"

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func ptr(v float64) *float64 { return &v }

// Pct returns num/den as a percentage rounded to the given decimals.
func Pct(num, den float64, decimals int) *float64 {
	if den <= 0 {
		return nil
	}
	return ptr(roundTo(num/den*100, decimals))
}

// Rate returns num/den rounded to 3 decimals.
func Rate(num, den float64) *float64 {
	if den <= 0 {
		return nil
	}
	return ptr(roundTo(num/den, 3))
}

// BattingAverage is H / AB.
func BattingAverage(hits, atBats int64) *float64 {
	return Rate(float64(hits), float64(atBats))
}

// OBP is (H + BB + HBP) / (AB + BB + HBP + SF).
func OBP(hits, walks, hbp, atBats, sacFlies int64) *float64 {
	return Rate(float64(hits+walks+hbp), float64(atBats+walks+hbp+sacFlies))
}

// SLG is TB / AB.
func SLG(totalBases, atBats int64) *float64 {
	return Rate(float64(totalBases), float64(atBats))
}

// OPS is OBP + SLG, nil when either side is nil.
func OPS(obp, slg *float64) *float64 {
	if obp == nil || slg == nil {
		return nil
	}
	return ptr(roundTo(*obp+*slg, 3))
}

// ISO is SLG - AVG, nil when either side is nil.
func ISO(slg, avg *float64) *float64 {
	if slg == nil || avg == nil {
		return nil
	}
	return ptr(roundTo(*slg-*avg, 3))
}

// HardHitPct is hard-hit balls (exit velocity >= 95) over balls in play.
func HardHitPct(hardHits, ballsInPlay int64) *float64 {
	return Pct(float64(hardHits), float64(ballsInPlay), 1)
}

// ContactPct is (swings - whiffs) / swings.
func ContactPct(swings, whiffs int64) *float64 {
	return Pct(float64(swings-whiffs), float64(swings), 1)
}

// meanAcc accumulates nullable observations for a mean.
type meanAcc struct {
	sum float64
	n   int64
}

func (a *meanAcc) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.n++
}

// mean returns the rounded mean, nil when nothing was observed.
func (a *meanAcc) mean(decimals int) *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(roundTo(a.sum/float64(a.n), decimals))
}

// extremeAcc tracks a nullable min or max.
type extremeAcc struct {
	val float64
	set bool
}

func (a *extremeAcc) addMax(v *float64) {
	if v == nil {
		return
	}
	if !a.set || *v > a.val {
		a.val, a.set = *v, true
	}
}

func (a *extremeAcc) addMin(v *float64) {
	if v == nil {
		return
	}
	if !a.set || *v < a.val {
		a.val, a.set = *v, true
	}
}

func (a *extremeAcc) value(decimals int) *float64 {
	if !a.set {
		return nil
	}
	return ptr(roundTo(a.val, decimals))
}
