// Package identity resolves who a pitch belongs to when vendor data
// carries a numeric id, a display name, both, or neither.
package identity

import "fmt"

const undefined = "Undefined"

// Key identifies a player across rows. Rows with a numeric id group by
// that id; rows without one fall back to the display name. The zero Key
// means the row carried neither and cannot be attributed.
type Key struct {
	ID    int64
	HasID bool
	Name  string
}

// PersonKey builds the grouping key for a player, preferring the id.
func PersonKey(id *int64, name *string) Key {
	if id != nil {
		return Key{ID: *id, HasID: true}
	}
	if name != nil {
		return Key{Name: *name}
	}
	return Key{}
}

// Zero reports whether the key carries no identity at all.
func (k Key) Zero() bool {
	return !k.HasID && k.Name == ""
}

// Label returns a human-readable form of the key for report output,
// preferring the observed display name.
func (k Key) Label(name *string) string {
	if name != nil && *name != "" {
		return *name
	}
	if k.HasID {
		return fmt.Sprintf("Unknown (%d)", k.ID)
	}
	return k.Name
}

// EffectivePitchType prefers the manually tagged pitch type and falls
// back to the machine classification when the tag is absent or
// "Undefined". Returns nil when neither side knows.
func EffectivePitchType(tagged, auto *string) *string {
	if tagged != nil && *tagged != "" && *tagged != undefined {
		return tagged
	}
	if auto != nil && *auto != "" && *auto != undefined {
		return auto
	}
	return nil
}
