package engine

import "strings"

// Status label fragments. Each band contributes at most one fragment; the
// health and experience bands are mutually exclusive within themselves, the
// energy band is independent.
const (
	StatusEnergetic  = "energetic"
	StatusExhausted  = "exhausted"
	StatusLeaps      = "leaps & bounds"
	StatusMeditation = "meditation"
	StatusHungry     = "hungry"
	StatusStable     = "stable"
)

const statusSeparator = ", "

// Classify derives the status label for a day's snapshot values. Fragments
// accumulate in a fixed order (health, experience, energy); when none
// triggers the label is StatusStable. Deterministic and total over
// [0, MaxStat] inputs.
func Classify(hp, xp, energy int) string {
	var frags []string

	switch {
	case hp > 8:
		frags = append(frags, StatusEnergetic)
	case hp < 3:
		frags = append(frags, StatusExhausted)
	}

	switch {
	case xp > 7:
		frags = append(frags, StatusLeaps)
	case xp < 3:
		frags = append(frags, StatusMeditation)
	}

	if energy < 2 {
		frags = append(frags, StatusHungry)
	}

	if len(frags) == 0 {
		return StatusStable
	}
	return strings.Join(frags, statusSeparator)
}
