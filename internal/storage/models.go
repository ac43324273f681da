package storage

// Quest is a repeatable real-life action with fixed stat effects.
type Quest struct {
	ID           string
	Title        string
	Icon         string
	HPImpact     int
	EnergyImpact int
	XPImpact     int
	IsCustom     bool
	Position     int
}

// PlayerStats is the canonical stat state for the single player.
// Experience is fractional: each trigger adds XPImpact/10 of a point.
type PlayerStats struct {
	Health     int
	Energy     int
	Experience float64
}

// DailySnapshot is the recorded stat state for one calendar date.
type DailySnapshot struct {
	Date   string // YYYY-MM-DD
	HP     int
	Energy int
	XP     int
}
