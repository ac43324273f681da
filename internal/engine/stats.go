package engine

import (
	"math"

	"liferpg/internal/storage"
)

// MaxStat is the ceiling for all three player stats.
const MaxStat = 10

// XPScale converts a quest's raw XP impact into experience points: each
// trigger accrues XPImpact/XPScale of a point. The raw values in the catalog
// are pre-multiplied by ten.
const XPScale = 10.0

// Clamp saturates v at the bounds of [lo, hi]. It is total: any input maps
// to a value in range, never an error.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// ApplyQuest returns the stats after one trigger of the quest. Pure: the
// caller commits the result as the new canonical state. No sequence of
// applications can leave any stat outside [0, MaxStat].
func ApplyQuest(s storage.PlayerStats, q storage.Quest) storage.PlayerStats {
	return storage.PlayerStats{
		Health:     Clamp(s.Health+q.HPImpact, 0, MaxStat),
		Energy:     Clamp(s.Energy+q.EnergyImpact, 0, MaxStat),
		Experience: clampFloat(s.Experience+float64(q.XPImpact)/XPScale, 0, MaxStat),
	}
}

// SnapshotOf freezes the stats for a history row. Fractional experience is
// floored: a point counts once it is whole.
func SnapshotOf(date string, s storage.PlayerStats) storage.DailySnapshot {
	return storage.DailySnapshot{
		Date:   date,
		HP:     s.Health,
		Energy: s.Energy,
		XP:     int(math.Floor(s.Experience)),
	}
}
