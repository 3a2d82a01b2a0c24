package models

// LevelThresholds are the ascending point cutoffs for each level. Index 0
// is always zero so every non-negative total maps to at least level 1.
var LevelThresholds = []int{0, 100, 250, 500, 1000, 1750, 2750, 4000, 5500, 7500, 10000}

// CalculateLevel returns the level reached with the given point total.
// Scans from the highest threshold down so exact threshold values count
// as having reached that level.
func CalculateLevel(points int) int {
	for i := len(LevelThresholds) - 1; i >= 0; i-- {
		if points >= LevelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// PointsForNextLevel returns how many points remain until the next level,
// or 0 when the maximum defined level has been reached.
func PointsForNextLevel(points int) int {
	level := CalculateLevel(points)
	if level >= len(LevelThresholds) {
		return 0
	}
	return LevelThresholds[level] - points
}
