package progression

// XPThreshold returns the XP needed to leave the given level:
// 40*level^2 + 25*level. Strictly increasing for level >= 1.
func XPThreshold(level int) int {
	return 40*level*level + 25*level
}

// NeedsLevelUp reports whether an account at the given level and xp has
// crossed the threshold for that level.
func NeedsLevelUp(level, xp int) bool {
	return xp >= XPThreshold(level)
}

// LevelUpBonus returns the points credited when a player reaches
// newLevel. Bands follow the rank tiers and saturate at the top band.
func LevelUpBonus(newLevel int) int {
	switch {
	case newLevel <= 5: // F
		return 500
	case newLevel <= 10: // E
		return 900
	case newLevel <= 15: // D
		return 1500
	case newLevel <= 18: // C
		return 3000
	case newLevel <= 21: // B
		return 4800
	case newLevel <= 24: // A
		return 10000
	case newLevel <= 26: // S
		return 25000
	default: // SS
		return 50000
	}
}

// rankLadder maps level 1..27 onto display tiers.
var rankLadder = []string{
	"F5", "F4", "F3", "F2", "F1",
	"E5", "E4", "E3", "E2", "E1",
	"D5", "D4", "D3", "D2", "D1",
	"C3", "C2", "C1",
	"B3", "B2", "B1",
	"A3", "A2", "A1",
	"S2", "S1",
	"SS",
}

// Rank returns the display label for a level. Levels outside the ladder
// clamp to its ends: anything below 1 reads F5, anything above 27 reads
// SS (levels keep growing past the last tier).
func Rank(level int) string {
	if level < 1 {
		return rankLadder[0]
	}
	if level > len(rankLadder) {
		return rankLadder[len(rankLadder)-1]
	}
	return rankLadder[level-1]
}
