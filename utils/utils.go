package utils

// xpPerLevel is how much XP separates two levels.
const xpPerLevel = 500

// LevelForXP maps accumulated XP to a level, starting at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/xpPerLevel + 1
}

// ClampProficiency bounds a proficiency value to 0-100.
func ClampProficiency(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
