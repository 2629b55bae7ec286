package parameter

// Score awarded per meteor tier destroyed by a projectile
const (
	ScoreLarge  = 20
	ScoreMedium = 50
	ScoreSmall  = 100
)
