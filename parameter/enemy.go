package parameter

import "time"

// Difficulty scaling
const (
	// DifficultyRampSeconds is the survival time that adds +1 to the difficulty multiplier
	DifficultyRampSeconds = 45.0

	// EnemyBaseHP is hit points at difficulty 1 and scale 1
	EnemyBaseHP = 25.0

	// EnemyScaleMinFloat, EnemyScaleMaxFloat bound the per-spawn size/hp jitter
	EnemyScaleMinFloat = 0.8
	EnemyScaleMaxFloat = 1.3

	// EnemySpeedMin, EnemySpeedMax bound base chase speed (units/sec, inclusive)
	EnemySpeedMin = 50
	EnemySpeedMax = 100

	// EnemySpeedPerDifficulty is added speed per difficulty point
	EnemySpeedPerDifficulty = 3.0

	// EnemyScorePerDifficulty is score value per difficulty point (floored)
	EnemyScorePerDifficulty = 10.0
)

// Spawning
const (
	// EnemySpawnInterval is the delay between enemy spawns
	EnemySpawnInterval = 600 * time.Millisecond

	// EnemySpawnMarginFloat is how far outside the visible area enemies appear
	EnemySpawnMarginFloat = 50.0

	// EnemyRadiusFloat is collision radius at scale 1
	EnemyRadiusFloat = 24.0

	// EnemyCullMarginFloat releases enemies that drift this far past the spawn ring
	EnemyCullMarginFloat = 200.0

	// EnemySpinFloat is visual rotation per frame
	EnemySpinFloat = 0.05
)
