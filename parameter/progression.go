package parameter

import "time"

// Energy and upgrade selection
const (
	// EnergyInitialThreshold is drops needed for the first upgrade
	EnergyInitialThreshold = 3

	// EnergyThresholdStep is added to the threshold after every selection
	EnergyThresholdStep = 2

	// UpgradeChoiceCount is the number of upgrades offered per selection
	UpgradeChoiceCount = 3
)

// God drop
const (
	// GodDropTime is survival time when the single golden drop appears
	GodDropTime = 45 * time.Second

	// GodScoreMultiplier applies to every enemy obliterated by the god drop
	GodScoreMultiplier = 2
)
