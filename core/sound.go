package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot   SoundType = iota // Volley fired
	SoundHit                      // Projectile hit, enemy survived
	SoundExplode                  // Enemy destroyed
	SoundCollect                  // Energy drop collected
	SoundUpgrade                  // Upgrade applied
	SoundGod                      // God drop obliteration
	SoundHurt                     // Player took contact damage
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"shoot", "hit", "explode", "collect", "upgrade", "god", "hurt"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
