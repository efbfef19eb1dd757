package combat

import (
	"math"

	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

// Candidate is an active enemy considered by an area effect
type Candidate struct {
	Handle pool.Handle
	Pos    vmath.Vec2
}

// ChainPath plans chain lightning from the struck enemy
// Each jump goes to the nearest not-yet-chained candidate within radius of the previous link
// Stops after maxJumps or when no candidate is in range; never revisits origin or a prior link
func ChainPath(origin Candidate, others []Candidate, radius float64, maxJumps int) []Candidate {
	visited := map[pool.Handle]bool{origin.Handle: true}
	path := make([]Candidate, 0, maxJumps)
	cur := origin.Pos
	r2 := radius * radius

	for jump := 0; jump < maxJumps; jump++ {
		best := -1
		bestD := math.Inf(1)
		for i, c := range others {
			if visited[c.Handle] {
				continue
			}
			d := vmath.DistSq(cur, c.Pos)
			if d <= r2 && d < bestD {
				best, bestD = i, d
			}
		}
		if best < 0 {
			break
		}
		next := others[best]
		visited[next.Handle] = true
		path = append(path, next)
		cur = next.Pos
	}
	return path
}

// ChainDamageFactor is the damage multiplier for the given jump (0-based)
func ChainDamageFactor(falloff float64, jump int) float64 {
	return math.Pow(falloff, float64(jump+1))
}

// InRadius returns candidates within radius of center, excluding one handle
func InRadius(center vmath.Vec2, exclude pool.Handle, cands []Candidate, radius float64) []Candidate {
	r2 := radius * radius
	var out []Candidate
	for _, c := range cands {
		if c.Handle == exclude {
			continue
		}
		if vmath.DistSq(center, c.Pos) <= r2 {
			out = append(out, c)
		}
	}
	return out
}

// Chain plans a chain lightning proc with the default jump count and radius
func Chain(origin Candidate, others []Candidate) []Candidate {
	return ChainPath(origin, others, parameter.ChainRadiusFloat, parameter.ChainJumpCount)
}

// Blast returns the enemies caught by a death bomb centred on the dying enemy
// Deaths it causes must be flagged secondary by the caller and never detonate again
func Blast(origin Candidate, others []Candidate) []Candidate {
	return InRadius(origin.Pos, origin.Handle, others, parameter.DeathBombRadiusFloat)
}
