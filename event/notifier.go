package event

import (
	"sync"
	"time"

	"github.com/lixenwraith/star-defense/upgrade"
)

// Snapshot is the HUD state emitted once per processed tick
type Snapshot struct {
	Score     int
	HP        float64
	MaxHP     float64
	Energy    int
	MaxEnergy int
	Elapsed   time.Duration
}

// Notifier receives run lifecycle signals; calls are fire-and-forget from the game goroutine
type Notifier interface {
	HUD(s Snapshot)
	LevelUp(offers []upgrade.Definition)
	Resume()
	GameOver(score int)
	Toast(msg string)
}

// Nop discards every notification
type Nop struct{}

func (Nop) HUD(Snapshot)                 {}
func (Nop) LevelUp([]upgrade.Definition) {}
func (Nop) Resume()                      {}
func (Nop) GameOver(int)                 {}
func (Nop) Toast(string)                 {}

// Multi fans notifications out in order
type Multi []Notifier

func (m Multi) HUD(s Snapshot) {
	for _, n := range m {
		n.HUD(s)
	}
}

func (m Multi) LevelUp(offers []upgrade.Definition) {
	for _, n := range m {
		n.LevelUp(offers)
	}
}

func (m Multi) Resume() {
	for _, n := range m {
		n.Resume()
	}
}

func (m Multi) GameOver(score int) {
	for _, n := range m {
		n.GameOver(score)
	}
}

func (m Multi) Toast(msg string) {
	for _, n := range m {
		n.Toast(msg)
	}
}

// Recorder keeps every notification, for tests and the debug overlay
type Recorder struct {
	mu sync.Mutex

	Snapshots []Snapshot
	LevelUps  [][]upgrade.Definition
	Resumes   int
	GameOvers []int
	Toasts    []string
}

func (r *Recorder) HUD(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Snapshots = append(r.Snapshots, s)
}

func (r *Recorder) LevelUp(offers []upgrade.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LevelUps = append(r.LevelUps, offers)
}

func (r *Recorder) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Resumes++
}

func (r *Recorder) GameOver(score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.GameOvers = append(r.GameOvers, score)
}

func (r *Recorder) Toast(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Toasts = append(r.Toasts, msg)
}

// LastSnapshot returns the most recent HUD state
func (r *Recorder) LastSnapshot() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Snapshots) == 0 {
		return Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}
