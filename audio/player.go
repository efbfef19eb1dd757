// Package audio synthesizes the game's sound cues and plays them through the speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/star-defense/core"
	"github.com/lixenwraith/star-defense/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	// maxVoices bounds concurrent cues; extra requests are dropped
	maxVoices = 24
)

// Player plays sound cues; implementations must be safe to call from the game goroutine
type Player interface {
	Play(t core.SoundType)
	Close()
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(core.SoundType) {}
func (Silent) Close()              {}

// SpeakerPlayer mixes cues into the system speaker
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// New opens the speaker; when muted or when the device is unavailable it returns Silent
func New(mute bool, volume float64, log zerolog.Logger) Player {
	if mute {
		return Silent{}
	}
	p := &SpeakerPlayer{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing muted")
		return Silent{}
	}
	speaker.Play(p.mixer)
	return p
}

func (p *SpeakerPlayer) Play(t core.SoundType) {
	s := Cue(t, sampleRate)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(withVolume(s, p.volume))
	}
	speaker.Unlock()
}

func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Dispatch plays every sound request in a batch of consumed events
func Dispatch(p Player, events []event.GameEvent) {
	for _, ev := range events {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		if t, ok := ev.Payload.(core.SoundType); ok {
			p.Play(t)
		}
	}
}
