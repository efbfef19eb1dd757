package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/star-defense/core"
)

const ms = time.Millisecond

// cueTones holds the note layout of every sound cue except god
var cueTones = map[core.SoundType][]Tone{
	core.SoundShoot: {
		{Wave: WaveSquare, Freq: 600, Slide: -300, Dur: 100 * ms, Vol: 0.03},
	},
	core.SoundHit: {
		{Wave: WaveSaw, Freq: 150, Dur: 100 * ms, Vol: 0.05},
	},
	core.SoundExplode: {
		{Wave: WaveSaw, Freq: 100, Slide: -50, Dur: 300 * ms, Vol: 0.1},
		{Wave: WaveSquare, Freq: 60, Dur: 400 * ms, Vol: 0.1, Delay: 50 * ms},
	},
	core.SoundCollect: {
		{Wave: WaveSine, Freq: 800, Dur: 100 * ms, Vol: 0.05},
		{Wave: WaveSine, Freq: 1200, Dur: 150 * ms, Vol: 0.05, Delay: 80 * ms},
	},
	core.SoundUpgrade: {
		{Wave: WaveSine, Freq: 400, Dur: 100 * ms, Vol: 0.1},
		{Wave: WaveSine, Freq: 600, Dur: 100 * ms, Vol: 0.1, Delay: 100 * ms},
		{Wave: WaveSine, Freq: 800, Dur: 200 * ms, Vol: 0.1, Delay: 200 * ms},
	},
	core.SoundHurt: {
		{Wave: WaveNoise, Dur: 150 * ms, Vol: 0.08},
		{Wave: WaveSaw, Freq: 90, Slide: -40, Dur: 250 * ms, Vol: 0.1},
	},
}

// God cue: 100Hz to 800Hz over 2s, gain up to 0.2 at 1s then down to silence at 2.5s
const (
	godFrom  = 100.0
	godTo    = 800.0
	godSweep = 2 * time.Second
	godRise  = time.Second
	godTotal = 2500 * ms
	godPeak  = 0.2
)

// Cue builds a fresh streamer for one sound; nil for unknown types
func Cue(t core.SoundType, rate beep.SampleRate) beep.Streamer {
	if t == core.SoundGod {
		return newSweep(godFrom, godTo, godSweep, godRise, godTotal, godPeak, rate)
	}
	tones, ok := cueTones[t]
	if !ok {
		return nil
	}
	return render(tones, rate)
}

// CueLength is the duration of a cue including delayed notes
func CueLength(t core.SoundType) time.Duration {
	if t == core.SoundGod {
		return godTotal
	}
	var end time.Duration
	for _, tone := range cueTones[t] {
		end = max(end, tone.Delay+tone.Dur)
	}
	return end
}
