package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one oscillator note with a pitch slide and a decaying gain
type Tone struct {
	Wave  WaveType
	Freq  float64       // start frequency (Hz)
	Slide float64       // frequency change over the note, exponential ramp
	Dur   time.Duration // note length
	Vol   float64       // start gain
	Delay time.Duration // offset within the cue
}

// decayFloor is the gain an exponential ramp ends at
const decayFloor = 0.01

// oscillator renders a tone sample by sample
type oscillator struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	return &oscillator{tone: t, rate: rate, total: rate.N(t.Dur)}
}

// freqAt ramps exponentially from Freq to max(1, Freq+Slide)
func (o *oscillator) freqAt(frac float64) float64 {
	if o.tone.Slide == 0 {
		return o.tone.Freq
	}
	end := math.Max(1, o.tone.Freq+o.tone.Slide)
	return o.tone.Freq * math.Pow(end/o.tone.Freq, frac)
}

// gainAt ramps exponentially from Vol to decayFloor
func (o *oscillator) gainAt(frac float64) float64 {
	if o.tone.Vol <= decayFloor {
		return o.tone.Vol
	}
	return o.tone.Vol * math.Pow(decayFloor/o.tone.Vol, frac)
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		frac := float64(o.pos) / float64(o.total)
		v := wave(o.tone.Wave, o.phase) * o.gainAt(frac)
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freqAt(frac) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// sweep is a linear frequency ramp under a rise-then-fall gain, used for the god cue
type sweep struct {
	from, to float64
	peak     float64
	rise     int
	total    int
	sweepN   int
	rate     beep.SampleRate
	pos      int
	phase    float64
}

func newSweep(from, to float64, sweepDur, rise, total time.Duration, peak float64, rate beep.SampleRate) *sweep {
	return &sweep{
		from: from, to: to, peak: peak,
		rise: rate.N(rise), total: rate.N(total), sweepN: rate.N(sweepDur),
		rate: rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		var gain float64
		if s.pos < s.rise {
			gain = s.peak * float64(s.pos) / float64(s.rise)
		} else {
			gain = s.peak * float64(s.total-s.pos) / float64(s.total-s.rise)
		}
		freq := s.to
		if s.pos < s.sweepN {
			freq = s.from + (s.to-s.from)*float64(s.pos)/float64(s.sweepN)
		}
		v := math.Sin(2*math.Pi*s.phase) * gain
		samples[i][0], samples[i][1] = v, v
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// render lays tones out on a shared timeline
func render(tones []Tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = newOscillator(t, rate)
		if t.Delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(t.Delay)), s)
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return beep.Mix(parts...)
}

// withVolume scales a stream by a linear gain; zero or less is silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
