package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/love-tap/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays the game's synthesized cues.
// Sound is best effort: every Play* is a no-op until Initialize succeeds, and a
// cue that fails to build is dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; later Play* calls are no-ops
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Initialized reports whether cues will be audible
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayKiss plays the short smack for an emitted kiss
func (sm *SoundManager) PlayKiss() {
	sm.play(func() (beep.Streamer, error) {
		return NewKissStreamer(sampleRate), nil
	})
}

// PlayHit plays a rising chirp; the pitch climbs with the combo streak
func (sm *SoundManager) PlayHit(combo int) {
	sm.play(func() (beep.Streamer, error) {
		return NewHitStreamer(sampleRate, combo), nil
	})
}

// PlayWin plays the victory arpeggio
func (sm *SoundManager) PlayWin() {
	sm.play(func() (beep.Streamer, error) {
		return NewWinStreamer(sampleRate)
	})
}

func (sm *SoundManager) play(build func() (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := build()
	if err != nil {
		return
	}

	vol := &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}
	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}

// NewKissStreamer builds the emit cue: a noisy pop over a fast-decaying high sine
func NewKissStreamer(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(constants.KissSoundDuration), &kissGenerator{sr: sr})
}

// NewHitStreamer builds the hit cue, a frequency sweep whose base rises with combo
func NewHitStreamer(sr beep.SampleRate, combo int) beep.Streamer {
	base := hitFrequency(combo)
	return beep.Take(sr.N(constants.HitSoundDuration), &chirpGenerator{
		sr:      sr,
		from:    base,
		to:      base * constants.HitSoundSweep,
		samples: sr.N(constants.HitSoundDuration),
	})
}

// hitFrequency is the chirp's starting pitch, capped at HitSoundComboMax
func hitFrequency(combo int) float64 {
	combo = max(0, min(combo, constants.HitSoundComboMax))
	return constants.HitSoundBaseFreq * (1 + constants.HitSoundComboStep*float64(combo))
}

// NewWinStreamer builds the arpeggio as a sequence of sine notes
func NewWinStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(constants.WinArpeggio))
	for _, freq := range constants.WinArpeggio {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("win note %.2fHz: %w", freq, err)
		}
		notes = append(notes, beep.Take(sr.N(constants.WinNoteDuration), tone))
	}
	return beep.Seq(notes...), nil
}

// kissGenerator mixes filtered noise with a 1.4kHz blip under an exponential envelope
type kissGenerator struct {
	sr   beep.SampleRate
	pos  int
	last float64
}

func (g *kissGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 45)

		// One-pole low-pass on white noise softens the pop
		g.last = 0.7*g.last + 0.3*(rand.Float64()*2-1)
		blip := math.Sin(2 * math.Pi * constants.KissSoundFreq * t)

		sample := envelope * (0.35*g.last + 0.25*blip)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *kissGenerator) Err() error {
	return nil
}

// chirpGenerator sweeps linearly from one frequency to another with a sine fade
type chirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func (g *chirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress
		envelope := math.Sin(math.Pi * progress)

		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *chirpGenerator) Err() error {
	return nil
}

// Ensure generators stay streamers
var (
	_ beep.Streamer = (*kissGenerator)(nil)
	_ beep.Streamer = (*chirpGenerator)(nil)
)
