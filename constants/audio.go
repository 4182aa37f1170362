package constants

import "time"

// Audio Engine
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond

	// AudioDefaultVolume is the beep effects.Volume exponent (base 2); 0 is unity gain
	AudioDefaultVolume = -0.5
)

// Kiss (emit) Sound
const (
	KissSoundDuration = 90 * time.Millisecond
	KissSoundFreq     = 1400.0
)

// Hit Sound
const (
	HitSoundDuration  = 220 * time.Millisecond
	HitSoundBaseFreq  = 520.0
	HitSoundSweep     = 1.8 // end frequency multiplier
	HitSoundComboStep = 0.06
	HitSoundComboMax  = 8
)

// Win Fanfare
const (
	WinNoteDuration = 140 * time.Millisecond
)

// WinArpeggio is the C major arpeggio played on winning
var WinArpeggio = []float64{523.25, 659.25, 783.99, 1046.50}
