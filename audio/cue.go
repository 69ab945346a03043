package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/blockfall/game"
)

// Cue is a sound played in response to a session event.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueGameOver
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueGameOver:
		return "game over"
	}
	return "unknown"
}

const (
	lockDuration     = 60 * time.Millisecond
	clearNote        = 90 * time.Millisecond
	gameOverNote     = 220 * time.Millisecond
	cueAttack        = 4 * time.Millisecond
	clearRelease     = 60 * time.Millisecond
	gameOverRelease  = 150 * time.Millisecond
	lockRelease      = 40 * time.Millisecond
	lockFrequency    = 110.0
	gameOverBaseFreq = 392.0
)

// clearNotes is a C major arpeggio, one note per cleared row.
var clearNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

// Config controls cue loudness and the output sample rate.
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   map[Cue]float64
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueLock:     0.6,
			CueClear:    1.0,
			CueGameOver: 0.8,
		},
	}
}

func (c Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return min(max(v*c.MasterVolume, 0), 1)
}

// CueFor maps a session event to the cue it triggers, if any.
func CueFor(e game.Event) (Cue, bool) {
	switch e.Type {
	case game.EventLocked:
		if e.Rows > 0 {
			return 0, false
		}
		return CueLock, true
	case game.EventCleared:
		return CueClear, true
	case game.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}

// NewCue synthesises cue. rows selects how many notes a clear chime plays.
func NewCue(cue Cue, rows int, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueLock:
		osc := NewOscillator(lockFrequency, lockDuration, WaveSquare, rate)
		s = NewEnvelope(osc, lockDuration, cueAttack, lockRelease, rate)
	case CueClear:
		s = clearChime(rows, rate)
	case CueGameOver:
		var notes []beep.Streamer
		for i := range 3 {
			freq := gameOverBaseFreq / float64(int(1)<<i)
			osc := NewOscillator(freq, gameOverNote, WaveSaw, rate)
			notes = append(notes, NewEnvelope(osc, gameOverNote, cueAttack, gameOverRelease, rate))
		}
		s = beep.Seq(notes...)
	default:
		return nil
	}

	return newVolume(s, cfg.volume(cue))
}

func clearChime(rows int, rate beep.SampleRate) beep.Streamer {
	rows = min(max(rows, 1), len(clearNotes))

	notes := make([]beep.Streamer, 0, rows)
	for _, freq := range clearNotes[:rows] {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			log.Printf("audio: clear tone %.2f Hz: %v", freq, err)
			continue
		}
		notes = append(notes, NewEnvelope(beep.Take(rate.N(clearNote), tone), clearNote, cueAttack, clearRelease, rate))
	}
	return beep.Seq(notes...)
}
