package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/termpong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Player turns engine events into short retro beeps.
// The zero value is silent.
type Player struct {
	enabled bool
}

// Init opens the speaker. On error the returned player is silent and the
// game can carry on without sound.
func Init() (*Player, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Close shuts the speaker down
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// Enabled reports whether sounds are played
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play queues the sounds for the events of one tick
func (p *Player) Play(events game.Event) {
	if !p.enabled || events == 0 {
		return
	}
	for _, s := range Sounds(events) {
		speaker.Play(s)
	}
}

// Sounds builds the streamers for a set of events
func Sounds(events game.Event) []beep.Streamer {
	var out []beep.Streamer
	if events.Has(game.EventPaddleHit) {
		// High-pitched short beep
		out = append(out, squareWave(880, 50*time.Millisecond))
	}
	if events.Has(game.EventWallBounce) {
		out = append(out, squareWave(440, 30*time.Millisecond))
	}
	if events.Has(game.EventBallOut) {
		// Descending run, played back to back
		out = append(out, beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		))
	}
	return out
}

// squareWave generates a square wave tone
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
