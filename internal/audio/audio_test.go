package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/termpong/internal/game"
)

// drain reads a streamer to the end and returns the samples it produced
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func TestSquareWave_Length(t *testing.T) {
	samples := drain(squareWave(880, 50*time.Millisecond))

	want := sampleRate.N(50 * time.Millisecond)
	if len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	for i, s := range drain(squareWave(440, 10*time.Millisecond)) {
		if math.Abs(s[0]) != volume || s[0] != s[1] {
			t.Fatalf("sample %d: unexpected value %v", i, s)
		}
	}
}

func TestSounds(t *testing.T) {
	tests := []struct {
		name   string
		events game.Event
		count  int
	}{
		{"none", 0, 0},
		{"paddle", game.EventPaddleHit, 1},
		{"wall", game.EventWallBounce, 1},
		{"ball out", game.EventBallOut, 1},
		{"paddle and wall", game.EventPaddleHit | game.EventWallBounce, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Sounds(tt.events)); got != tt.count {
				t.Errorf("expected %d sounds, got %d", tt.count, got)
			}
		})
	}
}

func TestSounds_BallOutRun(t *testing.T) {
	s := Sounds(game.EventBallOut)[0]

	want := sampleRate.N(100*time.Millisecond)*2 + sampleRate.N(150*time.Millisecond)
	if got := len(drain(s)); got != want {
		t.Errorf("expected %d samples in the descending run, got %d", want, got)
	}
}

func TestPlayer_ZeroValueIsSilent(t *testing.T) {
	var p Player
	if p.Enabled() {
		t.Error("zero value player should be disabled")
	}
	// Must not touch the speaker
	p.Play(game.EventPaddleHit | game.EventBallOut)
	p.Close()
}
