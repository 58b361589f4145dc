package session

import (
	"testing"
	"time"
)

func testPlaybackConfig() PlaybackConfig {
	return PlaybackConfig{
		Interval:     100 * time.Millisecond,
		MinInterval:  40 * time.Millisecond,
		MaxInterval:  160 * time.Millisecond,
		IntervalStep: 25 * time.Millisecond,
		MaxCatchUp:   4,
	}
}

func TestPlaybackStartsPaused(t *testing.T) {
	p := NewPlayback(testPlaybackConfig())
	if p.Running() {
		t.Fatal("playback must start paused")
	}
	if n := p.Advance(time.Second); n != 0 {
		t.Fatalf("paused playback must not step, got %d", n)
	}
	if p.Elapsed() != 0 {
		t.Fatalf("paused playback must not accumulate, got %v", p.Elapsed())
	}
}

func TestPlaybackToggle(t *testing.T) {
	p := NewPlayback(testPlaybackConfig())
	p.Toggle()
	if !p.Running() {
		t.Fatal("toggle from paused must run")
	}
	p.Toggle()
	if p.Running() {
		t.Fatal("toggle from running must pause")
	}
	if p.Pause() {
		t.Fatal("Pause while paused must report false")
	}
}

func TestPlaybackAdvanceWithoutDrift(t *testing.T) {
	p := NewPlayback(testPlaybackConfig())
	p.Toggle()
	total := 0
	for i := 0; i < 30; i++ {
		total += p.Advance(30 * time.Millisecond)
	}
	// 900ms at 100ms per generation.
	if total != 9 {
		t.Fatalf("expected 9 generations over 900ms, got %d", total)
	}
	if p.Elapsed() != 0 {
		t.Fatalf("expected no remainder, got %v", p.Elapsed())
	}
}

func TestPlaybackAdvanceMultipleIntervals(t *testing.T) {
	p := NewPlayback(testPlaybackConfig())
	p.Toggle()
	if n := p.Advance(250 * time.Millisecond); n != 2 {
		t.Fatalf("expected 2 generations, got %d", n)
	}
	if p.Elapsed() != 50*time.Millisecond {
		t.Fatalf("expected 50ms carried, got %v", p.Elapsed())
	}
	if n := p.Advance(time.Hour); n != 4 {
		t.Fatalf("catch-up must be capped at 4, got %d", n)
	}
}

func TestPlaybackSpeedBounds(t *testing.T) {
	p := NewPlayback(testPlaybackConfig())
	for i := 0; i < 10; i++ {
		p.Faster()
	}
	if p.Interval() != 40*time.Millisecond {
		t.Fatalf("expected interval pinned at min 40ms, got %v", p.Interval())
	}
	if p.Faster() {
		t.Fatal("Faster at the minimum must be a no-op")
	}

	for i := 0; i < 10; i++ {
		p.Slower()
	}
	if p.Interval() != 160*time.Millisecond {
		t.Fatalf("expected interval pinned at max 160ms, got %v", p.Interval())
	}
	if p.Slower() {
		t.Fatal("Slower at the maximum must be a no-op")
	}
}

func TestPlaybackSetIntervalClamps(t *testing.T) {
	p := NewPlayback(testPlaybackConfig())
	if !p.SetInterval(time.Millisecond) {
		t.Fatal("SetInterval below min should clamp and report a change")
	}
	if p.Interval() != 40*time.Millisecond {
		t.Fatalf("expected 40ms, got %v", p.Interval())
	}
	p.SetInterval(time.Minute)
	if p.Interval() != 160*time.Millisecond {
		t.Fatalf("expected 160ms, got %v", p.Interval())
	}
}

func TestPlaybackConfigNormalized(t *testing.T) {
	p := NewPlayback(PlaybackConfig{Interval: time.Hour, MinInterval: 10 * time.Millisecond, MaxInterval: 5 * time.Millisecond})
	lo, hi := p.Bounds()
	if lo != 10*time.Millisecond || hi != 10*time.Millisecond {
		t.Fatalf("max below min must collapse to min, got [%v, %v]", lo, hi)
	}
	if p.Interval() != 10*time.Millisecond {
		t.Fatalf("interval must be clamped into bounds, got %v", p.Interval())
	}
	if p.IntervalStep() <= 0 {
		t.Fatal("zero step must fall back to the default")
	}
}
