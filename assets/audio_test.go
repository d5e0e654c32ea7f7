package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/dragonfire/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	tone := cfg.ToneConfig{Notes: []float64{440, 0, 220}, NoteMillis: 100, Volume: 0.5}
	pcm := SynthesizeTone(tone, 44100)

	want := 3 * 4410 * bytesPerFrame
	if len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeToneRestIsSilent(t *testing.T) {
	tone := cfg.ToneConfig{Notes: []float64{0}, NoteMillis: 50, Volume: 1}
	for i, b := range SynthesizeTone(tone, 8000) {
		if b != 0 {
			t.Fatalf("byte %d = %d, want silence", i, b)
		}
	}
}

func TestSynthesizeToneStaysWithinVolume(t *testing.T) {
	tone := cfg.ToneConfig{Notes: []float64{300}, NoteMillis: 200, Volume: 0.25, Square: true}
	pcm := SynthesizeTone(tone, 8000)

	limit := int16(tone.Volume*32767) + 1
	for i := 0; i < len(pcm); i += bytesPerFrame {
		left := int16(binary.LittleEndian.Uint16(pcm[i:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if left != right {
			t.Fatalf("frame %d: channels differ (%d, %d)", i/bytesPerFrame, left, right)
		}
		if left > limit || left < -limit {
			t.Fatalf("frame %d: sample %d exceeds volume", i/bytesPerFrame, left)
		}
	}
}

func TestEnvelope(t *testing.T) {
	if got := envelope(0, 100, 10); got != 0 {
		t.Errorf("start = %v, want 0", got)
	}
	if got := envelope(50, 100, 10); got != 1 {
		t.Errorf("middle = %v, want 1", got)
	}
	if got := envelope(95, 100, 10); got != 0.5 {
		t.Errorf("tail = %v, want 0.5", got)
	}
	if got := envelope(3, 100, 0); got != 1 {
		t.Errorf("no fade = %v, want 1", got)
	}
}
