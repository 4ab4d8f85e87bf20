package audio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func TestHitGenerator(t *testing.T) {
	gen := NewHitGenerator(sampleRate)
	samples := make([][2]float64, 512)

	n, ok := gen.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = (%d, %v), expected (%d, true)", n, ok, len(samples))
	}

	var peak float64
	for i := range n {
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d is not mono", i)
		}
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
		peak = max(peak, samples[i][0])
	}
	if peak == 0 {
		t.Error("hit generator produced silence")
	}
	if gen.Err() != nil {
		t.Errorf("unexpected error: %v", gen.Err())
	}
}

func TestHitDecays(t *testing.T) {
	gen := NewHitGenerator(sampleRate)
	head := make([][2]float64, sampleRate.N(10*time.Millisecond))
	gen.Stream(head)

	tail := make([][2]float64, sampleRate.N(60*time.Millisecond))
	gen.Stream(tail)

	peak := func(s [][2]float64) float64 {
		var p float64
		for _, v := range s {
			p = max(p, v[0], -v[0])
		}
		return p
	}
	if peak(tail[len(tail)-200:]) >= peak(head) {
		t.Error("hit sound should fade out")
	}
}

func TestMusicGeneratorIsEndless(t *testing.T) {
	gen := NewMusicGenerator(sampleRate)
	samples := make([][2]float64, 4096)
	for range 200 {
		n, ok := gen.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("Stream = (%d, %v), music must never end", n, ok)
		}
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, s[0])
		}
	}
}

func TestLoadBufferFromWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hit.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	tone := beep.Take(format.SampleRate.N(50*time.Millisecond), NewHitGenerator(format.SampleRate))
	if err := wav.Encode(f, tone, format); err != nil {
		t.Fatalf("failed to encode wav: %v", err)
	}
	f.Close()

	buf, err := loadBuffer(path)
	if err != nil {
		t.Fatalf("loadBuffer failed: %v", err)
	}
	if buf.Format().SampleRate != sampleRate {
		t.Errorf("buffer rate = %d, expected %d", buf.Format().SampleRate, sampleRate)
	}
	// 50ms resampled to the output rate, give or take the resampler edge.
	want := sampleRate.N(50 * time.Millisecond)
	if buf.Len() < want-64 || buf.Len() > want+64 {
		t.Errorf("buffer length = %d, expected about %d", buf.Len(), want)
	}
}

func TestLoadBufferErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadBuffer(filepath.Join(dir, "missing.wav"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, expected fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadBuffer(bad); err == nil {
		t.Error("expected decode error")
	}

	ogg := filepath.Join(dir, "music.ogg")
	if err := os.WriteFile(ogg, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadBuffer(ogg); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	p.StartMusic()
	p.Hit()
	p.Close()
}
