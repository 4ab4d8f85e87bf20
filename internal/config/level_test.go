package config

import (
	"errors"
	"strings"
	"testing"
)

const validLevel = `
window:
  width: 1200
  height: 800
  background: assets/bg.png
paddle:
  width: 330
  height: 35
  speed: 15
ball:
  radius: 20
  speed: 6
block:
  pad_w: 5
  pad_h: 5
  block_w: 100
  block_h: 50
  n: 10
  m: 4
`

func TestParseLevelValid(t *testing.T) {
	lvl, err := ParseLevel("test", []byte(validLevel))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lvl.Window.Width != 1200 || lvl.Window.Height != 800 {
		t.Errorf("window = %dx%d, want 1200x800", lvl.Window.Width, lvl.Window.Height)
	}
	if lvl.Window.Background != "assets/bg.png" {
		t.Errorf("background = %q", lvl.Window.Background)
	}
	if lvl.Paddle != (PaddleConfig{Width: 330, Height: 35, Speed: 15}) {
		t.Errorf("paddle = %+v", lvl.Paddle)
	}
	if lvl.Ball != (BallConfig{Radius: 20, Speed: 6}) {
		t.Errorf("ball = %+v", lvl.Ball)
	}
	want := BlockConfig{PadW: 5, PadH: 5, BlockW: 100, BlockH: 50, N: 10, M: 4}
	if lvl.Block != want {
		t.Errorf("block = %+v, want %+v", lvl.Block, want)
	}
	if lvl.Block.Count() != 40 {
		t.Errorf("Count() = %d, want 40", lvl.Block.Count())
	}
}

func TestParseLevelDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrEmptyDocument},
		{"comment only", "# nothing here\n", ErrEmptyDocument},
		{"null", "null\n", ErrEmptyDocument},
		{"sequence", "- 1\n- 2\n", ErrNotMapping},
		{"scalar", "hello\n", ErrNotMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel("test", []byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseLevelMalformed(t *testing.T) {
	_, err := ParseLevel("test", []byte("window: [1, 2\n"))
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if !strings.Contains(err.Error(), "invalid yaml") {
		t.Errorf("error = %v, want invalid yaml", err)
	}
}

func TestParseLevelFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		old   string
		new   string
		field string
		want  error
	}{
		{"missing radius", "  radius: 20\n", "", "ball.radius", ErrMissingField},
		{"float speed", "  speed: 6\n", "  speed: 6.5\n", "ball.speed", ErrWrongType},
		{"string width", "  block_w: 100\n", "  block_w: wide\n", "block.block_w", ErrWrongType},
		{"numeric background", "  background: assets/bg.png\n", "  background: 12\n", "window.background", ErrWrongType},
		{"zero columns", "  n: 10\n", "  n: 0\n", "block.n", ErrOutOfRange},
		{"negative pad", "  pad_h: 5\n", "  pad_h: -1\n", "block.pad_h", ErrOutOfRange},
		{"paddle too wide", "  width: 330\n", "  width: 1300\n", "paddle.width", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(validLevel, tt.old, tt.new, 1)
			_, err := ParseLevel("test", []byte(data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a FieldError", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestParseLevelMissingSection(t *testing.T) {
	data := strings.Replace(validLevel, "ball:\n  radius: 20\n  speed: 6\n", "", 1)
	_, err := ParseLevel("test", []byte(data))

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a FieldError", err)
	}
	if fe.Field != "ball" || !errors.Is(fe, ErrMissingField) {
		t.Errorf("got %v, want missing ball section", fe)
	}
}

func TestParseLevelReportsEveryField(t *testing.T) {
	data := strings.Replace(validLevel, "  radius: 20\n", "", 1)
	data = strings.Replace(data, "  m: 4\n", "  m: four\n", 1)

	_, err := ParseLevel("test", []byte(data))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, field := range []string{"ball.radius", "block.m"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention %s", msg, field)
		}
	}
}

func TestBallRectSize(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{20, 28},
		{14, 19},
		{1, 1},
		{10, 14},
	}

	for _, tt := range tests {
		got := BallConfig{Radius: tt.radius}.RectSize()
		if got != tt.want {
			t.Errorf("RectSize(r=%d) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestParseGameLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    GameLevel
		wantErr bool
	}{
		{"Velocity", Velocity, false},
		{"odyssey", Odyssey, false},
		{" NEXUS ", Nexus, false},
		{"3", Nexus, false},
		{"5", Odyssey, false},
		{"6", LevelNone, true},
		{"", LevelNone, true},
		{"Arcade", LevelNone, true},
	}

	for _, tt := range tests {
		got, err := ParseGameLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGameLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGameLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelByNumber(t *testing.T) {
	for i, want := range AllLevels() {
		got, ok := LevelByNumber(i + 1)
		if !ok || got != want {
			t.Errorf("LevelByNumber(%d) = %v, %v; want %v", i+1, got, ok, want)
		}
	}
	if _, ok := LevelByNumber(0); ok {
		t.Error("LevelByNumber(0) should be invalid")
	}
	if _, ok := LevelByNumber(6); ok {
		t.Error("LevelByNumber(6) should be invalid")
	}
}
