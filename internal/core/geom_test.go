package core

import "testing"

func TestRectIntersects(t *testing.T) {
	block := NewRect(5, 5, 100, 50)

	tests := []struct {
		name string
		ball Rect
		want bool
	}{
		{"overlapping corner", NewRect(90, 40, 28, 28), true},
		{"inside", NewRect(20, 10, 28, 28), true},
		{"covers block", NewRect(0, 0, 200, 200), true},
		{"one pixel overlap", NewRect(104, 54, 28, 28), true},
		{"touching right edge", NewRect(105, 10, 28, 28), false},
		{"touching bottom edge", NewRect(20, 55, 28, 28), false},
		{"left of block", NewRect(-30, 10, 28, 28), false},
		{"below block", NewRect(20, 400, 28, 28), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ball.Intersects(block); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			if got := block.Intersects(tt.ball); got != tt.want {
				t.Errorf("reversed Intersects() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{29, 24, true},
		{30, 24, false},
		{29, 25, false},
		{9, 15, false},
		{15, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	paddle := NewRect(435, 755, 330, 35)

	if paddle.Left() != 435 || paddle.Top() != 755 {
		t.Errorf("Left(), Top() = (%d, %d), expected (435, 755)", paddle.Left(), paddle.Top())
	}
	if paddle.Right() != 765 || paddle.Bottom() != 790 {
		t.Errorf("Right(), Bottom() = (%d, %d), expected (765, 790)", paddle.Right(), paddle.Bottom())
	}
	if x, y := paddle.Center(); x != 600 || y != 772 {
		t.Errorf("Center() = (%d, %d), expected (600, 772)", x, y)
	}
}

func TestClamp(t *testing.T) {
	// Paddle x stays within [0, window width - paddle width].
	tests := []struct{ x, want int }{
		{-15, 0},
		{0, 0},
		{435, 435},
		{870, 870},
		{885, 870},
	}

	for _, tt := range tests {
		if got := Clamp(tt.x, 0, 870); got != tt.want {
			t.Errorf("Clamp(%d, 0, 870) = %d, expected %d", tt.x, got, tt.want)
		}
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRect(100, 50, 40, 20)
	got := r.Inflate(30, 30)

	if want := NewRect(85, 35, 70, 50); got != want {
		t.Errorf("Inflate(30, 30) = %+v, expected %+v", got, want)
	}

	gx, gy := got.Center()
	rx, ry := r.Center()
	if gx != rx || gy != ry {
		t.Errorf("Inflate should keep the center, was (%d, %d), now (%d, %d)", rx, ry, gx, gy)
	}
}

func TestRectIntersectsAny(t *testing.T) {
	ball := NewRect(10, 10, 5, 5)
	blocks := []Rect{
		NewRect(100, 100, 5, 5),
		NewRect(12, 12, 5, 5),
		NewRect(8, 8, 5, 5),
	}

	if got := ball.IntersectsAny(blocks); got != 1 {
		t.Errorf("IntersectsAny() = %d, expected first match 1", got)
	}
	if got := ball.IntersectsAny(blocks[:1]); got != -1 {
		t.Errorf("IntersectsAny() = %d, expected -1", got)
	}
	if got := ball.IntersectsAny(nil); got != -1 {
		t.Errorf("IntersectsAny(nil) = %d, expected -1", got)
	}
}

func TestAbs(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%d) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}
