package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"separate horizontal", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), false},
		{"separate vertical", NewRect(0, 0, 10, 10), NewRect(0, 20, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"identical", NewRect(3, 3, 4, 4), NewRect(3, 3, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	in := r.Inset(5, 2)

	if in.X != 15 || in.Y != 22 {
		t.Errorf("Inset origin = (%v, %v), want (15, 22)", in.X, in.Y)
	}
	if in.W != 90 || in.H != 46 {
		t.Errorf("Inset size = (%v, %v), want (90, 46)", in.W, in.H)
	}
}

func TestRectInsetShrinksCollision(t *testing.T) {
	// Two rects that barely overlap should stop overlapping once inset
	a := NewRect(0, 0, 10, 10)
	b := NewRect(9, 0, 10, 10)

	if !a.Intersects(b) {
		t.Fatal("expected raw rects to overlap")
	}
	if a.Inset(1, 0).Intersects(b.Inset(1, 0)) {
		t.Error("expected inset rects not to overlap")
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 3); got != 3 {
		t.Errorf("ClampF(5,0,3) = %v, want 3", got)
	}
	if got := ClampF(-1, 0, 3); got != 0 {
		t.Errorf("ClampF(-1,0,3) = %v, want 0", got)
	}
	if got := ClampF(2, 0, 3); got != 2 {
		t.Errorf("ClampF(2,0,3) = %v, want 2", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, want 5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10,20,0) = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10,20,1) = %v, want 20", got)
	}
}

func TestColorBlend(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	if got := black.Blend(white, 0); got != black {
		t.Errorf("Blend t=0 = %v, want %v", got, black)
	}
	if got := black.Blend(white, 1); got != white {
		t.Errorf("Blend t=1 = %v, want %v", got, white)
	}

	mid := black.Blend(white, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("Blend t=0.5 R = %d, want ~127", mid.R)
	}

	// Out-of-range t must clamp, never wrap
	if got := black.Blend(white, 2); got != white {
		t.Errorf("Blend t=2 = %v, want %v", got, white)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#87ceeb")
	if err != nil {
		t.Fatalf("ParseHex() failed: %v", err)
	}
	if c != (RGB{0x87, 0xce, 0xeb}) {
		t.Errorf("ParseHex() = %v", c)
	}

	if _, err := ParseHex("nope"); err == nil {
		t.Error("ParseHex() should reject malformed input")
	}

	if got := c.Hex(); got != "#87ceeb" {
		t.Errorf("Hex() = %q, want %q", got, "#87ceeb")
	}
}
