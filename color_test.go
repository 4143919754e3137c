package raytracer

import "testing"

func TestColorMulIdentities(t *testing.T) {
	red := NewColor(200, 50, 10)

	if got := red.Mul(White); got != red {
		t.Errorf("red.Mul(White) = %v, want %v", got, red)
	}
	if got := red.Mul(Black); got != Black {
		t.Errorf("red.Mul(Black) = %v, want %v", got, Black)
	}
}

func TestColorAddSaturates(t *testing.T) {
	if got := White.Add(White); got != White {
		t.Errorf("White.Add(White) = %v, want %v", got, White)
	}

	bright := NewColor(250, 250, 250)
	sum := bright.Add(bright)
	r, g, b := sum.RGB8()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("saturating add = (%d,%d,%d), want (255,255,255)", r, g, b)
	}
}

func TestColorSubSaturatesAtZero(t *testing.T) {
	dim := NewColor(10, 10, 10)
	sub := dim.Sub(White)
	r, g, b := sub.RGB8()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("saturating sub = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestGrayDefaults(t *testing.T) {
	r, g, b := DefaultAmbient.RGB8()
	if r != 127 || g != 127 || b != 127 {
		t.Errorf("DefaultAmbient = (%d,%d,%d), want (127,127,127)", r, g, b)
	}
	r, g, b = SkyColor.RGB8()
	if r != 50 || g != 120 || b != 170 {
		t.Errorf("SkyColor = (%d,%d,%d), want (50,120,170)", r, g, b)
	}
}
