package raytracer

import (
	"image"
	"image/color"
	"testing"
)

func TestDefaultMaterialDefaults(t *testing.T) {
	m := DefaultMaterial()
	if r, g, b := m.Ambient.RGB8(); r != 63 || g != 63 || b != 63 {
		t.Errorf("Ambient = (%d,%d,%d), want gray-63", r, g, b)
	}
	if r, g, b := m.Diffuse.RGB8(); r != 127 || g != 127 || b != 127 {
		t.Errorf("Diffuse = (%d,%d,%d), want gray-127", r, g, b)
	}
	if r, g, b := m.Specular.RGB8(); r != 191 || g != 191 || b != 191 {
		t.Errorf("Specular = (%d,%d,%d), want gray-191", r, g, b)
	}
	if m.Alpha != 255 {
		t.Errorf("Alpha = %d, want 255", m.Alpha)
	}
	if m.Reflection != 0 {
		t.Errorf("Reflection = %d, want 0", m.Reflection)
	}
	if m.Shininess != 50 {
		t.Errorf("Shininess = %v, want 50", m.Shininess)
	}
}

func TestGridMaterialCheckers(t *testing.T) {
	a := DefaultMaterial()
	a.Diffuse = White
	b := DefaultMaterial()
	b.Diffuse = Black

	grid := GridMaterialProvider{A: a, B: b, RepeatX: 1, RepeatY: 1}

	// (0.1,0.1) falls in the same half-band on both axes: B.
	if got := grid.MaterialAt(0.1, 0.1); got.Diffuse != b.Diffuse {
		t.Errorf("MaterialAt(0.1,0.1) = %v, want B", got.Diffuse)
	}
	// (0.1, 0.6) straddles the axes: A.
	if got := grid.MaterialAt(0.1, 0.6); got.Diffuse != a.Diffuse {
		t.Errorf("MaterialAt(0.1,0.6) = %v, want A", got.Diffuse)
	}
}

func TestStripXMaterialBands(t *testing.T) {
	a := DefaultMaterial()
	a.Diffuse = White
	b := DefaultMaterial()
	b.Diffuse = Black
	strip := StripXMaterialProvider{A: a, B: b, Repeat: 2}

	if got := strip.MaterialAt(0.1, 0); got.Diffuse != a.Diffuse {
		t.Errorf("MaterialAt(0.1,0) = %v, want A", got.Diffuse)
	}
	if got := strip.MaterialAt(0.4, 0); got.Diffuse != b.Diffuse {
		t.Errorf("MaterialAt(0.4,0) = %v, want B", got.Diffuse)
	}
}

func TestTextureMaterialProviderRejectsEmptyImage(t *testing.T) {
	if _, err := NewTextureMaterialProvider(nil, 1, 1); err == nil {
		t.Fatal("NewTextureMaterialProvider(nil, ...) = nil error, want ErrUnreadableTexture")
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := NewTextureMaterialProvider(empty, 1, 1); err == nil {
		t.Fatal("NewTextureMaterialProvider(empty image, ...) = nil error, want ErrUnreadableTexture")
	}
}

func TestTextureMaterialProviderSamples(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	provider, err := NewTextureMaterialProvider(img, 1, 1)
	if err != nil {
		t.Fatalf("NewTextureMaterialProvider: %v", err)
	}
	mat := provider.MaterialAt(0.1, 0.1)
	if mat.Alpha != 255 {
		t.Errorf("Alpha = %d, want 255", mat.Alpha)
	}
	if mat.Diffuse != NewColor(100, 100, 100) {
		t.Errorf("Diffuse = %v, want gray-100", mat.Diffuse)
	}

	transparent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	transparent.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 64})
	alphaProvider, err := NewTextureMaterialProvider(transparent, 1, 1)
	if err != nil {
		t.Fatalf("NewTextureMaterialProvider: %v", err)
	}
	if got := alphaProvider.MaterialAt(0, 0).Alpha; got != 64 {
		t.Errorf("Alpha = %d, want 64", got)
	}
}
