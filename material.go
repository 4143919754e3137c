package raytracer

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Material describes how a surface point responds to light: ambient,
// diffuse and specular colors, a Phong shininess exponent, and the two
// coefficients that drive the recursive bounces in the shading kernel.
// Alpha is 0..255 with 255 fully opaque; anything less drives refraction
// weight. Reflection is 0..255 with 0 meaning no reflection at all.
type Material struct {
	Ambient    Color
	Diffuse    Color
	Specular   Color
	Alpha      uint8
	Reflection uint8
	Shininess  float32
}

// DefaultMaterial is the package default: a medium-gray matte surface,
// fully opaque, no reflection.
func DefaultMaterial() Material {
	return Material{
		Ambient:    Gray(63),
		Diffuse:    Gray(127),
		Specular:   Gray(191),
		Alpha:      255,
		Reflection: 0,
		Shininess:  50,
	}
}

// MaterialProvider maps a surface's local (u, v) parametrization, each in
// [0,1), to the Material in effect there.
type MaterialProvider interface {
	MaterialAt(u, v float32) Material
}

// SimpleMaterialProvider ignores (u, v) and returns a constant Material.
type SimpleMaterialProvider struct {
	Material Material
}

func (m SimpleMaterialProvider) MaterialAt(u, v float32) Material { return m.Material }

// StripXMaterialProvider alternates between two materials in bands running
// along u, repeated Repeat times across the [0,1) unit cell.
type StripXMaterialProvider struct {
	A, B   Material
	Repeat float32
}

func (m StripXMaterialProvider) MaterialAt(u, v float32) Material {
	if bandTest(u, m.Repeat) {
		return m.A
	}
	return m.B
}

// StripYMaterialProvider is StripXMaterialProvider's counterpart along v.
type StripYMaterialProvider struct {
	A, B   Material
	Repeat float32
}

func (m StripYMaterialProvider) MaterialAt(u, v float32) Material {
	if bandTest(v, m.Repeat) {
		return m.A
	}
	return m.B
}

// GridMaterialProvider checkerboards two materials across both axes: a
// cell is material A where exactly one of the two axis band tests holds,
// B where both or neither do.
type GridMaterialProvider struct {
	A, B             Material
	RepeatX, RepeatY float32
}

func (m GridMaterialProvider) MaterialAt(u, v float32) Material {
	if bandTest(u, m.RepeatX) != bandTest(v, m.RepeatY) {
		return m.A
	}
	return m.B
}

// bandTest mirrors the original's `x * rep % 1.0 <= 0.5` banding rule:
// scale the coordinate by the repetition count, wrap to [0,1), and split
// the cell in half.
func bandTest(x, rep float32) bool {
	f := math32.Mod(x*rep, 1)
	if f < 0 {
		f += 1
	}
	return f <= 0.5
}

// TextureMaterialProvider samples an already-decoded image, tiled
// (RepeatX, RepeatY) times across the unit (u, v) cell. Decoding the image
// bytes themselves stays with the external collaborator named in the
// purpose & scope section; this provider only ever sees an image.Image.
type TextureMaterialProvider struct {
	Image            image.Image
	RepeatX, RepeatY float32
}

// NewTextureMaterialProvider validates that img is non-nil and non-empty;
// an unreadable or zero-sized texture source is a fatal construction
// error, not a render-time one.
func NewTextureMaterialProvider(img image.Image, repeatX, repeatY float32) (*TextureMaterialProvider, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Wrap(ErrUnreadableTexture, "texture source image")
	}
	return &TextureMaterialProvider{Image: img, RepeatX: repeatX, RepeatY: repeatY}, nil
}

// MaterialAt samples the backing image at the tiled (u, v), producing
// ambient = color*0.5, diffuse = color, specular = color*1.5, with alpha
// carried through from the source image's alpha channel.
func (m *TextureMaterialProvider) MaterialAt(u, v float32) Material {
	b := m.Image.Bounds()
	uu := wrapUnit(u * m.RepeatX)
	vv := wrapUnit(v * m.RepeatY)
	x := b.Min.X + int(uu*float32(b.Dx()))
	y := b.Min.Y + int(vv*float32(b.Dy()))
	if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	r, g, bl, a := m.Image.At(x, y).RGBA()
	col := NewColor(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
	return Material{
		Ambient:    col.MulScalar(0.5),
		Diffuse:    col,
		Specular:   col.MulScalar(1.5),
		Alpha:      uint8(a >> 8),
		Reflection: 0,
		Shininess:  50,
	}
}

func wrapUnit(x float32) float32 {
	x = math32.Mod(x, 1)
	if x < 0 {
		x += 1
	}
	return x
}
