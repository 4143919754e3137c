package raytracer

// FocalKind selects one of the two lens behaviors a Camera can have.
type FocalKind int

const (
	// FocalPerspective converges all pixel rays toward a single origin:
	// standard perspective projection.
	FocalPerspective FocalKind = iota
	// FocalOrthographic fires every pixel ray parallel along +z; F scales
	// the viewport instead of the convergence point.
	FocalOrthographic
)

// Focal pairs a FocalKind with its focal length / viewport divisor F.
type Focal struct {
	Kind FocalKind
	F    float32
}

// Flags is a bitmask of optional per-render camera behaviors.
type Flags uint32

const (
	// FlagAntiAliasing enables 4x fixed-offset supersampling per pixel.
	FlagAntiAliasing Flags = 1 << iota
	// FlagNoShadow skips Scene.LightFilter entirely; every light is
	// treated as fully visible.
	FlagNoShadow
)

// aaOffsets are the four fixed jitter samples used for anti-aliasing,
// the quadrants of a pixel rather than a random pattern, so a render is
// bit-identical across runs and thread counts.
var aaOffsets = [4][2]float32{
	{0.25, 0.25},
	{0.75, 0.25},
	{0.25, 0.75},
	{0.75, 0.75},
}

// Camera generates primary rays for a Width x Height image.
type Camera struct {
	Transform
	Width, Height int
	Focal         Focal
	Flags         Flags
}

// NewCamera returns a Camera at the identity transform.
func NewCamera(width, height int, focal Focal, flags Flags) *Camera {
	return &Camera{
		Transform: NewTransform(),
		Width:     width,
		Height:    height,
		Focal:     focal,
		Flags:     flags,
	}
}

// primaryRay builds the world-space ray through pixel (px, py), offset
// within the pixel by (ox, oy) in [0,1) for anti-aliasing subsamples.
// size is min(width, height): both focal modes normalize against the
// shorter image dimension so the field of view isn't stretched on a
// non-square image.
func (c *Camera) primaryRay(px, py int, ox, oy float32) Ray {
	size := float32(c.Width)
	if c.Height < c.Width {
		size = float32(c.Height)
	}

	var local Ray
	switch c.Focal.Kind {
	case FocalOrthographic:
		s := size / c.Focal.F
		lx := (float32(px)+ox-float32(c.Width)/2) / s
		ly := -(float32(py) + oy - float32(c.Height)/2) / s
		local = Ray{Origin: Pt(lx, ly, 0), Direction: Pt(0, 0, 1)}
	default: // FocalPerspective
		lx := (float32(px) + ox - float32(c.Width)/2) / size
		ly := -(float32(py) + oy - float32(c.Height)/2) / size
		// Direction (lx, ly, F) makes every pixel ray pass through (0,0,-F).
		local = Ray{Origin: Pt(lx, ly, 0), Direction: Pt(lx, ly, c.Focal.F)}
	}

	return c.LocalToWorldRay(local).Normalized()
}
