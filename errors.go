package raytracer

import "github.com/pkg/errors"

// Sentinel construction errors. Callers match against these with
// errors.Is; Wrap/Wrapf attaches the offending value without losing the
// underlying sentinel.
var (
	// ErrSingularTransform is returned when a Movable's forward matrix has
	// no usable inverse, so local<->world conversions can't be built.
	ErrSingularTransform = errors.New("raytracer: transform is singular")

	// ErrZeroImage is returned when a render is requested at zero width or
	// height.
	ErrZeroImage = errors.New("raytracer: image dimensions must be positive")

	// ErrZeroThreads is returned when a render is requested with a
	// non-positive worker count.
	ErrZeroThreads = errors.New("raytracer: thread count must be positive")

	// ErrUnreadableTexture is returned when a TextureMaterialProvider is
	// constructed from a nil or zero-sized source image.
	ErrUnreadableTexture = errors.New("raytracer: texture source image is unreadable or empty")
)
