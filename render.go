package raytracer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/briarwood/go-raytracer/internal/rtlog"
)

// maxRecursionDepth is the hard ceiling Config.Depth is clamped to before
// a render starts, preventing stack blow-up in a pathological scene.
const maxRecursionDepth = 32

// Config controls a single render invocation. Width/height live on the
// Camera; Config only carries what the render loop and its output need.
type Config struct {
	OutputPath string
	Threads    int
	Depth      int
}

func (c Config) validate() error {
	if c.Threads <= 0 {
		return ErrZeroThreads
	}
	return nil
}

func clampDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth > maxRecursionDepth {
		return maxRecursionDepth
	}
	return depth
}

// Render traces scene through camera into an 8-bit RGB, row-major,
// top-left-origin pixel buffer of exactly width*height*3 bytes, splitting
// the work into row bands of ceil(height/cfg.Threads) rows each (at most
// cfg.Threads bands) run by a worker pool of cfg.Threads workers. Each
// band writes only its own pre-addressed slice of buf, so the output is
// byte-identical regardless of scheduling order or how many workers
// actually run concurrently.
func Render(scene *Scene, camera *Camera, cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if camera.Width <= 0 || camera.Height <= 0 {
		return nil, errors.Wrap(ErrZeroImage, "camera dimensions")
	}
	depth := clampDepth(cfg.Depth)

	width, height := camera.Width, camera.Height
	buf := make([]byte, width*height*3)

	start := time.Now()
	rtlog.L.Info("render starting",
		zap.Int("width", width), zap.Int("height", height),
		zap.Int("threads", cfg.Threads), zap.Int("depth", depth))

	pool := pond.NewPool(cfg.Threads)
	defer pool.StopAndWait()

	rowsPerBand := (height + cfg.Threads - 1) / cfg.Threads
	var wg sync.WaitGroup
	for band := 0; band*rowsPerBand < height; band++ {
		startRow := band * rowsPerBand
		endRow := startRow + rowsPerBand
		if endRow > height {
			endRow = height
		}
		bandIndex := band
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			bandStart := time.Now()
			renderBand(scene, camera, depth, buf, width, startRow, endRow)
			rtlog.L.Info("band complete",
				zap.Int("band", bandIndex), zap.Int("rows", endRow-startRow),
				zap.Duration("elapsed", time.Since(bandStart)))
		})
	}
	wg.Wait()

	rtlog.L.Info("render complete", zap.Duration("elapsed", time.Since(start)))
	return buf, nil
}

// RenderToFile renders scene through camera and writes the result as a
// PNG to cfg.OutputPath, creating parent directories as needed. PNG
// encoding itself is delegated to image/png, the external collaborator
// named in the purpose & scope section.
func RenderToFile(scene *Scene, camera *Camera, cfg Config) error {
	buf, err := Render(scene, camera, cfg)
	if err != nil {
		return err
	}

	img := rgbBufferToImage(buf, camera.Width, camera.Height)

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// rgbBufferToImage packs a Render output buffer into an *image.RGBA,
// forcing full opacity since the raytracer's own buffer carries no alpha
// channel. Shared by RenderToFile's PNG encode path and by tests that
// compare render output through internal/imgcmp.
func rgbBufferToImage(buf []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			o := img.PixOffset(x, y)
			img.Pix[o] = buf[i]
			img.Pix[o+1] = buf[i+1]
			img.Pix[o+2] = buf[i+2]
			img.Pix[o+3] = 255
		}
	}
	return img
}

func renderBand(scene *Scene, camera *Camera, depth int, buf []byte, width, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < width; x++ {
			col := shadePixel(scene, camera, depth, x, y)
			r, g, b := col.RGB8()
			i := (y*width + x) * 3
			buf[i], buf[i+1], buf[i+2] = r, g, b
		}
	}
}

// shadePixel resolves the final Color for pixel (px, py), averaging the
// fixed four-sample jitter when FlagAntiAliasing is set, a single
// center sample otherwise.
func shadePixel(scene *Scene, camera *Camera, depth int, px, py int) Color {
	if camera.Flags&FlagAntiAliasing == 0 {
		r := camera.primaryRay(px, py, 0.5, 0.5)
		return traceRay(scene, camera, r, depth)
	}

	sum := Black
	for _, off := range aaOffsets {
		r := camera.primaryRay(px, py, off[0], off[1])
		sum = sum.Add(traceRay(scene, camera, r, depth).MulScalar(0.25))
	}
	return sum
}

// traceRay follows r into scene, returning the background color on a
// miss and the full Phong-plus-recursion shading on a hit. depth counts
// the reflection/refraction bounces still available: it starts at
// Config.Depth and decrements on each recursive call, stopping once it
// reaches zero.
func traceRay(scene *Scene, camera *Camera, r Ray, depth int) Color {
	obj, impact, hit := scene.ClosestHit(r)
	if !hit {
		return scene.Background
	}
	return impactColor(scene, camera, r, obj, impact, depth)
}

// impactColor is the shading kernel: ambient, then per-light diffuse and
// specular with shadow attenuation, then optional recursive
// reflection/refraction bounces.
func impactColor(scene *Scene, camera *Camera, r Ray, obj Object, impact Point, depth int) Color {
	mat := obj.MaterialAt(impact)
	normal := obj.Normal(impact, r.Origin)

	diffuseAccum := mat.Ambient.Mul(scene.Ambient)
	specularAccum := Black
	reflectionAccum := Black

	for _, light := range scene.Lights {
		shadow := White
		if camera.Flags&FlagNoShadow == 0 {
			shadow = scene.LightFilter(impact, light, 0)
		}
		if !light.Illuminate(impact) {
			continue
		}

		toLight := light.VecToLight(impact)
		alpha := toLight.Dot(normal)
		if alpha <= 0 {
			continue
		}

		diffuse := mat.Diffuse.Mul(light.DiffuseColor()).MulScalar(alpha).Mul(shadow)
		diffuseAccum = diffuseAccum.Add(diffuse)

		reflectedToLight := normal.Scale(2 * alpha).Sub(toLight)
		specAngle := reflectedToLight.Dot(r.Direction.Neg())
		if specAngle > 0 {
			spec := mat.Specular.
				MulScalar(math32.Pow(specAngle, mat.Shininess)).
				Mul(light.SpecularColor()).
				MulScalar(alpha).
				Mul(shadow)
			specularAccum = specularAccum.Add(spec)
		}
	}

	if depth > 0 {
		if mat.Alpha < 255 {
			cr := float32(mat.Alpha) / 255
			refractionColor := scene.Background
			if refracted, ok := obj.RefractedRay(r, impact); ok {
				refractionColor = traceRay(scene, camera, refracted, depth-1)
			}
			diffuseAccum = diffuseAccum.MulScalar(cr).Add(refractionColor.MulScalar(1 - cr))
		}
		if mat.Reflection > 0 {
			cl := float32(mat.Reflection) / 255
			reflected := obj.ReflectedRay(r, impact)
			reflectionColor := traceRay(scene, camera, reflected, depth-1)
			reflectionAccum = reflectionColor.MulScalar(cl)
			diffuseAccum = diffuseAccum.MulScalar(1 - cl)
		}
	}

	return diffuseAccum.Add(specularAccum).Add(reflectionAccum)
}
