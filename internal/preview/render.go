package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"github.com/Faultbox/gearforge/pkg/geom"
	"github.com/Faultbox/gearforge/pkg/mesh"
)

// ErrUnsupportedImage is returned for output extensions other than
// .png, .webp and .tga.
var ErrUnsupportedImage = errors.New("preview: unsupported image format")

// Options controls the preview render.
type Options struct {
	Size        int     // output edge length in pixels
	Supersample int     // render at Size*Supersample, then downsample
	Yaw         float64 // rotation about the thickness axis, radians
	Pitch       float64 // tilt toward the camera, radians
	BaseColor   [3]uint8
}

// DefaultOptions returns a slightly tilted steel-gray view.
func DefaultOptions() Options {
	return Options{
		Size:        512,
		Supersample: 2,
		Yaw:         -0.4,
		Pitch:       1.0,
		BaseColor:   [3]uint8{176, 180, 188},
	}
}

var lightDir = geom.Vec3{X: -0.35, Y: 0.45, Z: 0.82}.Normalize()

// Render draws m orthographically with flat shading on a transparent
// background. The mesh is centered and scaled to fit the frame.
func Render(m *mesh.Mesh, opt Options) *image.NRGBA {
	if opt.Size <= 0 {
		opt.Size = 512
	}
	if opt.Supersample < 1 {
		opt.Supersample = 1
	}
	renderSize := opt.Size * opt.Supersample

	if len(m.Vertices) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	}

	// Rotate every vertex into view space and track the extent.
	view := make([]geom.Vec3, len(m.Vertices))
	center := m.Center()
	min := geom.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := geom.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i, v := range m.Vertices {
		tv := rotate(v.Sub(center), opt.Yaw, opt.Pitch)
		view[i] = tv
		min = min.Min(tv)
		max = max.Max(tv)
	}

	extent := math.Max(max.X-min.X, max.Y-min.Y)
	if extent == 0 {
		return image.NewNRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	}
	scale := 0.92 * float64(renderSize) / extent
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	for _, t := range m.Triangles() {
		a, b, c := view[t[0]], view[t[1]], view[t[2]]

		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		// Double-sided Lambert plus ambient; previews have no backfaces
		// to hide, every wall is visible from somewhere.
		shade := 0.35 + 0.65*math.Abs(n.Dot(lightDir))
		if shade > 1 {
			shade = 1
		}
		r := uint8(float64(opt.BaseColor[0]) * shade)
		g := uint8(float64(opt.BaseColor[1]) * shade)
		bl := uint8(float64(opt.BaseColor[2]) * shade)

		fb.DrawTriangle(
			a.X*scale+half, half-a.Y*scale, a.Z*scale,
			b.X*scale+half, half-b.Y*scale, b.Z*scale,
			c.X*scale+half, half-c.Y*scale, c.Z*scale,
			r, g, bl,
		)
	}

	img := &image.NRGBA{
		Pix:    fb.Color,
		Stride: renderSize * 4,
		Rect:   image.Rect(0, 0, renderSize, renderSize),
	}
	if opt.Supersample > 1 {
		img = downsample(img, opt.Size)
	}
	return img
}

// rotate applies yaw about the z axis, then pitch about the x axis.
func rotate(v geom.Vec3, yaw, pitch float64) geom.Vec3 {
	sy, cy := math.Sincos(yaw)
	x := cy*v.X - sy*v.Y
	y := sy*v.X + cy*v.Y

	sp, cp := math.Sincos(pitch)
	return geom.Vec3{
		X: x,
		Y: cp*y - sp*v.Z,
		Z: sp*y + cp*v.Z,
	}
}

// downsample reduces the supersampled frame with premultiplied-alpha-aware
// CatmullRom filtering, preventing dark halos at transparent edges.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	draw.Draw(result, dst.Bounds(), dst, image.Point{}, draw.Src)
	return result
}

// Encode writes img to path, selecting PNG, WebP or TGA by extension.
func Encode(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedImage, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
