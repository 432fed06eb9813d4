package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"math"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP
	"golang.org/x/image/draw"
)

// Sentinel errors.
var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("texture: image is empty")
)

// AverageSkip is the sampling stride of the background average.
const AverageSkip = 16

// Patterns lists the file patterns Discover matches, in order.
var Patterns = []string{"*.jpg", "*.png", "*.bmp"}

// Texture is an immutable RGBA image with wrapped sampling.
type Texture struct {
	img *image.RGBA
	avg color.RGBA
}

// Load decodes the image file at path. See FromImage for size.
func Load(path string, size int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f, size)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return t, nil
}

// Decode reads an image in any registered format. See FromImage for size.
func Decode(r io.Reader, size int) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromImage(img, size)
}

// FromImage copies src into a new Texture. A positive size rescales it
// bilinearly to size×size; otherwise the original dimensions are kept.
func FromImage(src image.Image, size int) (*Texture, error) {
	sb := src.Bounds()
	if sb.Empty() {
		return nil, ErrEmptyImage
	}

	var dst *image.RGBA
	if size > 0 {
		dst = image.NewRGBA(image.Rect(0, 0, size, size))
		draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
		draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
	}
	return &Texture{img: dst, avg: AverageColor(dst, AverageSkip)}, nil
}

// Image returns the underlying pixels. Callers must not modify them.
func (t *Texture) Image() *image.RGBA { return t.img }

// Size returns the width and height in pixels.
func (t *Texture) Size() (w, h int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Average returns the average colour sampled every AverageSkip pixels.
func (t *Texture) Average() color.RGBA { return t.avg }

// At samples the texel at (u,v), both wrapped into [0,1). v grows downwards.
func (t *Texture) At(u, v float64) color.RGBA {
	w, h := t.Size()
	x := wrap(u, w)
	y := wrap(v, h)
	i := t.img.PixOffset(x, y)
	p := t.img.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// AtUV samples at (real(uv), imag(uv)).
func (t *Texture) AtUV(uv complex128) color.RGBA {
	return t.At(real(uv), imag(uv))
}

// Inverted returns a copy with every colour channel inverted. Alpha is kept.
func (t *Texture) Inverted() *Texture {
	out := image.NewRGBA(t.img.Bounds())
	for i := 0; i+3 < len(t.img.Pix); i += 4 {
		out.Pix[i] = 255 - t.img.Pix[i]
		out.Pix[i+1] = 255 - t.img.Pix[i+1]
		out.Pix[i+2] = 255 - t.img.Pix[i+2]
		out.Pix[i+3] = t.img.Pix[i+3]
	}
	return &Texture{img: out, avg: Invert(t.avg)}
}

// Invert returns the colour complement of c with alpha kept.
func Invert(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// AverageColor averages img over a grid of every skip-th pixel in both
// directions. The result is opaque. skip < 1 samples every pixel.
func AverageColor(img image.Image, skip int) color.RGBA {
	if skip < 1 {
		skip = 1
	}
	b := img.Bounds()
	var r, g, bl, n uint64
	for x := b.Min.X; x < b.Max.X; x += skip {
		for y := b.Min.Y; y < b.Max.Y; y += skip {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 255}
}

// Offset returns the texture-coordinate drift at animation time t:
// (0.5 + 0.5·cos(t/20), 0.5 + 0.5·sin(3t/50)).
func Offset(t float64) complex128 {
	return complex(0.5+0.5*math.Cos(t/20), 0.5+0.5*math.Sin(3*t/50))
}

// Discover lists the image files of dir matching Patterns, grouped by
// pattern and sorted within each group.
func Discover(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("texture: %s is not a directory", dir)
	}

	var files []string
	for _, pat := range Patterns {
		m, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, fmt.Errorf("texture: glob %s: %w", pat, err)
		}
		files = append(files, m...)
	}
	return files, nil
}

// wrap maps a coordinate to a pixel index in [0,n).
func wrap(c float64, n int) int {
	c -= math.Floor(c)
	i := int(c * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Checker returns a size×size checkerboard of cells×cells squares in a and
// b, the fallback when no image files are available.
func Checker(size, cells int, a, b color.RGBA) *Texture {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x*cells/size+y*cells/size)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return &Texture{img: img, avg: AverageColor(img, AverageSkip)}
}
