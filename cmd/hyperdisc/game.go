package main

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/hyperdisc/circline"
	"github.com/katalvlaran/hyperdisc/control"
	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/internal/app"
	"github.com/katalvlaran/hyperdisc/raster"
	"github.com/katalvlaran/hyperdisc/texture"
	"github.com/katalvlaran/hyperdisc/tiling"
)

const (
	// maxBatchVertices keeps indices within uint16.
	maxBatchVertices = math.MaxUint16 - 3
)

// horizonDirs are the unit directions of the horizon ring.
var horizonDirs = circline.Unit().Polyline()

var keys = map[ebiten.Key]control.Key{
	ebiten.KeyP:      control.KeyP,
	ebiten.KeyQ:      control.KeyQ,
	ebiten.KeyN:      control.KeyN,
	ebiten.KeyZ:      control.KeyZ,
	ebiten.KeyR:      control.KeyR,
	ebiten.KeyL:      control.KeyL,
	ebiten.KeyI:      control.KeyI,
	ebiten.KeyM:      control.KeyM,
	ebiten.KeyF:      control.KeyF,
	ebiten.KeyEscape: control.KeyEscape,
}

var padButtons = map[ebiten.StandardGamepadButton]control.Button{
	ebiten.StandardGamepadButtonRightBottom:      control.ButtonTrigger,
	ebiten.StandardGamepadButtonRightRight:       control.ButtonGrip,
	ebiten.StandardGamepadButtonFrontTopLeft:     control.ButtonThumbBottomLeft,
	ebiten.StandardGamepadButtonFrontTopRight:    control.ButtonThumbBottomRight,
	ebiten.StandardGamepadButtonFrontBottomLeft:  control.ButtonThumbTopLeft,
	ebiten.StandardGamepadButtonFrontBottomRight: control.ButtonThumbTopRight,
	ebiten.StandardGamepadButtonCenterLeft:       control.ButtonPad7,
	ebiten.StandardGamepadButtonCenterRight:      control.ButtonPad8,
	ebiten.StandardGamepadButtonRightLeft:        control.ButtonPad9,
	ebiten.StandardGamepadButtonRightTop:         control.ButtonPad10,
}

type batch struct {
	verts []ebiten.Vertex
	idx   []uint16
}

type game struct {
	app   *app.App
	start time.Time
	frame *tiling.Frame

	mouse  control.Mouse
	pads   map[ebiten.GamepadID]*control.Joystick
	padIDs []ebiten.GamepadID

	images  map[*texture.Texture]*ebiten.Image
	white   *ebiten.Image
	tris    []face.Triangle
	batches [2]batch
	horizon batch
	vp      raster.Viewport
}

func newGame(a *app.App) *game {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &game{
		app:    a,
		start:  time.Now(),
		pads:   make(map[ebiten.GamepadID]*control.Joystick),
		images: make(map[*texture.Texture]*ebiten.Image),
		white:  white,
		vp:     raster.Viewport{Width: windowSize, Height: windowSize},
	}
}

func (g *game) Update() error {
	s := g.app.Session

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for k, key := range keys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		switch s.Key(key, shift) {
		case control.ActionFullscreen:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		case control.ActionQuit:
			return ebiten.Termination
		}
	}

	x, y := ebiten.CursorPosition()
	pos := g.vp.ToDisc(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.mouse.Press(pos)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.mouse.Release()
	}
	g.mouse.Sample(s, pos)

	g.updateGamepads(s)

	fr, err := g.app.Step(time.Since(g.start).Seconds())
	if err != nil {
		return err
	}
	g.frame = fr
	return nil
}

func (g *game) updateGamepads(s *control.Session) {
	g.padIDs = ebiten.AppendGamepadIDs(g.padIDs[:0])
	for _, id := range g.padIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		j, ok := g.pads[id]
		if !ok {
			j = &control.Joystick{}
			g.pads[id] = j
		}
		for b, btn := range padButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				j.Press(s, btn)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				j.Release(btn)
			}
		}

		pressed := func(b ebiten.StandardGamepadButton) float64 {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return 1
			}
			return 0
		}
		j.Sample(s, []float64{
			control.AxisX:        ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			control.AxisY:        -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			control.AxisTwist:    ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			control.AxisThrottle: -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
			control.AxisHatX:     pressed(ebiten.StandardGamepadButtonLeftRight) - pressed(ebiten.StandardGamepadButtonLeftLeft),
			control.AxisHatY:     pressed(ebiten.StandardGamepadButtonLeftTop) - pressed(ebiten.StandardGamepadButtonLeftBottom),
		})
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.frame == nil {
		return
	}

	r := g.app.Renderer()
	cx, cy := g.vp.ToPixel(0)
	radius := float32(g.vp.Scale())
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, r.Background, true)

	src := [2]*ebiten.Image{g.image(r.Texture), g.image(r.Inverse)}
	g.evict(r)
	off := g.app.TexOffset()
	for _, f := range g.frame.Faces {
		g.tris = f.Triangles(g.tris[:0])
		for i := range g.tris {
			t := &g.tris[i]
			k := 0
			if t.Inverted(r.Inverting) {
				k = 1
			}
			b := &g.batches[k]
			if len(b.verts) >= maxBatchVertices {
				g.flush(screen, b, src[k])
			}
			g.appendTriangle(b, t, src[k], off)
		}
	}
	for k := range g.batches {
		g.flush(screen, &g.batches[k], src[k])
	}

	g.drawHorizon(screen, r.Background)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 1, texture.Invert(r.Background), true)
	g.app.EndFrame()
}

func (g *game) appendTriangle(b *batch, t *face.Triangle, img *ebiten.Image, off complex128) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	base := uint16(len(b.verts))
	for _, v := range t.V {
		x, y := g.vp.ToPixel(v.Pos)
		uv := v.UV + off
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(real(uv) * float64(w)),
			SrcY:   float32(imag(uv) * float64(h)),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	b.idx = append(b.idx, base, base+1, base+2)
}

func (g *game) flush(screen *ebiten.Image, b *batch, img *ebiten.Image) {
	if len(b.idx) > 0 {
		screen.DrawTriangles(b.verts, b.idx, img, &ebiten.DrawTrianglesOptions{
			Address: ebiten.AddressRepeat,
			Filter:  ebiten.FilterLinear,
		})
	}
	b.verts = b.verts[:0]
	b.idx = b.idx[:0]
}

// drawHorizon blends the background from transparent at the alpha band to
// opaque at the middle radius, and opaque out to the rim.
func (g *game) drawHorizon(screen *ebiten.Image, bg color.RGBA) {
	inner, middle, outer := g.app.Tuning.HorizonRadii()
	cr, cg, cb := float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255

	b := &g.horizon
	b.verts, b.idx = b.verts[:0], b.idx[:0]
	vertex := func(z complex128, alpha float32) ebiten.Vertex {
		x, y := g.vp.ToPixel(z)
		return ebiten.Vertex{DstX: float32(x), DstY: float32(y), SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha}
	}
	for i := 0; i <= len(horizonDirs); i++ {
		dir := horizonDirs[i%len(horizonDirs)]
		b.verts = append(b.verts,
			vertex(dir*complex(outer, 0), 1),
			vertex(dir*complex(middle, 0), 1),
			vertex(dir*complex(inner, 0), 0))
		if i == 0 {
			continue
		}
		p := uint16(3 * (i - 1))
		c := uint16(3 * i)
		b.idx = append(b.idx,
			p, c, p+1, c, c+1, p+1,
			p+1, c+1, p+2, c+1, c+2, p+2)
	}
	screen.DrawTriangles(b.verts, b.idx, g.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), nil)
}

// image uploads tex once.
func (g *game) image(tex *texture.Texture) *ebiten.Image {
	img, ok := g.images[tex]
	if !ok {
		img = ebiten.NewImageFromImage(tex.Image())
		g.images[tex] = img
	}
	return img
}

// evict frees uploads that the current renderer no longer uses.
func (g *game) evict(r *raster.Renderer) {
	for tex, img := range g.images {
		if tex != r.Texture && tex != r.Inverse {
			img.Deallocate()
			delete(g.images, tex)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vp = raster.Viewport{Width: outsideWidth, Height: outsideHeight}
	return outsideWidth, outsideHeight
}
