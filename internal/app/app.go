// Package app wires a control.Session to a tiling.Disc and a texture. It is
// the frame loop shared by the viewers: each Step consumes pending resets and
// moves the tiling, and EndFrame feeds the time from Step to the end of
// drawing back into the tuning.
package app

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/katalvlaran/hyperdisc/control"
	"github.com/katalvlaran/hyperdisc/raster"
	"github.com/katalvlaran/hyperdisc/region"
	"github.com/katalvlaran/hyperdisc/texture"
	"github.com/katalvlaran/hyperdisc/tiling"
)

// DefaultTextureSize is the working size images are rescaled to.
const DefaultTextureSize = 512

// Config describes a viewer.
type Config struct {
	// Images are the texture files; empty uses a built-in checkerboard.
	Images []string

	// TextureSize rescales loaded images; 0 keeps their size.
	TextureSize int

	// P, Q select the initial tiling; zero means the session default.
	P, Q int

	Inverting bool
	Moving    bool

	// Budget overrides the per-frame discovery budget.
	Budget time.Duration

	// Seed drives randomization.
	Seed int64

	// OnReset is called after every new tiling.
	OnReset func(rg region.Region)

	// Clock reads the current time; nil means time.Now.
	Clock func() time.Time
}

// App is a running viewer. It is not safe for concurrent use.
type App struct {
	Session *control.Session
	Tuning  tiling.Tuning

	cfg      Config
	disc     *tiling.Disc
	renderer *raster.Renderer
	textures map[int]*texture.Texture
	offset   complex128
	clock    func() time.Time
	started  time.Time
}

// New validates cfg and prepares the first tiling.
func New(cfg Config) (*App, error) {
	images := len(cfg.Images)
	if images == 0 {
		images = 1
	}
	s, err := control.New(images, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	if cfg.P != 0 || cfg.Q != 0 {
		p, q := cfg.P, cfg.Q
		if p == 0 {
			p = control.DefaultP
		}
		if q == 0 {
			q = control.DefaultQ
		}
		s.SetPQ(p, q)
	}
	s.IsInverting = cfg.Inverting
	s.IsMoving = cfg.Moving

	a := &App{
		Session:  s,
		Tuning:   tiling.DefaultTuning(),
		cfg:      cfg,
		textures: make(map[int]*texture.Texture),
		clock:    cfg.Clock,
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if err := a.reset(); err != nil {
		return nil, err
	}
	s.TakeReset()
	return a, nil
}

// Step advances the viewer to t seconds and computes one frame. The frame
// is timed until the matching EndFrame.
func (a *App) Step(t float64) (*tiling.Frame, error) {
	a.started = a.clock()
	a.offset = texture.Offset(a.Session.Tick(t))
	if a.Session.TakeReset() {
		if err := a.reset(); err != nil {
			return nil, err
		}
	}

	fr, err := a.disc.Frame(a.Session.Movement(t), a.Tuning)
	if err != nil {
		return nil, err
	}
	return fr, nil
}

// EndFrame closes the frame opened by the last Step once it has been drawn,
// adjusts the tuning by the whole frame time and returns that time.
func (a *App) EndFrame() time.Duration {
	if a.started.IsZero() {
		return 0
	}
	elapsed := a.clock().Sub(a.started)
	a.started = time.Time{}
	a.Tuning = a.Tuning.Adjust(elapsed)
	return elapsed
}

// Render rasterizes fr into dst.
func (a *App) Render(dst *image.RGBA, fr *tiling.Frame) int {
	return a.renderer.Draw(dst, fr.Faces, a.Tuning, a.offset)
}

// Renderer returns the current renderer; it changes on reset.
func (a *App) Renderer() *raster.Renderer { return a.renderer }

// TexOffset returns the texture offset of the last Step.
func (a *App) TexOffset() complex128 { return a.offset }

// Disc returns the current tiling session.
func (a *App) Disc() *tiling.Disc { return a.disc }

// Close logs the summary of the running tiling.
func (a *App) Close() {
	if a.disc != nil {
		log.Print(a.disc.Summary(a.Tuning))
	}
}

// reset ends the running tiling and starts one from the session state.
func (a *App) reset() error {
	rg, err := a.Session.Region()
	if err != nil {
		return err
	}
	tex, err := a.texture(a.Session.ImageIndex())
	if err != nil {
		return err
	}
	r, err := raster.New(tex, a.Session.IsInverting)
	if err != nil {
		return err
	}

	if a.disc == nil {
		var opts []tiling.Option
		if a.cfg.Budget > 0 {
			opts = append(opts, tiling.WithBudget(a.cfg.Budget))
		}
		if a.disc, err = tiling.NewDisc(rg, opts...); err != nil {
			return err
		}
	} else {
		log.Print(a.disc.Summary(a.Tuning))
		a.disc.Reset(rg)
	}
	a.renderer = r
	a.Tuning = tiling.DefaultTuning()

	if a.cfg.OnReset != nil {
		a.cfg.OnReset(rg)
	}
	return nil
}

// texture loads image i once.
func (a *App) texture(i int) (*texture.Texture, error) {
	if tex, ok := a.textures[i]; ok {
		return tex, nil
	}
	var tex *texture.Texture
	if len(a.cfg.Images) == 0 {
		tex = texture.Checker(DefaultTextureSize, 8,
			color.RGBA{R: 0xe0, G: 0xd0, B: 0xa0, A: 0xff},
			color.RGBA{R: 0x30, G: 0x40, B: 0x70, A: 0xff})
	} else {
		var err error
		if tex, err = texture.Load(a.cfg.Images[i], a.cfg.TextureSize); err != nil {
			return nil, fmt.Errorf("app: image %d: %w", i, err)
		}
	}
	a.textures[i] = tex
	return tex, nil
}
