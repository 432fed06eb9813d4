package main

import (
	"image"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hyperdisc/control"
	"github.com/katalvlaran/hyperdisc/internal/app"
	"github.com/katalvlaran/hyperdisc/raster"
)

// upperHalf is drawn with the upper pixel as foreground and the lower pixel
// as background.
const upperHalf = '▀'

var runeKeys = map[rune]control.Key{
	'p': control.KeyP,
	'q': control.KeyQ,
	'n': control.KeyN,
	'z': control.KeyZ,
	'r': control.KeyR,
	'l': control.KeyL,
	'i': control.KeyI,
	'm': control.KeyM,
}

type viewer struct {
	screen tcell.Screen
	app    *app.App
	start  time.Time

	img      *image.RGBA
	vp       raster.Viewport
	mouse    control.Mouse
	mousePos complex128
}

func newViewer(screen tcell.Screen, a *app.App) *viewer {
	v := &viewer{screen: screen, app: a, start: time.Now()}
	v.resize()
	return v
}

// run polls events on a goroutine and draws on a ticker until quit.
func (v *viewer) run() error {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if err := v.tick(time.Since(v.start).Seconds()); err != nil {
				return err
			}
		}
	}
}

// handle applies one event and reports whether to keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			r := ev.Rune()
			if k, ok := runeKeys[unicode.ToLower(r)]; ok {
				if v.app.Session.Key(k, unicode.IsUpper(r)) == control.ActionQuit {
					return false
				}
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		v.mousePos = v.vp.ToDisc(float64(x)+0.5, float64(2*y)+1)
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !v.mouse.IsDragging():
			v.mouse.Press(v.mousePos)
		case !pressed && v.mouse.IsDragging():
			v.mouse.Release()
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	}
	return true
}

// tick computes and shows one frame at t seconds.
func (v *viewer) tick(t float64) error {
	v.mouse.Sample(v.app.Session, v.mousePos)
	fr, err := v.app.Step(t)
	if err != nil {
		return err
	}
	v.app.Render(v.img, fr)
	v.blit()
	v.screen.Show()
	v.app.EndFrame()
	return nil
}

func (v *viewer) resize() {
	w, h := v.screen.Size()
	w, h = max(w, 1), max(h, 1)
	v.img = image.NewRGBA(image.Rect(0, 0, w, 2*h))
	v.vp = raster.Viewport{Width: w, Height: 2 * h}
}

// blit copies the pixel buffer to the screen, two rows per cell.
func (v *viewer) blit() {
	b := v.img.Bounds()
	for y := 0; 2*y+1 < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			top := v.img.RGBAAt(x, 2*y)
			bottom := v.img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
}
