// Command hyperdisc shows an animated hyperbolic tiling of the Poincaré disc
// in a window.
//
// Usage:
//
//	hyperdisc [flags] [image-dir]
//
// Keys: P/Q change the tiling (Shift decreases), N cycles images, Z
// randomizes, R recenters, L makes a limit rotation, I toggles colour
// inversion, M toggles wandering, F toggles full screen, Esc quits. Drag to
// move; drag from the rim to rotate. A gamepad steers with its sticks.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/hyperdisc/internal/app"
	"github.com/katalvlaran/hyperdisc/texture"
)

const (
	windowSize  = 800
	logDir      = "logs"
	logFileName = "hyperdisc.log"
)

type options struct {
	p, q        int
	invert      bool
	moving      bool
	debug       bool
	textureSize int
	budget      time.Duration
	seed        int64
	imagesDir   string
}

func main() {
	if err := run(os.Args[1:], os.Stderr, play); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hyperdisc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.p, "p", 5, "Sides per tile")
	fs.IntVar(&o.q, "q", 5, "Tiles per vertex")
	fs.BoolVar(&o.invert, "invert", false, "Invert colours of alternate half-sectors")
	fs.BoolVar(&o.moving, "move", false, "Start wandering")
	fs.BoolVar(&o.debug, "debug", false, "Log to "+filepath.Join(logDir, logFileName))
	fs.IntVar(&o.textureSize, "texture-size", app.DefaultTextureSize, "Rescale images to this size (0 keeps)")
	fs.DurationVar(&o.budget, "budget", 0, "Per-frame discovery budget (0 derives it from the frame target)")
	fs.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "Randomization seed")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		o.imagesDir = fs.Arg(0)
	}
	return o, nil
}

// run prepares the viewer and hands it to start. The session summary is
// logged however start returns.
func run(args []string, stderr io.Writer, start func(a *app.App) error) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logFile := setupLogging(o.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	var images []string
	if o.imagesDir != "" {
		if images, err = texture.Discover(o.imagesDir); err != nil {
			return err
		}
	}

	a, err := app.New(app.Config{
		Images:      images,
		TextureSize: o.textureSize,
		P:           o.p,
		Q:           o.q,
		Inverting:   o.invert,
		Moving:      o.moving,
		Budget:      o.budget,
		Seed:        o.seed,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := start(a); err != nil {
		log.Printf("run: %v", err)
		return err
	}
	return nil
}

// play opens the window and runs the game loop until the viewer quits.
func play(a *app.App) error {
	ebiten.SetWindowTitle("Poincaré")
	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(newGame(a))
}

// setupLogging sends log output to logs/hyperdisc.log when debug is set and
// discards it otherwise. The returned file, if any, must be closed.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
