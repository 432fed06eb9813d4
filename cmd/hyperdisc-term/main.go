// Command hyperdisc-term draws the hyperbolic tiling in a terminal with
// half-block characters, two square pixels per cell.
//
// Usage:
//
//	hyperdisc-term [flags] [image-dir]
//
// Keys are those of the windowed viewer: p/q (upper case decreases), n, z,
// r, l, i, m; Esc or Ctrl-C quits. Drag with the mouse to move.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hyperdisc/internal/app"
	"github.com/katalvlaran/hyperdisc/texture"
)

const (
	logDir      = "logs"
	logFileName = "hyperdisc-term.log"
	frameTime   = 40 * time.Millisecond
)

type options struct {
	p, q      int
	invert    bool
	moving    bool
	debug     bool
	mute      bool
	seed      int64
	imagesDir string
}

func main() {
	if err := run(os.Args[1:], os.Stderr, tcell.NewScreen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hyperdisc-term", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.p, "p", 5, "Sides per tile")
	fs.IntVar(&o.q, "q", 5, "Tiles per vertex")
	fs.BoolVar(&o.invert, "invert", false, "Invert colours of alternate half-sectors")
	fs.BoolVar(&o.moving, "move", false, "Start wandering")
	fs.BoolVar(&o.debug, "debug", false, "Log to "+filepath.Join(logDir, logFileName))
	fs.BoolVar(&o.mute, "mute", false, "Do not play a tone on a new tiling")
	fs.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "Randomization seed")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		o.imagesDir = fs.Arg(0)
	}
	return o, nil
}

// run sets up logging, sound and the screen and shows the viewer until it
// quits. The session summary is logged however the viewer ends.
func run(args []string, stderr io.Writer, newScreen func() (tcell.Screen, error)) error {
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

	var snd *sound
	if !o.mute {
		if snd, err = newSound(); err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer snd.close()

	a, err := app.New(app.Config{
		Images:      images,
		TextureSize: 128,
		P:           o.p,
		Q:           o.q,
		Inverting:   o.invert,
		Moving:      o.moving,
		Seed:        o.seed,
		OnReset:     snd.tone,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return newViewer(screen, a).run()
}

// setupLogging sends log output to logs/hyperdisc-term.log when debug is set
// and discards it otherwise; the terminal belongs to the screen.
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
