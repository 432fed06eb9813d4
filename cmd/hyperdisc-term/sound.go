package main

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/hyperdisc/region"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 120 * time.Millisecond
	baseFreq     = 220.0
)

// sound plays a short tone whenever a new tiling starts. A nil *sound is
// silent.
type sound struct{}

func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &sound{}, nil
}

// toneFreq maps {p,q} to a pitch, one semitone per step above {5,5}.
func toneFreq(rg region.Region) float64 {
	return baseFreq * math.Pow(2, float64(rg.P()+rg.Q()-10)/12)
}

func (s *sound) tone(rg region.Region) {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneFreq(rg))
	if err != nil {
		log.Printf("tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

func (s *sound) close() {
	if s != nil {
		speaker.Close()
	}
}
