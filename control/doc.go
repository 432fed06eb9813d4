// Package control holds the interactive state of a viewer and maps input
// to it.
//
// A Session owns the tiling parameters {p,q}, the selected image, the drift
// offset and angle, and the mode flags. Its P and Q setters keep the pair
// hyperbolic. Keyboard, mouse and joystick input is translated by Key,
// Mouse and Joystick; none of them know about a windowing toolkit, so the
// hosts (ebiten, tcell) convert their events first.
//
// Movement turns the session into the per-frame Möbius map fed to
// tiling.Disc.Frame. Changes that require a new tiling set a reset flag
// which the host consumes with TakeReset.
package control
