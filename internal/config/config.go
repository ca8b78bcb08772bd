package config

import (
	_ "embed"
	"image/color"
)

const (
	WindowWidth  = 1024
	WindowHeight = 720
	WindowTitle  = "Happy Birthday - Space: music, O: choose track, Esc/Q: quit"

	// Music button dimensions
	ButtonWidth  = 150
	ButtonHeight = 40
	ButtonMargin = 20

	NavHeight = 36

	// Particle field
	ParticleCount     = 20
	SizeMin           = 4.0
	SizeSpan          = 12.0
	SpeedYMin         = 0.3
	SpeedYSpan        = 0.8
	SpeedXSpan        = 1.5
	RotationSpan      = 360.0
	RotationSpeedSpan = 1.5
	OpacityMin        = 0.3
	OpacitySpan       = 0.6
	WobbleStep        = 0.015
	WobbleAmplitude   = 0.3
	RecycleMargin     = 50.0

	// Scroll-reveal
	RevealThreshold    = 0.1
	RevealBottomMargin = 50.0
	RevealDuration     = 0.6
	RevealSlide        = 30.0

	// Smooth scroll
	ScrollDuration = 0.5
	WheelStep      = 40.0

	// Page layout
	SectionPadding = 48.0
	SectionGap     = 24.0
	HeadingHeight  = 40.0
	LineHeight     = 22.0

	MusicVolume = 0.1
	SampleRate  = 44100
	VisualRing  = 4096
	LevelWindow = 1024
)

// Palette holds the particle colors.
var Palette = []color.RGBA{
	{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF},
	{R: 0xFF, G: 0x14, B: 0x93, A: 0xFF},
	{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x6B, B: 0x9D, A: 0xFF},
	{R: 0xE8, G: 0xA0, B: 0xBF, A: 0xFF},
}

// PageYAML is the page content shipped with the binary.
//
//go:embed page.yaml
var PageYAML []byte
