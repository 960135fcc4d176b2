package config

import (
	"image/color"

	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the viewer uses.
const Default ecs.LayerID = 0

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
}

// LevelConfig controls where levels come from and how they are parsed
type LevelConfig struct {
	Dir     string // directory of .tmx files, empty for the bundled levels
	Options leveldata.Options
}

// CameraConfig contains free-camera tunables
type CameraConfig struct {
	PanSpeed float64 // world units per tick at zoom 1
	ZoomStep float64 // multiplicative zoom per tick while held
	MinZoom  float64
	MaxZoom  float64

	ResetSeconds float64 // duration of the zoom-to-fit ease
}

// DebugConfig contains overlay defaults and colours
type DebugConfig struct {
	ShowColliders bool
	ShowOccluders bool

	SolidColor    color.RGBA
	RampColor     color.RGBA
	OccluderColor color.RGBA
	LineWidth     float32
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Grey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Canvas = color.RGBA{R: 20, G: 20, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Level = LevelConfig{
		Dir:     "",
		Options: leveldata.DefaultOptions(),
	}

	Camera = CameraConfig{
		PanSpeed: 6.0,
		ZoomStep: 1.03,
		MinZoom:  0.25,
		MaxZoom:  4.0,

		ResetSeconds: 0.4,
	}

	Debug = DebugConfig{
		ShowColliders: true,
		ShowOccluders: true,
		SolidColor:    Grey,
		RampColor:     Orange,
		OccluderColor: Yellow,
		LineWidth:     1,
	}
}
