// Package config handles demo configuration loading and management.
package config

import (
	"path/filepath"
	"time"
)

// Config holds all settings shared by the demo programs. Each program reads
// the sections it needs.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Logging    LoggingConfig    `yaml:"logging"`
	Assets     AssetsConfig     `yaml:"assets"`
	Simulation SimulationConfig `yaml:"simulation"`
	Rods       RodsConfig       `yaml:"rods"`
	Solar      SolarConfig      `yaml:"solar"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Title      string `yaml:"title"`

	// ScreenshotDir receives F10 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// AssetsConfig holds asset file names. Relative names are resolved against
// Dir.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Earth      string `yaml:"earth"`
	Moon       string `yaml:"moon"`
	Outline    string `yaml:"outline"`
}

// SimulationConfig holds the editor's animation settings.
type SimulationConfig struct {
	StepInterval     time.Duration `yaml:"step_interval"`
	MaxPixelsPerStep int           `yaml:"max_pixels_per_step"`
	// Seed seeds the velocity generator; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// RodsConfig holds the rods demo settings.
type RodsConfig struct {
	Slices     int     `yaml:"slices"`
	Distance   float32 `yaml:"distance"`
	BoxSize    float32 `yaml:"box_size"`
	RotateStep float32 `yaml:"rotate_step"`
}

// SolarConfig holds the solar system demo settings. Angles are degrees.
type SolarConfig struct {
	StepInterval time.Duration `yaml:"step_interval"`

	SunRadius   float32 `yaml:"sun_radius"`
	EarthRadius float32 `yaml:"earth_radius"`
	MoonRadius  float32 `yaml:"moon_radius"`

	EarthDistance     float32 `yaml:"earth_distance"`
	MoonDistance      float32 `yaml:"moon_distance"`
	SatelliteDistance float32 `yaml:"satellite_distance"`
	SatelliteSize     float32 `yaml:"satellite_size"`

	EarthOrbitStep     float32 `yaml:"earth_orbit_step"`
	EarthSpinStep      float32 `yaml:"earth_spin_step"`
	MoonOrbitStep      float32 `yaml:"moon_orbit_step"`
	MoonSpinStep       float32 `yaml:"moon_spin_step"`
	SatelliteOrbitStep float32 `yaml:"satellite_orbit_step"`
	SatelliteSpinStep  float32 `yaml:"satellite_spin_step"`

	SphereSlices int     `yaml:"sphere_slices"`
	SphereStacks int     `yaml:"sphere_stacks"`
	CameraStep   float32 `yaml:"camera_step"`
	CameraRange  float32 `yaml:"camera_range"`
}

// Default returns a Config with the values the demos were designed for.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:         800,
			Height:        600,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Assets: AssetsConfig{
			Dir:        "assets",
			Background: "starbuck.bmp",
			Earth:      "earth.bmp",
			Moon:       "moon.bmp",
			Outline:    "staff.outline",
		},
		Simulation: SimulationConfig{
			StepInterval:     40 * time.Millisecond,
			MaxPixelsPerStep: 32,
		},
		Rods: RodsConfig{
			Slices:     18,
			Distance:   60,
			BoxSize:    120,
			RotateStep: 10,
		},
		Solar: SolarConfig{
			StepInterval: 40 * time.Millisecond,

			SunRadius:   20,
			EarthRadius: 10,
			MoonRadius:  5,

			EarthDistance:     60,
			MoonDistance:      25,
			SatelliteDistance: 15,
			SatelliteSize:     2,

			EarthOrbitStep:     1,
			EarthSpinStep:      2,
			MoonOrbitStep:      4,
			MoonSpinStep:       4,
			SatelliteOrbitStep: 8,
			SatelliteSpinStep:  8,

			SphereSlices: 32,
			SphereStacks: 32,
			CameraStep:   10,
			CameraRange:  100,
		},
	}
}

// AssetPath resolves an asset name against the asset directory. Absolute
// names are returned unchanged.
func (c *Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.Assets.Dir == "" {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}
