// Package settings holds the player's preferences. They are loaded from a
// YAML file at startup and written back whenever the settings menu changes
// them.
package settings

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/wanderer/internal/audio"
)

// Limits for the adjustable values.
const (
	MinSensitivity  = 0.1
	MaxSensitivity  = 20.0
	SensitivityStep = 0.1

	MinFOV  = 45.0
	MaxFOV  = 130.0
	FOVStep = 1.0

	MinFPSTarget  = 30
	MaxFPSTarget  = 360
	FPSTargetStep = 5
)

// Settings holds all user preferences.
type Settings struct {
	Audio   AudioSettings   `yaml:"audio"`
	Camera  CameraSettings  `yaml:"camera"`
	Display DisplaySettings `yaml:"display"`
}

// AudioSettings stores the volume slider position.
type AudioSettings struct {
	VolumeTicks int `yaml:"volume_ticks"`
}

// CameraSettings controls mouse look.
type CameraSettings struct {
	Sensitivity float64 `yaml:"sensitivity"`
	FOV         float64 `yaml:"fov"` // degrees
}

// DisplaySettings controls frame pacing.
type DisplaySettings struct {
	Vsync      bool `yaml:"vsync"`
	FPSLimiter bool `yaml:"fps_limiter"`
	FPSTarget  int  `yaml:"fps_target"`
}

// Default returns the settings used on first launch.
func Default() *Settings {
	return &Settings{
		Audio: AudioSettings{
			VolumeTicks: NewVolumeSlider(audio.DefaultPerceptualVolume(), audio.DefaultMainVolume).Ticks(),
		},
		Camera: CameraSettings{
			Sensitivity: 1.0,
			FOV:         75.0,
		},
		Display: DisplaySettings{
			Vsync:      true,
			FPSLimiter: false,
			FPSTarget:  60,
		},
	}
}

// Load reads settings from a YAML file. A missing file yields defaults;
// values out of range are clamped.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.Clamp()
	return s, nil
}

// Save writes settings to a YAML file, creating its directory if needed.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Clamp forces every value into its allowed range.
func (s *Settings) Clamp() {
	s.Audio.VolumeTicks = clampInt(s.Audio.VolumeTicks, 0, MaxTicks)
	s.Camera.Sensitivity = clampFloat(s.Camera.Sensitivity, MinSensitivity, MaxSensitivity)
	s.Camera.FOV = clampFloat(s.Camera.FOV, MinFOV, MaxFOV)
	s.Display.FPSTarget = clampInt(s.Display.FPSTarget, MinFPSTarget, MaxFPSTarget)
}

// AdjustSensitivity changes camera sensitivity by steps increments.
func (s *Settings) AdjustSensitivity(steps int) {
	s.Camera.Sensitivity = clampFloat(s.Camera.Sensitivity+float64(steps)*SensitivityStep, MinSensitivity, MaxSensitivity)
}

// AdjustFOV changes the field of view by steps degrees.
func (s *Settings) AdjustFOV(steps int) {
	s.Camera.FOV = clampFloat(s.Camera.FOV+float64(steps)*FOVStep, MinFOV, MaxFOV)
}

// AdjustFPSTarget changes the FPS limiter target by steps increments.
func (s *Settings) AdjustFPSTarget(steps int) {
	s.Display.FPSTarget = clampInt(s.Display.FPSTarget+steps*FPSTargetStep, MinFPSTarget, MaxFPSTarget)
}

// TPS returns the update rate the engine should run at, or zero for the
// engine default.
func (s *Settings) TPS() int {
	if !s.Display.FPSLimiter {
		return 0
	}
	return s.Display.FPSTarget
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
