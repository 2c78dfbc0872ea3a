package settings

import (
	"math"
	"strings"

	"chosenoffset.com/wanderer/internal/audio"
)

// MaxTicks is how many steps the volume slider has.
const MaxTicks = 20

// VolumeSlider is the discrete perceptual volume shown in the settings menu.
// The linear gain is always derived from the tick count.
type VolumeSlider struct {
	ticks int
	conv  audio.PerceptualVolume
}

// NewVolumeSlider places the slider at the tick closest to a linear gain.
func NewVolumeSlider(conv audio.PerceptualVolume, volume float64) VolumeSlider {
	ticks := int(math.Round(conv.ToPerceptual(volume) * MaxTicks))
	return VolumeSlider{ticks: clampInt(ticks, 0, MaxTicks), conv: conv}
}

// VolumeSliderAt places the slider at a tick count, clamped to range.
func VolumeSliderAt(conv audio.PerceptualVolume, ticks int) VolumeSlider {
	return VolumeSlider{ticks: clampInt(ticks, 0, MaxTicks), conv: conv}
}

// Ticks returns the slider position.
func (v VolumeSlider) Ticks() int {
	return v.ticks
}

// Increment moves the slider one tick up, stopping at MaxTicks.
func (v *VolumeSlider) Increment() {
	v.ticks = min(MaxTicks, v.ticks+1)
}

// Decrement moves the slider one tick down, stopping at zero.
func (v *VolumeSlider) Decrement() {
	v.ticks = max(0, v.ticks-1)
}

// Fraction returns the perceptual fraction in [0, 1].
func (v VolumeSlider) Fraction() float64 {
	return float64(v.ticks) / MaxTicks
}

// Volume returns the linear gain for the main bus.
func (v VolumeSlider) Volume() float64 {
	return v.conv.ToVolume(v.Fraction())
}

// Bar renders the slider as a fixed-width text bar.
func (v VolumeSlider) Bar() string {
	return strings.Repeat("█", v.ticks) + strings.Repeat(" ", MaxTicks-v.ticks) + "|"
}
