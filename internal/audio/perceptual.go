package audio

import "math"

// PerceptualVolume converts between linear gain and a perceptual loudness
// fraction for volume sliders. Gain follows a power curve so equal slider
// steps sound like equal loudness steps.
type PerceptualVolume struct {
	// MaxVolume is the linear gain at a perceptual fraction of 1.
	MaxVolume float64
	// Exponent shapes the curve; larger values give finer control at the
	// quiet end.
	Exponent float64
}

// DefaultPerceptualVolume returns the converter used by the settings menu.
// A full slider is 2x unity gain, so the default main volume sits below the
// top and can still be raised.
func DefaultPerceptualVolume() PerceptualVolume {
	return PerceptualVolume{MaxVolume: 2.0, Exponent: 3.0}
}

// ToPerceptual maps a linear gain to a fraction in [0, 1]. Gains outside
// [0, MaxVolume] are clamped.
func (p PerceptualVolume) ToPerceptual(volume float64) float64 {
	maxVol, exp := p.params()
	if math.IsNaN(volume) || volume <= 0 {
		return 0
	}
	if volume >= maxVol {
		return 1
	}
	return math.Pow(volume/maxVol, 1/exp)
}

// ToVolume maps a fraction in [0, 1] back to linear gain. Fractions outside
// [0, 1] are clamped.
func (p PerceptualVolume) ToVolume(fraction float64) float64 {
	maxVol, exp := p.params()
	if math.IsNaN(fraction) || fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return maxVol
	}
	return maxVol * math.Pow(fraction, exp)
}

func (p PerceptualVolume) params() (maxVol, exp float64) {
	def := DefaultPerceptualVolume()
	maxVol, exp = p.MaxVolume, p.Exponent
	if !(maxVol > 0) {
		maxVol = def.MaxVolume
	}
	if !(exp > 0) {
		exp = def.Exponent
	}
	return maxVol, exp
}
