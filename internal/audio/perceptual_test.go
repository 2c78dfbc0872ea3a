package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPerceptualZero(t *testing.T) {
	assert.Equal(t, 0.0, DefaultPerceptualVolume().ToPerceptual(0))
	assert.Equal(t, 0.0, DefaultPerceptualVolume().ToVolume(0))
}

func TestToPerceptualStrictlyIncreasing(t *testing.T) {
	p := DefaultPerceptualVolume()
	prev := p.ToPerceptual(0)
	for i := 1; i <= 2000; i++ {
		v := float64(i) * 0.001
		f := p.ToPerceptual(v)
		assert.Greater(t, f, prev, "at volume %v", v)
		prev = f
	}
	assert.InDelta(t, 1.0, prev, 1e-12)
}

func TestRoundTripVolume(t *testing.T) {
	p := DefaultPerceptualVolume()
	for i := 0; i <= 400; i++ {
		v := float64(i) * 0.005
		assert.InDelta(t, v, p.ToVolume(p.ToPerceptual(v)), 1e-4, "volume %v", v)
	}
}

func TestRoundTripFraction(t *testing.T) {
	p := DefaultPerceptualVolume()
	for i := 0; i <= 100; i++ {
		f := float64(i) / 100
		assert.InDelta(t, f, p.ToPerceptual(p.ToVolume(f)), 1e-4, "fraction %v", f)
	}
}

func TestClamping(t *testing.T) {
	p := DefaultPerceptualVolume()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"negative volume", p.ToPerceptual(-3), 0},
		{"volume above max", p.ToPerceptual(10), 1},
		{"NaN volume", p.ToPerceptual(math.NaN()), 0},
		{"negative fraction", p.ToVolume(-0.5), 0},
		{"fraction above one", p.ToVolume(1.5), 2},
		{"NaN fraction", p.ToVolume(math.NaN()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestUnityGainIsBelowFullSlider(t *testing.T) {
	p := DefaultPerceptualVolume()
	f := p.ToPerceptual(1.0)
	assert.Greater(t, f, 0.5)
	assert.Less(t, f, 1.0)
}

func TestZeroValueConverterUsesDefaults(t *testing.T) {
	var p PerceptualVolume
	assert.InDelta(t, DefaultPerceptualVolume().ToPerceptual(0.5), p.ToPerceptual(0.5), 1e-12)
}
