// Package audio owns the main bus volume, the sampler pools sounds are played
// through, and the perceptual volume curve used by the settings menu.
package audio

import (
	"fmt"
	"log"
	"math"
)

// DefaultMainVolume is the linear main bus gain at startup. It sits below
// unity so the player can still turn it up.
const DefaultMainVolume = 0.5

// DefaultPoolVolume is the linear gain of every pool. Tuned by ear.
const DefaultPoolVolume = 1.6

// SampleRate is the rate all clips are decoded to and played at.
const SampleRate = 44100

// Pool groups sounds that share a volume.
type Pool int

const (
	// PoolMusic plays background music.
	PoolMusic Pool = iota
	// PoolSfx plays interface sounds.
	PoolSfx
	// PoolSpatial plays sounds emitted in the world.
	PoolSpatial

	poolCount
)

// String implements fmt.Stringer.
func (p Pool) String() string {
	switch p {
	case PoolMusic:
		return "music"
	case PoolSfx:
		return "sfx"
	case PoolSpatial:
		return "spatial"
	default:
		return fmt.Sprintf("pool(%d)", int(p))
	}
}

// Voice is one playing sound.
type Voice interface {
	Play()
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// Sink creates voices from decoded PCM data.
type Sink interface {
	NewVoice(pcm []byte) Voice
}

type playing struct {
	voice Voice
	gain  float64
}

// Mixer routes sounds through pools to a sink.
type Mixer struct {
	sink  Sink
	bank  *Bank
	main  float64
	pools [poolCount]float64
	live  [poolCount][]playing
}

// NewMixer creates a mixer with default volumes. sink may be nil, in which
// case Play only validates its arguments.
func NewMixer(sink Sink, bank *Bank) *Mixer {
	if bank == nil {
		bank = NewBank()
	}
	m := &Mixer{sink: sink, bank: bank, main: DefaultMainVolume}
	for i := range m.pools {
		m.pools[i] = DefaultPoolVolume
	}
	return m
}

// MainVolume returns the main bus linear gain.
func (m *Mixer) MainVolume() float64 {
	return m.main
}

// SetMainVolume sets the main bus linear gain and updates playing sounds.
func (m *Mixer) SetMainVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	m.main = volume
	m.refresh()
}

// PoolVolume returns a pool's linear gain.
func (m *Mixer) PoolVolume(p Pool) float64 {
	if p < 0 || p >= poolCount {
		return 0
	}
	return m.pools[p]
}

// SetPoolVolume sets a pool's linear gain and updates its playing sounds.
func (m *Mixer) SetPoolVolume(p Pool, volume float64) {
	if p < 0 || p >= poolCount {
		return
	}
	if volume < 0 {
		volume = 0
	}
	m.pools[p] = volume
	m.refresh()
}

// Play starts the named clip in pool at the given per-sound gain.
func (m *Mixer) Play(p Pool, name string, gain float64) error {
	if p < 0 || p >= poolCount {
		return fmt.Errorf("play %q: unknown pool %v", name, p)
	}
	pcm, ok := m.bank.Clip(name)
	if !ok {
		return fmt.Errorf("play %q: %w", name, ErrUnknownClip)
	}
	if m.sink == nil {
		return nil
	}
	v := m.sink.NewVoice(pcm)
	v.SetVolume(EffectiveVolume(m.main, m.pools[p], gain))
	v.Play()
	m.live[p] = append(m.live[p], playing{voice: v, gain: gain})
	return nil
}

// PlayOrLog is Play for fire-and-forget gameplay sounds.
func (m *Mixer) PlayOrLog(p Pool, name string, gain float64) {
	if err := m.Play(p, name, gain); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// Playing returns the number of sounds still playing in pool.
func (m *Mixer) Playing(p Pool) int {
	if p < 0 || p >= poolCount {
		return 0
	}
	return len(m.live[p])
}

// Update drops finished voices. Call once per tick.
func (m *Mixer) Update() {
	for p := range m.live {
		kept := m.live[p][:0]
		for _, pl := range m.live[p] {
			if pl.voice.IsPlaying() {
				kept = append(kept, pl)
				continue
			}
			if err := pl.voice.Close(); err != nil {
				log.Printf("Warning: closing %s voice: %v", Pool(p), err)
			}
		}
		m.live[p] = kept
	}
}

func (m *Mixer) refresh() {
	for p := range m.live {
		for _, pl := range m.live[p] {
			pl.voice.SetVolume(EffectiveVolume(m.main, m.pools[p], pl.gain))
		}
	}
}

// EffectiveVolume combines the main, pool and sound gains into the backend
// volume, which is limited to [0, 1].
func EffectiveVolume(main, pool, gain float64) float64 {
	v := main * pool * gain
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
