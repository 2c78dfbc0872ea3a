// Package level loads the placement of the player, NPCs and props.
package level

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/wanderer/internal/core/geom"
)

// Level describes one playable area.
type Level struct {
	Name     string    `yaml:"name"`
	Spawn    geom.Vec2 `yaml:"spawn"`
	SpawnYaw float64   `yaml:"spawn_yaw"` // degrees
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	NPCs     []NPC     `yaml:"npcs"`
	Props    []Prop    `yaml:"props"`
}

// NPC is a character the player can talk to.
type NPC struct {
	Name     string    `yaml:"name"`
	Pos      geom.Vec2 `yaml:"pos"`
	Prompt   string    `yaml:"prompt"`
	Dialogue []string  `yaml:"dialogue"`
}

// Prop is a physics object the player can pick up.
type Prop struct {
	Name string    `yaml:"name"`
	Pos  geom.Vec2 `yaml:"pos"`
	Mass float64   `yaml:"mass"`
}

// Default returns the built-in level used when no level file exists.
func Default() *Level {
	return &Level{
		Name:   "Courtyard",
		Spawn:  geom.Vec2{X: 2, Y: 2},
		Width:  24,
		Height: 16,
		NPCs: []NPC{
			{
				Name:   "Keeper",
				Pos:    geom.Vec2{X: 8, Y: 2},
				Prompt: "Talk to the keeper",
				Dialogue: []string{
					"Oh, a visitor. We don't get many of those.",
					"The lamps in the east wing went out again.",
					"If you find the crate of wicks, bring it by.",
				},
			},
		},
		Props: []Prop{
			{Name: "Crate", Pos: geom.Vec2{X: 5, Y: 6}, Mass: 8},
			{Name: "Chair", Pos: geom.Vec2{X: 12, Y: 9}, Mass: 5},
			{Name: "Lamp", Pos: geom.Vec2{X: 15, Y: 4}, Mass: 2},
		},
	}
}

// Load reads a level from a YAML file. A missing file yields the built-in
// level.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: level %s not found, using built-in level", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read level: %w", err)
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return &lvl, nil
}

// Validate checks that the level can be played.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("size %gx%g must be positive", l.Width, l.Height)
	}
	if !l.Contains(l.Spawn) {
		return fmt.Errorf("spawn (%g, %g) is outside the level", l.Spawn.X, l.Spawn.Y)
	}
	for _, n := range l.NPCs {
		if n.Name == "" {
			return fmt.Errorf("npc at (%g, %g) has no name", n.Pos.X, n.Pos.Y)
		}
		if len(n.Dialogue) == 0 {
			return fmt.Errorf("npc %s has no dialogue", n.Name)
		}
	}
	for _, p := range l.Props {
		if p.Name == "" {
			return fmt.Errorf("prop at (%g, %g) has no name", p.Pos.X, p.Pos.Y)
		}
	}
	return nil
}

// Contains reports whether p lies inside the level bounds.
func (l *Level) Contains(p geom.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= l.Width && p.Y <= l.Height
}

// Clamp moves p to the nearest point inside the level.
func (l *Level) Clamp(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: max(0, min(l.Width, p.X)),
		Y: max(0, min(l.Height, p.Y)),
	}
}
