package game

import (
	"fmt"
	"log"

	"chosenoffset.com/wanderer/internal/audio"
	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/core/tokenset"
	"chosenoffset.com/wanderer/internal/gameplay/dialogue"
	"chosenoffset.com/wanderer/internal/gameplay/interact"
	"chosenoffset.com/wanderer/internal/gameplay/npc"
	"chosenoffset.com/wanderer/internal/gameplay/pickup"
	"chosenoffset.com/wanderer/internal/gameplay/player"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/settings"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
	"chosenoffset.com/wanderer/internal/world/level"
)

// Game is one gameplay scene. Everything it owns, the crosshair state
// included, is created when the scene starts and dropped when it ends.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Level    *level.Level
	Player   *player.Player
	Reticle  *crosshair.Widget
	Prompt   *interact.Prompt
	Dialogue *dialogue.Dialogue
	Pickup   *pickup.Holder
	NPCs     *npc.Crowd

	Renderer render.Renderer
	InputMgr render.InputManager
	Mixer    *audio.Mixer
	Settings *settings.Settings

	// UI state
	Messages []Message
	paused   bool

	// Debug
	FrameCount int
}

// NewGame builds a scene for lvl.
func NewGame(lvl *level.Level, r render.Renderer, input render.InputManager, cursor render.CursorController, mixer *audio.Mixer, values *settings.Settings, width, height int) *Game {
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Level:        lvl,
		Player:       player.New(lvl.Spawn, geom.Deg(lvl.SpawnYaw)),
		Reticle:      crosshair.NewWidget(cursor),
		Prompt:       interact.NewPrompt(),
		Renderer:     r,
		InputMgr:     input,
		Mixer:        mixer,
		Settings:     values,
	}
	g.Dialogue = dialogue.New(g.Reticle.Aggregator, &g.Player.BlocksInput)
	g.Pickup = pickup.New(g.Reticle.Aggregator, lvl.Props)
	g.NPCs = npc.New(lvl.NPCs)

	g.Player.OnStep = func() { g.playSound(audio.PoolSpatial, SoundStep, 0.6) }
	g.NPCs.OnStep = func(n *npc.NPC) { g.playSound(audio.PoolSpatial, SoundNPCStep, 1) }
	g.Pickup.OnPickup = func(p *pickup.Prop) { g.playSound(audio.PoolSfx, SoundPickup, 1) }
	g.Pickup.OnDrop = func(p *pickup.Prop) { g.playSound(audio.PoolSfx, SoundDrop, 1) }
	g.Dialogue.OnComplete = func(speaker string) {
		g.ShowMessage(fmt.Sprintf("%s goes back to work.", speaker))
	}
	return g
}

// Crosshair returns the scene's crosshair requests.
func (g *Game) Crosshair() *crosshair.Aggregator {
	return g.Reticle.Aggregator
}

// Paused reports whether the simulation is stopped.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused stops or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// BlocksInput returns the set of systems blocking player input.
func (g *Game) BlocksInput() *tokenset.Set {
	return &g.Player.BlocksInput
}

// Update runs the gameplay systems for one tick. The crosshair is resolved
// separately by Present, after every system that may change it.
func (g *Game) Update(dt float64) {
	g.FrameCount++
	g.updateMessages(dt)

	sensitivity := 1.0
	if g.Settings != nil {
		sensitivity = g.Settings.Camera.Sensitivity
	}
	// The pause menu blocks input, so this only forgets the mouse position
	// while paused.
	g.Player.Update(g.InputMgr, sensitivity, dt)
	if g.paused {
		return
	}
	g.Player.Pos = g.Level.Clamp(g.Player.Pos)

	handled := g.updatePickup(dt)
	if g.Player.Blocked() {
		g.NPCs.Halt()
	} else {
		g.NPCs.Update(g.Player.Pos, g.Level, dt)
	}
	g.updateFocus(handled)
	g.Prompt.Update(g.Reticle.Aggregator)
	g.Dialogue.Update(g.InputMgr)
}

// Present resolves and applies this tick's crosshair requests.
func (g *Game) Present() {
	g.Reticle.Update()
}

// updatePickup handles picking up, dropping and throwing. It reports whether
// the interact input was used.
func (g *Game) updatePickup(dt float64) bool {
	handled := false
	in := g.InputMgr
	use := in.IsKeyJustPressed(render.KeyE)
	clicked := in.IsMouseButtonJustPressed(render.MouseButtonLeft)

	if !g.Player.Blocked() {
		if g.Pickup.Holding() {
			switch {
			case clicked:
				g.Pickup.Throw(g.Player.Forward())
				handled = true
			case use || in.IsKeyJustPressed(render.KeyQ):
				g.Pickup.Drop()
				handled = true
			}
		} else if t, ok := g.Prompt.Current(); ok && t.Kind == interact.KindPickup && (use || clicked) {
			if err := g.Pickup.Pick(t.Index); err != nil {
				g.ShowMessage(err.Error())
			}
			handled = true
		}
	}

	g.Pickup.Update(g.Player.Pos, g.Player.Forward(), g.Level, dt)
	return handled
}

// updateFocus refreshes the interaction prompt and starts conversations.
func (g *Game) updateFocus(handled bool) {
	if g.Player.Blocked() || g.Pickup.Holding() {
		g.Prompt.Clear()
		return
	}

	t, ok := interact.Focus(g.Player.Pos, g.Player.Forward(), g.targets())
	g.Prompt.Set(t, ok)

	if !ok || handled || t.Kind != interact.KindTalk || !g.InputMgr.IsKeyJustPressed(render.KeyE) {
		return
	}
	n := g.NPCs.NPCs[t.Index]
	if err := g.Dialogue.Start(n.Name, n.Dialogue); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	g.Prompt.Clear()
}

func (g *Game) targets() []interact.Target {
	targets := make([]interact.Target, 0, len(g.NPCs.NPCs)+len(g.Pickup.Props()))
	for i, n := range g.NPCs.NPCs {
		text := n.Prompt
		if text == "" {
			text = "Talk to " + n.Name
		}
		targets = append(targets, interact.Target{Kind: interact.KindTalk, Index: i, Name: n.Name, Pos: n.Pos, Text: text})
	}
	for i, p := range g.Pickup.Props() {
		targets = append(targets, interact.Target{Kind: interact.KindPickup, Index: i, Name: p.Name, Pos: p.Pos, Text: "Pick up " + p.Name})
	}
	return targets
}

// Close ends the scene and releases everything it requested.
func (g *Game) Close() {
	g.Dialogue.Abort()
	g.Pickup.Reset()
	g.Prompt.Clear()
	g.Player.BlocksInput.Clear()
	g.Reticle.Close()
}

func (g *Game) playSound(pool audio.Pool, name string, gain float64) {
	if g.Mixer == nil {
		return
	}
	g.Mixer.PlayOrLog(pool, name, gain)
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}
