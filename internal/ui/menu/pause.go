package menu

import (
	"log"

	"chosenoffset.com/wanderer/internal/core/tokenset"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
)

// Pausable is the gameplay scene as seen by the pause menu.
type Pausable interface {
	Crosshair() *crosshair.Aggregator
	BlocksInput() *tokenset.Set
	SetPaused(paused bool)
}

// PauseMenu frees the cursor, blocks player input and stops the simulation
// for as long as it is open, including while its settings submenu is shown.
type PauseMenu struct {
	token  crosshair.Token
	scene  Pausable
	list   *buttonList
	result transition
}

// NewPauseMenu creates the pause menu.
func NewPauseMenu() *PauseMenu {
	m := &PauseMenu{token: crosshair.NewToken("pause-menu")}
	m.list = newButtonList(
		&button{label: "Continue", onClick: func() { m.result = transition{next: None, action: ActionResume} }},
		&button{label: "Settings", onClick: func() { m.result = transition{next: Settings} }},
		&button{label: "Quit to title", onClick: func() { m.result = transition{next: Main, action: ActionQuitToTitle} }},
	)
	return m
}

// IsOpen reports whether the menu currently holds a scene paused.
func (m *PauseMenu) IsOpen() bool {
	return m.scene != nil
}

// Open pauses scene. Opening an already open menu does nothing.
func (m *PauseMenu) Open(scene Pausable) {
	if m.scene != nil {
		return
	}
	m.scene = scene
	scene.Crosshair().Request(crosshair.WantsFreeCursor, m.token)
	scene.BlocksInput().Insert(m.token)
	scene.SetPaused(true)
	m.list.selected = 0
	log.Println("Game paused")
}

// Close resumes the paused scene. Closing a closed menu does nothing.
func (m *PauseMenu) Close() {
	if m.scene == nil {
		return
	}
	m.scene.Crosshair().Release(crosshair.WantsFreeCursor, m.token)
	m.scene.BlocksInput().Remove(m.token)
	m.scene.SetPaused(false)
	m.scene = nil
	log.Println("Game resumed")
}

func (m *PauseMenu) update(input render.InputManager, screenW, screenH int) transition {
	if input.IsKeyJustPressed(render.KeyEscape) {
		return transition{next: None, action: ActionResume}
	}
	m.result = transition{next: Pause}
	m.list.layout(screenW, screenH/2-40)
	m.list.update(input)
	return m.result
}

func (m *PauseMenu) draw(screen render.Image, r render.Renderer) {
	fillBackground(screen, r, true)
	drawHeader(screen, r, "Game paused", 100)
	m.list.draw(screen, r)
}
