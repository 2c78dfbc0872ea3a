package menu

import (
	"log"

	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/settings"
)

type transition struct {
	next   Menu
	action Action
}

// Controller owns every menu and switches between them.
type Controller struct {
	current Menu

	main     *MainMenu
	pause    *PauseMenu
	settings *SettingsMenu
	credits  *CreditsMenu
}

// NewController creates the menus. The title menu is open initially.
func NewController(values *settings.Settings, onChange func(*settings.Settings), allowExit bool) *Controller {
	return &Controller{
		current:  Main,
		main:     NewMainMenu(allowExit),
		pause:    NewPauseMenu(),
		settings: NewSettingsMenu(values, onChange),
		credits:  NewCreditsMenu(DefaultCredits()),
	}
}

// Current returns the open menu.
func (c *Controller) Current() Menu {
	return c.current
}

// Settings returns the settings menu.
func (c *Controller) Settings() *SettingsMenu {
	return c.settings
}

// PauseMenu returns the pause menu.
func (c *Controller) PauseMenu() *PauseMenu {
	return c.pause
}

// Set switches to menu m.
func (c *Controller) Set(m Menu) {
	if m == c.current {
		return
	}
	log.Printf("Menu: %s -> %s", c.current, m)
	c.current = m
}

// OpenPause pauses scene and shows the pause menu.
func (c *Controller) OpenPause(scene Pausable) {
	c.pause.Open(scene)
	c.Set(Pause)
}

// ClosePause resumes the paused scene and closes every menu.
func (c *Controller) ClosePause() {
	c.pause.Close()
	c.Set(None)
}

// Update runs the open menu and returns what the game manager should do.
// overGame tells menus that a gameplay scene is behind them.
func (c *Controller) Update(input render.InputManager, screenW, screenH int, overGame bool) Action {
	var t transition
	switch c.current {
	case Main:
		t = c.main.update(input, screenW, screenH)
	case Pause:
		t = c.pause.update(input, screenW, screenH)
	case Settings:
		t = c.settings.update(input, screenW, screenH, overGame)
	case Credits:
		t = c.credits.update(input, screenW, screenH)
	default:
		return ActionNone
	}

	switch t.action {
	case ActionResume:
		c.ClosePause()
		return t.action
	case ActionQuitToTitle:
		c.pause.Close()
	}
	c.Set(t.next)
	return t.action
}

// Draw renders the open menu.
func (c *Controller) Draw(screen render.Image, r render.Renderer) {
	switch c.current {
	case Main:
		c.main.draw(screen, r)
	case Pause:
		c.pause.draw(screen, r)
	case Settings:
		c.settings.draw(screen, r)
	case Credits:
		c.credits.draw(screen, r)
	}
}
