// Package menu implements the title, pause, settings and credits menus.
package menu

import (
	"image/color"

	"chosenoffset.com/wanderer/internal/render"
)

// Menu identifies which menu is open.
type Menu int

const (
	None Menu = iota
	Main
	Pause
	Settings
	Credits
)

// String implements fmt.Stringer.
func (m Menu) String() string {
	switch m {
	case None:
		return "none"
	case Main:
		return "main"
	case Pause:
		return "pause"
	case Settings:
		return "settings"
	case Credits:
		return "credits"
	default:
		return "unknown"
	}
}

// Action is a request from a menu to the game manager.
type Action int

const (
	ActionNone Action = iota
	// ActionPlay starts a gameplay scene.
	ActionPlay
	// ActionResume closes the pause menu.
	ActionResume
	// ActionQuitToTitle ends the gameplay scene.
	ActionQuitToTitle
	// ActionExit closes the application.
	ActionExit
)

// Colors shared by every menu.
var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	overlayColor    = color.RGBA{0, 0, 0, 160}
	titleColor      = color.RGBA{255, 255, 255, 255}
	buttonColor     = color.RGBA{60, 60, 90, 255}
	buttonHotColor  = color.RGBA{100, 100, 160, 255}
	textColor       = color.RGBA{230, 230, 230, 255}
	hintColor       = color.RGBA{150, 150, 150, 255}
)

const (
	buttonWidth   = 240
	buttonHeight  = 34
	buttonSpacing = 14
)

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

type button struct {
	label   string
	onClick func()
	bounds  rect
}

// buttonList is a vertical column of buttons centred on the screen. It can
// be driven by mouse clicks or by arrow keys and Enter.
type buttonList struct {
	buttons  []*button
	selected int
}

func newButtonList(buttons ...*button) *buttonList {
	return &buttonList{buttons: buttons}
}

func (l *buttonList) layout(screenW, top int) {
	x := screenW/2 - buttonWidth/2
	for i, b := range l.buttons {
		b.bounds = rect{x: x, y: top + i*(buttonHeight+buttonSpacing), w: buttonWidth, h: buttonHeight}
	}
}

// update handles input and runs at most one button's handler.
func (l *buttonList) update(input render.InputManager) {
	if len(l.buttons) == 0 {
		return
	}
	if input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		mx, my := input.GetCursorPosition()
		for i, b := range l.buttons {
			if pointInRect(mx, my, b.bounds) {
				l.selected = i
				b.onClick()
				return
			}
		}
	}
	if input.IsKeyJustPressed(render.KeyUp) {
		l.selected = (l.selected + len(l.buttons) - 1) % len(l.buttons)
	}
	if input.IsKeyJustPressed(render.KeyDown) {
		l.selected = (l.selected + 1) % len(l.buttons)
	}
	if input.IsKeyJustPressed(render.KeyEnter) {
		l.buttons[l.selected].onClick()
	}
}

func (l *buttonList) draw(screen render.Image, r render.Renderer) {
	for i, b := range l.buttons {
		drawButton(screen, r, b.bounds, b.label, i == l.selected)
	}
}

func drawButton(screen render.Image, r render.Renderer, b rect, label string, hot bool) {
	clr := buttonColor
	if hot {
		clr = buttonHotColor
	}
	r.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), clr)
	tw, th := r.MeasureText(label, 1)
	r.DrawText(screen, label, b.x+(b.w-tw)/2, b.y+(b.h-th)/2, textColor, 1)
}

func drawHeader(screen render.Image, r render.Renderer, title string, y int) {
	w, _ := screen.Size()
	tw, _ := r.MeasureText(title, 2)
	r.DrawText(screen, title, (w-tw)/2, y, titleColor, 2)
}

// fillBackground paints the title background, or a translucent overlay when
// the menu is opened over the game.
func fillBackground(screen render.Image, r render.Renderer, overGame bool) {
	if !overGame {
		screen.Fill(backgroundColor)
		return
	}
	w, h := screen.Size()
	r.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor)
}
