package menu

import (
	"chosenoffset.com/wanderer/internal/render"
)

// CreditsMenu lists who made the game.
type CreditsMenu struct {
	entries [][2]string
	list    *buttonList
	result  transition
}

// NewCreditsMenu creates the credits screen.
func NewCreditsMenu(entries [][2]string) *CreditsMenu {
	m := &CreditsMenu{entries: entries}
	m.list = newButtonList(&button{label: "Back", onClick: func() { m.result = transition{next: Main} }})
	return m
}

// DefaultCredits are shown when no other credits are configured.
func DefaultCredits() [][2]string {
	return [][2]string{
		{"Game", "The Wanderer team"},
		{"Engine", "Ebitengine"},
		{"Crosshair art", "CC0"},
	}
}

func (m *CreditsMenu) update(input render.InputManager, screenW, screenH int) transition {
	if input.IsKeyJustPressed(render.KeyEscape) {
		return transition{next: Main}
	}
	m.result = transition{next: Credits}
	m.list.layout(screenW, 160+len(m.entries)*28+40)
	m.list.update(input)
	return m.result
}

func (m *CreditsMenu) draw(screen render.Image, r render.Renderer) {
	fillBackground(screen, r, false)
	drawHeader(screen, r, "Credits", 80)
	w, _ := screen.Size()
	for i, e := range m.entries {
		y := 160 + i*28
		r.DrawText(screen, e[0], w/2-220, y, hintColor, 1)
		r.DrawText(screen, e[1], w/2+20, y, textColor, 1)
	}
	m.list.draw(screen, r)
}
