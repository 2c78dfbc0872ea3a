package menu

import (
	"chosenoffset.com/wanderer/internal/render"
)

// MainMenu is shown on the title screen.
type MainMenu struct {
	list   *buttonList
	result transition
}

// NewMainMenu creates the title menu. The Exit button is left out when
// allowExit is false (e.g. in a browser).
func NewMainMenu(allowExit bool) *MainMenu {
	m := &MainMenu{}
	buttons := []*button{
		{label: "Play", onClick: func() { m.result = transition{next: None, action: ActionPlay} }},
		{label: "Settings", onClick: func() { m.result = transition{next: Settings} }},
		{label: "Credits", onClick: func() { m.result = transition{next: Credits} }},
	}
	if allowExit {
		buttons = append(buttons, &button{label: "Exit", onClick: func() { m.result = transition{next: Main, action: ActionExit} }})
	}
	m.list = newButtonList(buttons...)
	return m
}

func (m *MainMenu) update(input render.InputManager, screenW, screenH int) transition {
	m.result = transition{next: Main}
	m.list.layout(screenW, screenH/2-60)
	m.list.update(input)
	return m.result
}

func (m *MainMenu) draw(screen render.Image, r render.Renderer) {
	fillBackground(screen, r, false)
	drawHeader(screen, r, "WANDERER", 80)
	m.list.draw(screen, r)
}
