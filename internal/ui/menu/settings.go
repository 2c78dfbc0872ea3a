package menu

import (
	"fmt"

	"chosenoffset.com/wanderer/internal/audio"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/settings"
)

type settingRow struct {
	label string
	value func() string
	minus func()
	plus  func()

	minusBounds rect
	plusBounds  rect
	y           int
}

// SettingsMenu edits the player's settings. Every change is applied
// immediately through the change callback.
type SettingsMenu struct {
	values   *settings.Settings
	slider   settings.VolumeSlider
	onChange func(*settings.Settings)

	rows     []*settingRow
	back     *button
	selected int
	overGame bool
	result   transition
}

// NewSettingsMenu creates the settings menu for values. onChange may be nil.
func NewSettingsMenu(values *settings.Settings, onChange func(*settings.Settings)) *SettingsMenu {
	m := &SettingsMenu{
		values:   values,
		slider:   settings.VolumeSliderAt(audio.DefaultPerceptualVolume(), values.Audio.VolumeTicks),
		onChange: onChange,
	}
	m.rows = []*settingRow{
		{
			label: "Audio Volume",
			value: func() string { return m.slider.Bar() },
			minus: func() { m.slider.Decrement(); m.values.Audio.VolumeTicks = m.slider.Ticks() },
			plus:  func() { m.slider.Increment(); m.values.Audio.VolumeTicks = m.slider.Ticks() },
		},
		{
			label: "Camera Sensitivity",
			value: func() string { return fmt.Sprintf("%.1f", m.values.Camera.Sensitivity) },
			minus: func() { m.values.AdjustSensitivity(-1) },
			plus:  func() { m.values.AdjustSensitivity(1) },
		},
		{
			label: "Camera FOV",
			value: func() string { return fmt.Sprintf("%.1f", m.values.Camera.FOV) },
			minus: func() { m.values.AdjustFOV(-1) },
			plus:  func() { m.values.AdjustFOV(1) },
		},
		{
			label: "VSync",
			value: func() string { return onOff(m.values.Display.Vsync) },
			minus: func() { m.values.Display.Vsync = false },
			plus:  func() { m.values.Display.Vsync = true },
		},
		{
			label: "FPS Limiter",
			value: func() string { return onOff(m.values.Display.FPSLimiter) },
			minus: func() { m.values.Display.FPSLimiter = false },
			plus:  func() { m.values.Display.FPSLimiter = true },
		},
		{
			label: "FPS Target",
			value: func() string { return fmt.Sprintf("%d", m.values.Display.FPSTarget) },
			minus: func() { m.values.AdjustFPSTarget(-1) },
			plus:  func() { m.values.AdjustFPSTarget(1) },
		},
	}
	m.back = &button{label: "Back", onClick: func() { m.result = transition{next: m.backTarget()} }}
	return m
}

// Slider returns the volume slider state.
func (m *SettingsMenu) Slider() settings.VolumeSlider {
	return m.slider
}

func (m *SettingsMenu) backTarget() Menu {
	if m.overGame {
		return Pause
	}
	return Main
}

func (m *SettingsMenu) layout(screenW int) {
	top := 150
	for i, row := range m.rows {
		row.y = top + i*(buttonHeight+buttonSpacing)
		row.minusBounds = rect{x: screenW/2 + 20, y: row.y, w: buttonHeight, h: buttonHeight}
		row.plusBounds = rect{x: screenW/2 + 20 + buttonHeight + 160, y: row.y, w: buttonHeight, h: buttonHeight}
	}
	m.back.bounds = rect{
		x: screenW/2 - buttonWidth/2,
		y: top + len(m.rows)*(buttonHeight+buttonSpacing) + 20,
		w: buttonWidth,
		h: buttonHeight,
	}
}

func (m *SettingsMenu) update(input render.InputManager, screenW, screenH int, overGame bool) transition {
	m.overGame = overGame
	if input.IsKeyJustPressed(render.KeyEscape) {
		return transition{next: m.backTarget()}
	}
	m.result = transition{next: Settings}
	m.layout(screenW)

	changed := false
	if input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		mx, my := input.GetCursorPosition()
		for i, row := range m.rows {
			switch {
			case pointInRect(mx, my, row.minusBounds):
				row.minus()
			case pointInRect(mx, my, row.plusBounds):
				row.plus()
			default:
				continue
			}
			m.selected = i
			changed = true
			break
		}
		if pointInRect(mx, my, m.back.bounds) {
			m.selected = len(m.rows)
			m.back.onClick()
		}
	}

	count := len(m.rows) + 1
	if input.IsKeyJustPressed(render.KeyUp) {
		m.selected = (m.selected + count - 1) % count
	}
	if input.IsKeyJustPressed(render.KeyDown) {
		m.selected = (m.selected + 1) % count
	}
	if m.selected < len(m.rows) {
		if input.IsKeyJustPressed(render.KeyLeft) {
			m.rows[m.selected].minus()
			changed = true
		}
		if input.IsKeyJustPressed(render.KeyRight) {
			m.rows[m.selected].plus()
			changed = true
		}
	} else if input.IsKeyJustPressed(render.KeyEnter) {
		m.back.onClick()
	}

	if changed && m.onChange != nil {
		m.onChange(m.values)
	}
	return m.result
}

func (m *SettingsMenu) draw(screen render.Image, r render.Renderer) {
	fillBackground(screen, r, m.overGame)
	drawHeader(screen, r, "Settings", 80)
	w, _ := screen.Size()
	for i, row := range m.rows {
		lw, th := r.MeasureText(row.label, 1)
		labelColor := hintColor
		if i == m.selected {
			labelColor = textColor
		}
		r.DrawText(screen, row.label, w/2-20-lw, row.y+(buttonHeight-th)/2, labelColor, 1)
		drawButton(screen, r, row.minusBounds, "-", false)
		drawButton(screen, r, row.plusBounds, "+", false)
		r.DrawText(screen, row.value(), row.minusBounds.x+buttonHeight+10, row.y+(buttonHeight-th)/2, textColor, 1)
	}
	drawButton(screen, r, m.back.bounds, m.back.label, m.selected == len(m.rows))
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
