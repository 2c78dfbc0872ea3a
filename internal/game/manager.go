package game

import (
	"image/color"
	"log"

	"chosenoffset.com/wanderer/internal/audio"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/settings"
	"chosenoffset.com/wanderer/internal/ui/menu"
	"chosenoffset.com/wanderer/internal/world/level"
)

// Manager handles the overall game state, including menus and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Screen       Screen
	Menus        *menu.Controller
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Engine       render.Engine

	Level        *level.Level
	Mixer        *audio.Mixer
	Settings     *settings.Settings
	SettingsPath string
}

// NewManager creates a new game manager showing the title menu.
func NewManager(r render.Renderer, input render.InputManager, engine render.Engine, width, height int) *Manager {
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Screen:       ScreenTitle,
		Renderer:     r,
		InputMgr:     input,
		Engine:       engine,
		Level:        level.Default(),
		Settings:     settings.Default(),
	}
	m.Menus = menu.NewController(m.Settings, m.settingsChanged, true)
	return m
}

// SetSettings replaces the settings and where they are saved, then applies
// them.
func (m *Manager) SetSettings(values *settings.Settings, path string) {
	m.Settings = values
	m.SettingsPath = path
	m.Menus = menu.NewController(values, m.settingsChanged, true)
	m.ApplySettings()
}

// SetLevel sets the level played by new games.
func (m *Manager) SetLevel(lvl *level.Level) {
	m.Level = lvl
}

// SetMixer sets the audio mixer.
func (m *Manager) SetMixer(mixer *audio.Mixer) {
	m.Mixer = mixer
	m.ApplySettings()
}

// ApplySettings pushes the current settings to the engine and the mixer.
func (m *Manager) ApplySettings() {
	slider := settings.VolumeSliderAt(audio.DefaultPerceptualVolume(), m.Settings.Audio.VolumeTicks)
	if m.Mixer != nil {
		m.Mixer.SetMainVolume(slider.Volume())
	}
	if m.Engine != nil {
		m.Engine.SetVsyncEnabled(m.Settings.Display.Vsync)
		m.Engine.SetTPS(m.Settings.TPS())
	}
}

func (m *Manager) settingsChanged(values *settings.Settings) {
	m.ApplySettings()
	if m.SettingsPath == "" {
		return
	}
	if err := values.Save(m.SettingsPath); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// dt returns the length of one tick in seconds.
func (m *Manager) dt() float64 {
	tps := 60
	if m.Engine != nil && m.Engine.TPS() > 0 {
		tps = m.Engine.TPS()
	}
	return 1 / float64(tps)
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.Screen {
	case ScreenTitle:
		switch m.Menus.Update(m.InputMgr, m.ScreenWidth, m.ScreenHeight, false) {
		case menu.ActionPlay:
			m.StartGame()
		case menu.ActionExit:
			log.Println("Exiting")
			return render.ErrQuit
		}
	case ScreenGameplay:
		m.updateGameplay()
	}
	if m.Mixer != nil {
		m.Mixer.Update()
	}
	return nil
}

// updateGameplay runs one gameplay tick. Menus run after the gameplay
// systems and the crosshair is resolved last, so it sees every request
// made during the tick.
func (m *Manager) updateGameplay() {
	g := m.Game
	g.Update(m.dt())

	if m.Menus.Current() == menu.None {
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.Menus.OpenPause(g)
		}
	} else if m.Menus.Update(m.InputMgr, m.ScreenWidth, m.ScreenHeight, true) == menu.ActionQuitToTitle {
		m.QuitToTitle()
		return
	}

	g.Present()
}

// StartGame creates a fresh gameplay scene for the current level.
func (m *Manager) StartGame() {
	if m.Game != nil {
		m.Game.Close()
	}
	m.Game = NewGame(m.Level, m.Renderer, m.InputMgr, m.Engine, m.Mixer, m.Settings, m.ScreenWidth, m.ScreenHeight)
	m.Screen = ScreenGameplay
	m.Menus.Set(menu.None)
	log.Printf("Entered %s", m.Level.Name)
}

// QuitToTitle tears the scene down and shows the title menu.
func (m *Manager) QuitToTitle() {
	if m.Game != nil {
		m.Game.Close()
		m.Game = nil
	}
	m.Screen = ScreenTitle
	m.Menus.Set(menu.Main)
	log.Println("Returned to title")
}

// Draw renders the current screen.
func (m *Manager) Draw(screen render.Image) {
	switch m.Screen {
	case ScreenTitle:
		screen.Fill(color.Black)
	case ScreenGameplay:
		m.Game.Draw(screen)
	}
	m.Menus.Draw(screen, m.Renderer)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.Game != nil {
			m.Game.ScreenWidth = outsideWidth
			m.Game.ScreenHeight = outsideHeight
		}
	}
	return outsideWidth, outsideHeight
}
