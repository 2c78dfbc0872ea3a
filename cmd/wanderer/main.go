package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chosenoffset.com/wanderer/internal/audio"
	"chosenoffset.com/wanderer/internal/game"
	ebitenrender "chosenoffset.com/wanderer/internal/render/ebiten"
	"chosenoffset.com/wanderer/internal/settings"
	"chosenoffset.com/wanderer/internal/world/level"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd builds the command that launches the game. Flag defaults come
// from the environment.
func RootCmd() *cobra.Command {
	opts, err := settings.ParseEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	c := &cobra.Command{
		Use:          "wanderer",
		Short:        "walk around, talk to people, pick things up",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	c.Flags().StringVar(&opts.SettingsPath, "settings", opts.SettingsPath, "settings file")
	c.Flags().StringVar(&opts.LevelPath, "level", opts.LevelPath, "level file")
	c.Flags().StringVar(&opts.AssetsDir, "assets", opts.AssetsDir, "assets directory")
	c.AddCommand(VersionCmd())
	return c
}

func run(opts settings.Env) error {
	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	values, err := settings.Load(opts.SettingsPath)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		values = settings.Default()
	}

	lvl, err := level.Load(opts.LevelPath)
	if err != nil {
		return err
	}

	bank, err := audio.LoadDir(filepath.Join(opts.AssetsDir, "sounds"), ebitenrender.DecodeWAV)
	if err != nil {
		log.Printf("Warning: %v", err)
		bank = audio.NewBank()
	}
	mixer := audio.NewMixer(ebitenrender.NewAudioSink(), bank)

	// Create the game manager
	gameManager := game.NewManager(renderer, inputMgr, engine, opts.Width, opts.Height)
	gameManager.SetSettings(values, opts.SettingsPath)
	gameManager.SetLevel(lvl)
	gameManager.SetMixer(mixer)

	// Set up the window
	engine.SetWindowSize(opts.Width, opts.Height)
	engine.SetWindowTitle("Wanderer")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	return engine.RunGame(gameManager)
}
