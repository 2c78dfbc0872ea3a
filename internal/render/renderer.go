// Package render abstracts the graphics, input and windowing backend so the
// gameplay code never talks to the engine directly.
package render

import (
	"errors"
	"image/color"
)

// Renderer is the drawing interface used by gameplay and UI code.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyE // Interact key
	KeyQ // Drop key
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// CursorMode is how the OS pointer behaves over the window.
type CursorMode int

const (
	// CursorLocked hides the pointer and keeps it captured by the window,
	// so mouse motion only steers the camera.
	CursorLocked CursorMode = iota
	// CursorFree shows the pointer and lets it leave the window.
	CursorFree
)

// String implements fmt.Stringer.
func (m CursorMode) String() string {
	switch m {
	case CursorLocked:
		return "locked"
	case CursorFree:
		return "free"
	default:
		return "unknown"
	}
}

// CursorController applies a cursor mode to the window.
type CursorController interface {
	SetCursorMode(mode CursorMode)
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	CursorController

	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetVsyncEnabled toggles vertical sync.
	SetVsyncEnabled(enabled bool)

	// SetTPS sets the number of updates per second. Zero restores the default.
	SetTPS(tps int)

	// TPS returns the current number of updates per second.
	TPS() int

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to end the game loop cleanly.
var ErrQuit = errors.New("quit")
