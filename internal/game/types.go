package game

// Screen is the top-level state of the application.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenGameplay
)

// String implements fmt.Stringer.
func (s Screen) String() string {
	if s == ScreenGameplay {
		return "gameplay"
	}
	return "title"
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Sound names played by gameplay.
const (
	SoundStep    = "step"
	SoundNPCStep = "npc_step"
	SoundPickup  = "pickup"
	SoundDrop    = "drop"
)
