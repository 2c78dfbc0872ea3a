package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownClip is returned when a sound name is not in the bank.
var ErrUnknownClip = errors.New("unknown clip")

// Bank holds decoded clips by name.
type Bank struct {
	clips map[string][]byte
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{clips: make(map[string][]byte)}
}

// Add stores decoded PCM under name.
func (b *Bank) Add(name string, pcm []byte) {
	b.clips[name] = pcm
}

// Clip returns the PCM stored under name.
func (b *Bank) Clip(name string) ([]byte, bool) {
	pcm, ok := b.clips[name]
	return pcm, ok
}

// Names returns the clip names in order.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.clips))
	for n := range b.clips {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Decoder turns one encoded clip into PCM at SampleRate.
type Decoder func(r io.Reader) ([]byte, error)

// Load decodes one clip and stores it under name.
func (b *Bank) Load(name string, r io.Reader, decode Decoder) error {
	pcm, err := decode(r)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	b.Add(name, pcm)
	return nil
}

// LoadDir decodes every .wav file in dir. A clip is named after its file
// without extension. A missing directory leaves the bank empty.
func LoadDir(dir string, decode Decoder) (*Bank, error) {
	b := NewBank()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: sound directory %s not found, playing silence", dir)
			return b, nil
		}
		return nil, fmt.Errorf("failed to read sound directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if err := loadFile(b, name, filepath.Join(dir, e.Name()), decode); err != nil {
			log.Printf("Warning: skipping sound %s: %v", e.Name(), err)
		}
	}
	log.Printf("Loaded %d sounds from %s", len(b.clips), dir)
	return b, nil
}

func loadFile(b *Bank, name, path string, decode Decoder) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.Load(name, f, decode)
}
