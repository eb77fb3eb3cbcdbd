// Package audio plays sound effects in response to game events.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"my-game/ecs"
	"my-game/systems"
)

const sampleRate = 44100

// AudioSystem holds decoded sound effects and plays them on demand
type AudioSystem struct {
	audioContext *audio.Context
	effects      map[string][]byte
	playing      []*audio.Player
	volume       float64
	subs         []ecs.Subscription
	events       *ecs.EventManager
}

// NewAudioSystem creates a new audio system
func NewAudioSystem() *AudioSystem {
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		effects:      make(map[string][]byte),
		volume:       0.5,
	}
}

// LoadEffect decodes an .mp3 or .ogg file into memory under name
func (s *AudioSystem) LoadEffect(name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, file)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, file)
	default:
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read audio stream: %w", err)
	}
	s.effects[name] = pcm
	return nil
}

// HasEffect reports whether an effect was loaded
func (s *AudioSystem) HasEffect(name string) bool {
	_, ok := s.effects[name]
	return ok
}

// PlayEffect starts a fresh player for a loaded effect
func (s *AudioSystem) PlayEffect(name string) {
	pcm, ok := s.effects[name]
	if !ok {
		return
	}
	player, err := s.audioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Warn("Failed to create audio player", "effect", name, "error", err)
		return
	}
	player.SetVolume(s.volume)
	player.Play()

	active := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			active = append(active, p)
		} else {
			p.Close()
		}
	}
	s.playing = append(active, player)
}

// Listen plays effect on every player step
func (s *AudioSystem) Listen(world *ecs.World, effect string) {
	s.events = world.GetEventManager()
	s.subs = append(s.subs, s.events.Subscribe(systems.EventPlayerStep, func(ecs.Event) {
		s.PlayEffect(effect)
	}))
}

// SetVolume sets the effect volume, clamped to 0.0..1.0
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = clampVolume(volume)
}

func clampVolume(volume float64) float64 {
	return min(max(volume, 0), 1)
}

// Close stops listening for events and drops loaded effects
func (s *AudioSystem) Close() {
	for _, sub := range s.subs {
		s.events.Unsubscribe(sub)
	}
	s.subs = nil
	for _, p := range s.playing {
		p.Close()
	}
	s.playing = nil
	s.effects = make(map[string][]byte)
}
