package stream

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/ledreel/movie"
)

// Library maps names to the textures and sounds that commands refer to.
type Library struct {
	textures map[string]*Frame
	sounds   map[string]movie.Sound
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	l := new(Library)
	l.textures = make(map[string]*Frame)
	l.sounds = make(map[string]movie.Sound)
	return l
}

// AddTexture registers f under name, replacing any previous texture.
func (l *Library) AddTexture(name string, f *Frame) {
	l.textures[name] = f
}

// Texture looks up a texture by name.
func (l *Library) Texture(name string) (*Frame, error) {
	f, ok := l.textures[name]
	if !ok {
		return nil, fmt.Errorf("%w: texture %q", ErrUnknownAsset, name)
	}
	return f, nil
}

// AddSound registers s under name.
func (l *Library) AddSound(name string, s movie.Sound) {
	l.sounds[name] = s
}

// Sound looks up a sound by name. The empty name resolves to no sound.
func (l *Library) Sound(name string) (movie.Sound, error) {
	if name == "" {
		return nil, nil
	}
	s, ok := l.sounds[name]
	if !ok {
		return nil, fmt.Errorf("%w: sound %q", ErrUnknownAsset, name)
	}
	return s, nil
}

// TextureNames returns the registered texture names in order.
func (l *Library) TextureNames() []string {
	return sortedKeys(l.textures)
}

// SoundNames returns the registered sound names in order.
func (l *Library) SoundNames() []string {
	return sortedKeys(l.sounds)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
