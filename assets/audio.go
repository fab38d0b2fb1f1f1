package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets. Audio lives on
// disk next to the binary rather than embedded; a missing file just means
// that sound stays silent.
type AudioLoader struct {
	root     string
	sfxCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates an audio loader reading from the given root
// directory.
func NewAudioLoader(ctx *audio.Context, root string) *AudioLoader {
	return &AudioLoader{
		root:     root,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a
// player. Call at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a ready-to-play player for a cached (or lazily decoded)
// sound effect.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, ok := l.sfxCache[path]
	if !ok {
		if err := l.PreloadSFX(path); err != nil {
			return nil, err
		}
		decoded = l.sfxCache[path]
	}
	return l.context.NewPlayerFromBytes(decoded), nil
}

// LoadMusic returns an infinitely looping streaming player.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := os.ReadFile(filepath.Join(l.root, path))
	if err != nil {
		return nil, fmt.Errorf("read music %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}

	looped := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := l.context.NewPlayer(looped)
	if err != nil {
		return nil, fmt.Errorf("create music player %s: %w", path, err)
	}
	return player, nil
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.root, path))
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode audio %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
