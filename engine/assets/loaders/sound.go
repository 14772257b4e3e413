package loaders

import (
	"github.com/spaghettifunk/leek/engine/audio"
	"github.com/spaghettifunk/leek/engine/resources"
)

// SoundKey names a wav or ogg file decoded into an audio buffer.
type SoundKey = resources.PathKey[*audio.Buffer]

func NewSoundKey(path string) SoundKey {
	return resources.NewPathKey[*audio.Buffer](path)
}

type SoundLoader struct {
	Context audio.Context
}

func (sl *SoundLoader) LoadResource(key SoundKey) (*audio.Buffer, error) {
	return audio.LoadBuffer(key.Path(), sl.Context)
}
