package audio_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/spaghettifunk/leek/engine/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContext struct {
	rate   beep.SampleRate
	played []beep.Streamer
}

func (c *fakeContext) SampleRate() beep.SampleRate { return c.rate }
func (c *fakeContext) Play(s beep.Streamer)        { c.played = append(c.played, s) }

func writeWav(t *testing.T, path string, format beep.Format, samples int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
}

func TestLoadBuffer_Wav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	writeWav(t, path, format, 2205)

	buf, err := audio.LoadBuffer(path, &fakeContext{rate: 22050})
	require.NoError(t, err)

	assert.Equal(t, path, buf.Name)
	assert.Equal(t, beep.SampleRate(22050), buf.SourceRate)
	assert.Equal(t, 2205, buf.Len())
	assert.Equal(t, uint64(2205*2), buf.Size())
	assert.Equal(t, 100*time.Millisecond, buf.Duration())

	streamer := buf.Streamer()
	assert.Equal(t, 2205, streamer.Len())
}

func TestLoadBuffer_ResamplesToContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	writeWav(t, path, format, 2205)

	buf, err := audio.LoadBuffer(path, &fakeContext{rate: 44100})
	require.NoError(t, err)

	assert.Equal(t, beep.SampleRate(22050), buf.SourceRate)
	assert.Equal(t, beep.SampleRate(44100), buf.Format().SampleRate)
	assert.InDelta(t, 4410, buf.Len(), 8)
}

func TestLoadBuffer_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := audio.LoadBuffer(filepath.Join(dir, "missing.wav"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	mp3 := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(mp3, []byte{0}, 0o644))
	_, err = audio.LoadBuffer(mp3, nil)
	assert.ErrorContains(t, err, "unsupported audio file")

	broken := filepath.Join(dir, "broken.wav")
	require.NoError(t, os.WriteFile(broken, []byte("RIFF"), 0o644))
	_, err = audio.LoadBuffer(broken, nil)
	assert.Error(t, err)
}
