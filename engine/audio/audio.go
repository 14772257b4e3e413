package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedChannels is the panic value raised for audio with more than two channels.
var ErrUnsupportedChannels = errors.New("unsupported number of audio channels")

const resampleQuality = 4

// Context is the audio output the decoded buffers are prepared for.
type Context interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
}

// Buffer is a fully decoded sound held in memory.
type Buffer struct {
	Name       string
	SourceRate beep.SampleRate
	buffer     *beep.Buffer
}

func (b *Buffer) Format() beep.Format {
	return b.buffer.Format()
}

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	return b.buffer.Len()
}

func (b *Buffer) Duration() time.Duration {
	return b.buffer.Format().SampleRate.D(b.buffer.Len())
}

// Size returns the memory used by the samples, in bytes.
func (b *Buffer) Size() uint64 {
	return uint64(b.buffer.Len() * b.buffer.Format().Width())
}

// Streamer returns a fresh streamer over the whole buffer.
func (b *Buffer) Streamer() beep.StreamSeeker {
	return b.buffer.Streamer(0, b.buffer.Len())
}

// LoadBuffer decodes a wav or ogg/vorbis file into memory, resampled to the
// context's rate. Files with more than two channels are a content error and panic.
func LoadBuffer(path string, ctx Context) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio file '%s'", path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode '%s': %w", path, err)
	}
	defer streamer.Close()

	return newBuffer(path, streamer, format, ctx), nil
}

func newBuffer(name string, s beep.Streamer, format beep.Format, ctx Context) *Buffer {
	switch format.NumChannels {
	case 1, 2:
	default:
		panic(fmt.Errorf("%w: %d", ErrUnsupportedChannels, format.NumChannels))
	}

	source := format.SampleRate
	if ctx != nil && ctx.SampleRate() != 0 && ctx.SampleRate() != format.SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, ctx.SampleRate(), s)
		format.SampleRate = ctx.SampleRate()
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &Buffer{
		Name:       name,
		SourceRate: source,
		buffer:     buf,
	}
}
