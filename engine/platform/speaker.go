package platform

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/spaghettifunk/leek/engine/audio"
)

var _ audio.Context = (*Speaker)(nil)

const defaultSampleRate = beep.SampleRate(44100)

// Speaker plays buffered sounds through the system audio device. Every
// sound goes through a single mixer so overlapping plays are summed.
type Speaker struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeaker(sampleRate beep.SampleRate) *Speaker {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	return &Speaker{
		sampleRate: sampleRate,
		mixer:      &beep.Mixer{},
	}
}

func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) SampleRate() beep.SampleRate {
	return s.sampleRate
}

func (s *Speaker) Play(streamer beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
