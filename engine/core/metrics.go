package core

import (
	"github.com/spaghettifunk/leek/engine/containers"
)

// FPS_HISTORY_LEN is the number of per-second FPS samples kept for the debug overlay.
const FPS_HISTORY_LEN = 60

// Metrics keeps the recent FPS samples reported by the FrameClock.
type Metrics struct {
	history    *containers.RingQueue[uint16]
	highestFPS uint16
	frames     uint64
}

func NewMetrics() *Metrics {
	return &Metrics{
		history: containers.NewRingQueue[uint16](FPS_HISTORY_LEN),
	}
}

// InsertFPS records a completed one-second sample.
func (m *Metrics) InsertFPS(fps uint16) {
	m.history.Push(fps)
	if fps > m.highestFPS {
		m.highestFPS = fps
	}
}

// FrameRendered counts a frame that reached the render path.
func (m *Metrics) FrameRendered() {
	m.frames++
}

func (m *Metrics) FramesRendered() uint64 {
	return m.frames
}

// LatestFPS returns the last sample, or zero if none was taken yet.
func (m *Metrics) LatestFPS() uint16 {
	fps, err := m.history.Last()
	if err != nil {
		return 0
	}
	return fps
}

func (m *Metrics) HighestFPS() uint16 {
	return m.highestFPS
}

// FPSHistory returns the samples from oldest to newest.
func (m *Metrics) FPSHistory() []uint16 {
	return m.history.Values()
}

// AverageFPS returns the mean of the kept samples.
func (m *Metrics) AverageFPS() float64 {
	values := m.history.Values()
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}
