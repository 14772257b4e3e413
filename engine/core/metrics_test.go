package core_test

import (
	"testing"

	"github.com/spaghettifunk/leek/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Empty(t *testing.T) {
	m := core.NewMetrics()
	assert.Zero(t, m.LatestFPS())
	assert.Zero(t, m.AverageFPS())
	assert.Empty(t, m.FPSHistory())
}

func TestMetrics_History(t *testing.T) {
	m := core.NewMetrics()
	for i := 0; i < core.FPS_HISTORY_LEN+5; i++ {
		m.InsertFPS(uint16(i))
	}

	history := m.FPSHistory()
	assert.Len(t, history, core.FPS_HISTORY_LEN)
	assert.Equal(t, uint16(5), history[0])
	assert.Equal(t, uint16(core.FPS_HISTORY_LEN+4), m.LatestFPS())
	assert.Equal(t, uint16(core.FPS_HISTORY_LEN+4), m.HighestFPS())

	m.InsertFPS(1)
	assert.Equal(t, uint16(1), m.LatestFPS())
	assert.Equal(t, uint16(core.FPS_HISTORY_LEN+4), m.HighestFPS())
}

func TestMetrics_AverageAndFrames(t *testing.T) {
	m := core.NewMetrics()
	m.InsertFPS(50)
	m.InsertFPS(60)
	assert.InDelta(t, 55.0, m.AverageFPS(), 0.001)

	m.FrameRendered()
	m.FrameRendered()
	assert.Equal(t, uint64(2), m.FramesRendered())
}
