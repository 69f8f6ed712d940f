package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordedLabel struct {
	text        string
	pos, facing Vec3
}

type recordingOverlay struct {
	lines  [][2]Vec3
	labels []recordedLabel
}

func (r *recordingOverlay) DrawLine(from, to Vec3) { r.lines = append(r.lines, [2]Vec3{from, to}) }

func (r *recordingOverlay) DrawLabel(text string, pos, facing Vec3) {
	r.labels = append(r.labels, recordedLabel{text: text, pos: pos, facing: facing})
}

func TestDebugDrawsLabelsAndLines(t *testing.T) {
	rec := &recordingOverlay{}
	NewGrid[int](Config{
		Width:     2,
		Height:    3,
		CellSize:  1,
		Converter: HorizontalConverter{},
		Debug:     true,
		Overlay:   rec,
	})

	require.Len(t, rec.labels, 6)
	assert.Equal(t, "0,0", rec.labels[0].text)
	assert.Equal(t, "0,1", rec.labels[1].text)
	assert.Equal(t, "1,2", rec.labels[5].text)
	assert.Equal(t, Vec3{X: 1.5, Z: 2.5}, rec.labels[5].pos)
	assert.Equal(t, Vec3{Y: -1}, rec.labels[5].facing)

	// Two lines per cell plus the far edges.
	require.Len(t, rec.lines, 2*6+2)
	assert.Equal(t, [2]Vec3{{}, {Z: 1}}, rec.lines[0])
	assert.Equal(t, [2]Vec3{{}, {X: 1}}, rec.lines[1])
	assert.Equal(t, [2]Vec3{{Z: 3}, {X: 2, Z: 3}}, rec.lines[12])
	assert.Equal(t, [2]Vec3{{X: 2}, {X: 2, Z: 3}}, rec.lines[13])
}

func TestDebugOffDrawsNothing(t *testing.T) {
	rec := &recordingOverlay{}
	NewGrid[int](Config{Width: 2, Height: 2, CellSize: 1, Overlay: rec})
	assert.Empty(t, rec.lines)
	assert.Empty(t, rec.labels)
}

func TestDebugFallsBackToLogOverlay(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewGrid[int](Config{Width: 1, Height: 1, CellSize: 1, Debug: true, Logger: zap.New(core)})

	assert.Equal(t, 1, logs.FilterMessage("grid label").Len())
	assert.Equal(t, 4, logs.FilterMessage("grid line").Len())

	label := logs.FilterMessage("grid label").All()[0]
	assert.Equal(t, "overlay", label.LoggerName)
	assert.Equal(t, "0,0", label.ContextMap()["text"])
}

func TestOutOfBoundsSetLogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := NewGrid[int](Config{Width: 1, Height: 1, CellSize: 1, Logger: zap.New(core)})
	g.SetValue(5, 5, 1)

	entries := logs.FilterMessage("set outside grid ignored").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 5, entries[0].ContextMap()["x"])
}
