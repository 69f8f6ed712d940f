package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(1000, 0)

	assert.Equal(t, 0, fs.Advance(start))
	assert.Equal(t, 0, fs.Advance(start.Add(50*time.Millisecond)))
	assert.Equal(t, 1, fs.Advance(start.Add(100*time.Millisecond)))
	assert.Equal(t, 2, fs.Advance(start.Add(330*time.Millisecond)))
	// 30ms carried over.
	assert.Equal(t, 1, fs.Advance(start.Add(400*time.Millisecond)))
}

func TestFixedStepCatchUpLimit(t *testing.T) {
	fs := NewFixedStep(100)
	start := time.Unix(0, 1)
	fs.Advance(start)
	assert.Equal(t, 8, fs.Advance(start.Add(5*time.Second)))
	assert.Equal(t, 0, fs.Advance(start.Add(5*time.Second+5*time.Millisecond)))
}

func TestFixedStepDisabled(t *testing.T) {
	fs := NewFixedStep(0)
	start := time.Unix(0, 1)
	assert.Equal(t, 0, fs.Advance(start))
	assert.Equal(t, 0, fs.Advance(start.Add(time.Hour)))

	fs.SetRate(1)
	assert.Equal(t, 1, fs.Advance(start.Add(time.Hour+time.Second)))
}
