package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrameBuffer_Pixel(t *testing.T) {
	var fb FrameBuffer
	fb[1*DisplayWidth+2] = true
	fb[DisplayWidth*DisplayHeight-1] = true

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"set pixel", 2, 1, true},
		{"last pixel", DisplayWidth - 1, DisplayHeight - 1, true},
		{"unset pixel", 1, 2, false},
		{"negative x", -1, 0, false},
		{"x out of range", DisplayWidth, 0, false},
		{"y out of range", 0, DisplayHeight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fb.Pixel(tt.x, tt.y))
		})
	}
}

func TestFrameBuffer_ClearAndLit(t *testing.T) {
	var fb FrameBuffer
	fb.flip(0, 0)
	fb.flip(63, 31)
	assert.Equal(t, 2, fb.Lit())

	fb.Clear()
	assert.Equal(t, 0, fb.Lit())
}

func TestFrameBuffer_FlipWraps(t *testing.T) {
	var fb FrameBuffer

	fb.flip(DisplayWidth+3, DisplayHeight+1)
	assert.True(t, fb.Pixel(3, 1))

	fb.flip(3, 1)
	assert.False(t, fb.Pixel(3, 1))
}

func TestMachine_DisplayChainedReads(t *testing.T) {
	// LD I, $206; DRW V0, V0, 1; JP $204; sprite $80
	m := newMachine(t, 0xA206, 0xD001, 0x1204, 0x8000)
	stepAll(t, m, 2)

	assert.True(t, m.Display().Pixel(0, 0))
	assert.False(t, m.Display().Pixel(1, 0))
	assert.Equal(t, 1, m.Display().Lit())
}
