package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_FourSamples(t *testing.T) {
	var tr Tracker

	st := tr.Add(100)
	assert.Equal(t, Stats{Count: 1, Last: 100, Max: 100, Min: 100, Average: 100}, st)

	tr.Add(200)
	tr.Add(50)
	st = tr.Add(300)

	assert.Equal(t, uint32(4), st.Count)
	assert.Equal(t, uint16(300), st.Max)
	assert.Equal(t, uint16(50), st.Min)
	assert.Equal(t, uint16(162), st.Average) // 650/4 truncated
	assert.Equal(t, uint16(300), st.Last)
}

func TestTracker_FirstSampleOverridesZeroState(t *testing.T) {
	var tr Tracker

	// min starts at zero; the first sample must still become the min
	st := tr.Add(4000)
	assert.Equal(t, uint16(4000), st.Min)
	assert.Equal(t, uint16(4000), st.Max)

	st = tr.Add(4095)
	assert.Equal(t, uint16(4000), st.Min)
	assert.Equal(t, uint16(4095), st.Max)
}

func TestTracker_WindowEviction(t *testing.T) {
	var tr Tracker

	var st Stats
	for i := uint16(1); i <= 20; i++ {
		st = tr.Add(i)
	}

	want := make([]uint16, 0, WindowSize)
	for i := uint16(5); i <= 20; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, tr.Window())
	assert.Equal(t, uint16(12), st.Average) // 200/16 truncated
	assert.Equal(t, uint16(20), st.Max)
	assert.Equal(t, uint16(1), st.Min, "extrema are not windowed")
	assert.Equal(t, uint32(20), st.Count)
}

func TestTracker_StatsBeforeFirstSample(t *testing.T) {
	var tr Tracker
	_, ok := tr.Stats()
	assert.False(t, ok)
	assert.Empty(t, tr.Window())
}

func TestTracker_StatsIsReadOnly(t *testing.T) {
	var tr Tracker
	tr.Add(7)
	tr.Add(9)

	first, ok := tr.Stats()
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := tr.Stats()
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, uint32(2), first.Count)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		push    []uint16
		wantLen int
		wantAvg uint16
		want    []uint16
	}{
		{name: "empty", wantLen: 0, wantAvg: 0, want: []uint16{}},
		{name: "one", push: []uint16{9}, wantLen: 1, wantAvg: 9, want: []uint16{9}},
		{name: "truncates", push: []uint16{1, 2}, wantLen: 2, wantAvg: 1, want: []uint16{1, 2}},
		{
			name:    "exactly full",
			push:    []uint16{4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095},
			wantLen: 16,
			wantAvg: 4095,
			want:    []uint16{4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095, 4095},
		},
		{
			name:    "wraps once",
			push:    []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
			wantLen: 16,
			wantAvg: 8, // 136/16
			want:    []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Window
			for _, s := range tt.push {
				w.Push(s)
			}
			assert.Equal(t, tt.wantLen, w.Len())
			assert.Equal(t, tt.wantAvg, w.Average())
			assert.Equal(t, tt.want, w.Samples())
			assert.Equal(t, uint32(len(tt.push)), w.Count())
		})
	}
}

func TestVoltage(t *testing.T) {
	assert.InDelta(t, 2.6793, Voltage(4095, DefaultReference), 1e-4)
	assert.Equal(t, float32(0), Voltage(0, DefaultReference))
	assert.InDelta(t, 1.34, Voltage(2048, DefaultReference), 1e-6)
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		want uint16
	}{
		{"zero", 0, 0},
		{"negative clamps", -1, 0},
		{"half scale", 1.34, 2048},
		{"above reference clamps", 3.3, MaxCode},
		{"just below reference", 2.679, 4094},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.v, DefaultReference))
		})
	}
}

func TestCode_InvertsVoltage(t *testing.T) {
	for _, c := range []uint16{0, 1, 100, 2047, 4000, 4095} {
		assert.Equal(t, c, Code(Voltage(c, DefaultReference), DefaultReference))
	}
}
