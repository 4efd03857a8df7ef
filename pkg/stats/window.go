// Package stats keeps running statistics over 12-bit ADC samples.
package stats

// WindowSize is the number of most recent samples the average covers.
const WindowSize = 16

// Window is a fixed-size circular buffer of the most recent samples.
// The next write index is always Count() mod WindowSize.
type Window struct {
	buf   [WindowSize]uint16
	count uint32
}

// Push stores s, evicting the oldest sample once the window is full.
func (w *Window) Push(s uint16) {
	w.buf[w.count%WindowSize] = s
	w.count++
}

// Count returns the total number of samples pushed since creation.
func (w *Window) Count() uint32 {
	return w.count
}

// Len returns the number of valid entries, min(Count, WindowSize).
func (w *Window) Len() int {
	if w.count < WindowSize {
		return int(w.count)
	}
	return WindowSize
}

// Samples returns the valid entries ordered oldest to newest.
func (w *Window) Samples() []uint16 {
	n := w.Len()
	out := make([]uint16, 0, n)
	start := 0
	if w.count > WindowSize {
		start = int(w.count % WindowSize)
	}
	for i := 0; i < n; i++ {
		out = append(out, w.buf[(start+i)%WindowSize])
	}
	return out
}

// Average returns the truncated integer mean of the valid entries, or 0 when
// the window is empty.
func (w *Window) Average() uint16 {
	n := w.Len()
	if n == 0 {
		return 0
	}
	var sum uint32
	for i := 0; i < n; i++ {
		sum += uint32(w.buf[i])
	}
	return uint16(sum / uint32(n))
}
