package stats

// Stats is a snapshot of the running statistics.
type Stats struct {
	Count   uint32 // samples taken since start
	Last    uint16
	Max     uint16
	Min     uint16
	Average uint16 // over the last min(Count, WindowSize) samples
}

// Tracker maintains running extrema and the window average.
// The zero value is ready to use.
type Tracker struct {
	window   Window
	max, min uint16
	last     uint16
}

// Add records a new sample and returns the updated statistics.
func (t *Tracker) Add(s uint16) Stats {
	first := t.window.Count() == 0
	t.window.Push(s)

	if s > t.max || first {
		t.max = s
	}
	if s < t.min || first {
		t.min = s
	}
	t.last = s

	return t.snapshot()
}

// Stats returns the current statistics. ok is false until the first sample,
// in which case the values are meaningless.
func (t *Tracker) Stats() (st Stats, ok bool) {
	if t.window.Count() == 0 {
		return Stats{}, false
	}
	return t.snapshot(), true
}

// Window returns the samples currently in the averaging window, oldest first.
func (t *Tracker) Window() []uint16 {
	return t.window.Samples()
}

func (t *Tracker) snapshot() Stats {
	return Stats{
		Count:   t.window.Count(),
		Last:    t.last,
		Max:     t.max,
		Min:     t.min,
		Average: t.window.Average(),
	}
}
