package gravity

// History is an append-only log of past positions, one track per body.
// It grows by one entry per body per committed step and is never
// truncated or reordered.
type History struct {
	tracks [][]Vec2
}

func newHistory(bodyCount int) *History {
	return &History{tracks: make([][]Vec2, bodyCount)}
}

// Record appends the current position of every body.
func (h *History) Record(positions []Vec2) {
	for i, p := range positions {
		h.tracks[i] = append(h.tracks[i], p)
	}
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	if len(h.tracks) == 0 {
		return 0
	}
	return len(h.tracks[0])
}

// Track returns the ordered past positions of one body. The returned
// slice is a snapshot of the track so far; later records never show
// through it.
func (h *History) Track(body int) []Vec2 {
	return h.tracks[body][:len(h.tracks[body]):len(h.tracks[body])]
}

// Tracks returns a snapshot of every body's track.
func (h *History) Tracks() [][]Vec2 {
	out := make([][]Vec2, len(h.tracks))
	for i := range h.tracks {
		out[i] = h.Track(i)
	}
	return out
}

func (h *History) clear() {
	for i := range h.tracks {
		h.tracks[i] = nil
	}
}

func (h *History) clone() *History {
	c := newHistory(len(h.tracks))
	for i, t := range h.tracks {
		c.tracks[i] = append([]Vec2(nil), t...)
	}
	return c
}
