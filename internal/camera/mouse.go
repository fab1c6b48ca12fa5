package camera

// Mouse tracks the last cursor position to turn absolute cursor samples
// into offsets.
type Mouse struct {
	LastX, LastY float64
	seen         bool
}

// NewMouse starts tracking at the given position. The first sample still
// yields a zero offset.
func NewMouse(x, y float64) Mouse {
	return Mouse{LastX: x, LastY: y}
}

// Offset records a cursor sample and returns the offset since the previous
// one. The y offset is inverted because screen y grows downward.
func (m Mouse) Offset(x, y float64) (Mouse, float32, float32) {
	if !m.seen {
		m.LastX, m.LastY = x, y
		m.seen = true
	}
	dx := float32(x - m.LastX)
	dy := float32(m.LastY - y)
	m.LastX, m.LastY = x, y
	return m, dx, dy
}

// Reset makes the next sample yield a zero offset again, e.g. after the
// cursor was released and recaptured.
func (m Mouse) Reset() Mouse {
	m.seen = false
	return m
}
