package mesh

import "github.com/pkg/errors"

const floatSize = 4

// ErrRaggedVertices is returned when vertex data does not divide evenly into
// vertices of the layout's size.
var ErrRaggedVertices = errors.New("mesh: vertex data length is not a multiple of the layout size")

// Attribute is one float vector attribute of an interleaved vertex.
type Attribute struct {
	Location   uint32
	Components int32
}

// Layout lists the attributes of an interleaved vertex in memory order.
type Layout []Attribute

// Common layouts used by the demos.
var (
	Position            = Layout{{0, 3}}
	PositionNormal      = Layout{{0, 3}, {1, 3}}
	PositionNormalColor = Layout{{0, 3}, {1, 3}, {2, 3}}
	// PositionNormalColorUV adds texture coordinates at location 3.
	PositionNormalColorUV = Layout{{0, 3}, {1, 3}, {2, 3}, {3, 2}}
)

// FloatsPerVertex returns the number of floats in one vertex.
func (l Layout) FloatsPerVertex() int {
	n := 0
	for _, a := range l {
		n += int(a.Components)
	}
	return n
}

// Stride returns the byte size of one vertex.
func (l Layout) Stride() int32 {
	return int32(l.FloatsPerVertex() * floatSize)
}

// Offset returns the byte offset of the i-th attribute within a vertex.
func (l Layout) Offset(i int) uintptr {
	n := 0
	for _, a := range l[:i] {
		n += int(a.Components)
	}
	return uintptr(n * floatSize)
}

// VertexCount returns how many vertices data holds.
func (l Layout) VertexCount(data []float32) (int32, error) {
	per := l.FloatsPerVertex()
	if per == 0 || len(data)%per != 0 {
		return 0, errors.Wrapf(ErrRaggedVertices, "%d floats, %d per vertex", len(data), per)
	}
	return int32(len(data) / per), nil
}
