// Package mesh uploads static interleaved vertex data into a VAO/VBO pair.
package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an uploaded vertex buffer with its attribute configuration.
type Mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// New uploads data with STATIC_DRAW usage and configures the attributes of
// layout on a fresh vertex array.
func New(data []float32, layout Layout) (*Mesh, error) {
	count, err := layout.VertexCount(data)
	if err != nil {
		return nil, err
	}

	m := &Mesh{vertexCount: count}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)

	stride := layout.Stride()
	for i, a := range layout {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, stride, layout.Offset(i))
	}

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

// VertexCount returns the number of uploaded vertices.
func (m *Mesh) VertexCount() int32 { return m.vertexCount }

// Draw draws count vertices starting at first as triangles.
func (m *Mesh) Draw(first, count int32) {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// DrawAll draws every vertex as triangles.
func (m *Mesh) DrawAll() {
	m.Draw(0, m.vertexCount)
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo = 0, 0
}
