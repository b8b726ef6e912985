package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Floats per vertex: position (3) + color (3)
const vertexStride = 6

// Mesh is an indexed triangle mesh with per-vertex colors
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position/color vertices and their indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices)
	ebo := NewEBO(indices)

	vao.SetVertexAttribPointer(0, 3, vertexStride*4, 0)
	vao.SetVertexAttribPointer(1, 3, vertexStride*4, 3*4)

	// EBO binding is recorded in the VAO, so unbind the VAO first
	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever shader is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
