// Package scene generates the reference geometry the flycam demo flies
// around in. Vertices are interleaved position (3) and color (3) floats.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FloatsPerVertex = 6
	VerticesPerCube = 24
	IndicesPerCube  = 36
)

type face struct {
	corners [4]mgl32.Vec3
	shade   float32
}

// Unit cube faces, counter-clockwise seen from outside. Shading is a fixed
// per-face factor so faces stay distinguishable without lighting.
var cubeFaces = [6]face{
	{[4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}, 0.85},     // Front
	{[4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, 0.6},  // Back
	{[4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}, 1.0},      // Top
	{[4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}, 0.4},  // Bottom
	{[4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}, 0.75},     // Right
	{[4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}, 0.7}, // Left
}

// AppendCube appends a unit cube centred at pos to vertices and indices
func AppendCube(vertices []float32, indices []uint32, pos, color mgl32.Vec3) ([]float32, []uint32) {
	base := uint32(len(vertices) / FloatsPerVertex)

	for i, f := range cubeFaces {
		c := color.Mul(f.shade)
		for _, corner := range f.corners {
			p := pos.Add(corner)
			vertices = append(vertices, p[0], p[1], p[2], c[0], c[1], c[2])
		}

		v := base + uint32(i*4)
		indices = append(indices, v, v+1, v+2, v+2, v+3, v)
	}

	return vertices, indices
}

// CubeGrid lays out an n x n checkerboard of cubes on the y = -1 plane,
// centred on the origin, spacing units apart. A column of cubes at the
// origin marks the vertical axis.
func CubeGrid(n int, spacing float32) (vertices []float32, indices []uint32) {
	if n <= 0 {
		return nil, nil
	}

	total := n*n + 3
	vertices = make([]float32, 0, total*VerticesPerCube*FloatsPerVertex)
	indices = make([]uint32, 0, total*IndicesPerCube)

	light := mgl32.Vec3{0.8, 0.8, 0.85}
	dark := mgl32.Vec3{0.25, 0.3, 0.45}

	offset := float32(n-1) * spacing / 2
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			color := dark
			if (x+z)%2 == 0 {
				color = light
			}
			pos := mgl32.Vec3{float32(x)*spacing - offset, -1, float32(z)*spacing - offset}
			vertices, indices = AppendCube(vertices, indices, pos, color)
		}
	}

	marker := mgl32.Vec3{0.9, 0.35, 0.2}
	for y := 0; y < 3; y++ {
		vertices, indices = AppendCube(vertices, indices, mgl32.Vec3{0, float32(y), 0}, marker)
	}

	return vertices, indices
}
