// Package scene holds the static vertex tables and light setups of the demos.
package scene

// Triangle is a single triangle in normalized device coordinates, positions only.
var Triangle = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// Triangle2D is Triangle without the z component, for immediate-mode drawing.
var Triangle2D = [][2]float32{
	{-0.5, -0.5},
	{0.5, -0.5},
	{0.0, 0.5},
}

// DiffuseTriangle carries one distinct normal per vertex so the diffuse term
// varies across the face.
var DiffuseTriangle = []float32{
	// positions       // normals
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// PhongTriangles holds two parallel triangles, the second one half a unit
// further back.
var PhongTriangles = []float32{
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,

	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 0.0, 1.0,
	0.0, 0.5, -0.5, 0.0, 0.0, 1.0,
}

// ColoredTriangle is a triangle of the free-fly scene: three vertex positions
// facing +Z and one color per vertex.
type ColoredTriangle struct {
	Vertices [3][3]float32
	Colors   [3][3]float32
}

func flat(a, b, c [3]float32, color [3]float32) ColoredTriangle {
	return ColoredTriangle{Vertices: [3][3]float32{a, b, c}, Colors: [3][3]float32{color, color, color}}
}

// SceneTriangles are scattered around the origin at different depths.
var SceneTriangles = []ColoredTriangle{
	// bright, one primary per corner
	{
		Vertices: [3][3]float32{{-0.5, -0.5, 0.0}, {0.5, -0.5, 0.0}, {0.0, 0.5, 0.0}},
		Colors:   [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	},
	flat([3]float32{-0.5, -0.5, -0.5}, [3]float32{0.5, -0.5, -0.5}, [3]float32{0.0, 0.5, -0.5}, [3]float32{0.5, 0.5, 0.5}),
	flat([3]float32{-0.5, -0.5, 0.5}, [3]float32{0.5, -0.5, 0.5}, [3]float32{0.0, 0.5, 0.5}, [3]float32{0.6, 0.6, 0.6}),
	flat([3]float32{1.0, -0.5, 0.0}, [3]float32{1.5, -0.5, 0.0}, [3]float32{1.25, 0.5, 0.0}, [3]float32{0.8, 0.8, 0.8}),
	flat([3]float32{-1.0, -0.5, 0.0}, [3]float32{-0.5, -0.5, 0.0}, [3]float32{-0.75, 0.5, 0.0}, [3]float32{1.0, 1.0, 0.0}),
	flat([3]float32{1.0, 1.0, -0.5}, [3]float32{1.5, 1.0, -0.5}, [3]float32{1.25, 1.5, -0.5}, [3]float32{0.0, 1.0, 0.5}),
	flat([3]float32{-1.5, -1.0, 0.5}, [3]float32{-1.0, -1.0, 0.5}, [3]float32{-1.25, -0.5, 0.5}, [3]float32{1.0, 0.0, 1.0}),
	flat([3]float32{-2.0, 1.0, -1.0}, [3]float32{-1.5, 1.0, -1.0}, [3]float32{-1.75, 1.5, -1.0}, [3]float32{0.0, 1.0, 1.0}),
	flat([3]float32{0.0, -1.0, -1.0}, [3]float32{0.5, -1.0, -1.0}, [3]float32{0.25, -0.5, -1.0}, [3]float32{0.3, 0.3, 0.3}),
	flat([3]float32{2.0, 0.0, 0.5}, [3]float32{2.5, 0.0, 0.5}, [3]float32{2.25, 0.5, 0.5}, [3]float32{0.0, 0.0, 0.8}),
	flat([3]float32{-2.5, -0.5, 0.5}, [3]float32{-3.0, -0.5, 0.5}, [3]float32{-2.75, 0.0, 0.5}, [3]float32{0.5, 0.5, 0.0}),
	flat([3]float32{-3.0, 1.0, -0.5}, [3]float32{-2.5, 1.0, -0.5}, [3]float32{-2.75, 1.5, -0.5}, [3]float32{0.8, 0.6, 1.0}),
	flat([3]float32{3.0, -1.5, 0.0}, [3]float32{3.5, -1.5, 0.0}, [3]float32{3.25, -1.0, 0.0}, [3]float32{1.0, 0.3, 0.0}),
	flat([3]float32{4.0, 0.5, 0.0}, [3]float32{4.5, 0.5, 0.0}, [3]float32{4.25, 1.0, 0.0}, [3]float32{0.4, 0.7, 1.0}),
	flat([3]float32{-4.0, -0.5, -0.5}, [3]float32{-4.5, -0.5, -0.5}, [3]float32{-4.25, 0.0, -0.5}, [3]float32{0.5, 0.0, 0.0}),
	flat([3]float32{3.0, 1.0, 1.0}, [3]float32{3.5, 1.0, 1.0}, [3]float32{3.25, 1.5, 1.0}, [3]float32{1.0, 0.2, 0.5}),
	flat([3]float32{-3.0, -1.0, 1.5}, [3]float32{-3.5, -1.0, 1.5}, [3]float32{-3.25, -0.5, 1.5}, [3]float32{0.0, 0.8, 0.4}),
	flat([3]float32{2.5, 0.5, -1.5}, [3]float32{3.0, 0.5, -1.5}, [3]float32{2.75, 1.0, -1.5}, [3]float32{0.0, 0.0, 0.5}),
	flat([3]float32{-2.0, -2.0, 1.0}, [3]float32{-1.5, -2.0, 1.0}, [3]float32{-1.75, -1.5, 1.0}, [3]float32{1.0, 0.9, 0.0}),
	flat([3]float32{4.5, 2.0, 0.5}, [3]float32{5.0, 2.0, 0.5}, [3]float32{4.75, 2.5, 0.5}, [3]float32{1.0, 1.0, 1.0}),
}

// Interleave flattens triangles into position/normal/color vertices.
func Interleave(tris []ColoredTriangle) []float32 {
	out := make([]float32, 0, len(tris)*3*9)
	for _, t := range tris {
		for i := range t.Vertices {
			p, c := t.Vertices[i], t.Colors[i]
			out = append(out, p[0], p[1], p[2], 0, 0, 1, c[0], c[1], c[2])
		}
	}
	return out
}

// GroundPlane builds a square at height y spanning [-half, half] on X and Z,
// as position/normal/color/uv vertices. The texture repeats tiles times
// across each side.
func GroundPlane(half, y, tiles float32, color [3]float32) []float32 {
	corners := [6][4]float32{
		// x, z, u, v
		{-half, half, 0, 0},
		{half, half, tiles, 0},
		{half, -half, tiles, tiles},
		{-half, half, 0, 0},
		{half, -half, tiles, tiles},
		{-half, -half, 0, tiles},
	}
	out := make([]float32, 0, len(corners)*11)
	for _, c := range corners {
		out = append(out,
			c[0], y, c[1],
			0, 1, 0,
			color[0], color[1], color[2],
			c[2], c[3],
		)
	}
	return out
}
