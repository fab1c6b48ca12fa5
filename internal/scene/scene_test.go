package scene_test

import (
	"testing"

	"gltut/internal/mesh"
	"gltut/internal/scene"
)

func vertexCount(t *testing.T, l mesh.Layout, data []float32) int32 {
	t.Helper()
	n, err := l.VertexCount(data)
	if err != nil {
		t.Fatalf("vertex data does not fit layout: %v", err)
	}
	return n
}

func TestTablesMatchLayouts(t *testing.T) {
	if n := vertexCount(t, mesh.Position, scene.Triangle); n != 3 {
		t.Errorf("Triangle: expected 3 vertices, got %d", n)
	}
	if n := vertexCount(t, mesh.PositionNormal, scene.DiffuseTriangle); n != 3 {
		t.Errorf("DiffuseTriangle: expected 3 vertices, got %d", n)
	}
	if n := vertexCount(t, mesh.PositionNormal, scene.PhongTriangles); n != 6 {
		t.Errorf("PhongTriangles: expected 6 vertices, got %d", n)
	}
}

func TestInterleaveSceneTriangles(t *testing.T) {
	if len(scene.SceneTriangles) != 20 {
		t.Fatalf("expected 20 scene triangles, got %d", len(scene.SceneTriangles))
	}
	data := scene.Interleave(scene.SceneTriangles)
	if n := vertexCount(t, mesh.PositionNormalColor, data); n != 60 {
		t.Errorf("expected 60 vertices, got %d", n)
	}

	// second vertex of the first triangle: position, +Z normal, green
	want := []float32{0.5, -0.5, 0, 0, 0, 1, 0, 1, 0}
	got := data[9:18]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex 1 = %v, want %v", got, want)
		}
	}

	// last vertex is the white triangle's apex
	last := data[len(data)-9:]
	if last[0] != 4.75 || last[1] != 2.5 || last[6] != 1 || last[7] != 1 || last[8] != 1 {
		t.Errorf("unexpected last vertex %v", last)
	}
}

func TestGroundPlane(t *testing.T) {
	data := scene.GroundPlane(100, -1, 50, [3]float32{0.3, 0.3, 0.3})
	if n := vertexCount(t, mesh.PositionNormalColorUV, data); n != 6 {
		t.Fatalf("expected 6 vertices, got %d", n)
	}
	for v := 0; v < 6; v++ {
		vert := data[v*11 : (v+1)*11]
		if vert[1] != -1 {
			t.Errorf("vertex %d: y = %v, want -1", v, vert[1])
		}
		if vert[3] != 0 || vert[4] != 1 || vert[5] != 0 {
			t.Errorf("vertex %d: normal %v, want +Y", v, vert[3:6])
		}
		if vert[0] != 100 && vert[0] != -100 {
			t.Errorf("vertex %d: x = %v, want ±100", v, vert[0])
		}
		u, w := vert[9], vert[10]
		if (u != 0 && u != 50) || (w != 0 && w != 50) {
			t.Errorf("vertex %d: uv (%v, %v) outside tile range", v, u, w)
		}
	}
}
