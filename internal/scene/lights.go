package scene

import (
	"gltut/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
)

// DiffuseLight is a point light shading a single flat-colored object.
type DiffuseLight struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	ObjectColor mgl32.Vec3
}

// DefaultDiffuseLight is a white light up and to the right of an orange object.
func DefaultDiffuseLight() DiffuseLight {
	return DiffuseLight{
		Position:    mgl32.Vec3{1.2, 1.0, 2.0},
		Color:       mgl32.Vec3{1, 1, 1},
		ObjectColor: mgl32.Vec3{1.0, 0.5, 0.2},
	}
}

// Apply uploads the light to p, which must be in use.
func (l DiffuseLight) Apply(p *shader.Program) {
	p.SetVec3("lightPos", l.Position)
	p.SetVec3("lightColor", l.Color)
	p.SetVec3("objectColor", l.ObjectColor)
}

// PhongLight adds the viewer position needed for the specular term.
type PhongLight struct {
	DiffuseLight
	ViewPos mgl32.Vec3
}

func DefaultPhongLight() PhongLight {
	return PhongLight{DiffuseLight: DefaultDiffuseLight(), ViewPos: mgl32.Vec3{0, 0, 3}}
}

func (l PhongLight) Apply(p *shader.Program) {
	l.DiffuseLight.Apply(p)
	p.SetVec3("viewPos", l.ViewPos)
}

// SceneLight combines a positional light, a directional light and a nearby
// point light with separately weighted lighting terms.
type SceneLight struct {
	Position      mgl32.Vec3
	Color         mgl32.Vec3
	Direction     mgl32.Vec3
	PointPosition mgl32.Vec3
	ObjectColor   mgl32.Vec3

	Ambient  float32
	Diffuse  float32
	Specular float32
}

// DefaultSceneLight is a slightly blue light from high above.
func DefaultSceneLight() SceneLight {
	return SceneLight{
		Position:      mgl32.Vec3{5, 10, 10},
		Color:         mgl32.Vec3{0.9, 0.9, 1.0},
		Direction:     mgl32.Vec3{-0.2, -1.0, -0.3},
		PointPosition: mgl32.Vec3{2, 1, 1},
		ObjectColor:   mgl32.Vec3{1.0, 0.5, 0.3},
		Ambient:       0.2,
		Diffuse:       1.0,
		Specular:      0.5,
	}
}

// Apply uploads the light for a viewer at viewPos.
func (l SceneLight) Apply(p *shader.Program, viewPos mgl32.Vec3) {
	p.SetVec3("lightPos", l.Position)
	p.SetVec3("lightColor", l.Color)
	p.SetVec3("lightDir", l.Direction)
	p.SetVec3("pointLightPos", l.PointPosition)
	p.SetVec3("viewPos", viewPos)
	p.SetVec3("objectColor", l.ObjectColor)
	p.SetFloat("ambientStrength", l.Ambient)
	p.SetFloat("diffuseStrength", l.Diffuse)
	p.SetFloat("specularStrength", l.Specular)
}

// Transform is the model/view/projection triple of the 3D demos.
type Transform struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

func (t Transform) Apply(p *shader.Program) {
	p.SetMat4("model", t.Model)
	p.SetMat4("view", t.View)
	p.SetMat4("projection", t.Projection)
}
