package shader

import "github.com/go-gl/mathgl/mgl32"

// Program is a linked, executable shader program.
type Program struct {
	id        uint32
	driver    Driver
	locations map[string]int32
	deleted   bool
}

// ID returns the driver handle of the program.
func (p *Program) ID() uint32 { return p.id }

// Use activates the program for subsequent draw calls.
func (p *Program) Use() {
	p.driver.UseProgram(p.id)
}

// Delete releases the program. Calling it more than once is a no-op.
func (p *Program) Delete() {
	if p.deleted {
		return
	}
	p.driver.DeleteProgram(p.id)
	p.deleted = true
}

// location looks up a uniform once per name. Unknown uniforms resolve to -1,
// which the driver silently ignores.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.driver.UniformLocation(p.id, name)
	p.locations[name] = loc
	return loc
}

// SetBool sets a boolean uniform.
func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.driver.Uniform1i(p.location(name), v)
}

// SetInt sets an integer or sampler uniform.
func (p *Program) SetInt(name string, value int32) {
	p.driver.Uniform1i(p.location(name), value)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, value float32) {
	p.driver.Uniform1f(p.location(name), value)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	p.driver.Uniform3f(p.location(name), value)
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	p.driver.UniformMat4(p.location(name), value)
}
