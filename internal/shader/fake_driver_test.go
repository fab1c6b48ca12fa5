package shader_test

import (
	"fmt"
	"strings"

	"gltut/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDriver is an in-memory stand-in for the GL driver. It performs a
// line-level syntax check on compile and matches fragment inputs against
// vertex outputs on link.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]fakeShader
	programs map[uint32]bool
	linked   map[uint32]bool

	compiles  int
	links     int
	used      uint32
	lookups   map[string]int
	locations map[string]int32
	uniforms  map[int32]any
}

type fakeShader struct {
	stage  shader.Stage
	source string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		next:      1,
		shaders:   make(map[uint32]fakeShader),
		programs:  make(map[uint32]bool),
		linked:    make(map[uint32]bool),
		lookups:   make(map[string]int),
		locations: make(map[string]int32),
		uniforms:  make(map[int32]any),
	}
}

func (d *fakeDriver) alloc() uint32 {
	id := d.next
	d.next++
	return id
}

func (d *fakeDriver) CompileShader(stage shader.Stage, source string) (uint32, bool, string) {
	d.compiles++
	id := d.alloc()
	d.shaders[id] = fakeShader{stage: stage, source: source}

	if !strings.Contains(source, "void main") {
		return id, false, "error: no main() function found"
	}
	for i, line := range strings.Split(source, "\n") {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "#") || strings.HasPrefix(l, "//") {
			continue
		}
		if k := strings.Index(l, "//"); k >= 0 {
			l = strings.TrimSpace(l[:k])
		}
		if strings.HasSuffix(l, ";") || strings.HasSuffix(l, "{") || strings.HasSuffix(l, "}") {
			continue
		}
		return id, false, fmt.Sprintf("0:%d: error: syntax error, unexpected end of line, expecting ';'", i+1)
	}
	return id, true, ""
}

func (d *fakeDriver) DeleteShader(id uint32) { delete(d.shaders, id) }

func (d *fakeDriver) LinkProgram(stages ...uint32) (uint32, bool, string) {
	d.links++
	id := d.alloc()
	d.programs[id] = true

	var vertex, fragment string
	for _, s := range stages {
		sh, ok := d.shaders[s]
		if !ok || d.linked[s] {
			return id, false, fmt.Sprintf("error: shader %d is not a valid shader object", s)
		}
		d.linked[s] = true
		if sh.stage == shader.StageVertex {
			vertex = sh.source
		} else {
			fragment = sh.source
		}
	}

	outputs := make(map[string]bool)
	for _, name := range varyings(vertex, "out") {
		outputs[name] = true
	}
	for _, name := range varyings(fragment, "in") {
		if !outputs[name] {
			return id, false, fmt.Sprintf("error: fragment shader input '%s' is not written by the vertex shader", name)
		}
	}
	return id, true, ""
}

func (d *fakeDriver) DeleteProgram(id uint32) { delete(d.programs, id) }

func (d *fakeDriver) UseProgram(id uint32) { d.used = id }

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.lookups[name]++
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[name] = loc
	return loc
}

func (d *fakeDriver) Uniform1i(location int32, v int32)        { d.uniforms[location] = v }
func (d *fakeDriver) Uniform1f(location int32, v float32)      { d.uniforms[location] = v }
func (d *fakeDriver) Uniform3f(location int32, v mgl32.Vec3)   { d.uniforms[location] = v }
func (d *fakeDriver) UniformMat4(location int32, m mgl32.Mat4) { d.uniforms[location] = m }

// varyings returns the names declared with the given storage qualifier.
func varyings(source, qualifier string) []string {
	var names []string
	for _, line := range strings.Split(source, "\n") {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "//") {
			continue
		}
		fields := strings.Fields(l)
		for i, f := range fields {
			if f == qualifier && i+2 < len(fields) {
				names = append(names, strings.TrimSuffix(fields[i+2], ";"))
				break
			}
		}
	}
	return names
}
