package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLDriver implements Driver on top of the OpenGL 4.1 core bindings.
// gl.Init must have been called on the current context.
type GLDriver struct{}

func glStage(s Stage) uint32 {
	if s == StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (GLDriver) CompileShader(stage Stage, source string) (uint32, bool, string) {
	shader := gl.CreateShader(glStage(stage))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return shader, false, infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLength, nil, buf)
		})
	}
	return shader, true, ""
}

func (GLDriver) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (GLDriver) LinkProgram(stages ...uint32) (uint32, bool, string) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	ok := status != gl.FALSE
	var log string
	if !ok {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log = infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLength, nil, buf)
		})
	}
	for _, s := range stages {
		gl.DetachShader(program, s)
	}
	return program, ok, log
}

func (GLDriver) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (GLDriver) UseProgram(id uint32) { gl.UseProgram(id) }

func (GLDriver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GLDriver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (GLDriver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (GLDriver) Uniform3f(location int32, v mgl32.Vec3) { gl.Uniform3fv(location, 1, &v[0]) }

func (GLDriver) UniformMat4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// infoLog reads a driver log of the reported length. Some drivers report 0
// on failure, so an empty log gets a placeholder.
func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return "(driver returned no diagnostic)"
	}
	buf := make([]uint8, length+1)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n ")
}
