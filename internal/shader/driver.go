package shader

import "github.com/go-gl/mathgl/mgl32"

// Driver is the subset of the graphics API the builder and programs need.
// Every method must be called from the goroutine that owns the GL context.
type Driver interface {
	// CompileShader creates a shader object of the given stage and compiles
	// source into it. It returns the object even when compilation fails so the
	// caller can release it; log holds the driver diagnostic on failure.
	CompileShader(stage Stage, source string) (id uint32, ok bool, log string)
	DeleteShader(id uint32)

	// LinkProgram creates a program object, attaches the stages and links.
	// The program is returned even when linking fails.
	LinkProgram(stages ...uint32) (id uint32, ok bool, log string)
	DeleteProgram(id uint32)
	UseProgram(id uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v mgl32.Vec3)
	UniformMat4(location int32, m mgl32.Mat4)
}
