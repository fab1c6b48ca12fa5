package shader

import (
	"log/slog"
	"os"
)

// Builder loads, compiles and links vertex/fragment shader pairs.
type Builder struct {
	driver Driver
	log    *slog.Logger
}

// NewBuilder returns a builder issuing calls to d. A nil logger falls back to
// slog.Default.
func NewBuilder(d Driver, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{driver: d, log: logger}
}

// LoadSource reads the whole file at path as the text of one stage.
func (b *Builder) LoadSource(path string, stage Stage) (Source, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &IOError{Path: path, Err: err}
	}
	return Source{Stage: stage, Path: path, Text: string(text)}, nil
}

// CompileStage compiles src. On failure the driver object is released and a
// *CompileError carrying the driver log is returned.
func (b *Builder) CompileStage(src Source) (*CompiledStage, error) {
	id, ok, log := b.driver.CompileShader(src.Stage, src.Text)
	if !ok {
		b.driver.DeleteShader(id)
		return nil, &CompileError{Stage: src.Stage, Path: src.Path, Log: log}
	}
	b.log.Debug("shader compiled", "stage", src.Stage, "path", src.Path, "id", id)
	return &CompiledStage{id: id, stage: src.Stage, path: src.Path}, nil
}

// LinkProgram links a vertex and a fragment stage into a program. Both
// stages are released after the attempt whatever its outcome, and cannot be
// linked again.
func (b *Builder) LinkProgram(vs, fs *CompiledStage) (*Program, error) {
	if vs == nil || fs == nil {
		b.release(vs, fs)
		return nil, ErrStageMismatch
	}
	if vs.consumed || fs.consumed {
		b.release(vs, fs)
		return nil, ErrStageConsumed
	}
	if vs.stage != StageVertex || fs.stage != StageFragment {
		b.release(vs, fs)
		return nil, ErrStageMismatch
	}

	id, ok, log := b.driver.LinkProgram(vs.id, fs.id)
	b.release(vs, fs)
	if !ok {
		b.driver.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}
	b.log.Debug("shader program linked", "id", id, "vertex", vs.path, "fragment", fs.path)
	return &Program{id: id, driver: b.driver, locations: make(map[string]int32)}, nil
}

// Build loads, compiles and links the shader pair at the given paths,
// stopping at the first failure.
func (b *Builder) Build(vertexPath, fragmentPath string) (*Program, error) {
	vsrc, err := b.LoadSource(vertexPath, StageVertex)
	if err != nil {
		return nil, err
	}
	fsrc, err := b.LoadSource(fragmentPath, StageFragment)
	if err != nil {
		return nil, err
	}
	return b.build(vsrc, fsrc)
}

// BuildSources compiles and links in-memory vertex and fragment sources.
func (b *Builder) BuildSources(vertexText, fragmentText string) (*Program, error) {
	return b.build(
		Source{Stage: StageVertex, Text: vertexText},
		Source{Stage: StageFragment, Text: fragmentText},
	)
}

func (b *Builder) build(vsrc, fsrc Source) (*Program, error) {
	vs, err := b.CompileStage(vsrc)
	if err != nil {
		return nil, err
	}
	fs, err := b.CompileStage(fsrc)
	if err != nil {
		b.release(vs)
		return nil, err
	}
	return b.LinkProgram(vs, fs)
}

// release deletes every stage not yet released.
func (b *Builder) release(stages ...*CompiledStage) {
	for _, s := range stages {
		if s == nil || s.consumed {
			continue
		}
		b.driver.DeleteShader(s.id)
		s.consumed = true
	}
}
