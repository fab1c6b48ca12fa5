package shader

import "fmt"

// Stage identifies one half of a shader program.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Source is the raw text of one shader stage.
type Source struct {
	Stage Stage
	// Path is empty for sources that did not come from a file.
	Path string
	Text string
}

// CompiledStage is a successfully compiled shader object. It can be linked
// into exactly one program; linking releases it.
type CompiledStage struct {
	id       uint32
	stage    Stage
	path     string
	consumed bool
}

// Stage returns the kind of the compiled stage.
func (c *CompiledStage) Stage() Stage { return c.stage }
