package shader_test

import (
	"path/filepath"
	"testing"

	"gltut/internal/shader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every shipped shader pair must survive the fake driver's syntax and
// interface checks.
func TestAssetPairsBuild(t *testing.T) {
	dir := filepath.Join("..", "..", "assets", "shaders")
	for _, name := range []string{"passthrough", "diffuse", "phong", "scene"} {
		t.Run(name, func(t *testing.T) {
			d := newFakeDriver()
			p, err := shader.NewBuilder(d, nil).Build(
				filepath.Join(dir, name+".vert"),
				filepath.Join(dir, name+".frag"),
			)
			require.NoError(t, err)
			assert.True(t, d.programs[p.ID()])
		})
	}
}
