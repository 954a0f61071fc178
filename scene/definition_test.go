package scene_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/bthesorceror/canvas-experiments/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF00FF", color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}},
		{"FFF030", color.RGBA{R: 0xFF, G: 0xF0, B: 0x30, A: 0xFF}},
		{"#00000080", color.RGBA{A: 0x80}},
		{"lime", colornames.Lime},
		{"Red", colornames.Red},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := scene.ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#FFF", "#GG0000", "chartreusey"} {
		_, err := scene.ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorYAML(t *testing.T) {
	var c scene.Color
	require.NoError(t, yaml.Unmarshal([]byte(`"#FF0000"`), &c))
	assert.Equal(t, colornames.Red, c.RGBA)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#FF0000FF")
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: custom\nentities: [{name: only}]\n"), 0o644))

	def, err := scene.LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", def.Name)
	require.Len(t, def.Entities, 1)

	def, err = scene.LoadDefinition("scenes/default.yaml")
	require.NoError(t, err)
	assert.Equal(t, "squares", def.Name)
}
