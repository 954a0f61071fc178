package scene

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the scene built when no other is requested.
const DefaultName = "default.yaml"

//go:embed scenes/*.yaml
var ScenesFS embed.FS

// Load returns the named scene file. A path that exists on disk wins over
// the embedded scenes.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(embeddedPath(name))
}

// LoadDefinition loads and parses the named scene.
func LoadDefinition(name string) (*Definition, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", name, err)
	}
	return def, nil
}

func embeddedPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scenes/")
	return "scenes/" + s
}
