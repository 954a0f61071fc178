package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Definition describes a scene: its canvas, its entities and the groups
// whose active flag is cycled.
type Definition struct {
	Name       string       `yaml:"name"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Background *Color       `yaml:"background"`
	Entities   []EntitySpec `yaml:"entities"`
	Groups     []GroupSpec  `yaml:"groups"`
}

// EntitySpec describes one entity. Unset attributes keep the square
// defaults; undeclared keys are kept as extra numeric state attributes.
type EntitySpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	X             *float64 `yaml:"x"`
	Y             *float64 `yaml:"y"`
	Width         *float64 `yaml:"width"`
	Height        *float64 `yaml:"height"`
	Rotation      *float64 `yaml:"rotation"`
	Color         *Color   `yaml:"color"`
	FallingSpeed  *float64 `yaml:"falling_speed"`
	RotationSpeed *float64 `yaml:"rotation_speed"`
	GrowthRate    *float64 `yaml:"growth_rate"`
	MovementSpeed *float64 `yaml:"movement_speed"`
	Active        *bool    `yaml:"active"`
	BoundingBox   *bool    `yaml:"bounding_box"`

	// Updaters and Renderers name the pipeline stages in order. Leaving a
	// list out selects the defaults; an empty list selects none.
	Updaters  []string `yaml:"updaters"`
	Renderers []string `yaml:"renderers"`

	Extra map[string]float64 `yaml:",inline"`
}

// GroupSpec names entities that share one active flag.
type GroupSpec struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Parse decodes a YAML scene definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	return &def, nil
}

// Color decodes "#RRGGBB", "#RRGGBBAA" or a CSS color name.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A), nil
}

// ParseColor parses a hex color or a CSS color name.
func ParseColor(v string) (color.RGBA, error) {
	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.RGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.RGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.RGBA{}, err
		}
	}

	// color.RGBA is alpha-premultiplied
	n := color.NRGBA{R: r, G: g, B: b, A: a}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}
