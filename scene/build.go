package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bthesorceror/canvas-experiments/entity"
)

var (
	ErrUnknownUpdater  = errors.New("scene: unknown updater")
	ErrUnknownRenderer = errors.New("scene: unknown renderer")
	ErrUnknownKind     = errors.New("scene: unknown entity kind")
	ErrUnknownMember   = errors.New("scene: unknown group member")
	ErrDuplicateName   = errors.New("scene: duplicate name")
	ErrEmptyGroup      = errors.New("scene: empty group")
)

// KindSquare is the only entity kind and the default.
const KindSquare = "square"

// Updaters returns every updater a scene may name, wired to keys.
func Updaters(keys entity.Keys) map[string]entity.Updater {
	updaters := []entity.Updater{
		entity.Rotation{},
		entity.Falling{},
		entity.Growing{},
		entity.UserMovement{Keys: keys},
		entity.PlayerRotation{Keys: keys},
	}

	byName := make(map[string]entity.Updater, len(updaters))
	for _, u := range updaters {
		byName[u.Name()] = u
	}
	return byName
}

// Renderers returns every renderer a scene may name.
func Renderers() map[string]entity.Renderer {
	return map[string]entity.Renderer{
		entity.SquareRenderer{}.Name(): entity.SquareRenderer{},
	}
}

// Names returns the sorted keys of a registry, for error messages and
// tooling.
func Names[V any](registry map[string]V) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build assembles a scene from its definition. Input-driven updaters read
// keys.
func Build(def *Definition, keys entity.Keys) (*Scene, error) {
	s := newScene(def)

	updaters := Updaters(keys)
	renderers := Renderers()

	for i, spec := range def.Entities {
		e, err := buildEntity(spec, updaters, renderers)
		if err != nil {
			return nil, fmt.Errorf("scene: entity %d (%q): %w", i, spec.Name, err)
		}
		if err := s.add(spec.Name, e); err != nil {
			return nil, err
		}
	}

	for _, group := range def.Groups {
		if err := s.addGroup(group); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func buildEntity(spec EntitySpec, updaters map[string]entity.Updater, renderers map[string]entity.Renderer) (*entity.Entity, error) {
	if spec.Kind != "" && spec.Kind != KindSquare {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
	}

	var props entity.Props

	if spec.Updaters != nil {
		props.Updaters = make([]entity.Updater, 0, len(spec.Updaters))
		for _, name := range spec.Updaters {
			u, ok := updaters[name]
			if !ok {
				return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownUpdater, name, Names(updaters))
			}
			props.Updaters = append(props.Updaters, u)
		}
	}

	if spec.Renderers != nil {
		props.Renderers = make([]entity.Renderer, 0, len(spec.Renderers))
		for _, name := range spec.Renderers {
			r, ok := renderers[name]
			if !ok {
				return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownRenderer, name, Names(renderers))
			}
			props.Renderers = append(props.Renderers, r)
		}
	}

	var x, y float64
	if spec.X != nil {
		x = *spec.X
	}
	if spec.Y != nil {
		y = *spec.Y
	}

	return entity.Square(x, y, props, spec.Patch()), nil
}

// Patch returns the state overrides set in the entity definition.
func (spec EntitySpec) Patch() entity.Patch {
	var p entity.Patch

	if spec.Width != nil {
		p = p.SetWidth(*spec.Width)
	}
	if spec.Height != nil {
		p = p.SetHeight(*spec.Height)
	}
	if spec.Rotation != nil {
		p = p.SetRotation(entity.NormalizeAngle(*spec.Rotation))
	}
	if spec.Color != nil {
		p = p.SetColor(spec.Color.RGBA)
	}
	if spec.FallingSpeed != nil {
		p = p.SetFallingSpeed(*spec.FallingSpeed)
	}
	if spec.RotationSpeed != nil {
		p = p.SetRotationSpeed(*spec.RotationSpeed)
	}
	if spec.GrowthRate != nil {
		p = p.SetGrowthRate(*spec.GrowthRate)
	}
	if spec.MovementSpeed != nil {
		p = p.SetMovementSpeed(*spec.MovementSpeed)
	}
	if spec.Active != nil {
		p = p.SetActive(*spec.Active)
	}
	if spec.BoundingBox != nil {
		p = p.SetRenderBoundingBox(*spec.BoundingBox)
	}
	for name, v := range spec.Extra {
		p = p.SetExtra(name, v)
	}

	return p
}
