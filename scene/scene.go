// Package scene builds entity scenes from YAML definitions and runs them
// one frame at a time.
package scene

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/kamstrup/intmap"
	"golang.org/x/image/colornames"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/frame"
)

// Default canvas size when a definition leaves it out.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Scene owns a fixed set of entities.
type Scene struct {
	Name       string
	Width      int
	Height     int
	Background color.RGBA

	entities []*entity.Entity
	names    map[string]*entity.Entity
	nameOf   *intmap.Map[entity.ID, string]
	byID     *intmap.Map[entity.ID, *entity.Entity]

	groups     map[string]*entity.Alternator
	groupOrder []string

	drawOrder []*entity.Entity
}

func newScene(def *Definition) *Scene {
	s := &Scene{
		Name:       def.Name,
		Width:      cmp.Or(def.Width, DefaultWidth),
		Height:     cmp.Or(def.Height, DefaultHeight),
		Background: colornames.Black,
		names:      make(map[string]*entity.Entity),
		nameOf:     intmap.New[entity.ID, string](len(def.Entities)),
		byID:       intmap.New[entity.ID, *entity.Entity](len(def.Entities)),
		groups:     make(map[string]*entity.Alternator),
	}
	if def.Background != nil {
		s.Background = def.Background.RGBA
	}
	return s
}

func (s *Scene) add(name string, e *entity.Entity) error {
	if name != "" {
		if _, ok := s.names[name]; ok {
			return fmt.Errorf("%w: entity %q", ErrDuplicateName, name)
		}
		s.names[name] = e
		s.nameOf.Put(e.ID(), name)
	}

	s.entities = append(s.entities, e)
	s.drawOrder = append(s.drawOrder, e)
	s.byID.Put(e.ID(), e)
	return nil
}

func (s *Scene) addGroup(group GroupSpec) error {
	if _, ok := s.groups[group.Name]; ok {
		return fmt.Errorf("%w: group %q", ErrDuplicateName, group.Name)
	}
	if len(group.Members) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyGroup, group.Name)
	}

	members := make([]*entity.Entity, 0, len(group.Members))
	for _, name := range group.Members {
		e, ok := s.names[name]
		if !ok {
			return fmt.Errorf("%w: %q in group %q", ErrUnknownMember, name, group.Name)
		}
		members = append(members, e)
	}

	alt, err := entity.NewAlternator(members...)
	if err != nil {
		return fmt.Errorf("scene: group %q: %w", group.Name, err)
	}

	s.groups[group.Name] = alt
	s.groupOrder = append(s.groupOrder, group.Name)
	return nil
}

// Update advances every entity by dt seconds, in definition order.
func (s *Scene) Update(dt float64) {
	for _, e := range s.entities {
		e.Update(dt)
	}
}

// Execute runs the scene as a frame system.
func (s *Scene) Execute(f *frame.Frame) {
	s.Update(f.DeltaTime)
}

// Draw clears the surface to the background color and draws every
// entity, lower Y first so entities further down the screen overlap the
// ones above them. Entities at the same Y keep definition order.
func (s *Scene) Draw(surface entity.Surface) {
	surface.Save()
	surface.SetFillColor(s.Background)
	surface.BeginPath()
	surface.MoveTo(0, 0)
	surface.LineTo(float64(s.Width), 0)
	surface.LineTo(float64(s.Width), float64(s.Height))
	surface.LineTo(0, float64(s.Height))
	surface.ClosePath()
	surface.Fill()
	surface.Restore()

	slices.SortStableFunc(s.drawOrder, func(a, b *entity.Entity) int {
		return cmp.Compare(a.Y(), b.Y())
	})
	for _, e := range s.drawOrder {
		e.Draw(surface)
	}
}

// Entities returns the entities in definition order.
func (s *Scene) Entities() []*entity.Entity {
	return slices.Clone(s.entities)
}

// Entity returns the entity with the given name.
func (s *Scene) Entity(name string) (*entity.Entity, bool) {
	e, ok := s.names[name]
	return e, ok
}

// Lookup returns the entity with the given ID.
func (s *Scene) Lookup(id entity.ID) (*entity.Entity, bool) {
	return s.byID.Get(id)
}

// NameOf returns the definition name of an entity, or "" if it has none.
func (s *Scene) NameOf(id entity.ID) string {
	name, _ := s.nameOf.Get(id)
	return name
}

// Groups returns the group names in definition order.
func (s *Scene) Groups() []string {
	return slices.Clone(s.groupOrder)
}

// Cycle moves the active flag of the named group to its next member and
// returns that member.
func (s *Scene) Cycle(group string) (*entity.Entity, error) {
	alt, ok := s.groups[group]
	if !ok {
		return nil, fmt.Errorf("scene: no group %q", group)
	}
	return alt.Next(), nil
}

// Active returns the active member of the named group.
func (s *Scene) Active(group string) (*entity.Entity, bool) {
	alt, ok := s.groups[group]
	if !ok {
		return nil, false
	}
	return alt.Current(), true
}

// SetBoundingBoxes turns the debug bounding box of every entity on or off.
func (s *Scene) SetBoundingBoxes(on bool) {
	for _, e := range s.entities {
		e.UpdateState(entity.Patch{}.SetRenderBoundingBox(on))
	}
}
