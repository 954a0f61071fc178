package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/scene"
)

// Inspector lists scene entities and edits the state of the selected one.
type Inspector struct {
	selected entity.ID
}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (in *Inspector) Render(s *scene.Scene) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, group := range s.Groups() {
		if imgui.Button(fmt.Sprintf("Cycle %s", group)) {
			s.Cycle(group)
		}
		imgui.SameLine()
	}
	if imgui.Button("Boxes on") {
		s.SetBoundingBoxes(true)
	}
	imgui.SameLine()
	if imgui.Button("Boxes off") {
		s.SetBoundingBoxes(false)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Active")
		imgui.TableHeadersRow()

		for _, e := range s.Entities() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", e.ID()), in.selected == e.ID(), imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				in.selected = e.ID()
			}

			imgui.TableNextColumn()
			imgui.Text(s.NameOf(e.ID()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", e.X()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", e.Y()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%t", e.Active()))
		}

		imgui.EndTable()
	}

	imgui.Separator()

	if e, ok := s.Lookup(in.selected); ok {
		in.renderState(e)
	} else {
		imgui.Text("No entity selected")
	}

	imgui.End()
}

func (in *Inspector) renderState(e *entity.Entity) {
	st := e.State()
	props := e.Props()

	imgui.Text(fmt.Sprintf("Entity %d", e.ID()))
	imgui.Text(fmt.Sprintf("Updaters: %s", updaterNames(props.Updaters)))
	imgui.Text(fmt.Sprintf("Renderers: %s", rendererNames(props.Renderers)))

	var patch entity.Patch
	floatField := func(name string, v float64, set func(entity.Patch, float64) entity.Patch) {
		f := float32(v)
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &f) {
			patch = set(patch, float64(f))
		}
	}

	floatField("X", st.X, entity.Patch.SetX)
	floatField("Y", st.Y, entity.Patch.SetY)
	floatField("Width", st.Width, entity.Patch.SetWidth)
	floatField("Height", st.Height, entity.Patch.SetHeight)
	floatField("Rotation", st.Rotation, func(p entity.Patch, v float64) entity.Patch {
		return p.SetRotation(entity.NormalizeAngle(v))
	})
	floatField("FallingSpeed", st.FallingSpeed, entity.Patch.SetFallingSpeed)
	floatField("RotationSpeed", st.RotationSpeed, entity.Patch.SetRotationSpeed)
	floatField("GrowthRate", st.GrowthRate, entity.Patch.SetGrowthRate)
	floatField("MovementSpeed", st.MovementSpeed, entity.Patch.SetMovementSpeed)

	active := st.Active
	if imgui.Checkbox("Active", &active) {
		patch = patch.SetActive(active)
	}
	box := st.RenderBoundingBox
	if imgui.Checkbox("Bounding box", &box) {
		patch = patch.SetRenderBoundingBox(box)
	}

	if len(st.Extra) > 0 && imgui.TreeNodeStr("Extra") {
		for name, v := range st.Extra {
			imgui.BulletText(fmt.Sprintf("%s: %g", name, v))
		}
		imgui.TreePop()
	}

	if !patch.Empty() {
		e.UpdateState(patch)
	}
}

func updaterNames(updaters []entity.Updater) []string {
	names := make([]string, len(updaters))
	for i, u := range updaters {
		names[i] = u.Name()
	}
	return names
}

func rendererNames(renderers []entity.Renderer) []string {
	names := make([]string, len(renderers))
	for i, r := range renderers {
		names[i] = r.Name()
	}
	return names
}
