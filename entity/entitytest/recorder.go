// Package entitytest provides deterministic stand-ins for the surface and
// keyboard an entity.Entity talks to.
package entitytest

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/bthesorceror/canvas-experiments/entity"
)

// Op names a recorded Surface call.
type Op string

const (
	OpSave           Op = "save"
	OpRestore        Op = "restore"
	OpTranslate      Op = "translate"
	OpRotate         Op = "rotate"
	OpSetFillColor   Op = "fillColor"
	OpSetStrokeColor Op = "strokeColor"
	OpBeginPath      Op = "beginPath"
	OpMoveTo         Op = "moveTo"
	OpLineTo         Op = "lineTo"
	OpClosePath      Op = "closePath"
	OpFill           Op = "fill"
	OpStrokeRect     Op = "strokeRect"
)

// Call is one recorded Surface call.
type Call struct {
	Op    Op
	Args  []float64
	Color color.Color
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	if len(c.Args) > 0 {
		fmt.Fprintf(&b, "%v", c.Args)
	}
	if c.Color != nil {
		r, g, bl, a := c.Color.RGBA()
		fmt.Fprintf(&b, "(#%02X%02X%02X%02X)", r>>8, g>>8, bl>>8, a>>8)
	}
	return b.String()
}

// Recorder is an entity.Surface that remembers every call made on it.
// It does not draw anything.
type Recorder struct {
	Calls []Call

	depth    int
	maxDepth int
}

var _ entity.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Depth returns the number of Saves not yet matched by a Restore.
func (r *Recorder) Depth() int { return r.depth }

// MaxDepth returns the deepest save nesting seen.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.depth = 0
	r.maxDepth = 0
}

// Ops returns the recorded operations in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Find returns the recorded calls with the given op.
func (r *Recorder) Find(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) record(op Op, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) Save() {
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
	r.record(OpSave)
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.record(OpRestore)
}

func (r *Recorder) Translate(x, y float64) { r.record(OpTranslate, x, y) }
func (r *Recorder) Rotate(angle float64)   { r.record(OpRotate, angle) }

func (r *Recorder) SetFillColor(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpSetFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpSetStrokeColor, Color: c})
}

func (r *Recorder) BeginPath()          { r.record(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64) { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record(OpLineTo, x, y) }
func (r *Recorder) ClosePath()          { r.record(OpClosePath) }
func (r *Recorder) Fill()               { r.record(OpFill) }

func (r *Recorder) StrokeRect(x, y, width, height float64) {
	r.record(OpStrokeRect, x, y, width, height)
}
