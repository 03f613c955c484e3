package display

import (
	"github.com/gdamore/tcell/v2"

	"radarmap/internal/render"
)

// MeshCell is one drawn pseudocolor cell and the data value behind it.
type MeshCell struct {
	X, Y  int
	Value float64
}

// MeshArtifact is the handle of one drawn pseudocolor mesh: it remembers its
// cells so the mesh can be re-colored later without redrawing the whole plot.
type MeshArtifact struct {
	Field string
	Cmap  *render.Colormap
	VMin  float64
	VMax  float64
	Cells []MeshCell

	canvas *render.Canvas
}

// NewMeshArtifact creates an empty mesh handle targeting a canvas.
func NewMeshArtifact(field string, cmap *render.Colormap, vmin, vmax float64, canvas *render.Canvas) *MeshArtifact {
	return &MeshArtifact{
		Field:  field,
		Cmap:   cmap,
		VMin:   vmin,
		VMax:   vmax,
		canvas: canvas,
	}
}

// Add draws one cell at its colormapped color and records it.
func (m *MeshArtifact) Add(x, y int, v float64) {
	m.canvas.Set(x, y, '█', tcell.StyleDefault.Foreground(m.Cmap.At(v, m.VMin, m.VMax)))
	m.Cells = append(m.Cells, MeshCell{X: x, Y: y, Value: v})
}

// SetLimits changes the color limits and re-colors all recorded cells.
func (m *MeshArtifact) SetLimits(vmin, vmax float64) {
	m.VMin = vmin
	m.VMax = vmax
	for _, cell := range m.Cells {
		m.canvas.Set(cell.X, cell.Y, '█', tcell.StyleDefault.Foreground(m.Cmap.At(cell.Value, vmin, vmax)))
	}
}
