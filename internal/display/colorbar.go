package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"radarmap/internal/render"
)

// ColorbarArtifact records one drawn colorbar.
type ColorbarArtifact struct {
	Label string
	X, Y  int
	Width int
}

// AttachColorbar draws a horizontal colorbar keyed to a mesh across the
// bottom of the canvas: the ramp with its limits on the second-to-last row
// and a centered label on the last row. An empty label is synthesized from
// the mesh's field. The artifact is appended to the display's colorbar list.
func (d *Display) AttachColorbar(canvas *render.Canvas, mesh *MeshArtifact, label string) *ColorbarArtifact {
	if label == "" {
		info := FieldInfo(mesh.Field)
		label = info.Label
		if info.Units != "" {
			label += " (" + info.Units + ")"
		}
	}

	minLabel := fmt.Sprintf("%.4g ", mesh.VMin)
	maxLabel := fmt.Sprintf(" %.4g", mesh.VMax)

	barY := canvas.Height() - 2
	barX := len(minLabel)
	width := canvas.Width() - len(minLabel) - len(maxLabel)
	if barY < 0 || width < 2 {
		return nil
	}

	canvas.DrawText(0, barY, minLabel, render.StyleLabel)
	for i, color := range mesh.Cmap.Levels(width) {
		canvas.Set(barX+i, barY, '█', tcell.StyleDefault.Foreground(color))
	}
	canvas.DrawText(barX+width, barY, maxLabel, render.StyleLabel)

	labelX := (canvas.Width() - len(label)) / 2
	if labelX < 0 {
		labelX = 0
	}
	canvas.DrawText(labelX, barY+1, label, render.StyleLabel)

	cb := &ColorbarArtifact{Label: label, X: barX, Y: barY, Width: width}
	d.Colorbars = append(d.Colorbars, cb)
	return cb
}
