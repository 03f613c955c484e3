package ui

import (
	"fmt"

	"radarmap/internal/radar"
	"radarmap/internal/render"

	"github.com/gdamore/tcell/v2"
)

// InfoView displays detailed information about the current sweep
type InfoView struct {
	vol           *radar.Volume
	sweepIndex    int
	x, y          int
	width, height int
}

// NewInfoView creates a new sweep info view
func NewInfoView(x, y, width, height int, vol *radar.Volume) *InfoView {
	return &InfoView{
		vol:    vol,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

// SetSweep sets the sweep to display
func (d *InfoView) SetSweep(index int) {
	d.sweepIndex = index
}

// Draw renders the info view to the screen
func (d *InfoView) Draw(screen tcell.Screen) {
	sweep, err := d.vol.Sweep(d.sweepIndex)
	if err != nil {
		return
	}

	// Clear the entire panel area first (make it opaque)
	defaultStyle := tcell.StyleDefault
	for row := d.y + 1; row < d.y+d.height-1; row++ {
		for col := d.x + 1; col < d.x+d.width-1; col++ {
			screen.SetContent(col, row, ' ', nil, defaultStyle)
		}
	}

	drawBorder(screen, d.x, d.y, d.width, d.height)

	title := "Sweep Details"
	titleX := d.x + (d.width-len(title))/2
	for i, ch := range title {
		screen.SetContent(titleX+i, d.y, ch, nil, render.StyleLabel)
	}

	lines := []string{
		fmt.Sprintf("Site:       %s", d.vol.Name),
		fmt.Sprintf("Position:   %.4f, %.4f", d.vol.Latitude, d.vol.Longitude),
		fmt.Sprintf("Altitude:   %.0f m", d.vol.Altitude),
		fmt.Sprintf("Sweep:      %d of %d", d.sweepIndex+1, d.vol.NumSweeps()),
		fmt.Sprintf("Elevation:  %.1f deg", sweep.FixedAngle),
		fmt.Sprintf("Rays:       %d", sweep.NumRays()),
		fmt.Sprintf("Gates:      %d", sweep.NumGates()),
		fmt.Sprintf("Max Range:  %.0f km", sweep.MaxRange()/1000),
		fmt.Sprintf("Fields:     %d", len(sweep.Fields)),
	}

	y := d.y + 1
	for i, line := range lines {
		if y+i >= d.y+d.height-1 {
			break
		}
		d.drawLine(screen, d.x+2, y+i, line)
	}

	instructions := "Press ESC to return"
	instX := d.x + (d.width-len(instructions))/2
	instY := d.y + d.height - 1
	for i, ch := range instructions {
		screen.SetContent(instX+i, instY, ch, nil, render.StyleLabel.Dim(true))
	}
}

// drawLine draws a single line of text
func (d *InfoView) drawLine(screen tcell.Screen, x, y int, text string) {
	for i := 0; i < min(len(text), d.width-4); i++ {
		screen.SetContent(x+i, y, rune(text[i]), nil, render.StyleLabel)
	}
}

// UpdateDimensions updates the view dimensions
func (d *InfoView) UpdateDimensions(x, y, width, height int) {
	d.x = x
	d.y = y
	d.width = width
	d.height = height
}
