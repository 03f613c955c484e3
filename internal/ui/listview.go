package ui

import (
	"fmt"

	"radarmap/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ListView displays a scrollable list of the volume's fields
type ListView struct {
	fields        []string
	selectedIndex int
	scrollOffset  int
	maxVisible    int
	x, y          int
	width, height int
}

// NewListView creates a new field list view
func NewListView(x, y, width, height int, fields []string) *ListView {
	maxVisible := height - 2 // Account for border
	if maxVisible < 1 {
		maxVisible = 1
	}

	return &ListView{
		fields:     fields,
		maxVisible: maxVisible,
		x:          x,
		y:          y,
		width:      width,
		height:     height,
	}
}

// SelectNext moves selection down
func (l *ListView) SelectNext() {
	if l.selectedIndex < len(l.fields)-1 {
		l.selectedIndex++
		l.adjustScroll()
	}
}

// SelectPrev moves selection up
func (l *ListView) SelectPrev() {
	if l.selectedIndex > 0 {
		l.selectedIndex--
		l.adjustScroll()
	}
}

// adjustScroll adjusts scroll offset to keep selected item visible
func (l *ListView) adjustScroll() {
	if l.selectedIndex >= l.scrollOffset+l.maxVisible {
		l.scrollOffset = l.selectedIndex - l.maxVisible + 1
	}

	if l.selectedIndex < l.scrollOffset {
		l.scrollOffset = l.selectedIndex
	}

	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// Selected returns the currently selected field name
func (l *ListView) Selected() string {
	if l.selectedIndex >= 0 && l.selectedIndex < len(l.fields) {
		return l.fields[l.selectedIndex]
	}
	return ""
}

// Draw renders the list view to the screen
func (l *ListView) Draw(screen tcell.Screen) {
	// Clear the entire panel area first (make it opaque)
	defaultStyle := tcell.StyleDefault
	for row := l.y + 1; row < l.y+l.height-1; row++ {
		for col := l.x + 1; col < l.x+l.width-1; col++ {
			screen.SetContent(col, row, ' ', nil, defaultStyle)
		}
	}

	drawBorder(screen, l.x, l.y, l.width, l.height)

	title := "Fields"
	titleX := l.x + (l.width-len(title))/2
	for i, ch := range title {
		screen.SetContent(titleX+i, l.y, ch, nil, render.StyleLabel)
	}

	visibleCount := min(l.maxVisible, len(l.fields)-l.scrollOffset)
	for i := 0; i < visibleCount; i++ {
		fieldIndex := l.scrollOffset + i
		if fieldIndex >= len(l.fields) {
			break
		}

		text := l.fields[fieldIndex]

		style := render.StyleListItem
		if fieldIndex == l.selectedIndex {
			style = render.StyleListSelected
		}

		x := l.x + 1
		y := l.y + i + 1
		for j := 0; j < min(len(text), l.width-2); j++ {
			screen.SetContent(x+j, y, rune(text[j]), nil, style)
		}

		for j := len(text); j < l.width-2; j++ {
			screen.SetContent(x+j, y, ' ', nil, style)
		}
	}

	if len(l.fields) > l.maxVisible {
		scrollInfo := "↕"
		screen.SetContent(l.x+l.width-2, l.y, rune(scrollInfo[0]), nil, render.StyleLabel)
	}
}

// UpdateDimensions updates the view dimensions
func (l *ListView) UpdateDimensions(x, y, width, height int) {
	l.x = x
	l.y = y
	l.width = width
	l.height = height
	l.maxVisible = height - 2
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.adjustScroll()
}

// drawBorder draws a panel border
func drawBorder(screen tcell.Screen, x, y, width, height int) {
	style := render.StyleLabel

	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(x+width-1, y, '┐', nil, style)
	screen.SetContent(x, y+height-1, '└', nil, style)
	screen.SetContent(x+width-1, y+height-1, '┘', nil, style)

	for i := 1; i < width-1; i++ {
		screen.SetContent(x+i, y, '─', nil, style)
		screen.SetContent(x+i, y+height-1, '─', nil, style)
	}

	for i := 1; i < height-1; i++ {
		screen.SetContent(x, y+i, '│', nil, style)
		screen.SetContent(x+width-1, y+i, '│', nil, style)
	}
}

// statusLine formats the footer shown under the field list
func statusLine(sweep int, numSweeps int, angle float64) string {
	return fmt.Sprintf("Sweep %d/%d  %.1f°", sweep+1, numSweeps, angle)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
