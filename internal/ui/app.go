package ui

import (
	"fmt"

	"radarmap/internal/debug"
	"radarmap/internal/geo"
	"radarmap/internal/mapdisplay"
	"radarmap/internal/radar"
	"radarmap/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ViewMode represents the current view mode
type ViewMode int

const (
	ViewModeMap ViewMode = iota
	ViewModeInfo
)

// App is the main application controller
type App struct {
	screen      tcell.Screen
	md          *mapdisplay.MapDisplay
	vol         *radar.Volume
	ppiView     *PPIView
	listView    *ListView
	infoView    *InfoView
	currentView ViewMode
	fields      []string
	sweepIndex  int
	dirty       bool
}

// NewApp creates a new application. cmaps optionally overrides per-field
// colormaps by field name.
func NewApp(md *mapdisplay.MapDisplay, airports []*geo.Feature, opts mapdisplay.PPIMapOptions, cmaps map[string]string) (*App, error) {
	vol := md.Display().Volume()
	fields := vol.FieldNames()
	if len(fields) == 0 {
		return nil, fmt.Errorf("volume has no fields")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	width, height := screen.Size()

	ppiView := NewPPIView(md, airports, width, height, opts)
	ppiView.Cmaps = cmaps

	// Field list in lower-left corner
	listWidth := 30
	listHeight := 10
	listView := NewListView(0, height-listHeight, listWidth, listHeight, fields)

	// Sweep info panel in lower-left corner
	infoWidth := 40
	infoHeight := 13
	infoView := NewInfoView(0, height-infoHeight, infoWidth, infoHeight, vol)

	return &App{
		screen:      screen,
		md:          md,
		vol:         vol,
		ppiView:     ppiView,
		listView:    listView,
		infoView:    infoView,
		currentView: ViewModeMap,
		fields:      fields,
		dirty:       true,
	}, nil
}

// Run starts the application main loop
func (a *App) Run() error {
	defer a.cleanup()

	for {
		if a.dirty {
			a.replot()
			a.dirty = false
		}
		a.render()

		ev := a.screen.PollEvent()
		if !a.handleEvent(ev) {
			return nil
		}
	}
}

// replot redraws the PPI plot for the current field and sweep
func (a *App) replot() {
	field := a.listView.Selected()
	if err := a.ppiView.Redraw(field, a.sweepIndex); err != nil {
		debug.Log("plot %s sweep %d: %v", field, a.sweepIndex, err)
	}
}

// render renders the current view to the screen
func (a *App) render() {
	a.screen.Clear()

	a.ppiView.Draw(a.screen)

	switch a.currentView {
	case ViewModeMap:
		a.listView.Draw(a.screen)
		a.drawStatus()
	case ViewModeInfo:
		a.infoView.Draw(a.screen)
	}

	a.screen.Show()
}

// drawStatus draws the sweep status line under the field list
func (a *App) drawStatus() {
	angle := 0.0
	if s, err := a.vol.Sweep(a.sweepIndex); err == nil {
		angle = s.FixedAngle
	}
	_, height := a.screen.Size()
	text := statusLine(a.sweepIndex, a.vol.NumSweeps(), angle)
	for i, ch := range text {
		a.screen.SetContent(1+i, height-1, ch, nil, render.StyleLabel)
	}
}

// handleEvent processes keyboard events
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			if a.currentView == ViewModeInfo {
				a.currentView = ViewModeMap
			} else {
				return false
			}

		case tcell.KeyEnter:
			if a.currentView == ViewModeMap {
				a.currentView = ViewModeInfo
				a.infoView.SetSweep(a.sweepIndex)
			}

		case tcell.KeyUp:
			a.listView.SelectPrev()
			a.dirty = true

		case tcell.KeyDown:
			a.listView.SelectNext()
			a.dirty = true

		case tcell.KeyLeft:
			if a.sweepIndex > 0 {
				a.sweepIndex--
				a.infoView.SetSweep(a.sweepIndex)
				a.dirty = true
			}

		case tcell.KeyRight:
			if a.sweepIndex < a.vol.NumSweeps()-1 {
				a.sweepIndex++
				a.infoView.SetSweep(a.sweepIndex)
				a.dirty = true
			}

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false

			case 'r', 'R':
				a.ppiView.ShowRings = !a.ppiView.ShowRings
				a.dirty = true

			case 'a', 'A':
				a.ppiView.ShowAirports = !a.ppiView.ShowAirports
				a.dirty = true

			case 'g', 'G':
				a.ppiView.Opts.AutoRange = !a.ppiView.Opts.AutoRange
				a.dirty = true

			case '+', '=':
				if a.ppiView.Opts.Resolution < geo.ResFull {
					a.ppiView.Opts.Resolution++
					a.dirty = true
				}

			case '-', '_':
				if a.ppiView.Opts.Resolution > geo.ResCrude {
					a.ppiView.Opts.Resolution--
					a.dirty = true
				}
			}
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

// handleResize handles terminal resize events
func (a *App) handleResize() {
	a.screen.Sync()
	width, height := a.screen.Size()

	a.ppiView.UpdateDimensions(width, height)

	listWidth := 30
	listHeight := 10
	a.listView.UpdateDimensions(0, height-listHeight, listWidth, listHeight)

	infoWidth := 40
	infoHeight := 13
	a.infoView.UpdateDimensions(0, height-infoHeight, infoWidth, infoHeight)

	a.dirty = true
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	if a.screen != nil {
		a.screen.Fini()
	}
}
