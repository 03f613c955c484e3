package render

import (
	"radarmap/internal/geo"

	"github.com/gdamore/tcell/v2"
)

// Style definitions for map layers and UI chrome
var (
	StyleCoastline      = tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	StyleCountryBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleStateBorder    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleUserShape      = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	StyleGraticule      = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	StyleGraticuleLabel = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	StyleTitle          = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleOverlayPoint   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	StyleOverlayLine    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleLabel          = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListItem       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListSelected   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// StyleForFeature returns the style for a background layer
func StyleForFeature(ftype geo.FeatureType) tcell.Style {
	switch ftype {
	case geo.FeatureCoastline:
		return StyleCoastline
	case geo.FeatureCountryBorder:
		return StyleCountryBorder
	case geo.FeatureStateBorder:
		return StyleStateBorder
	case geo.FeatureUserShape:
		return StyleUserShape
	case geo.FeatureAirport:
		return StyleOverlayPoint
	default:
		return tcell.StyleDefault
	}
}

// CharForFeature returns the character for drawing a background layer
func CharForFeature(ftype geo.FeatureType) rune {
	switch ftype {
	case geo.FeatureCoastline:
		return '-'
	case geo.FeatureCountryBorder:
		return '='
	case geo.FeatureStateBorder:
		return '-'
	case geo.FeatureUserShape:
		return '+'
	default:
		return '·'
	}
}
