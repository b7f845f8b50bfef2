package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Rose Pine Moon palette
var (
	paletteBase    = tcell.NewRGBColor(35, 33, 54)    // #232136
	paletteSurface = tcell.NewRGBColor(42, 39, 63)    // #2a273f
	paletteOverlay = tcell.NewRGBColor(57, 53, 82)    // #393552
	paletteMuted   = tcell.NewRGBColor(110, 106, 134) // #6e6a86
	paletteSubtle  = tcell.NewRGBColor(144, 140, 170) // #908caa
	paletteText    = tcell.NewRGBColor(224, 222, 244) // #e0def4
	paletteRose    = tcell.NewRGBColor(235, 188, 186) // #ebbcba
	palettePine    = tcell.NewRGBColor(62, 143, 176)  // #3e8fb0
	paletteFoam    = tcell.NewRGBColor(156, 207, 216) // #9ccfd8
)

// BarColor fills the UF chart bars
var BarColor = palettePine

// SetupRosePineTheme applies the palette to every tview primitive. Borders stay
// muted so the tables and the UF chart carry the contrast.
func SetupRosePineTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    paletteBase,
		ContrastBackgroundColor:     paletteSurface, // search field
		MoreContrastBackgroundColor: paletteOverlay,
		BorderColor:                 paletteMuted,
		TitleColor:                  paletteRose,
		GraphicsColor:               paletteFoam,
		PrimaryTextColor:            paletteText,
		SecondaryTextColor:          paletteSubtle, // search label
		TertiaryTextColor:           paletteMuted,
		InverseTextColor:            paletteBase,
		ContrastSecondaryTextColor:  paletteText,
	}
}
