// Package theme provides color theming support for bundletui.
//
// It defines semantic color constants mapped to standard ANSI colors, so
// the application picks up the terminal emulator's color scheme while the
// semantic meaning of each color stays consistent.
package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Colors defines the semantic color palette for the application.
var Colors = struct {
	// Primary colors
	Primary   tcell.Color // Main text and UI elements
	Secondary tcell.Color // Supporting text and labels
	Tertiary  tcell.Color // Accents within lists and tables

	// Semantic colors
	Success tcell.Color // Positive states
	Warning tcell.Color // Caution states, loading
	Error   tcell.Color // Error states
	Info    tcell.Color // Informational elements

	// UI element colors
	Background tcell.Color // Main background
	Border     tcell.Color // Border and separator lines
	Selection  tcell.Color // Selected item background
	Header     tcell.Color // Header background
	HeaderText tcell.Color // Header text color
	Footer     tcell.Color // Footer background
	FooterText tcell.Color // Footer text color

	// Additional tview theme colors
	Title    tcell.Color // For tview TitleColor
	Contrast tcell.Color // For tview ContrastBackgroundColor
	Inverse  tcell.Color // For tview InverseTextColor

	// Chip colors
	Chip         tcell.Color // Filter chip background
	ChipText     tcell.Color // Filter chip label
	ChipSelected tcell.Color // Focused filter chip background
}{
	// Map to standard ANSI colors that work well with terminal themes
	Primary:   tcell.ColorWhite,
	Secondary: tcell.ColorGray,
	Tertiary:  tcell.ColorAqua,

	Success: tcell.ColorGreen,
	Warning: tcell.ColorYellow,
	Error:   tcell.ColorRed,
	Info:    tcell.ColorBlue,

	Background: tcell.ColorDefault,
	Border:     tcell.ColorGray,
	Selection:  tcell.ColorBlue,
	Header:     tcell.ColorDefault,
	HeaderText: tcell.ColorYellow,
	Footer:     tcell.ColorDefault,
	FooterText: tcell.ColorWhite,

	Title:    tcell.ColorWhite,
	Contrast: tcell.ColorBlue,
	Inverse:  tcell.ColorBlack,

	Chip:         tcell.ColorNavy,
	ChipText:     tcell.ColorWhite,
	ChipSelected: tcell.ColorBlue,
}

var semanticTagMap = map[string]func() tcell.Color{
	"primary":   func() tcell.Color { return Colors.Primary },
	"secondary": func() tcell.Color { return Colors.Secondary },
	"tertiary":  func() tcell.Color { return Colors.Tertiary },
	"success":   func() tcell.Color { return Colors.Success },
	"warning":   func() tcell.Color { return Colors.Warning },
	"error":     func() tcell.Color { return Colors.Error },
	"info":      func() tcell.Color { return Colors.Info },
	"selection": func() tcell.Color { return Colors.Selection },
	"header":    func() tcell.Color { return Colors.HeaderText },
	"footer":    func() tcell.Color { return Colors.FooterText },
	"title":     func() tcell.Color { return Colors.Title },
}

// ReplaceSemanticTags replaces semantic tags like [primary] with the current theme color tag.
func ReplaceSemanticTags(s string) string {
	for tag, colorFunc := range semanticTagMap {
		color := colorFunc()
		colorTag := ColorToTag(color)
		s = strings.ReplaceAll(s, "["+tag+"]", "["+colorTag+"]")
	}

	return s
}

// ColorToTag returns a tview color tag string for a tcell.Color.
func ColorToTag(c tcell.Color) string {
	switch c {
	case tcell.ColorDefault:
		return "default"
	case tcell.ColorBlack:
		return "black"
	case tcell.ColorMaroon:
		return "maroon"
	case tcell.ColorGreen:
		return "green"
	case tcell.ColorNavy:
		return "navy"
	case tcell.ColorGray:
		return "gray"
	case tcell.ColorRed:
		return "red"
	case tcell.ColorYellow:
		return "yellow"
	case tcell.ColorBlue:
		return "blue"
	case tcell.ColorFuchsia:
		return "fuchsia"
	case tcell.ColorAqua:
		return "aqua"
	case tcell.ColorWhite:
		return "white"
	default:
		return fmt.Sprintf("#%06x", c.Hex())
	}
}

// ApplyToTview sets the global tview.Styles to match the semantic theme colors.
func ApplyToTview() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    Colors.Background,
		ContrastBackgroundColor:     Colors.Contrast,
		MoreContrastBackgroundColor: Colors.Selection,
		BorderColor:                 Colors.Border,
		TitleColor:                  Colors.Title,
		GraphicsColor:               Colors.Info,
		PrimaryTextColor:            Colors.Primary,
		SecondaryTextColor:          Colors.Secondary,
		TertiaryTextColor:           Colors.Tertiary,
		InverseTextColor:            Colors.Inverse,
		ContrastSecondaryTextColor:  Colors.Selection,
	}
}
