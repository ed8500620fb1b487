// Package renderer draws a carved maze to a terminal.
package renderer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazerooms/pkg/engine/terminal"
	"mazerooms/pkg/engine/world"
)

// Icons for each cell classification
const (
	IconOpenPath   = "·"
	IconWall       = "▒"
	IconRoomPath   = " "
	IconRoomWall   = "█"
	IconDoor       = "▣"
	IconKeyFeature = "⚷"
)

var icons = map[world.Kind]string{
	world.OpenPath:   IconOpenPath,
	world.Wall:       IconWall,
	world.RoomPath:   IconRoomPath,
	world.RoomWall:   IconRoomWall,
	world.Door:       IconDoor,
	world.KeyFeature: IconKeyFeature,
}

var styles = map[world.Kind]color.Style{
	world.OpenPath:   {color.FgGray},
	world.Wall:       {color.FgGray, color.OpBold},
	world.RoomPath:   {color.FgBlue},
	world.RoomWall:   {color.FgBlue, color.OpBold},
	world.Door:       {color.FgYellow, color.OpBold},
	world.KeyFeature: {color.FgGreen, color.OpBold},
}

var (
	colorHeading = color.Style{color.FgMagenta, color.OpBold}
	colorDenied  = color.Style{color.FgRed, color.OpBold}

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([a-zA-Z0-9_]+)}`)
)

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

// Options controls how a grid is drawn
type Options struct {
	Color  bool
	Width  int // Columns available; 0 means the terminal width
	Legend bool
}

// Glyph returns the icon for a classification
func Glyph(kind world.Kind) string {
	if icon, ok := icons[kind]; ok {
		return icon
	}
	return "?"
}

// RenderCell returns the string for a single cell, styled when colour is on
func RenderCell(kind world.Kind, useColor bool) string {
	icon := Glyph(kind)
	if !useColor {
		return icon
	}
	return styles[kind].Sprint(icon)
}

// Render writes the grid one row per line, clipped to the available width,
// followed by an optional legend.
func Render(w io.Writer, g *world.Grid, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = terminal.Width()
	}
	cols := min(g.Cols(), width)

	out := bufio.NewWriter(w)
	for row := 0; row < g.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			line.WriteString(RenderCell(g.GetCell(row, col).Kind, opts.Color))
		}
		fmt.Fprintln(out, line.String())
	}

	if cols < g.Cols() {
		fmt.Fprintln(out, FormatString("DENIED{MAP_CLIPPED}", opts.Color))
	}

	if opts.Legend {
		fmt.Fprintln(out)
		fmt.Fprintln(out, FormatString("HEADING{LEGEND}", opts.Color))
		for _, kind := range world.AllKinds() {
			fmt.Fprintf(out, "  %s %s\n", RenderCell(kind, opts.Color), kind.Label())
		}
	}
	return out.Flush()
}

// FormatString expands markup of the form FUNC{operand}:
//
//	GT{KEY}       translated text
//	HEADING{KEY}  translated text in the heading style
//	DENIED{KEY}   translated text in the warning style
//	KIND{door}    the glyph and label for a cell classification
func FormatString(msg string, useColor bool) string {
	return regexpStringFunctions.ReplaceAllStringFunc(msg, func(match string) string {
		parts := regexpStringFunctions.FindStringSubmatch(match)
		function, operand := parts[1], parts[2]

		switch function {
		case "GT":
			return dynamicGet(operand)
		case "HEADING":
			return paint(colorHeading, dynamicGet(operand), useColor)
		case "DENIED":
			return paint(colorDenied, dynamicGet(operand), useColor)
		case "KIND":
			kind, err := world.ParseKind(operand)
			if err != nil {
				return "ERROR, unknown kind: " + operand
			}
			return RenderCell(kind, useColor) + " " + kind.Label()
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}
	})
}

func paint(style color.Style, s string, useColor bool) string {
	if !useColor {
		return s
	}
	return style.Sprint(s)
}
