package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/layout"
	"mazerooms/pkg/game/renderer"
)

var htmlClasses = map[world.Kind]string{
	world.OpenPath:   "open-path",
	world.Wall:       "wall",
	world.RoomPath:   "room-path",
	world.RoomWall:   "room-wall",
	world.Door:       "door",
	world.KeyFeature: "key",
}

// WriteHTML renders the whole map as a standalone HTML page
func WriteHTML(out io.Writer, w *layout.World) error {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze rooms</title>
    <style>
        body { background-color: #1a1a2e; color: #eee; font-family: 'Courier New', monospace; padding: 20px; }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-container { background-color: #0f0f1a; padding: 20px; border-radius: 8px; display: inline-block; }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .open-path { color: #888; }
        .wall { color: #666; }
        .room-path { color: #4444ff; }
        .room-wall { color: #4444ff; font-weight: bold; }
        .door { color: #ffff00; font-weight: bold; }
        .key { color: #00aa00; font-weight: bold; }
        .rooms { margin-top: 20px; color: #888; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&page, `    <div class="header">Seed %d (%dx%d)</div>`+"\n", w.Seed, w.Grid.Rows(), w.Grid.Cols())
	page.WriteString(`    <div class="map-container">` + "\n")
	for row := 0; row < w.Grid.Rows(); row++ {
		page.WriteString(`        <div class="map-row">`)
		for col := 0; col < w.Grid.Cols(); col++ {
			kind := w.Grid.GetCell(row, col).Kind
			fmt.Fprintf(&page, `<span class="%s">%s</span>`, htmlClasses[kind], html.EscapeString(renderer.Glyph(kind)))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString("    </div>\n")

	page.WriteString(`    <div class="rooms">` + "\n")
	for i, r := range w.Rooms {
		fmt.Fprintf(&page, "        <div>%s at %v", html.EscapeString(r.Name()), r.Anchor())
		if i < len(w.Doors) {
			fmt.Fprintf(&page, ", door %v", w.Doors[i].Door)
		}
		page.WriteString("</div>\n")
	}
	page.WriteString("    </div>\n</body>\n</html>\n")

	_, err := io.WriteString(out, page.String())
	return err
}

// SaveHTML writes WriteHTML output to path
func SaveHTML(path string, w *layout.World) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteHTML(f, w)
}
