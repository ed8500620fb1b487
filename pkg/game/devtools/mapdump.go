// Package devtools provides developer tools for inspecting generated worlds.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazerooms/pkg/engine/world"
	"mazerooms/pkg/game/layout"
)

const mapDumpFilename = "map.txt"

// DumpText writes a debug dump of w: metadata, legend, the full map and the
// room list with door positions. Format is plain ASCII with key: value lines.
func DumpText(out io.Writer, w *layout.World) error {
	if w == nil || w.Grid == nil {
		return fmt.Errorf("no grid")
	}
	f := bufio.NewWriter(out)

	// --- Metadata ---
	fmt.Fprintln(f, "=== MAP DUMP (maze, rooms, doors) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", w.Seed)
	fmt.Fprintf(f, "attempts: %d\n", w.Attempts)
	fmt.Fprintf(f, "grid_rows: %d\n", w.Grid.Rows())
	fmt.Fprintf(f, "grid_cols: %d\n", w.Grid.Cols())
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	for _, kind := range world.AllKinds() {
		fmt.Fprintf(f, "count_%s: %d\n", kind, w.Grid.Count(kind))
	}
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	for i, kind := range world.AllKinds() {
		if i > 0 {
			fmt.Fprint(f, "  ")
		}
		fmt.Fprintf(f, "%c = %s", kind.Symbol(), kind)
	}
	fmt.Fprintln(f)
	fmt.Fprintln(f, "")

	// --- Map ---
	fmt.Fprintln(f, "--- Map ---")
	for _, line := range w.Grid.EncodeRows() {
		fmt.Fprintln(f, line)
	}
	fmt.Fprintln(f, "")

	// --- Rooms ---
	fmt.Fprintln(f, "--- Rooms ---")
	unreachable := map[int]bool{}
	for _, lost := range w.Unreachable() {
		for i, r := range w.Rooms {
			if r == lost {
				unreachable[i] = true
			}
		}
	}
	for i, r := range w.Rooms {
		fmt.Fprintf(f, "  index: %d variant: %q strategy: %s size: %dx%d anchor: %v",
			i, r.Name(), r.Strategy(), r.Height(), r.Width(), r.Anchor())
		if i < len(w.Doors) {
			d := w.Doors[i]
			fmt.Fprintf(f, " door: %v door_pass: %d", d.Door, d.Pass)
			if d.Extended() {
				fmt.Fprintf(f, " opened: %v", d.Opened)
			}
		}
		fmt.Fprintf(f, " reachable: %v\n", !unreachable[i])
	}

	return f.Flush()
}

// DumpToFile writes DumpText output to path, or map.txt when path is empty,
// and returns the absolute path written.
func DumpToFile(path string, w *layout.World) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpText(f, w); err != nil {
		return "", err
	}
	return absPath, nil
}
