package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazerooms/pkg/game/generator"
	"mazerooms/pkg/game/layout"
)

func buildWorld(t *testing.T) *layout.World {
	t.Helper()
	b := &layout.Builder{Generator: generator.OpenFloor, Rows: 15, Cols: 17, Rooms: []string{"entrance", "key"}, MaxAttempts: 1}
	w, err := b.Build(21)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return w
}

func TestDumpText(t *testing.T) {
	w := buildWorld(t)
	var buf bytes.Buffer
	if err := DumpText(&buf, w); err != nil {
		t.Fatalf("DumpText: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"seed: 21\n",
		"grid_rows: 15\n",
		"count_door: 2\n",
		"count_key_feature: 1\n",
		"D = door",
		`variant: "entrance"`,
		`variant: "key" strategy: around_center`,
		"reachable: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
	for _, line := range w.Grid.EncodeRows() {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("dump is missing map row %q", line)
		}
	}
}

func TestDumpText_NoGrid(t *testing.T) {
	if err := DumpText(&bytes.Buffer{}, &layout.World{}); err == nil {
		t.Error("DumpText(empty world) error = nil, want error")
	}
}

func TestDumpToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpToFile(path, buildWorld(t))
	if err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}
	if got != path {
		t.Errorf("DumpToFile path = %q, want %q", got, path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("dump file missing or empty: %v", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	w := buildWorld(t)
	path := filepath.Join(t.TempDir(), "out", "world.yaml")

	if err := WriteYAML(path, w); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := ReadYAML(path)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}

	if !back.Grid.Equal(w.Grid) {
		t.Error("grid changed in the YAML round trip")
	}
	if back.Seed != w.Seed || len(back.Rooms) != len(w.Rooms) {
		t.Errorf("seed/rooms = %d/%d, want %d/%d", back.Seed, len(back.Rooms), w.Seed, len(w.Rooms))
	}
	for i := range w.Doors {
		if back.Doors[i] != w.Doors[i] {
			t.Errorf("door %d = %+v, want %+v", i, back.Doors[i], w.Doors[i])
		}
	}
}

func TestReadYAML_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadYAML(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("ReadYAML(missing) error = nil")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rows: 2\ncols: 2\ngrid: ['#?', '##']\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadYAML(bad); err == nil {
		t.Error("ReadYAML(bad symbol) error = nil")
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, buildWorld(t)); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<!DOCTYPE html>", "Seed 21 (15x17)", `class="door"`, `class="key"`, "entrance at"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML is missing %q", want)
		}
	}
}
