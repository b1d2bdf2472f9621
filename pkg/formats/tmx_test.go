package formats

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="walls.png" width="32" height="16"/>
 </tileset>
 <layer id="1" name="floor" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,1,1,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="walls" width="4" height="3">
  <data encoding="csv">
1,0,0,2,
1,1,0,0,
0,0,0,1
</data>
 </layer>
</map>
`

func testMapFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/level.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadTMXGrid(t *testing.T) {
	src, err := LoadTMXGrid(testMapFS(), "maps/level.tmx", "walls")
	if err != nil {
		t.Fatalf("LoadTMXGrid failed: %v", err)
	}

	if src.Width != 4 || src.Height != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", src.Width, src.Height)
	}

	want := []uint8{
		1, 0, 0, 1,
		1, 1, 0, 0,
		0, 0, 0, 1,
	}
	for i, c := range src.Cells {
		if c.Value != want[i] {
			t.Errorf("cell %d = %d, want %d", i, c.Value, want[i])
		}
	}

	// Top row of the map sits highest on Z.
	if z := src.At(0, 0).Position.Z; z != 2 {
		t.Errorf("expected top row at Z=2, got %v", z)
	}
}

func TestLoadTMXGrid_OtherLayer(t *testing.T) {
	src, err := LoadTMXGrid(testMapFS(), "maps/level.tmx", "floor")
	if err != nil {
		t.Fatalf("LoadTMXGrid failed: %v", err)
	}
	if src.Solid() != 12 {
		t.Errorf("expected 12 solid cells, got %d", src.Solid())
	}
}

func TestLoadTMXGrid_Errors(t *testing.T) {
	_, err := LoadTMXGrid(testMapFS(), "maps/level.tmx", "missing")
	if !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("expected ErrLayerNotFound, got %v", err)
	}

	if _, err := LoadTMXGrid(testMapFS(), "maps/none.tmx", "walls"); err == nil {
		t.Error("expected error for missing file")
	}
}
