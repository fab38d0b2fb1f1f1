package assets

import "testing"

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 levels, got %v", names)
	}

	lvl, ok := levels["level1"]
	if !ok {
		t.Fatalf("level1 missing from %v", names)
	}
	if lvl.MapWidth != 640 || lvl.MapHeight != 368 {
		t.Errorf("level1 size = %dx%d", lvl.MapWidth, lvl.MapHeight)
	}
	if lvl.Anchor.X == 0 && lvl.Anchor.Y == 0 {
		t.Error("level1 anchor not parsed")
	}
	if len(lvl.Solids) == 0 {
		t.Error("level1 has no solid tiles")
	}
	if len(lvl.Goals) != 1 || lvl.Goals[0].Mode != "any" {
		t.Errorf("level1 goals = %+v", lvl.Goals)
	}
	if len(lvl.Switches) != 1 || lvl.Switches[0].LinkID != 1 {
		t.Errorf("level1 switches = %+v", lvl.Switches)
	}
	if len(lvl.Doors) != 1 || lvl.Doors[0].LinkID != 1 {
		t.Errorf("level1 doors = %+v", lvl.Doors)
	}
	if len(lvl.Platforms) != 1 || lvl.Platforms[0].TravelY != -96 {
		t.Errorf("level1 platforms = %+v", lvl.Platforms)
	}
	if len(lvl.DeadZones) != 1 {
		t.Errorf("level1 dead zones = %+v", lvl.DeadZones)
	}
	if len(lvl.Carryables) != 1 {
		t.Errorf("level1 carryables = %+v", lvl.Carryables)
	}

	lvl2 := levels["level2"]
	if len(lvl2.Goals) != 2 {
		t.Fatalf("level2 goals = %+v", lvl2.Goals)
	}
	var sawSpecific bool
	for _, gs := range lvl2.Goals {
		if gs.Mode == "specific" {
			sawSpecific = true
			if gs.RequiredIdentity != 1 {
				t.Errorf("specific goal identity = %d", gs.RequiredIdentity)
			}
		}
	}
	if !sawSpecific {
		t.Error("level2 missing specific-identity goal")
	}
}
