package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/captainzonks/hopper/inventory"
)

func TestOpenEmbedded(t *testing.T) {
	m, err := Open(Embedded(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	potion, err := m.Item(inventory.PrimaryAssetID{Type: inventory.PotionType, Name: "Health"})
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if potion.MaxCount != 3 || potion.Heal != 40 {
		t.Errorf("potion = %+v", potion)
	}
	if potion.ID.String() != "Potion:Health" {
		t.Errorf("potion id = %s", potion.ID)
	}

	soul := m.ForceLoadItem(inventory.PrimaryAssetID{Type: inventory.TokenType, Name: "Soul"}, true)
	if soul == nil || !soul.IsConsumable() {
		t.Errorf("soul token = %+v, want consumable", soul)
	}

	arena := m.Arena()
	if arena.Width != 3200 || arena.Height != 3200 {
		t.Errorf("arena size = %dx%d", arena.Width, arena.Height)
	}
	if len(arena.PlayerSpawns) != 1 || len(arena.EnemySpawns) != 3 {
		t.Errorf("spawns = %d players, %d enemies", len(arena.PlayerSpawns), len(arena.EnemySpawns))
	}
	if len(arena.Walls) != 5 {
		t.Errorf("walls = %d, want 5", len(arena.Walls))
	}
	if len(arena.Pickups) != 3 {
		t.Fatalf("pickups = %d, want 3", len(arena.Pickups))
	}
	for _, p := range arena.Pickups {
		if m.ForceLoadItem(p.Item, false) == nil {
			t.Errorf("pickup references unknown item %s", p.Item)
		}
	}
}

func TestItemsByType(t *testing.T) {
	m := MustOpen(Embedded(), nil)

	tests := []struct {
		typ  inventory.ItemType
		want int
	}{
		{inventory.PotionType, 1},
		{inventory.WeaponType, 1},
		{inventory.SkillType, 0},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := len(m.Items(tt.typ)); got != tt.want {
				t.Errorf("Items(%q) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestUnknownItem(t *testing.T) {
	m := MustOpen(Embedded(), nil)

	id := inventory.PrimaryAssetID{Type: inventory.WeaponType, Name: "Missing"}
	if _, err := m.Item(id); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Item(missing) err = %v, want ErrUnknownItem", err)
	}
	if m.ForceLoadItem(id, true) != nil {
		t.Error("ForceLoadItem(missing) should return nil")
	}

	m.Close()
	if _, err := m.Item(inventory.PrimaryAssetID{Type: inventory.PotionType, Name: "Health"}); !errors.Is(err, ErrClosed) {
		t.Errorf("Item after Close err = %v, want ErrClosed", err)
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"no items dir", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{
			"items/bad.yaml": {Data: []byte("type: [")},
		}},
		{"missing type", fstest.MapFS{
			"items/a.yaml": {Data: []byte("items:\n  - name: X\n")},
		}},
		{"duplicate", fstest.MapFS{
			"items/a.yaml": {Data: []byte("type: Potion\nitems:\n  - name: X\n  - name: X\n")},
		}},
		{"no arena", fstest.MapFS{
			"items/a.yaml": {Data: []byte("type: Potion\nitems:\n  - name: X\n")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Open(tt.fsys, nil); err == nil {
				t.Error("Open succeeded, want error")
			}
		})
	}
}
