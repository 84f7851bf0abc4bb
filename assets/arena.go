package assets

import (
	"fmt"

	"github.com/captainzonks/hopper/inventory"
	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

type Spawn struct {
	X, Y float64
	Name string
}

type Rect struct {
	X, Y, Width, Height float64
}

type PickupSpawn struct {
	Rect
	Item  inventory.PrimaryAssetID
	Count int
}

// Arena is the playfield layout read from a Tiled map.
type Arena struct {
	Name         string
	Width        int
	Height       int
	PlayerSpawns []Spawn
	EnemySpawns  []Spawn
	Walls        []Rect
	Pickups      []PickupSpawn
}

// LoadArena parses the TMX map at levelPath.
func (m *Manager) LoadArena(levelPath string) (*Arena, error) {
	if m.closed {
		return nil, ErrClosed
	}
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(m.fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", levelPath, err)
	}

	arena := &Arena{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, Spawn{X: o.X, Y: o.Y, Name: o.Name})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, Spawn{X: o.X, Y: o.Y, Name: o.Name})
			}
		case "Walls":
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "Pickups":
			for _, o := range og.Objects {
				id, err := inventory.ParseAssetID(o.Properties.GetString("item"))
				if err != nil {
					m.log.Warn("skipping pickup", zap.Uint32("object", o.ID), zap.Error(err))
					continue
				}
				count := o.Properties.GetInt("count")
				if count <= 0 {
					count = 1
				}
				arena.Pickups = append(arena.Pickups, PickupSpawn{
					Rect:  Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Item:  id,
					Count: count,
				})
			}
		}
	}

	if len(arena.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("assets: %s: no PlayerSpawn objects", levelPath)
	}
	return arena, nil
}
