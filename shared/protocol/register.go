package protocol

import (
	"github.com/captainzonks/hopper/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition  uint = 10
	SyncIDNetCharacter uint = 11
	SyncIDNetArena     uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
)

// RegisterComponents registers all network components with necs for
// serialization. It must run once before any entity is marked for sync.
func RegisterComponents() error {
	// Position is interpolated for smooth spectator rendering
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// Character: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetCharacter,
		netcomponents.NetCharacterData{},
		netcomponents.NetCharacter,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetArena,
		netcomponents.NetArenaData{},
		netcomponents.NetArena,
	); err != nil {
		return err
	}

	return nil
}
