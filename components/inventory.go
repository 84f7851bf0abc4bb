package components

import (
	"github.com/captainzonks/hopper/inventory"
	"github.com/yohamta/donburi"
)

type InventoryData struct {
	*inventory.Inventory
}

var Inventory = donburi.NewComponentType[InventoryData]()

// PickupData is an item lying in the arena.
type PickupData struct {
	Item  *inventory.Item
	Count int
}

var Pickup = donburi.NewComponentType[PickupData]()
